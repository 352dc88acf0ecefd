package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAuthModeUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    AuthMode
		expectError bool
	}{
		{name: "rest", input: "rest", expected: AuthModeREST},
		{name: "mock", input: "mock", expected: AuthModeMock},
		{name: "uppercase is normalized", input: "REST", expected: AuthModeREST},
		{name: "mixed case is normalized", input: "Mock", expected: AuthModeMock},
		{name: "unknown mode", input: "ldap", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if mode != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModeREST {
		t.Errorf("expected default auth mode rest, got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.REST.Timeout != 15*time.Second {
		t.Errorf("expected default auth timeout 15s, got %v", cfg.Auth.REST.Timeout)
	}
	if cfg.Postgres.Host != "localhost" {
		t.Errorf("expected default db host localhost, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected default db port 5432, got %d", cfg.Postgres.Port)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("expected migrations on start by default")
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected default redis addr localhost:6379, got %q", cfg.Redis.Addr)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default http addr :8080, got %q", cfg.HTTP.Addr)
	}
}

func TestAppConfigFromEnvironment(t *testing.T) {
	environment := map[string]string{
		"AUTH_MODE":               "mock",
		"AUTH_MOCK_SEED_EMAIL":    "dev@example.com",
		"AUTH_MOCK_SEED_PASSWORD": "hunter22",
		"DB_HOST":                 "db.internal",
		"DB_PORT":                 "5433",
		"REDIS_ADDR":              "cache.internal:6380",
		"HTTP_ADDR":               ":9090",
	}

	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModeMock {
		t.Errorf("expected auth mode mock, got %q", cfg.Auth.Mode)
	}
	if cfg.Auth.Mock.SeedEmail != "dev@example.com" {
		t.Errorf("expected seed email, got %q", cfg.Auth.Mock.SeedEmail)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 5433 {
		t.Errorf("unexpected db config: %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)
	}
	if cfg.Redis.Addr != "cache.internal:6380" {
		t.Errorf("unexpected redis addr %q", cfg.Redis.Addr)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("unexpected http addr %q", cfg.HTTP.Addr)
	}
}

func TestHTTPConfigSanitize(t *testing.T) {
	h := HTTPConfig{Addr: ":8080", ReadHeaderTimeout: -1, ShutdownTimeout: 0}
	h.Sanitize()

	if h.ReadHeaderTimeout != 10*time.Second {
		t.Errorf("expected read header timeout clamped to 10s, got %v", h.ReadHeaderTimeout)
	}
	if h.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout clamped to 10s, got %v", h.ShutdownTimeout)
	}
}
