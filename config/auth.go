package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the identity provider mode for the application.
type AuthMode string

const (
	// AuthModeREST talks to an external password identity provider over HTTP.
	AuthModeREST AuthMode = "rest"
	// AuthModeMock uses the in-memory identity provider (development and tests).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "rest", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: rest, mock)", v)
	}
}

// RESTAuthConfig contains configuration for the HTTP identity provider adapter.
type RESTAuthConfig struct {
	// BaseURL is the root of the identity provider REST API,
	// e.g. "https://identitytoolkit.googleapis.com".
	BaseURL string `env:"BASE_URL"`

	// APIKey is appended to provider requests as the key query parameter.
	APIKey string `env:"API_KEY"`

	// Timeout bounds each provider HTTP call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// MockAuthConfig controls the in-memory identity provider.
// Used when AUTH_MODE=mock for development and testing.
type MockAuthConfig struct {
	// SeedEmail and SeedPassword optionally pre-register one account
	// so a dev instance is immediately signable-in.
	SeedEmail    string `env:"SEED_EMAIL"    envDefault:""`
	SeedPassword string `env:"SEED_PASSWORD" envDefault:""`
}

// AuthConfig groups all identity-provider-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider adapter to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"rest"`

	// REST configuration (used when Mode=rest).
	REST RESTAuthConfig `envPrefix:"AUTH_REST_"`

	// Mock configuration (used when Mode=mock).
	Mock MockAuthConfig `envPrefix:"AUTH_MOCK_"`
}
