package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campusapps/studentdir/config"
	"github.com/campusapps/studentdir/internal/adapters/devidp"
	redisadapter "github.com/campusapps/studentdir/internal/adapters/redis"
	"github.com/campusapps/studentdir/internal/adapters/restidp"
	"github.com/campusapps/studentdir/internal/data"
	"github.com/campusapps/studentdir/internal/domain/nav"
	"github.com/campusapps/studentdir/internal/ports"
	"github.com/campusapps/studentdir/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions  *service.SessionManager
	Directory *service.DirectoryService
	Guard     *nav.Guard

	// Provider is the wired identity provider; the container owns its lifetime.
	Provider ports.IdentityProvider
	closer   func()
}

// Close releases the session subscription and the identity provider.
func (c *ServiceContainer) Close() {
	if c.Sessions != nil {
		c.Sessions.Close()
	}
	if c.closer != nil {
		c.closer()
	}
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildIdentityProvider constructs the identity provider selected by AUTH_MODE.
// The returned closer tears the provider down (notification goroutine included).
func BuildIdentityProvider(cfg *config.AppConfig) (ports.IdentityProvider, func(), error) {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		p, err := devidp.NewProvider(devidp.Config{
			SeedEmail:    cfg.Auth.Mock.SeedEmail,
			SeedPassword: cfg.Auth.Mock.SeedPassword,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("build mock identity provider: %w", err)
		}
		return p, p.Close, nil
	case config.AuthModeREST:
		p, err := restidp.NewProvider(restidp.ProviderConfig{
			BaseURL: cfg.Auth.REST.BaseURL,
			APIKey:  cfg.Auth.REST.APIKey,
			Timeout: cfg.Auth.REST.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("build rest identity provider: %w", err)
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

// BuildServices wires the repositories, the identity provider, and the
// services into a container.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	provider, closer, err := BuildIdentityProvider(deps.Config)
	if err != nil {
		return nil, err
	}

	students := data.NewStudentRepo(deps.DB)
	fingerprints := redisadapter.NewFingerprintStore(deps.RedisClient)

	sessions := service.NewSessionManager(service.SessionManagerOptions{
		Provider: provider,
		Students: students,
		Cache:    fingerprints,
		Logger:   logger,
	})
	directory := service.NewDirectoryService(service.DirectoryServiceOptions{
		Students: students,
		Logger:   logger,
	})

	return &ServiceContainer{
		Sessions:  sessions,
		Directory: directory,
		Guard:     nav.NewGuard(),
		Provider:  provider,
		closer:    closer,
	}, nil
}
