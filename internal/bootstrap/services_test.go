package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusapps/studentdir/config"
	"github.com/campusapps/studentdir/internal/adapters/devidp"
	"github.com/campusapps/studentdir/internal/adapters/restidp"
)

func TestBuildIdentityProvider_Mock(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeMock
	cfg.Auth.Mock.SeedEmail = "dev@example.com"
	cfg.Auth.Mock.SeedPassword = "hunter22"

	provider, closer, err := BuildIdentityProvider(cfg)
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer()

	assert.IsType(t, &devidp.Provider{}, provider)
}

func TestBuildIdentityProvider_REST(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeREST
	cfg.Auth.REST.BaseURL = "https://identitytoolkit.example.com"
	cfg.Auth.REST.APIKey = "key"

	provider, closer, err := BuildIdentityProvider(cfg)
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer()

	assert.IsType(t, &restidp.Provider{}, provider)
}

func TestBuildIdentityProvider_RESTRequiresBaseURL(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthModeREST

	_, _, err := BuildIdentityProvider(cfg)
	require.Error(t, err)
}

func TestBuildIdentityProvider_UnknownMode(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Auth.Mode = config.AuthMode("saml")

	_, _, err := BuildIdentityProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown auth mode")
}
