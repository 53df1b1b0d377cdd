package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAuthConfig() *AuthConfig {
	return &AuthConfig{
		AccessSecret:        "access-secret",
		AccessExpires:       15 * time.Minute,
		RefreshSecret:       "refresh-secret",
		RefreshExpires:      7 * 24 * time.Hour,
		ConfirmEmailSecret:  "confirm-secret",
		ConfirmEmailExpires: 24 * time.Hour,
		ForgotSecret:        "forgot-secret",
		ForgotExpires:       30 * time.Minute,
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Auth: validAuthConfig()}
	require.NoError(t, cfg.validate())
}

func TestConfigValidate_MissingAuth(t *testing.T) {
	cfg := &Config{}
	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth configuration is required")
}

func TestConfigValidate_MissingSecret(t *testing.T) {
	cfg := &Config{Auth: validAuthConfig()}
	cfg.Auth.ForgotSecret = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.forgotSecret")
}

func TestConfigValidate_NonPositiveTTL(t *testing.T) {
	cfg := &Config{Auth: validAuthConfig()}
	cfg.Auth.ConfirmEmailExpires = 0

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.confirmEmailExpires")
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"accessSecret": "x",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	assert.Equal(t, "auth.accessSecret", canonicalizeEnvKey("AUTH_ACCESSSECRET", existing))
	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "redis.addr", canonicalizeEnvKey("REDIS_ADDR", existing))
}
