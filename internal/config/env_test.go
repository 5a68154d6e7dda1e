package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "udash")
	t.Setenv("AUTH_TOKEN_DURATION", "45m")
	t.Setenv("AUTH_PASSWORD_MIN_LENGTH", "8")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/udash")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("ADAPTER_SERVER_URL", "http://localhost:8080")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "udash", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.Equal(t, "postgres://localhost:5432/udash", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerURL)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}

func TestApplyDefaults_PasswordMinLength(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	assert.Equal(t, DefaultPasswordMinLength, cfg.Auth.PasswordMinLength)

	cfg = &StructuredConfig{Auth: Auth{PasswordMinLength: 10}}
	cfg.applyDefaults()
	assert.Equal(t, 10, cfg.Auth.PasswordMinLength)
}
