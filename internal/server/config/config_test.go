package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetArgs(t *testing.T) {
	t.Helper()
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "HS256", cfg.SigningAlgorithm)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)

	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, "HS512", cfg.SigningAlgorithm)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestLoadConfig_InvalidMinutesEnvIgnored(t *testing.T) {
	resetArgs(t)

	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("SECRET_KEY", "env-secret")

	os.Args = []string{"testbin", "-a", ":7777", "-s", "flag-secret", "-t", "5"}

	cfg := LoadConfig()

	assert.Equal(t, ":7777", cfg.EndpointAddrHTTP)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
}
