package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, DriverPostgres, cfg.DataStore.Driver)
	assert.NotEmpty(t, cfg.Warnings)
	assert.False(t, cfg.PublicKeyConfigured())
}

func TestFromEnvRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", defaultJWTSecret)
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInsecureSecret)

	t.Setenv("JWT_SECRET", "")
	_, err = FromEnv()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("DATA_STORE_DRIVER", "mysql")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Setenv("DATA_STORE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "pw")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=pw")

	t.Setenv("DATA_STORE_URL", "postgres://u:p@localhost/x")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost/x", cfg.DSN())
}
