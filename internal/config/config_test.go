package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Bistro", cfg.App.Name)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "2929", cfg.Security.AccessPIN)
	assert.Equal(t, "29173456", cfg.Security.ConfirmPIN)
	assert.Equal(t, 12*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, 30, cfg.Settings.SickAllowance)
	assert.Equal(t, "exports", cfg.Export.Dir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_NAME", "cafe")
	t.Setenv("DEFAULT_SICK_ALLOWANCE", "12")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("EXPORT_DIR", "/srv/bistro/exports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://postgres:@localhost:5432/cafe?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, 12, cfg.Settings.SickAllowance)
	assert.Equal(t, "s3cret", cfg.Security.JWTSecret)
	assert.Equal(t, "/srv/bistro/exports", cfg.Export.Dir)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	_, err := Load()
	assert.Error(t, err)
}
