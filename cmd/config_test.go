package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "0.1", cfg.TaxRate.String())
	assert.Equal(t, 30*24*time.Hour, cfg.NotificationRetention)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"DB_DRIVER=mysql\nDB_PORT=3306\nTAX_RATE=0.2\nNOTIFICATION_RETENTION=72h\nJWT_SECRET=from-file\n",
	), 0o600))
	t.Setenv("JWT_SECRET", "from-process")
	for _, key := range []string{"DB_DRIVER", "DB_PORT", "TAX_RATE", "NOTIFICATION_RETENTION"} {
		// registers the restore, then leaves the variable unset so the file can fill it
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.JWTSecret)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "0.2", cfg.TaxRate.String())
	assert.Equal(t, 72*time.Hour, cfg.NotificationRetention)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TAX_RATE", "ten percent")
	t.Setenv("LOG_MAX_SIZE_MB", "big")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
