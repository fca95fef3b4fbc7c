package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"marketplace/internal/adapters/out/persistence"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string
	DB       persistence.DBConfig

	JWTSecret string

	UploadsDir string
	// BodyLimit caps request bodies in echo notation, e.g. "12M".
	BodyLimit string

	TaxRate decimal.Decimal

	NotificationRetention time.Duration
	RetentionSchedule     string

	Log logging.Config
}

// LoadConfig reads envFile when it exists and maps the environment into Config.
// Variables already set in the process take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	taxRate, taxErr := envDecimal("TAX_RATE", "0.10")
	retention, retentionErr := envDuration("NOTIFICATION_RETENTION", 30*24*time.Hour)
	maxSize, maxSizeErr := envInt("LOG_MAX_SIZE_MB", 100)
	maxBackups, maxBackupsErr := envInt("LOG_MAX_BACKUPS", 5)
	maxAge, maxAgeErr := envInt("LOG_MAX_AGE_DAYS", 30)

	cfg := Config{
		HTTPPort: env("HTTP_PORT", "8080"),
		DB: persistence.DBConfig{
			Driver:   env("DB_DRIVER", persistence.DriverPostgres),
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     env("DB_NAME", "marketplace"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		JWTSecret:             os.Getenv("JWT_SECRET"),
		UploadsDir:            env("UPLOADS_DIR", "uploads"),
		BodyLimit:             env("BODY_LIMIT", "30M"),
		TaxRate:               taxRate,
		NotificationRetention: retention,
		RetentionSchedule:     os.Getenv("RETENTION_SCHEDULE"),
		Log: logging.Config{
			Level:      env("LOG_LEVEL", "info"),
			Format:     env("LOG_FORMAT", "json"),
			Output:     env("LOG_OUTPUT", "stdout"),
			FilePath:   env("LOG_FILE", "logs/marketplace.log"),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
		},
	}

	var secretErr error
	if cfg.JWTSecret == "" {
		secretErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}

	if err := errors.Join(taxErr, retentionErr, maxSizeErr, maxBackupsErr, maxAgeErr, secretErr); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := env(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func envDecimal(key, fallback string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(env(key, fallback))
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}
