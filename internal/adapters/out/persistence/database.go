package persistence

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"marketplace/internal/adapters/out/persistence/attachmentrepo"
	"marketplace/internal/adapters/out/persistence/complaintrepo"
	"marketplace/internal/adapters/out/persistence/notificationrepo"
	"marketplace/internal/adapters/out/persistence/orderrepo"
	"marketplace/internal/adapters/out/persistence/productrepo"

	"github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DBConfig selects the dialect and the server to connect to.
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the connection string for the configured driver. MySQL connections
// report matched rather than changed rows so that idempotent updates are not
// mistaken for missing records.
func (c DBConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres, "":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     c.Host + ":" + c.Port,
			Path:     "/" + c.Name,
			RawQuery: "sslmode=" + url.QueryEscape(c.sslMode()),
		}
		return u.String(), nil
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.Name,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func (c DBConfig) sslMode() string {
	if c.SSLMode == "" {
		return "disable"
	}
	return c.SSLMode
}

// Open connects to the configured database, creating it first on postgres when it
// does not exist yet, and migrates the schema.
func Open(cfg DBConfig, log *slog.Logger) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		if err = ensurePostgresDatabase(dsn); err != nil {
			return nil, fmt.Errorf("ensure database: %w", err)
		}
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("database ready", "driver", dialector.Name(), "host", cfg.Host, "name", cfg.Name)
	return db, nil
}

// Migrate creates or alters every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&attachmentrepo.AttachmentDTO{},
		&complaintrepo.ComplaintDTO{},
		&notificationrepo.NotificationDTO{},
	)
}

func ensurePostgresDatabase(dsn string) error {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return nil
	}
	parsed.Path = "/postgres"

	sqlDB, err := sql.Open("postgres", parsed.String())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists bool
	err = sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil || exists {
		return err
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name))
	return err
}
