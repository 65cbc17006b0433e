// internal/infrastructure/database/sqlite/connection.go
package sqlite

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopstore/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connection owns the single storage-engine handle for the process. It is
// created once at the application root and injected into every repository;
// there is no hidden package-level singleton.
type Connection struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewConnection opens the embedded database. Foreign keys are switched on
// because the payments table relies on the SET NULL referential action, and
// the pool is pinned to a single connection so every multi-statement
// mutation is serialized through one writer.
func NewConnection(cfg *config.Config, log *logrus.Logger) (*Connection, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=1",
		cfg.Database.Path,
		cfg.Database.BusyTimeout.Milliseconds(),
	)

	gormConfig := &gorm.Config{
		// Unique-constraint violations surface as gorm.ErrDuplicatedKey
		// instead of engine-specific text.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.App.Debug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.WithField("path", cfg.Database.Path).Info("database opened")

	return &Connection{db: db, cfg: cfg}, nil
}

// GetDB returns the shared handle. Repeat calls observe the same handle for
// the lifetime of the process.
func (c *Connection) GetDB() *gorm.DB {
	return c.db
}

// Health verifies the connection is usable
func (c *Connection) Health() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the handle. Only the application root calls this, on
// shutdown.
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.Close()
}
