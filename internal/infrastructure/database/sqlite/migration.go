// internal/infrastructure/database/sqlite/migration.go
package sqlite

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopstore/internal/domain/cart"
	"github.com/your-org/shopstore/internal/domain/favorites"
	"github.com/your-org/shopstore/internal/domain/order"
	"github.com/your-org/shopstore/internal/domain/payment"
	"github.com/your-org/shopstore/internal/domain/product"
	"github.com/your-org/shopstore/internal/domain/user"
	"gorm.io/gorm"
)

// SchemaMigration records one applied migration step
type SchemaMigration struct {
	Version   string    `gorm:"primaryKey;size:50"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// migrationStep is one versioned, additive schema change
type migrationStep struct {
	version string
	up      func(db *gorm.DB) error
}

// Migration handles schema initialization. Steps are additive only: existing
// tables are never altered, and re-running is safe.
type Migration struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMigration creates a new migration runner
func NewMigration(db *gorm.DB, log *logrus.Logger) *Migration {
	return &Migration{db: db, log: log}
}

// steps lists every schema version in order. New versions are appended,
// never inserted or edited.
func (m *Migration) steps() []migrationStep {
	return []migrationStep{
		{version: "001_create_core_tables", up: createCoreTables},
		{version: "002_create_indexes", up: createIndexes},
	}
}

// Run applies every pending step, recording each in schema_migrations.
// Must complete before any repository call; a failure here is fatal to
// process startup.
func (m *Migration) Run() error {
	if err := m.db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	for _, step := range m.steps() {
		var applied int64
		err := m.db.Model(&SchemaMigration{}).
			Where("version = ?", step.version).
			Count(&applied).Error
		if err != nil {
			return fmt.Errorf("failed to read schema_migrations: %w", err)
		}
		if applied > 0 {
			continue
		}

		m.log.WithField("version", step.version).Info("applying migration")

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := step.up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   step.version,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", step.version, err)
		}
	}

	m.log.Info("database schema up to date")
	return nil
}

// createCoreTables declares every table in dependency order
func createCoreTables(db *gorm.DB) error {
	models := []interface{}{
		&user.User{},
		&product.Product{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
		&favorites.Favorite{},
		&payment.PaymentMethod{},
		&payment.Payment{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}
	return nil
}

// createIndexes creates the per-user and per-order lookup indexes, plus the
// partial unique index that makes a second default card per user impossible
// at the engine level.
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_cart_user ON cart(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_payment_methods_user ON payment_methods(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_user ON payments(user_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_methods_user_default ON payment_methods(user_id) WHERE is_default = 1",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
