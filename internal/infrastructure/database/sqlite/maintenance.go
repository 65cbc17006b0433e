// internal/infrastructure/database/sqlite/maintenance.go
package sqlite

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Stats holds the row counts of every table in the store
type Stats struct {
	Users          int64 `json:"users"`
	Products       int64 `json:"products"`
	CartItems      int64 `json:"cart_items"`
	Orders         int64 `json:"orders"`
	OrderItems     int64 `json:"order_items"`
	Favorites      int64 `json:"favorites"`
	PaymentMethods int64 `json:"payment_methods"`
	Payments       int64 `json:"payments"`
}

// Maintenance bundles the stats query and the full reset
type Maintenance struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewMaintenance creates a new maintenance helper
func NewMaintenance(db *gorm.DB, log *logrus.Logger) *Maintenance {
	return &Maintenance{db: db, log: log}
}

// Stats returns the row count of every table
func (m *Maintenance) Stats() (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		table string
		dest  *int64
	}{
		{"users", &stats.Users},
		{"products", &stats.Products},
		{"cart", &stats.CartItems},
		{"orders", &stats.Orders},
		{"order_items", &stats.OrderItems},
		{"favorites", &stats.Favorites},
		{"payment_methods", &stats.PaymentMethods},
		{"payments", &stats.Payments},
	}

	for _, c := range counts {
		if err := m.db.Table(c.table).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return stats, nil
}

// Reset drops every table in reverse dependency order and recreates the
// schema from scratch. Development and testing only; everything is lost.
func (m *Maintenance) Reset() error {
	tables := []string{
		"payments",
		"payment_methods",
		"order_items",
		"orders",
		"favorites",
		"cart",
		"products",
		"users",
		"schema_migrations",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}

	m.log.Warn("all tables dropped")

	if err := NewMigration(m.db, m.log).Run(); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}

	m.log.Info("database reset completed")
	return nil
}
