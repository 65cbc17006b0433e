package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "store.db", BusyTimeout: 5 * time.Second},
		Catalog:  CatalogConfig{BaseURL: "https://fakestoreapi.com"},
		JWT:      JWTConfig{Secret: strings.Repeat("s", 32)},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shopstore.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, "https://fakestoreapi.com", cfg.Catalog.BaseURL)
	assert.Zero(t, cfg.Checkout.TaxRate)
	assert.Zero(t, cfg.Checkout.ShippingFlatRate)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("CHECKOUT_TAX_RATE", "0.08")
	t.Setenv("JWT_ACCESS_EXPIRE", "30m")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 0.08, cfg.Checkout.TaxRate)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingPath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = "short"
	assert.Error(t, cfg.Validate())
}

func TestValidate_TaxRateOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Checkout.TaxRate = 1.0
	assert.Error(t, cfg.Validate())

	cfg.Checkout.TaxRate = -0.1
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeShipping(t *testing.T) {
	cfg := validConfig()
	cfg.Checkout.ShippingFlatRate = -1
	assert.Error(t, cfg.Validate())
}
