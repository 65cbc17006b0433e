// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	JWT      JWTConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// DatabaseConfig contains the embedded store configuration
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// CatalogConfig contains the remote product catalog configuration
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CheckoutConfig contains the shipping-and-tax policy applied at checkout.
// The zero policy reproduces the store defaults: free shipping, no tax.
type CheckoutConfig struct {
	TaxRate               float64 // fraction of the subtotal, e.g. 0.08
	ShippingFlatRate      float64 // charged when subtotal is below the threshold
	FreeShippingThreshold float64 // subtotal at which shipping becomes free
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	BcryptCost int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shopstore"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", "shopstore.db"),
			BusyTimeout: getEnvAsDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
			Timeout: getEnvAsDuration("CATALOG_TIMEOUT", 15*time.Second),
		},
		Checkout: CheckoutConfig{
			TaxRate:               getEnvAsFloat("CHECKOUT_TAX_RATE", 0),
			ShippingFlatRate:      getEnvAsFloat("CHECKOUT_SHIPPING_FLAT_RATE", 0),
			FreeShippingThreshold: getEnvAsFloat("CHECKOUT_FREE_SHIPPING_THRESHOLD", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRE", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost: getEnvAsInt("BCRYPT_COST", 12),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.Checkout.TaxRate < 0 || c.Checkout.TaxRate >= 1 {
		return fmt.Errorf("CHECKOUT_TAX_RATE must be in [0, 1)")
	}
	if c.Checkout.ShippingFlatRate < 0 {
		return fmt.Errorf("CHECKOUT_SHIPPING_FLAT_RATE must not be negative")
	}
	if c.Checkout.FreeShippingThreshold < 0 {
		return fmt.Errorf("CHECKOUT_FREE_SHIPPING_THRESHOLD must not be negative")
	}

	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
