package config

import (
	"fmt"
	"os"

	"invoicer/internal/logger"
	"invoicer/pkg/models"
)

// Config is the application configuration, read from the environment
// (godotenv loads a .env file in main before this runs).
type Config struct {
	// DataPath is the sqlite database file.
	DataPath string

	// Company identity printed on every invoice.
	CompanyName    string
	CompanyABN     string
	CompanyAddress string
	CompanyPhone   string

	// DefaultCurrency is the currency new invoices use unless asked
	// otherwise.
	DefaultCurrency string

	// DefaultTaxRate is the tax percentage new invoices use, as decimal
	// text (e.g. "10").
	DefaultTaxRate string

	// Logging configuration.
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	cfg := &Config{
		DataPath:        getEnv("DATA_PATH", "invoices.db"),
		CompanyName:     getEnv("COMPANY_NAME", ""),
		CompanyABN:      getEnv("COMPANY_ABN", ""),
		CompanyAddress:  getEnv("COMPANY_ADDRESS", ""),
		CompanyPhone:    getEnv("COMPANY_PHONE", ""),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "AUD"),
		DefaultTaxRate:  getEnv("DEFAULT_TAX_RATE", "0"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:   getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:       getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("DATA_PATH must not be empty")
	}
	if c.DefaultCurrency == "" {
		return fmt.Errorf("DEFAULT_CURRENCY must not be empty")
	}
	return nil
}

// Company returns the configured issuing-business identity.
func (c *Config) Company() models.Company {
	return models.Company{
		Name:    c.CompanyName,
		ABN:     c.CompanyABN,
		Address: c.CompanyAddress,
		Phone:   c.CompanyPhone,
	}
}

// GetLoggerConfig returns the logging part of the configuration.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
