package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"freight/internal/core/domain/model/kernel"
)

const (
	defaultHTTPPort              = "8080"
	defaultDBSslMode             = "disable"
	defaultCurrency              = "USD"
	defaultQuotationValidityDays = 30
	defaultExpirySchedule        = "@hourly"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	DefaultCurrency         kernel.Currency
	QuotationValidityDays   int
	QuotationExpirySchedule string
	LogLevel                slog.Level
}

// ConfigFromEnv reads the configuration through getenv, e.g. os.Getenv after the
// .env file has been loaded. Unset values take their defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	currency, err := kernel.NewCurrency(get("DEFAULT_CURRENCY", defaultCurrency))
	if err != nil {
		return Config{}, fmt.Errorf("DEFAULT_CURRENCY: %w", err)
	}

	validityDays := defaultQuotationValidityDays
	if raw := get("QUOTATION_VALIDITY_DAYS", ""); raw != "" {
		validityDays, err = strconv.Atoi(raw)
		if err != nil || validityDays <= 0 {
			return Config{}, fmt.Errorf("QUOTATION_VALIDITY_DAYS: %q is not a positive number of days", raw)
		}
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		HTTPPort:                get("HTTP_PORT", defaultHTTPPort),
		DBHost:                  get("DB_HOST", ""),
		DBPort:                  get("DB_PORT", ""),
		DBUser:                  get("DB_USER", ""),
		DBPassword:              get("DB_PASSWORD", ""),
		DBName:                  get("DB_NAME", ""),
		DBSslMode:               get("DB_SSLMODE", defaultDBSslMode),
		DefaultCurrency:         currency,
		QuotationValidityDays:   validityDays,
		QuotationExpirySchedule: get("QUOTATION_EXPIRY_SCHEDULE", defaultExpirySchedule),
		LogLevel:                level,
	}, nil
}

// DSN is the connection string of the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
