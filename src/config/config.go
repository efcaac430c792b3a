package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the reporting pipeline.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	LogLevel string

	// Input table paths
	AffiliateRatesPath string
	CurrencyRatesPath  string
	OrdersPath         string

	// Output settings
	ReportOutputDir string

	// When true, an order date with no matching currency rate aborts the run
	// instead of leaving the amount unconverted with a warning.
	StrictRateLookup bool
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// All input and output locations are explicit here; nothing is read from an
// implicit working directory.
func LoadConfig() {
	// 1. Try loading from the current directory (standard behavior)
	errEnv := godotenv.Load()

	// 2. If not found, try loading from the parent directory (common when running from /backend)
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables (expected in production).")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		// Core
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Input tables
		AffiliateRatesPath: getEnv("AFFILIATE_RATES_PATH", "test-affiliate-rates.xlsx"),
		CurrencyRatesPath:  getEnv("CURRENCY_RATES_PATH", "test-currency-rates.xlsx"),
		OrdersPath:         getEnv("ORDERS_PATH", "test-orders.xlsx"),

		// Output
		ReportOutputDir: getEnv("REPORT_OUTPUT_DIR", "."),

		// Behavior
		StrictRateLookup: getEnvAsBool("STRICT_RATE_LOOKUP", false),
	}

	log.Printf("Configuration loaded: LogLevel=%s, OutputDir=%s, StrictRateLookup=%t",
		Cfg.LogLevel, Cfg.ReportOutputDir, Cfg.StrictRateLookup)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

// getRequiredEnv retrieves an environment variable or terminates the application if not set.
func getRequiredEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		log.Fatalf("FATAL: Required environment variable %s is not set or is empty.", key)
	}
	return value
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a fallback.
func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid boolean value for %s ('%s'), using default: %t", key, valueStr, fallback)
	return fallback
}
