package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env  string
	Port string

	// Storage
	StoreDriver string
	StorePath   string
	SeedData    bool

	// Mock login tokens
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Reports
	FirmName       string
	ReportCurrency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		StorePath:   getEnv("STORE_PATH", "wealthdesk.db"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		FirmName:       getEnv("FIRM_NAME", "DS Partners"),
		ReportCurrency: getEnv("REPORT_CURRENCY", "INR"),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	seedStr := getEnv("SEED_DATA", "true")
	seed, err := strconv.ParseBool(seedStr)
	if err != nil {
		log.Printf("Warning: invalid SEED_DATA value '%s', falling back to true\n", seedStr)
		seed = true
	}
	config.SeedData = seed

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the process configuration. Tests use it to pin secrets.
func Set(c *Config) {
	appConfig = c
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
