package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port    int
	GinMode string

	LogLevel string

	DBEnabled  bool
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	EditTokenSecret  string
	EditTokenTTL     time.Duration
	SessionIdleTTL   time.Duration
	SessionSweepSpec string
	GeoCacheTTL      time.Duration

	CORSOrigins []string
}

// Load reads .env when present and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 9000),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		DBEnabled:        getEnvAsBool("DB_ENABLED", false),
		DBHost:           getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           getEnvWithDefault("DB_PORT", "5432"),
		DBUser:           getEnvWithDefault("DB_USER", "postgres"),
		DBPassword:       getEnvWithDefault("DB_PASSWORD", ""),
		DBName:           getEnvWithDefault("DB_NAME", "valuation"),
		DBSSLMode:        getEnvWithDefault("DB_SSLMODE", "disable"),
		EditTokenSecret:  getEnvWithDefault("EDIT_TOKEN_SECRET", "change-me"),
		EditTokenTTL:     getEnvAsDuration("EDIT_TOKEN_TTL", 12*time.Hour),
		SessionIdleTTL:   getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
		SessionSweepSpec: getEnvWithDefault("SESSION_SWEEP_SPEC", "*/15 * * * *"),
		GeoCacheTTL:      getEnvAsDuration("GEO_CACHE_TTL", 24*time.Hour),
		CORSOrigins:      getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// DSN is the lib/pq and gorm postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Asia/Kolkata",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvWithDefault(key, defaultValue string) string {
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
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
