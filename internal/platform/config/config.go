package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	Environment        string
	BackendURL         string
	BackendTimeout     time.Duration
	BackendAddr        string
	DatabaseURL        string
	SessionSecret      string
	SessionTTL         time.Duration
	LoginUsername      string
	LoginPassword      string
	LoginPasswordHash  string
	FormIdleTTL        time.Duration
	ViewFallbackDelay  time.Duration
	MaxBodyBytes       int64
	RateLimitPerMinute int
	LogLevel           string
	MetricsEnabled     bool
}

// LoadDotEnv reads a .env file into the environment. Variables that are
// already set win; a missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":3000"),
		Environment:        getEnv("APP_ENV", "development"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:3001"),
		BackendTimeout:     getEnvDuration("BACKEND_TIMEOUT", 8*time.Second),
		BackendAddr:        getEnv("BACKEND_ADDR", ":3001"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         getEnvDuration("SESSION_TTL", 12*time.Hour),
		LoginUsername:      getEnv("LOGIN_USERNAME", "admin"),
		LoginPassword:      getEnv("LOGIN_PASSWORD", ""),
		LoginPasswordHash:  getEnv("LOGIN_PASSWORD_HASH", ""),
		FormIdleTTL:        getEnvDuration("FORM_IDLE_TTL", 30*time.Minute),
		ViewFallbackDelay:  getEnvDuration("VIEW_FALLBACK_DELAY", 250*time.Millisecond),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks the UI server settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BackendURL) == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.LoginUsername) == "" {
		return fmt.Errorf("LOGIN_USERNAME is required")
	}
	if c.LoginPassword == "" && c.LoginPasswordHash == "" {
		return fmt.Errorf("LOGIN_PASSWORD or LOGIN_PASSWORD_HASH must be set")
	}
	if c.IsProduction() {
		if len(strings.TrimSpace(c.SessionSecret)) < 32 {
			return fmt.Errorf("SESSION_SECRET must be at least 32 characters in production")
		}
		if c.LoginPasswordHash == "" {
			return fmt.Errorf("LOGIN_PASSWORD_HASH must be used instead of LOGIN_PASSWORD in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// ValidateBackend checks the EmpList backend settings.
func (c Config) ValidateBackend() error {
	if strings.TrimSpace(c.BackendAddr) == "" {
		return fmt.Errorf("BACKEND_ADDR is required")
	}
	if c.IsProduction() && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}
