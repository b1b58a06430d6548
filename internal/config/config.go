// Package config reads the configuration of the backend from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shelterfund/backend/pkg/funding"
)

type Config struct {
	// HTTP Server
	APIURL           *url.URL
	Port             string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins string
	EnablePprof      bool

	// Database
	DBPath string

	// Funding
	Currency                  string
	Scale                     int32
	LockTimeout               time.Duration
	RedisURL                  string
	ExternalFundingSources    []string
	ReceiptRequiredCategories []string

	rawAPIURL string
	rawPort   string
}

// Load reads a .env file if there is one and builds the configuration
// from the environment. Call Validate before using the result.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		rawAPIURL:                 os.Getenv("API_URL"),
		rawPort:                   getEnv("PORT", "8080"),
		GinMode:                   getEnv("GIN_MODE", "release"),
		LogFormat:                 os.Getenv("LOG_FORMAT"),
		CORSAllowOrigins:          os.Getenv("CORS_ALLOW_ORIGINS"),
		EnablePprof:               os.Getenv("ENABLE_PPROF") == "true",
		DBPath:                    getEnv("DB_PATH", "data/shelterfund.db"),
		Currency:                  getEnv("CURRENCY", funding.DefaultCurrency),
		LockTimeout:               getEnvDuration("LOCK_TIMEOUT", funding.DefaultLockTimeout),
		RedisURL:                  os.Getenv("REDIS_URL"),
		ExternalFundingSources:    getEnvList("EXTERNAL_FUNDING_SOURCES"),
		ReceiptRequiredCategories: getEnvList("RECEIPT_REQUIRED_CATEGORIES"),
	}
}

// Validate checks the configuration and fills in the derived values.
// All problems are reported at once.
func (c *Config) Validate() error {
	var errors []string

	if c.rawAPIURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else if u, err := url.Parse(c.rawAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.rawAPIURL))
	} else {
		c.APIURL = u
	}

	if port, err := strconv.Atoi(c.rawPort); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.rawPort))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	} else {
		c.Port = c.rawPort
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	if scale, err := funding.Scale(c.Currency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid CURRENCY '%s': %v", c.Currency, err))
	} else {
		c.Scale = scale
	}

	if c.LockTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid LOCK_TIMEOUT %v: must be positive", c.LockTimeout))
	}

	if c.RedisURL != "" {
		if u, err := url.Parse(c.RedisURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid REDIS_URL '%s': %v", c.RedisURL, err))
		} else if u.Scheme != "redis" && u.Scheme != "rediss" {
			errors = append(errors, fmt.Sprintf("invalid REDIS_URL scheme '%s': must be 'redis' or 'rediss'", u.Scheme))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration returns 0 for values that cannot be parsed so that
// Validate reports them.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0
		}
		return d
	}
	return defaultValue
}

// getEnvList splits a comma separated list. Empty entries are dropped.
func getEnvList(key string) []string {
	var list []string
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}
