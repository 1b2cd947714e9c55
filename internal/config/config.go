// Package config reads the configuration of the server from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Data sources the views can be served from.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

type Config struct {
	// Public URL of this API
	APIURL string

	// Finance backend
	FinanceAPIURL     string
	FinanceAPITimeout time.Duration

	// Where the views are computed from
	DataSource string

	// Offline mirror
	DatabasePath string
	SyncSchedule string

	// Reference data. The embedded set is used when empty
	CategoriesFile string

	TravelPatterns []string
}

// Load reads the .env file in the working directory if there is one and
// returns the configuration from the environment. Variables that are
// already set are not overridden by the .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not read .env file")
	}

	return &Config{
		APIURL:            os.Getenv("API_URL"),
		FinanceAPIURL:     getEnv("FINANCE_API_URL", "http://localhost:8000"),
		FinanceAPITimeout: getEnvDuration("FINANCE_API_TIMEOUT", 10*time.Second),
		DataSource:        getEnv("DATA_SOURCE", SourceRemote),
		DatabasePath:      getEnv("DATABASE_PATH", "data/finboard.db"),
		SyncSchedule:      os.Getenv("SYNC_SCHEDULE"),
		CategoriesFile:    os.Getenv("CATEGORIES_FILE"),
		TravelPatterns:    strings.Fields(getEnv("TRAVEL_PATTERNS", "*trip* *travel*")),
	}
}

// Validate returns an error listing all problems of the configuration.
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if u, err := url.Parse(c.FinanceAPIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errors = append(errors, fmt.Sprintf("invalid FINANCE_API_URL '%s': must be an http or https URL", c.FinanceAPIURL))
	}

	if c.FinanceAPITimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid FINANCE_API_TIMEOUT %v: must be positive", c.FinanceAPITimeout))
	}

	switch c.DataSource {
	case SourceRemote:
		if c.SyncSchedule != "" {
			errors = append(errors, "SYNC_SCHEDULE is only supported with the local data source")
		}
	case SourceLocal:
		if c.DatabasePath == "" {
			errors = append(errors, "DATABASE_PATH cannot be empty when using the local data source")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid DATA_SOURCE '%s': must be one of [%s %s]", c.DataSource, SourceRemote, SourceLocal))
	}

	if c.SyncSchedule != "" {
		if _, err := cron.ParseStandard(c.SyncSchedule); err != nil {
			errors = append(errors, fmt.Sprintf("invalid SYNC_SCHEDULE '%s': %v", c.SyncSchedule, err))
		}
	}

	if c.CategoriesFile != "" {
		if _, err := os.Stat(c.CategoriesFile); err != nil {
			errors = append(errors, fmt.Sprintf("CATEGORIES_FILE cannot be read: %v", err))
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

// getEnvDuration parses the variable with time.ParseDuration. Unparseable
// values are reported by Validate as the zero duration.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
