// Package config loads application configuration from environment variables.
// All variables use the LEARNIFY_ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Store        StoreConfig
	Database     DatabaseConfig
	Cache        CacheConfig
	Audit        AuditConfig
	Report       ReportConfig
	Log          LogConfig
	QuizBankPath string
}

// StoreConfig selects where users and courses are persisted.
type StoreConfig struct {
	Driver      string
	DataDir     string
	UsersFile   string
	CoursesFile string
	SQLiteFile  string
}

// UsersPath is the users file location for the file driver.
func (s StoreConfig) UsersPath() string { return filepath.Join(s.DataDir, s.UsersFile) }

// CoursesPath is the courses file location for the file driver.
func (s StoreConfig) CoursesPath() string { return filepath.Join(s.DataDir, s.CoursesFile) }

// SQLitePath is the database file location for the sqlite driver.
func (s StoreConfig) SQLitePath() string { return filepath.Join(s.DataDir, s.SQLiteFile) }

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings.
type CacheConfig struct {
	URL       string
	KeyPrefix string
}

// AuditConfig toggles persisting directory events to PostgreSQL.
type AuditConfig struct {
	Enabled bool
}

// ReportConfig holds progress report settings.
type ReportConfig struct {
	Lang string
	Dir  string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with LEARNIFY_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			Driver:      envStr("LEARNIFY_STORE_DRIVER", DriverFile),
			DataDir:     envStr("LEARNIFY_DATA_DIR", "."),
			UsersFile:   envStr("LEARNIFY_USERS_FILE", "users.txt"),
			CoursesFile: envStr("LEARNIFY_COURSES_FILE", "courses.txt"),
			SQLiteFile:  envStr("LEARNIFY_SQLITE_FILE", "learnify.db"),
		},
		Database: DatabaseConfig{
			URL:      envStr("LEARNIFY_DATABASE_URL", ""),
			MaxConns: envInt("LEARNIFY_DATABASE_MAX_CONNS", 5),
			MinConns: envInt("LEARNIFY_DATABASE_MIN_CONNS", 1),
		},
		Cache: CacheConfig{
			URL:       envStr("LEARNIFY_CACHE_URL", "redis://localhost:6379"),
			KeyPrefix: envStr("LEARNIFY_CACHE_KEY_PREFIX", "learnify:"),
		},
		Audit: AuditConfig{
			Enabled: envBool("LEARNIFY_AUDIT_ENABLED", false),
		},
		Report: ReportConfig{
			Lang: envStr("LEARNIFY_REPORT_LANG", "en"),
			Dir:  envStr("LEARNIFY_REPORT_DIR", "./reports"),
		},
		Log: LogConfig{
			Level:  envStr("LEARNIFY_LOG_LEVEL", "info"),
			Format: envStr("LEARNIFY_LOG_FORMAT", "json"),
		},
		QuizBankPath: envStr("LEARNIFY_QUIZBANK_PATH", ""),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile:
		if c.Store.UsersFile == "" || c.Store.CoursesFile == "" {
			return fmt.Errorf("LEARNIFY_USERS_FILE and LEARNIFY_COURSES_FILE must not be empty")
		}
		if c.Store.UsersPath() == c.Store.CoursesPath() {
			return fmt.Errorf("users and courses must be stored in different files")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("LEARNIFY_DATABASE_URL is required for the postgres store")
		}
	case DriverRedis:
		if c.Cache.URL == "" {
			return fmt.Errorf("LEARNIFY_CACHE_URL is required for the redis store")
		}
	case DriverSQLite:
		if c.Store.SQLiteFile == "" {
			return fmt.Errorf("LEARNIFY_SQLITE_FILE must not be empty")
		}
	default:
		return fmt.Errorf("LEARNIFY_STORE_DRIVER must be 'file', 'postgres', 'redis' or 'sqlite', got %q", c.Store.Driver)
	}

	if c.Audit.Enabled && c.Database.URL == "" {
		return fmt.Errorf("LEARNIFY_DATABASE_URL is required when LEARNIFY_AUDIT_ENABLED is set")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("LEARNIFY_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}

// NeedsDatabase reports whether any component needs a PostgreSQL pool.
func (c *Config) NeedsDatabase() bool {
	return c.Store.Driver == DriverPostgres || c.Audit.Enabled
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
