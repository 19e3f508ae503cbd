package config

import (
	"fmt"
	"os"
)

// Backend selects which persistence variant the server runs against.
type Backend string

const (
	// BackendSupabase is the hosted Postgres variant.
	BackendSupabase Backend = "supabase"
	// BackendSQLite is the embedded single-file variant.
	BackendSQLite Backend = "sqlite"
)

const DefaultSQLitePath = "tasks.db"

type Config struct {
	Backend     Backend
	SupabaseURL string
	SupabaseKey string
	SQLitePath  string
	Port        string
	GinMode     string
	LogLevel    string
}

func Load() *Config {
	return &Config{
		Backend:     Backend(getEnv("TASK_BACKEND", string(BackendSQLite))),
		SupabaseURL: getEnv("SUPABASE_URL", ""),
		SupabaseKey: getEnv("SUPABASE_KEY", ""),
		SQLitePath:  getEnv("SQLITE_PATH", DefaultSQLitePath),
		Port:        getEnv("PORT", "8000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports fatal startup conditions. The supabase backend cannot run
// without both of its secrets.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set for the supabase backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must not be empty")
		}
	default:
		return fmt.Errorf("unknown TASK_BACKEND %q (expected %q or %q)", c.Backend, BackendSupabase, BackendSQLite)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
