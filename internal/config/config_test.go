package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TASK_BACKEND", "SUPABASE_URL", "SUPABASE_KEY", "SQLITE_PATH", "PORT", "GIN_MODE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SupabaseURL)
	assert.Empty(t, cfg.SupabaseKey)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASK_BACKEND", "supabase")
	t.Setenv("SUPABASE_URL", "db.example.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("PORT", "9000")

	cfg := Load()

	assert.Equal(t, BackendSupabase, cfg.Backend)
	assert.Equal(t, "db.example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "9000", cfg.Port)
	require.NoError(t, cfg.Validate())
}

func TestValidate_SupabaseSecretsRequired(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{"both missing", "", ""},
		{"key missing", "db.example.supabase.co", ""},
		{"url missing", "", "service-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Backend: BackendSupabase, SupabaseURL: tt.url, SupabaseKey: tt.key}
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "SUPABASE_URL and SUPABASE_KEY")
		})
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "dynamo"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown TASK_BACKEND")
}

func TestValidate_SQLitePathRequired(t *testing.T) {
	cfg := &Config{Backend: BackendSQLite}
	assert.Error(t, cfg.Validate())
}
