package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads valid JSON", func(t *testing.T) {
		path := writeConfigFile(t, `{"gemini_api_key":"k","page_size":25,"log_level":"debug"}`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "k", cfg.GeminiAPIKey)
		assert.Equal(t, 25, cfg.PageSize)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeConfigFile(t, `{"page_size": }`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk")
	t.Setenv("ADZUNA_APP_ID", "id")
	t.Setenv("ADZUNA_API_KEY", "key")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg := FromEnv()
	assert.Equal(t, "gk", cfg.GeminiAPIKey)
	assert.Equal(t, "id", cfg.AdzunaAppID)
	assert.Equal(t, "key", cfg.AdzunaAppKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{GeminiAPIKey: "mine", PageSize: 5}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "mine", merged.GeminiAPIKey, "explicit value wins")
	assert.Equal(t, 5, merged.PageSize)
	assert.Equal(t, "in", merged.AdzunaCountry)
	assert.Equal(t, 3, merged.SeedSkills)
	assert.Equal(t, "skills", merged.SchemaVariant)
	assert.Equal(t, 8080, merged.Port)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Defaults()
		cfg.GeminiAPIKey = "gk"
		cfg.AdzunaAppID = "id"
		cfg.AdzunaAppKey = "key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"complete config", func(*Config) {}, false},
		{"missing gemini key", func(c *Config) { c.GeminiAPIKey = "" }, true},
		{"missing adzuna id", func(c *Config) { c.AdzunaAppID = "" }, true},
		{"missing adzuna key", func(c *Config) { c.AdzunaAppKey = "" }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"zero seed skills", func(c *Config) { c.SeedSkills = 0 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"unknown schema variant", func(c *Config) { c.SchemaVariant = "compact" }, true},
		{"broad variant accepted", func(c *Config) { c.SchemaVariant = "broad" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("ADZUNA_APP_ID", "env-id")
	t.Setenv("ADZUNA_API_KEY", "env-secret")

	t.Run("env over file over defaults", func(t *testing.T) {
		path := writeConfigFile(t, `{"gemini_api_key":"file-key","page_size":20}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.GeminiAPIKey, "environment overrides the file")
		assert.Equal(t, 20, cfg.PageSize, "file overrides the defaults")
		assert.Equal(t, "in", cfg.AdzunaCountry, "defaults fill the rest")
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.GeminiAPIKey)
		assert.Equal(t, 10, cfg.PageSize)
	})

	t.Run("invalid result rejected", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, err := Load("")
		assert.Error(t, err)
	})
}
