// Package config provides configuration loading and validation for the
// resume matcher.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents application configuration. Values can be loaded from a
// JSON file, overridden by environment variables, and finally filled from
// defaults.
type Config struct {
	// Credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	AdzunaAppID  string `json:"adzuna_app_id,omitempty"`  // Adzuna application ID
	AdzunaAppKey string `json:"adzuna_app_key,omitempty"` // Adzuna application key

	// Job search
	AdzunaCountry string `json:"adzuna_country,omitempty"` // Adzuna country code, e.g. "in"
	PageSize      int    `json:"page_size,omitempty"`      // Listings per page
	SeedSkills    int    `json:"seed_skills,omitempty"`    // Extracted skills that seed the selection

	// Extraction
	Model         string `json:"model,omitempty"`          // Gemini model name
	SchemaVariant string `json:"schema_variant,omitempty"` // "skills" or "broad"

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // "json" or "pretty"
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		AdzunaCountry: "in",
		PageSize:      10,
		SeedSkills:    3,
		Model:         "gemini-2.5-flash",
		SchemaVariant: "skills",
		Port:          8080,
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave the corresponding field at its zero value.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		AdzunaAppID:   os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:  os.Getenv("ADZUNA_API_KEY"),
		AdzunaCountry: os.Getenv("ADZUNA_COUNTRY"),
		Model:         os.Getenv("GEMINI_MODEL"),
		SchemaVariant: os.Getenv("SCHEMA_VARIANT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Non-empty values in the receiver win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAppKey == "" {
		result.AdzunaAppKey = defaults.AdzunaAppKey
	}
	if result.AdzunaCountry == "" {
		result.AdzunaCountry = defaults.AdzunaCountry
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.SchemaVariant == "" {
		result.SchemaVariant = defaults.SchemaVariant
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}
	if result.SeedSkills == 0 {
		result.SeedSkills = defaults.SeedSkills
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: 'gemini_api_key' is required (set GEMINI_API_KEY)")
	}
	if c.AdzunaAppID == "" {
		return fmt.Errorf("config error: 'adzuna_app_id' is required (set ADZUNA_APP_ID)")
	}
	if c.AdzunaAppKey == "" {
		return fmt.Errorf("config error: 'adzuna_app_key' is required (set ADZUNA_API_KEY)")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("config error: 'page_size' must be at least 1")
	}
	if c.SeedSkills < 1 {
		return fmt.Errorf("config error: 'seed_skills' must be at least 1")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.SchemaVariant != "skills" && c.SchemaVariant != "broad" {
		return fmt.Errorf("config error: 'schema_variant' must be \"skills\" or \"broad\"")
	}
	return nil
}

// Load assembles the effective configuration: optional JSON file, overlaid
// with environment variables, filled from defaults, then validated.
func Load(path string) (*Config, error) {
	base := Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		base = *loaded
	}

	env := FromEnv()
	merged := env.MergeWithDefaults(base)
	merged = merged.MergeWithDefaults(Defaults())

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
