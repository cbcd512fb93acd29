// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CacheConfig provides settings for the summary cache.
type CacheConfig interface {
	GetRedisURL() string
	GetSummaryCacheTTL() time.Duration
}

// RulesConfig provides the configurable classification rule sets.
type RulesConfig interface {
	GetTargetPersonas() []string
	GetPriorityCountries() []string
}

// ImportConfig provides settings for the spreadsheet import client.
type ImportConfig interface {
	GetImportTimeout() time.Duration
	GetImportMaxRows() int
}

// =============================================================================
// Config Struct
// =============================================================================

// Config holds all application configuration loaded from the environment
// and the optional rules file.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RedisURL          string
	SummaryCacheTTL   time.Duration
	TargetPersonas    []string
	PriorityCountries []string
	ImportTimeout     time.Duration
	ImportMaxRows     int
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CacheConfig implementation
func (c *Config) GetRedisURL() string               { return c.RedisURL }
func (c *Config) GetSummaryCacheTTL() time.Duration { return c.SummaryCacheTTL }

// RulesConfig implementation
func (c *Config) GetTargetPersonas() []string    { return c.TargetPersonas }
func (c *Config) GetPriorityCountries() []string { return c.PriorityCountries }

// ImportConfig implementation
func (c *Config) GetImportTimeout() time.Duration { return c.ImportTimeout }
func (c *Config) GetImportMaxRows() int           { return c.ImportMaxRows }

// rulesFile is the YAML shape of the optional LEADS_RULES_PATH file.
// Entries present in the file take precedence over the environment.
type rulesFile struct {
	TargetPersonas    []string `yaml:"target_personas"`
	PriorityCountries []string `yaml:"priority_countries"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RedisURL:          getEnv("REDIS_URL", ""),
		SummaryCacheTTL:   mustDuration(getEnv("SUMMARY_CACHE_TTL", "24h")),
		TargetPersonas:    splitCSV(getEnv("TARGET_PERSONAS", "CEO,CFO,COO,Marketing,Sales")),
		PriorityCountries: upperAll(splitCSV(getEnv("PRIORITY_COUNTRIES", "FR,BE,CH"))),
		ImportTimeout:     mustDuration(getEnv("IMPORT_TIMEOUT", "30s")),
		ImportMaxRows:     10000,
	}

	if rulesPath := getEnv("LEADS_RULES_PATH", ""); rulesPath != "" {
		if err := cfg.applyRulesFile(rulesPath); err != nil {
			return nil, err
		}
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func (c *Config) applyRulesFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file %s: %w", path, err)
	}

	var rules rulesFile
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if len(rules.TargetPersonas) > 0 {
		c.TargetPersonas = trimAll(rules.TargetPersonas)
	}
	if len(rules.PriorityCountries) > 0 {
		c.PriorityCountries = upperAll(trimAll(rules.PriorityCountries))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func trimAll(values []string) []string {
	results := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func upperAll(values []string) []string {
	results := make([]string, 0, len(values))
	for _, value := range values {
		results = append(results, strings.ToUpper(value))
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
