package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if !cfg.CORSAllowAll {
		t.Fatal("wildcard origin must enable allow-all")
	}
	if len(cfg.TargetPersonas) != 5 || cfg.TargetPersonas[0] != "CEO" {
		t.Fatalf("target personas = %v", cfg.TargetPersonas)
	}
	if len(cfg.PriorityCountries) != 3 || cfg.PriorityCountries[0] != "FR" {
		t.Fatalf("priority countries = %v", cfg.PriorityCountries)
	}
	if cfg.ImportMaxRows != 10000 {
		t.Fatalf("import max rows = %d", cfg.ImportMaxRows)
	}
}

func TestLoadPriorityCountriesUppercased(t *testing.T) {
	t.Setenv("PRIORITY_COUNTRIES", "fr, be")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.PriorityCountries) != 2 || cfg.PriorityCountries[0] != "FR" || cfg.PriorityCountries[1] != "BE" {
		t.Fatalf("priority countries = %v", cfg.PriorityCountries)
	}
}

func TestLoadRulesFileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	raw := []byte("target_personas:\n  - CTO\n  - Data\npriority_countries:\n  - de\n  - it\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	t.Setenv("TARGET_PERSONAS", "CEO")
	t.Setenv("LEADS_RULES_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.TargetPersonas) != 2 || cfg.TargetPersonas[0] != "CTO" {
		t.Fatalf("target personas = %v", cfg.TargetPersonas)
	}
	if len(cfg.PriorityCountries) != 2 || cfg.PriorityCountries[0] != "DE" {
		t.Fatalf("priority countries = %v", cfg.PriorityCountries)
	}
}

func TestLoadRejectsCredentialsWithWildcard(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadMissingRulesFile(t *testing.T) {
	t.Setenv("LEADS_RULES_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
