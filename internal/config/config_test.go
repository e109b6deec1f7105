package config

import (
	"strings"
	"testing"
)

func setRequiredVars(t *testing.T) {
	t.Helper()
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("NEO4J_PASSWORD", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for missing NEO4J_PASSWORD")
	}
	if !strings.Contains(err.Error(), "NEO4J_PASSWORD") {
		t.Fatalf("error should name the missing variable: %v", err)
	}
}

func TestLoadOptionalSections(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("REED_API_KEY", "6f1acb61-95b4-4bd9-a2c0-ff84e29f2e7d")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Reed.APIKey == "" || cfg.Redis.URL == "" {
		t.Fatalf("optional sections not populated: %+v", cfg)
	}
}
