package config

import (
	"fmt"
	"os"
	"strings"
)

// Config contains runtime settings for the jobsift server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Reed     struct {
		// APIKey may stay empty here; the Reed client falls back to
		// REED_API_KEY on its own and fails construction when neither is set.
		APIKey    string
		BaseURL   string
		UserAgent string
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Redis struct {
		// URL is optional; without it job-detail lookups go straight to the
		// Reed API with no cache.
		URL string
	}
	Sheets struct {
		// CredentialsPath is optional; without it the sheets_export tool is
		// not registered.
		CredentialsPath string
		SpreadsheetID   string
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Reed.APIKey = os.Getenv("REED_API_KEY")
	cfg.Reed.BaseURL = os.Getenv("REED_BASE_URL")
	cfg.Reed.UserAgent = os.Getenv("REED_USER_AGENT")

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Redis.URL = os.Getenv("REDIS_URL")

	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("SHEETS_SPREADSHEET_ID")

	var missingVars []string

	if cfg.Neo4j.URI == "" {
		missingVars = append(missingVars, "NEO4J_URI")
	}

	if cfg.Neo4j.Username == "" {
		missingVars = append(missingVars, "NEO4J_USERNAME")
	}

	if cfg.Neo4j.Password == "" {
		missingVars = append(missingVars, "NEO4J_PASSWORD")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
