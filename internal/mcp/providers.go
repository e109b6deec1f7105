package mcp

import (
	"context"

	"github.com/hallgrim/jobsift/internal/config"
	"github.com/hallgrim/jobsift/internal/domain/job"
	reedProvider "github.com/hallgrim/jobsift/internal/domain/job/providers/reed"
	"github.com/hallgrim/jobsift/internal/mcp/tools"
	redisstore "github.com/hallgrim/jobsift/internal/storage/redis"
	"github.com/hallgrim/jobsift/pkg/logging"
	n4j "github.com/hallgrim/jobsift/pkg/neo4j"
	"github.com/hallgrim/jobsift/pkg/reed"
	"github.com/hallgrim/jobsift/pkg/sheets"
)

// provideNeo4jConfig extracts Neo4j config from main config
func provideNeo4jConfig(cfg config.Config) n4j.Config {
	return n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
}

// provideReedConfig extracts Reed client config from main config
func provideReedConfig(cfg config.Config, log *logging.Logger) reed.Config {
	return reed.Config{
		APIKey:    cfg.Reed.APIKey,
		BaseURL:   cfg.Reed.BaseURL,
		UserAgent: cfg.Reed.UserAgent,
		Logger:    log.Named("reed"),
	}
}

// provideJobProviders creates the slice of job providers
func provideJobProviders(reedProvider *reedProvider.Provider) []job.Provider {
	return []job.Provider{reedProvider}
}

// provideDetailsClient wraps the Reed detail lookup in the Redis cache when
// one is configured, otherwise lookups hit the API directly.
func provideDetailsClient(cfg config.Config, client *reed.Client, log *logging.Logger) (tools.DetailsClient, error) {
	if cfg.Redis.URL == "" {
		log.Info("job detail cache disabled: no REDIS_URL configured")
		return client, nil
	}

	redisClient, err := redisstore.NewClient(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	return redisstore.NewDetailsCache(redisClient, client, 0, log.Named("details-cache"))
}

// provideSheetsClient builds the Sheets client, or nil when no credentials
// are configured (the export tool is skipped then).
func provideSheetsClient(cfg config.Config) (*sheets.Client, error) {
	if cfg.Sheets.CredentialsPath == "" {
		return nil, nil
	}
	return sheets.NewClient(context.Background(), sheets.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
}

// newResources creates the Resources struct
func newResources(
	cfg config.Config,
	jobService job.Service,
	details tools.DetailsClient,
	sheetsClient *sheets.Client,
	neo4jClient *n4j.Client,
) *Resources {
	return &Resources{
		JobService:    jobService,
		Details:       details,
		SheetsClient:  sheetsClient,
		SpreadsheetID: cfg.Sheets.SpreadsheetID,
		Neo4jClient:   neo4jClient,
	}
}
