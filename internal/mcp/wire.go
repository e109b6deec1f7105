//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/hallgrim/jobsift/internal/config"
	"github.com/hallgrim/jobsift/internal/domain/job"
	reedProvider "github.com/hallgrim/jobsift/internal/domain/job/providers/reed"
	storage "github.com/hallgrim/jobsift/internal/storage/neo4j"
	"github.com/hallgrim/jobsift/pkg/logging"
	n4j "github.com/hallgrim/jobsift/pkg/neo4j"
	"github.com/hallgrim/jobsift/pkg/reed"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(cfg config.Config, log *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jConfig,
		n4j.NewClient,

		// Infrastructure - Reed
		provideReedConfig,
		reed.NewClient,

		// Repositories
		storage.NewJobRepository,
		wire.Bind(new(job.Repository), new(*storage.JobRepository)),

		// Providers
		provideReedProvider,
		provideJobProviders,

		// Services
		job.NewServiceWithDeps,

		// Tool resources
		provideDetailsClient,
		provideSheetsClient,
		newResources,
	)

	return &Resources{}, nil
}

// provideReedProvider creates a Reed job provider from the client
func provideReedProvider(client *reed.Client) (*reedProvider.Provider, error) {
	return reedProvider.NewProvider(client)
}
