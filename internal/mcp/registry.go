package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hallgrim/jobsift/internal/domain/job"
	"github.com/hallgrim/jobsift/internal/mcp/tools"
	"github.com/hallgrim/jobsift/pkg/logging"
	n4j "github.com/hallgrim/jobsift/pkg/neo4j"
	"github.com/hallgrim/jobsift/pkg/sheets"
)

// Resources holds everything the tools need. SheetsClient may be nil when no
// Sheets credentials are configured; the export tool is skipped then.
type Resources struct {
	JobService    job.Service
	Details       tools.DetailsClient
	SheetsClient  *sheets.Client
	SpreadsheetID string
	Neo4jClient   *n4j.Client
}

// RegisterAll installs every tool the resources can back.
func RegisterAll(server *sdkmcp.Server, res *Resources, log *logging.Logger) error {
	if err := tools.RegisterJobSearch(server, res.JobService, log); err != nil {
		return err
	}

	if err := tools.RegisterJobDetails(server, res.Details, log); err != nil {
		return err
	}

	if res.SheetsClient == nil {
		log.Info("sheets export tool disabled: no credentials configured")
		return nil
	}

	return tools.RegisterSheetsExport(server, res.JobService, res.SheetsClient, res.SpreadsheetID, log)
}
