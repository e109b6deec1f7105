package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hallgrim/jobsift/pkg/logging"
	"github.com/hallgrim/jobsift/pkg/reed"
)

// DetailsClient fetches a single posting's full record. Satisfied by the raw
// Reed client and by the Redis cache decorator.
type DetailsClient interface {
	JobDetails(ctx context.Context, jobID string) (*reed.JobDetail, error)
}

// JobDetailsParams defines the arguments for the job_details tool
type JobDetailsParams struct {
	JobID string `json:"job_id" jsonschema:"Reed posting id as returned by job_search"`
}

// RegisterJobDetails installs the job_details tool
func RegisterJobDetails(server *sdkmcp.Server, details DetailsClient, log *logging.Logger) error {
	if details == nil {
		return fmt.Errorf("tools: details client is required")
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "job_details",
		Description: "Fetch the full posting record (description, dates, contract type) for one job",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
		_ = req

		if params.JobID == "" {
			return nil, nil, fmt.Errorf("job_id is required")
		}

		detail, err := details.JobDetails(ctx, params.JobID)
		if err != nil {
			log.Error("job_details failed", "job_id", params.JobID, "err", err)
			return nil, nil, err
		}

		msg := fmt.Sprintf("%s at %s (%s)", detail.JobTitle, detail.EmployerName, detail.LocationName)
		return textResult(msg), detail, nil
	})

	return nil
}
