package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hallgrim/jobsift/internal/domain"
	"github.com/hallgrim/jobsift/internal/domain/job"
	"github.com/hallgrim/jobsift/pkg/logging"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query      string `json:"query" jsonschema:"Natural language job search query"`
	Location   string `json:"location,omitempty" jsonschema:"Preferred location filter"`
	Remote     *bool  `json:"remote,omitempty" jsonschema:"Whether to restrict to remote postings"`
	JobType    string `json:"job_type,omitempty" jsonschema:"Employment type: full_time, part_time, contract or temporary"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of postings to return"`
	Offset     int    `json:"offset,omitempty" jsonschema:"Number of postings to skip in the source result set"`
	HoursOld   int    `json:"hours_old,omitempty" jsonschema:"Best-effort maximum posting age in hours"`
}

// JobSearchResult is the structured payload of the job_search tool
type JobSearchResult struct {
	Jobs []domain.JobSummary `json:"jobs"`
	Meta struct {
		FetchedAt   string `json:"fetched_at"`
		SourceCount int    `json:"source_count"`
	} `json:"meta"`
}

// RegisterJobSearch installs the job_search tool
func RegisterJobSearch(server *sdkmcp.Server, svc job.Service, log *logging.Logger) error {
	if svc == nil {
		return fmt.Errorf("tools: job service is required")
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "job_search",
		Description: "Search job boards, normalize and store the postings, and return summaries",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
		_ = req

		filters := domain.JobSearchFilters{
			Location:   params.Location,
			Remote:     params.Remote,
			JobType:    params.JobType,
			MaxResults: params.MaxResults,
			Offset:     params.Offset,
			HoursOld:   params.HoursOld,
		}

		searchResult, err := svc.Search(ctx, params.Query, filters)
		if err != nil {
			log.Error("job_search failed", "query", params.Query, "err", err)
			return nil, nil, err
		}

		result := JobSearchResult{Jobs: searchResult.Jobs}
		result.Meta.FetchedAt = searchResult.FetchedAt.UTC().Format(time.RFC3339)
		result.Meta.SourceCount = searchResult.SourceCount

		msg := fmt.Sprintf("Found %d postings for %q from %d source(s)", len(result.Jobs), params.Query, result.Meta.SourceCount)
		return textResult(msg), result, nil
	})

	return nil
}
