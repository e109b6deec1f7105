package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hallgrim/jobsift/internal/domain"
	"github.com/hallgrim/jobsift/internal/domain/job"
	"github.com/hallgrim/jobsift/pkg/logging"
	"github.com/hallgrim/jobsift/pkg/sheets"
)

const defaultExportTab = "Jobs"

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Query         string `json:"query" jsonschema:"Job search query whose results get exported"`
	Location      string `json:"location,omitempty" jsonschema:"Preferred location filter"`
	Remote        *bool  `json:"remote,omitempty" jsonschema:"Whether to restrict to remote postings"`
	MaxResults    int    `json:"max_results,omitempty" jsonschema:"Maximum number of rows to export"`
	SpreadsheetID string `json:"spreadsheet_id,omitempty" jsonschema:"Target spreadsheet; defaults to the configured one"`
	Tab           string `json:"tab,omitempty" jsonschema:"Sheet tab name, defaults to Jobs"`
}

// SheetsExportResult is the structured payload of the sheets_export tool
type SheetsExportResult struct {
	RowsWritten   int    `json:"rows_written"`
	SpreadsheetID string `json:"spreadsheet_id"`
	Tab           string `json:"tab"`
}

// RegisterSheetsExport installs the sheets_export tool
func RegisterSheetsExport(server *sdkmcp.Server, svc job.Service, client *sheets.Client, defaultSpreadsheetID string, log *logging.Logger) error {
	if svc == nil {
		return fmt.Errorf("tools: job service is required")
	}
	if client == nil {
		return fmt.Errorf("tools: sheets client is required")
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sheets_export",
		Description: "Run a job search and append the results as rows to a Google Sheet",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
		_ = req

		spreadsheetID := params.SpreadsheetID
		if spreadsheetID == "" {
			spreadsheetID = defaultSpreadsheetID
		}
		if spreadsheetID == "" {
			return nil, nil, fmt.Errorf("spreadsheet_id is required, none configured")
		}

		tab := params.Tab
		if tab == "" {
			tab = defaultExportTab
		}

		searchResult, err := svc.Search(ctx, params.Query, domain.JobSearchFilters{
			Location:   params.Location,
			Remote:     params.Remote,
			MaxResults: params.MaxResults,
		})
		if err != nil {
			log.Error("sheets_export search failed", "query", params.Query, "err", err)
			return nil, nil, err
		}

		rows := exportRows(searchResult.Jobs)
		if err := client.AppendValues(ctx, spreadsheetID, tab+"!A1", rows); err != nil {
			log.Error("sheets_export append failed", "spreadsheet_id", spreadsheetID, "err", err)
			return nil, nil, err
		}

		result := SheetsExportResult{
			RowsWritten:   len(rows),
			SpreadsheetID: spreadsheetID,
			Tab:           tab,
		}
		return textResult(fmt.Sprintf("Exported %d postings to %s/%s", len(rows), spreadsheetID, tab)), result, nil
	})

	return nil
}

func exportRows(jobs []domain.JobSummary) [][]any {
	rows := make([][]any, 0, len(jobs))
	for _, j := range jobs {
		var salaryMin, salaryMax any
		if j.SalaryMin != nil {
			salaryMin = *j.SalaryMin
		}
		if j.SalaryMax != nil {
			salaryMax = *j.SalaryMax
		}
		rows = append(rows, []any{
			j.Title,
			j.Company,
			j.Location,
			j.Remote,
			salaryMin,
			salaryMax,
			j.Currency,
			j.Source,
			j.URL,
		})
	}
	return rows
}
