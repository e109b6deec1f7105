package tools

import (
	"testing"

	"github.com/hallgrim/jobsift/internal/domain"
)

func TestExportRows(t *testing.T) {
	minSalary := 30000.0
	rows := exportRows([]domain.JobSummary{
		{
			Title:     "Go Engineer",
			Company:   "Acme",
			Location:  "Leeds, West Yorkshire, UK",
			Remote:    true,
			SalaryMin: &minSalary,
			Currency:  "GBP",
			Source:    "reed",
			URL:       "https://www.reed.co.uk/jobs/1",
		},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "Go Engineer" || row[1] != "Acme" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[4] != 30000.0 {
		t.Fatalf("expected salary min in column 5, got %v", row[4])
	}
	if row[5] != nil {
		t.Fatalf("missing salary max should export as an empty cell, got %v", row[5])
	}
}
