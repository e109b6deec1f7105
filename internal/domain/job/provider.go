package job

import (
	"context"

	"github.com/hallgrim/jobsift/internal/domain"
)

// Provider represents an external job data source (Reed, future boards, mock API, etc.)
type Provider interface {
	// e.g. "reed"
	Name() string

	// Search returns normalized jobs for a query
	Search(ctx context.Context, query string, filters domain.JobSearchFilters) ([]domain.Job, error)
}
