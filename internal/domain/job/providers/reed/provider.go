package reed

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hallgrim/jobsift/internal/domain"
	jobdomain "github.com/hallgrim/jobsift/internal/domain/job"
	"github.com/hallgrim/jobsift/pkg/cleaner"
	"github.com/hallgrim/jobsift/pkg/reed"
)

// searchClient describes the subset of the Reed client used by the provider.
type searchClient interface {
	Search(ctx context.Context, criteria reed.SearchCriteria) ([]reed.Job, error)
}

// Provider implements job.Provider using the Reed API
type Provider struct {
	client  searchClient
	cleaner *cleaner.Cleaner
}

// NewProvider builds a Reed provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("reed provider: client is required")
	}
	return &Provider{
		client:  client,
		cleaner: cleaner.New(),
	}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "reed"
}

// Search queries Reed and returns normalized jobs
func (p *Provider) Search(ctx context.Context, query string, filters domain.JobSearchFilters) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("reed provider: client is nil")
	}

	criteria := reed.SearchCriteria{
		Keywords:      query,
		Location:      filters.Location,
		JobType:       mapJobType(filters.JobType),
		ResultsWanted: filters.MaxResults,
		Offset:        filters.Offset,
		HoursOld:      filters.HoursOld,
	}
	if filters.Remote != nil {
		criteria.Remote = *filters.Remote
	}

	postings, err := p.client.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		job := domain.Job{
			ID:    uuid.New(),
			Title: posting.Title,
			Company: domain.CompanyRef{
				ID:   slugify(posting.CompanyName),
				Name: posting.CompanyName,
			},
			Location:    flattenLocation(posting.Location),
			Remote:      posting.Remote,
			URL:         posting.URL,
			DirectURL:   posting.DirectURL,
			Source:      "reed",
			ExternalID:  posting.ID,
			Description: p.cleaner.Text(posting.Description),
			FetchedAt:   posting.FetchedAt,
		}

		if posting.PostedAt != nil {
			job.PostedAt = *posting.PostedAt
		}

		if comp := posting.Compensation; comp != nil {
			job.SalaryMin = comp.MinAmount
			job.SalaryMax = comp.MaxAmount
			job.Currency = comp.Currency
			job.SalaryInterval = string(comp.Interval)
		}

		out = append(out, job)
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)

func mapJobType(jobType string) reed.JobType {
	switch strings.ToLower(strings.TrimSpace(jobType)) {
	case "full_time", "fulltime", "full-time":
		return reed.JobTypeFullTime
	case "part_time", "parttime", "part-time":
		return reed.JobTypePartTime
	case "contract":
		return reed.JobTypeContract
	case "temporary", "temp":
		return reed.JobTypeTemporary
	default:
		return ""
	}
}

func flattenLocation(loc *reed.Location) string {
	if loc == nil {
		return ""
	}
	parts := []string{loc.City}
	if loc.Region != "" {
		parts = append(parts, loc.Region)
	}
	parts = append(parts, loc.Country)
	return strings.Join(parts, ", ")
}

func slugify(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
