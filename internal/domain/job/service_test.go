package job

import (
	"context"
	"testing"
	"time"

	"github.com/hallgrim/jobsift/internal/domain"
)

type fakeProvider struct {
	name string
	jobs []domain.Job
	err  error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Search(_ context.Context, _ string, _ domain.JobSearchFilters) ([]domain.Job, error) {
	return p.jobs, p.err
}

type fakeRepo struct {
	upserted []domain.Job
}

func (r *fakeRepo) UpsertJobs(_ context.Context, jobs []domain.Job) error {
	r.upserted = append(r.upserted, jobs...)
	return nil
}

func (r *fakeRepo) FindByIDs(_ context.Context, _ []domain.JobID) ([]domain.Job, error) {
	return nil, nil
}

func newTestService(t *testing.T, repo Repository, providers ...Provider) Service {
	t.Helper()
	svc, err := NewService(WithRepository(repo), WithProviders(providers...))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, &fakeProvider{name: "reed"})

	if _, err := svc.Search(context.Background(), "", domain.JobSearchFilters{}); err == nil {
		t.Fatal("expected an error for an empty query")
	}
}

func TestSearchDedupsOnSourceAndExternalID(t *testing.T) {
	repo := &fakeRepo{}
	provider := &fakeProvider{
		name: "reed",
		jobs: []domain.Job{
			{Title: "Engineer", Source: "reed", ExternalID: "1"},
			{Title: "Engineer (repost)", Source: "reed", ExternalID: "1"},
			{Title: "Analyst", Source: "reed", ExternalID: "2"},
			{Title: "No external id", Source: "reed"},
		},
	}
	svc := newTestService(t, repo, provider)

	result, err := svc.Search(context.Background(), "engineer", domain.JobSearchFilters{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Jobs) != 2 {
		t.Fatalf("expected 2 deduplicated jobs, got %d", len(result.Jobs))
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("expected 2 jobs persisted, got %d", len(repo.upserted))
	}
	if result.SourceCount != 1 {
		t.Fatalf("expected 1 contributing source, got %d", result.SourceCount)
	}
}

func TestSearchRecencyCutoffKeepsUndated(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	provider := &fakeProvider{
		name: "reed",
		jobs: []domain.Job{
			{Title: "Fresh", Source: "reed", ExternalID: "1", PostedAt: now.Add(-2 * time.Hour)},
			{Title: "Stale", Source: "reed", ExternalID: "2", PostedAt: now.Add(-80 * time.Hour)},
			{Title: "Undated", Source: "reed", ExternalID: "3"},
		},
	}
	svc, err := NewService(
		WithRepository(repo),
		WithProviders(provider),
		WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.Search(context.Background(), "engineer", domain.JobSearchFilters{HoursOld: 24})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Jobs) != 2 {
		t.Fatalf("expected fresh + undated jobs, got %d", len(result.Jobs))
	}
	for _, j := range result.Jobs {
		if j.Title == "Stale" {
			t.Fatal("stale job should have been filtered out")
		}
	}
}

func TestSearchMaxResults(t *testing.T) {
	repo := &fakeRepo{}
	provider := &fakeProvider{
		name: "reed",
		jobs: []domain.Job{
			{Title: "A", Source: "reed", ExternalID: "1"},
			{Title: "B", Source: "reed", ExternalID: "2"},
			{Title: "C", Source: "reed", ExternalID: "3"},
		},
	}
	svc := newTestService(t, repo, provider)

	result, err := svc.Search(context.Background(), "engineer", domain.JobSearchFilters{MaxResults: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(result.Jobs))
	}
}

func TestSearchFailingProviderDoesNotAbort(t *testing.T) {
	repo := &fakeRepo{}
	broken := &fakeProvider{name: "broken", err: context.DeadlineExceeded}
	working := &fakeProvider{
		name: "reed",
		jobs: []domain.Job{{Title: "A", Source: "reed", ExternalID: "1"}},
	}
	svc := newTestService(t, repo, broken, working)

	result, err := svc.Search(context.Background(), "engineer", domain.JobSearchFilters{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Jobs) != 1 || result.SourceCount != 1 {
		t.Fatalf("unexpected result: jobs=%d sources=%d", len(result.Jobs), result.SourceCount)
	}
}
