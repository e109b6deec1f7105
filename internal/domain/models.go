package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a job
type JobID = uuid.UUID

// CompanyRef references a company
type CompanyRef struct {
	ID   string
	Name string
}

// Job is the normalized job posting entity shared across providers
type Job struct {
	ID       JobID
	Title    string
	Company  CompanyRef
	Location string
	Remote   bool
	URL      string
	// DirectURL points at the employer's own application page when the
	// source supplies one; otherwise it equals URL.
	DirectURL  string
	Source     string
	ExternalID string
	// PostedAt is zero when the source does not report a posting date.
	PostedAt    time.Time
	Description string
	SalaryMin   *float64
	SalaryMax   *float64
	// Currency and SalaryInterval are only meaningful when a salary bound is
	// set.
	Currency       string
	SalaryInterval string
	FetchedAt      time.Time
}

// JobSearchFilters describe allowed job query filters
type JobSearchFilters struct {
	Location   string
	Remote     *bool
	JobType    string
	MaxResults int
	Offset     int
	// HoursOld bounds posting age. Sources without a posting date cannot be
	// filtered and pass through.
	HoursOld int
}

// JobSummary is the response-friendly job view
type JobSummary struct {
	ID        JobID    `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	Remote    bool     `json:"remote"`
	URL       string   `json:"url"`
	DirectURL string   `json:"direct_url,omitempty"`
	Source    string   `json:"source"`
	SalaryMin *float64 `json:"salary_min,omitempty"`
	SalaryMax *float64 `json:"salary_max,omitempty"`
	Currency  string   `json:"currency,omitempty"`
}

// JobSearchResult wraps job search output
type JobSearchResult struct {
	Jobs        []JobSummary
	FetchedAt   time.Time
	SourceCount int
}
