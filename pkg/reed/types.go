package reed

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hallgrim/jobsift/pkg/logging"
)

// Config defines Reed API client settings
type Config struct {
	// APIKey is the Reed developer key. When empty the client falls back to
	// the REED_API_KEY environment variable; if neither is set construction
	// fails with ErrAPIKeyMissing.
	APIKey     string
	BaseURL    string
	UserAgent  string
	Proxies    []string
	CACertPath string
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client queries the Reed job search API
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *logging.Logger
}

// JobType is a Reed employment-type filter
type JobType string

const (
	JobTypeFullTime  JobType = "full_time"
	JobTypePartTime  JobType = "part_time"
	JobTypeContract  JobType = "contract"
	JobTypeTemporary JobType = "temporary"
)

// SearchCriteria describe a single Search call
type SearchCriteria struct {
	Keywords string
	Location string
	// Distance is the search radius in miles around Location. Zero means the
	// Reed default of 10; the API caps it at 100.
	Distance      int
	Remote        bool
	JobType       JobType
	ResultsWanted int
	Offset        int
	// HoursOld is accepted for interface parity with other sources but Reed
	// has no server-side recency filter; see Search.
	HoursOld int
}

// searchEnvelope is the usual wrapper shape of the search endpoint. Records
// stay raw so one malformed record cannot sink the whole page.
type searchEnvelope struct {
	Results      []json.RawMessage `json:"results"`
	TotalResults int               `json:"totalResults"`
}

type rawJob struct {
	JobID          int64    `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	EmployerName   string   `json:"employerName"`
	LocationName   string   `json:"locationName"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	Currency       string   `json:"currency"`
	JobDescription string   `json:"jobDescription"`
	ExternalURL    string   `json:"externalUrl"`
	JobURL         string   `json:"jobUrl"`
}

// Location is a parsed posting location. Reed is UK-only so Country is fixed.
type Location struct {
	City    string
	Region  string
	Country string
}

// CompensationInterval is the period a salary figure covers
type CompensationInterval string

// IntervalYearly is the only interval Reed reports; search results are
// always annualized.
const IntervalYearly CompensationInterval = "yearly"

// Compensation is present only when the vendor supplied a salary bound
type Compensation struct {
	MinAmount *float64
	MaxAmount *float64
	Currency  string
	Interval  CompensationInterval
}

// Job is a normalized Reed job posting
type Job struct {
	ID           string
	Title        string
	CompanyName  string
	URL          string
	DirectURL    string
	Location     *Location
	Description  string
	Compensation *Compensation
	// JobTypes is always empty: the search endpoint does not report
	// employment type, only the detail endpoint does.
	JobTypes []JobType
	Remote   bool
	// PostedAt is always nil for search results; Reed omits the posted date
	// from the search response.
	PostedAt  *time.Time
	FetchedAt time.Time
}

// JobDetail is the response of the single-job lookup endpoint
type JobDetail struct {
	JobID               int64    `json:"jobId"`
	EmployerID          int64    `json:"employerId"`
	EmployerName        string   `json:"employerName"`
	JobTitle            string   `json:"jobTitle"`
	LocationName        string   `json:"locationName"`
	MinimumSalary       *float64 `json:"minimumSalary"`
	MaximumSalary       *float64 `json:"maximumSalary"`
	YearlyMinimumSalary *float64 `json:"yearlyMinimumSalary"`
	YearlyMaximumSalary *float64 `json:"yearlyMaximumSalary"`
	Currency            string   `json:"currency"`
	SalaryType          string   `json:"salaryType"`
	DatePosted          string   `json:"datePosted"`
	ExpirationDate      string   `json:"expirationDate"`
	ContractType        string   `json:"contractType"`
	FullTime            bool     `json:"fullTime"`
	PartTime            bool     `json:"partTime"`
	JobDescription      string   `json:"jobDescription"`
	ApplicationCount    int      `json:"applicationCount"`
	ExternalURL         string   `json:"externalUrl"`
	JobURL              string   `json:"jobUrl"`
}
