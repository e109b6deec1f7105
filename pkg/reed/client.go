package reed

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hallgrim/jobsift/pkg/logging"
)

const (
	defaultBaseURL   = "https://www.reed.co.uk/api/1.0"
	publicJobsURL    = "https://www.reed.co.uk/jobs"
	defaultUserAgent = "jobsift-reed/1.0"

	// Reed API hard limits
	maxResultsPerPage = 100
	maxDistance       = 100 // miles

	defaultDistance      = 10
	defaultResultsWanted = 15

	requestTimeout = 30 * time.Second

	// EnvAPIKey is the environment variable consulted when Config.APIKey is
	// empty.
	EnvAPIKey = "REED_API_KEY"
)

// ErrAPIKeyMissing is returned by NewClient when no API key can be resolved
// from either the config or the environment.
var ErrAPIKeyMissing = errors.New("reed: api key is required; set REED_API_KEY or pass Config.APIKey (keys at https://www.reed.co.uk/developers)")

// NewClient instantiates a Reed API client. No network I/O happens here; a
// key the vendor rejects only surfaces on the first request.
func NewClient(cfg Config) (*Client, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.New("info")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	// Reed keys are UUIDs; a differently shaped token is suspicious but not
	// fatal.
	if _, err := uuid.Parse(apiKey); err != nil {
		log.Warn("reed api key does not look like a UUID, the vendor may reject it")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport, err := buildTransport(cfg)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		log:        log,
	}, nil
}

func buildTransport(cfg Config) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if len(cfg.Proxies) > 0 {
		proxyURL, err := url.Parse(cfg.Proxies[0])
		if err != nil {
			return nil, fmt.Errorf("reed: parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if cfg.CACertPath != "" {
		pem, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("reed: read ca cert: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("reed: no certificates found in %s", cfg.CACertPath)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return transport, nil
}

// Search pages through the Reed search endpoint until the wanted count is
// met or the result set is exhausted. Transport failures end pagination but
// are not returned: the caller gets whatever was accumulated, and the error
// is logged. The returned slice never exceeds criteria.ResultsWanted.
func (c *Client) Search(ctx context.Context, criteria SearchCriteria) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("reed: client is nil")
	}

	wanted := criteria.ResultsWanted
	if wanted <= 0 {
		wanted = defaultResultsWanted
	}
	skip := criteria.Offset

	if criteria.HoursOld > 0 {
		// Reed has no server-side recency filter; postings of any age come
		// back. Callers that need a cutoff must filter on their side.
		c.log.Warn("reed does not support filtering by posting age, results are unfiltered", "hours_old", criteria.HoursOld)
	}

	jobs := make([]Job, 0, wanted)
	for len(jobs) < wanted {
		take := wanted - len(jobs)
		if take > maxResultsPerPage {
			take = maxResultsPerPage
		}

		c.log.Debug("fetching reed page", "skip", skip, "take", take)

		batch, err := c.fetchPage(ctx, criteria, take, skip)
		if err != nil {
			c.log.Error("reed page fetch failed, returning partial results", "err", err, "fetched", len(jobs))
			break
		}
		if len(batch) == 0 {
			break
		}

		for _, raw := range batch {
			job, err := c.normalize(raw)
			if err != nil {
				c.log.Error("skipping unparseable reed record", "err", err)
				continue
			}
			if job == nil {
				continue
			}
			jobs = append(jobs, *job)
			if len(jobs) >= wanted {
				break
			}
		}

		if len(batch) < take {
			// Short page: the vendor result set is exhausted.
			break
		}
		skip += len(batch)
	}

	return jobs, nil
}

// fetchPage issues one GET against the search endpoint. A nil error with an
// empty slice means "no more results"; an error means the request itself
// failed and pagination should stop.
func (c *Client) fetchPage(ctx context.Context, criteria SearchCriteria, take, skip int) ([]json.RawMessage, error) {
	u := c.baseURL + "/search?" + buildSearchParams(criteria, take, skip).Encode()

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	// The endpoint normally returns {"results": [...]} but a bare array has
	// been observed too; accept both.
	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	c.log.Warn("unexpected reed search response shape, treating as empty page")
	return nil, nil
}

func buildSearchParams(criteria SearchCriteria, take, skip int) url.Values {
	if take > maxResultsPerPage {
		take = maxResultsPerPage
	}
	distance := criteria.Distance
	if distance <= 0 {
		distance = defaultDistance
	}
	if distance > maxDistance {
		distance = maxDistance
	}

	values := url.Values{}
	values.Set("resultsToTake", strconv.Itoa(take))
	values.Set("resultsToSkip", strconv.Itoa(skip))
	values.Set("distanceFromLocation", strconv.Itoa(distance))

	if criteria.Keywords != "" {
		values.Set("keywords", criteria.Keywords)
	}

	// Location and remote-only are mutually exclusive filters on Reed's
	// side: a remote search must not pin a location.
	if criteria.Location != "" && !criteria.Remote {
		values.Set("locationName", criteria.Location)
	}

	switch criteria.JobType {
	case JobTypeFullTime:
		// Reed models full-time as permanent employment.
		values.Set("fullTime", "true")
		values.Set("permanent", "true")
	case JobTypePartTime:
		values.Set("partTime", "true")
	case JobTypeContract:
		values.Set("contract", "true")
	case JobTypeTemporary:
		values.Set("temp", "true")
	}

	return values
}

// JobDetails fetches the single-job detail endpoint. Search does not use
// this; it exists for callers that need the full description and dates the
// search response omits.
func (c *Client) JobDetails(ctx context.Context, jobID string) (*JobDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("reed: client is nil")
	}
	if jobID == "" {
		return nil, fmt.Errorf("reed: job id is required")
	}

	body, err := c.get(ctx, c.baseURL+"/jobs/"+url.PathEscape(jobID))
	if err != nil {
		return nil, err
	}

	var detail JobDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("reed: decode job detail: %w", err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("reed: build request: %w", err)
	}
	// Reed authenticates with Basic auth, key as username and an empty
	// password.
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reed: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("reed: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reed: read response: %w", err)
	}
	return body, nil
}
