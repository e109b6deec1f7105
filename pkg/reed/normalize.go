package reed

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
)

// remotePatterns are phrases that mark a posting as remote when they appear
// in the location or description text. Substring matching, so false
// positives and negatives are expected.
var remotePatterns = []string{
	"remote",
	"work from home",
	"wfh",
	"home based",
	"anywhere in uk",
	"location flexible",
}

// reedCountry is fixed: Reed only lists UK positions.
const (
	reedCountry  = "UK"
	reedCurrency = "GBP"
)

// normalize maps one raw search record onto a Job. A nil Job with a nil
// error means the record was dropped (blank title). Decode failures are
// returned so the caller can log and skip without aborting the page.
func (c *Client) normalize(raw json.RawMessage) (*Job, error) {
	var rj rawJob
	if err := json.Unmarshal(raw, &rj); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	title := strings.TrimSpace(rj.JobTitle)
	if title == "" {
		return nil, nil
	}

	var id string
	if rj.JobID != 0 {
		id = strconv.FormatInt(rj.JobID, 10)
	}

	// Canonical URL comes from the job id. Records without one get a URL
	// hashed from the title: best-effort uniqueness only, not collision-free,
	// and a poor key for deduplication.
	jobURL := publicJobsURL + "/" + id
	if id == "" {
		jobURL = fmt.Sprintf("%s/unknown-%d", publicJobsURL, hashTitle(title))
	}

	directURL := rj.ExternalURL
	if directURL == "" {
		directURL = jobURL
	}

	description := strings.TrimSpace(rj.JobDescription)

	return &Job{
		ID:           id,
		Title:        title,
		CompanyName:  strings.TrimSpace(rj.EmployerName),
		URL:          jobURL,
		DirectURL:    directURL,
		Location:     parseLocation(rj.LocationName),
		Description:  description,
		Compensation: parseCompensation(rj.MinimumSalary, rj.MaximumSalary),
		Remote:       isRemote(rj.LocationName, description),
		FetchedAt:    time.Now().UTC(),
	}, nil
}

// parseLocation splits "City, County" on the first comma. Reed is UK-only so
// the country is constant. Empty input yields no location at all.
func parseLocation(locationName string) *Location {
	locationName = strings.TrimSpace(locationName)
	if locationName == "" {
		return nil
	}

	city, region, _ := strings.Cut(locationName, ",")
	return &Location{
		City:    strings.TrimSpace(city),
		Region:  strings.TrimSpace(region),
		Country: reedCountry,
	}
}

// parseCompensation builds a Compensation when the vendor supplied at least
// one salary bound. Reed reports annualized figures, so the interval is
// always yearly. A zero bound counts as absent.
func parseCompensation(minSalary, maxSalary *float64) *Compensation {
	if minSalary == nil && maxSalary == nil {
		return nil
	}
	return &Compensation{
		MinAmount: positiveAmount(minSalary),
		MaxAmount: positiveAmount(maxSalary),
		Currency:  reedCurrency,
		Interval:  IntervalYearly,
	}
}

func positiveAmount(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// isRemote checks location and description text against the remote phrase
// set.
func isRemote(locationName, description string) bool {
	if locationName == "" && description == "" {
		return false
	}

	text := strings.ToLower(locationName + " " + description)
	for _, pattern := range remotePatterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

func hashTitle(title string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return h.Sum32()
}
