package reed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// pageHandler serves canned search pages keyed by request ordinal and
// records the query string of every call.
type pageHandler struct {
	pages   []string
	queries []string
	calls   int
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.queries = append(h.queries, r.URL.RawQuery)
	if h.calls >= len(h.pages) {
		http.Error(w, "no more pages", http.StatusInternalServerError)
		return
	}
	page := h.pages[h.calls]
	h.calls++
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(page))
}

func resultsPage(start, count int) string {
	records := make([]string, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, fmt.Sprintf(`{"jobId": %d, "jobTitle": "Engineer %d", "employerName": "Acme"}`, start+i, start+i))
	}
	return `{"results": [` + strings.Join(records, ",") + `]}`
}

func newServerClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		APIKey:     testAPIKey,
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := NewClient(Config{})
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Fatalf("expected ErrAPIKeyMissing, got %v", err)
	}
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, testAPIKey)

	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.apiKey != testAPIKey {
		t.Fatalf("expected key from environment, got %q", client.apiKey)
	}
}

func TestSearchBasicAuthHeader(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	client, _ := newServerClient(t, handler)
	if _, err := client.Search(context.Background(), SearchCriteria{}); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if !gotOK {
		t.Fatal("expected a Basic Authorization header")
	}
	if gotUser != testAPIKey || gotPass != "" {
		t.Fatalf("expected key as username with empty password, got %q / %q", gotUser, gotPass)
	}
}

func TestSearchReturnsAtMostWanted(t *testing.T) {
	handler := &pageHandler{pages: []string{resultsPage(0, 25)}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 25})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 25 {
		t.Fatalf("expected 25 jobs, got %d", len(jobs))
	}
	if handler.calls != 1 {
		t.Fatalf("expected 1 request, got %d", handler.calls)
	}
}

func TestSearchStopsOnShortPage(t *testing.T) {
	handler := &pageHandler{pages: []string{resultsPage(0, 7), resultsPage(7, 7)}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 50})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 7 {
		t.Fatalf("expected 7 jobs, got %d", len(jobs))
	}
	if handler.calls != 1 {
		t.Fatalf("a short page must end pagination, got %d requests", handler.calls)
	}
}

func TestSearchPaginatesAndReturnsPartialOnError(t *testing.T) {
	// Full first page, then the server fails: the accumulated results come
	// back without an error.
	handler := &pageHandler{pages: []string{resultsPage(0, 100)}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 150})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 100 {
		t.Fatalf("expected the 100 jobs from the first page, got %d", len(jobs))
	}
	if handler.calls != 1 || len(handler.queries) != 2 {
		t.Fatalf("expected a second, failing request: calls=%d queries=%d", handler.calls, len(handler.queries))
	}
	if !strings.Contains(handler.queries[1], "resultsToSkip=100") {
		t.Fatalf("second request should skip past the first page: %q", handler.queries[1])
	}
}

func TestSearchHonorsOffset(t *testing.T) {
	handler := &pageHandler{pages: []string{resultsPage(40, 5)}}
	client, _ := newServerClient(t, handler)

	if _, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 5, Offset: 40}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(handler.queries[0], "resultsToSkip=40") {
		t.Fatalf("expected resultsToSkip=40 in %q", handler.queries[0])
	}
}

func TestSearchSkipsRecordsWithoutTitle(t *testing.T) {
	page := `{"results": [
		{"jobId": 1, "jobTitle": "Kept"},
		{"jobId": 2, "jobTitle": "  "},
		{"jobId": 3},
		{"jobId": 4, "jobTitle": "Also Kept"}
	]}`
	handler := &pageHandler{pages: []string{page}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	for _, job := range jobs {
		if strings.TrimSpace(job.Title) == "" {
			t.Fatalf("blank-title record leaked into output: %+v", job)
		}
	}
}

func TestSearchSkipsMalformedRecords(t *testing.T) {
	page := `{"results": [
		{"jobId": 1, "jobTitle": "Fine"},
		{"jobId": "not-a-number", "jobTitle": "Broken"},
		{"jobId": 3, "jobTitle": "Still Fine"}
	]}`
	handler := &pageHandler{pages: []string{page}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("malformed record should be skipped, not abort the page: got %d jobs", len(jobs))
	}
}

func TestSearchAcceptsBareArray(t *testing.T) {
	handler := &pageHandler{pages: []string{`[{"jobId": 1, "jobTitle": "Engineer"}]`}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job from bare-array response, got %d", len(jobs))
	}
}

func TestSearchUnexpectedShapeIsEmpty(t *testing.T) {
	handler := &pageHandler{pages: []string{`"surprise"`}}
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("unexpected shape should read as an empty page, got %d jobs", len(jobs))
	}
}

func TestSearchTransportFailureReturnsPartial(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	client, _ := newServerClient(t, handler)

	jobs, err := client.Search(context.Background(), SearchCriteria{ResultsWanted: 10})
	if err != nil {
		t.Fatalf("transport failure must not surface as an error, got %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(jobs))
	}
}

func TestJobDetails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/12345" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"jobId": 12345, "jobTitle": "Engineer", "employerName": "Acme", "fullTime": true}`))
	})
	client, _ := newServerClient(t, handler)

	detail, err := client.JobDetails(context.Background(), "12345")
	if err != nil {
		t.Fatalf("JobDetails: %v", err)
	}
	if detail.JobTitle != "Engineer" || !detail.FullTime {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	if _, err := client.JobDetails(context.Background(), "99999"); err == nil {
		t.Fatal("expected an error for a missing job")
	}
}
