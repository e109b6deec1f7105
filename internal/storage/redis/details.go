package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hallgrim/jobsift/pkg/logging"
	"github.com/hallgrim/jobsift/pkg/reed"
)

const (
	detailKeyPrefix  = "jobsift:reed:detail:"
	defaultDetailTTL = 6 * time.Hour
	connectTimeout   = 5 * time.Second
)

// DetailsSource fetches a single job's detail record. *reed.Client satisfies
// it.
type DetailsSource interface {
	JobDetails(ctx context.Context, jobID string) (*reed.JobDetail, error)
}

// NewClient parses redisURL and verifies connectivity.
func NewClient(redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// DetailsCache decorates a DetailsSource with a Redis-backed TTL cache. The
// detail endpoint is rate-limited upstream, so repeated lookups of the same
// posting should not hit it.
type DetailsCache struct {
	client *goredis.Client
	source DetailsSource
	ttl    time.Duration
	log    *logging.Logger
}

// NewDetailsCache builds a DetailsCache. A zero ttl means the default of six
// hours.
func NewDetailsCache(client *goredis.Client, source DetailsSource, ttl time.Duration, log *logging.Logger) (*DetailsCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis: client is required")
	}
	if source == nil {
		return nil, fmt.Errorf("redis: details source is required")
	}
	if ttl <= 0 {
		ttl = defaultDetailTTL
	}
	if log == nil {
		log = logging.New("info")
	}

	return &DetailsCache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    log,
	}, nil
}

// JobDetails returns the cached detail record when present, otherwise fetches
// from the source and stores the result. Cache failures degrade to a direct
// fetch.
func (c *DetailsCache) JobDetails(ctx context.Context, jobID string) (*reed.JobDetail, error) {
	key := detailKeyPrefix + jobID

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var detail reed.JobDetail
		if err := json.Unmarshal(cached, &detail); err == nil {
			return &detail, nil
		}
		c.log.Warn("dropping undecodable cached job detail", "job_id", jobID)
	} else if !errors.Is(err, goredis.Nil) {
		c.log.Warn("job detail cache read failed", "job_id", jobID, "err", err)
	}

	detail, err := c.source.JobDetails(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(detail); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("job detail cache write failed", "job_id", jobID, "err", err)
		}
	}

	return detail, nil
}

var _ DetailsSource = (*DetailsCache)(nil)
