package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultBaseURL   = "http://www.espn.com"
	DefaultUserAgent = "hoops-pbp-cli/1.0 (github.com/pfrederiksen/hoops-pbp)"
	DefaultTimeout   = 30 * time.Second

	defaultMaxRetries    = 3
	defaultRetryInterval = 500 * time.Millisecond
)

// Config controls the HTTP behavior of a Scraper. Zero values fall back
// to the package defaults.
type Config struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
}

// Scraper handles fetching and parsing ESPN scoreboard and play-by-play
// pages. It is safe for concurrent use.
type Scraper struct {
	client        *http.Client
	baseURL       string
	userAgent     string
	maxRetries    uint64
	retryInterval time.Duration
}

// New creates a Scraper with the given configuration.
func New(cfg Config) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	return &Scraper{
		client:        &http.Client{Timeout: cfg.Timeout},
		baseURL:       cfg.BaseURL,
		userAgent:     cfg.UserAgent,
		maxRetries:    uint64(cfg.MaxRetries),
		retryInterval: cfg.RetryInterval,
	}
}

// fetch retrieves a page body, retrying transient failures with
// exponential backoff. A 404 is permanent; other non-2xx statuses and
// transport errors are retried.
func (s *Scraper) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(fmt.Errorf("page not found: %s", url))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}
