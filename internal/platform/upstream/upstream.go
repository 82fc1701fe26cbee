// Package upstream is the HTTP plumbing shared by the third-party API
// clients: outbound throttling, retry with exponential backoff, and
// request metrics.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"libfinder/internal/logger"
	"libfinder/internal/metrics"
)

// StatusError is returned when retries are exhausted on a retryable
// status, or by callers that treat any non-200 as failure.
type StatusError struct {
	API    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.API, e.Status)
}

type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type Options struct {
	RPS        int
	MaxRetries int
	Timeout    time.Duration
	Backoff    time.Duration
}

type Client struct {
	api        string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

func New(api string, opts Options) *Client {
	rps := opts.RPS
	if rps <= 0 {
		rps = 10
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	return &Client{
		api:        api,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), rps),
		maxRetries: max(opts.MaxRetries, 0),
		backoff:    backoff,
	}
}

// Do sends req, retrying network errors, 429 and 5xx. req must be
// replayable (no body, or GetBody set). endpoint labels metrics and logs.
// Non-retryable statuses come back with a nil error; a retryable status on
// the last attempt also comes back as a Response so its body can be
// forwarded.
func (c *Client) Do(ctx context.Context, endpoint string, req *http.Request) (Response, error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDurationMs.WithLabelValues(c.api, endpoint).Observe(float64(time.Since(start).Milliseconds()))
	}()

	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := c.backoff * time.Duration(1<<uint(i-1))
			logger.L().Warn("upstream_retry", "api", c.api, "endpoint", endpoint, "attempt", i+1, "err", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return Response{}, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, err
		}

		resp, err := c.attempt(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Status == http.StatusTooManyRequests || resp.Status >= 500 {
			lastErr = &StatusError{API: c.api, Status: resp.Status}
			if i < c.maxRetries {
				continue
			}
		}

		outcome := "ok"
		if resp.Status != http.StatusOK {
			outcome = "error"
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(c.api, endpoint, outcome).Inc()
		return resp, nil
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(c.api, endpoint, "error").Inc()
	return Response{}, fmt.Errorf("%s %s after %d retries: %w", c.api, endpoint, c.maxRetries, lastErr)
}

// Get is Do for a plain GET with extra headers.
func (c *Client) Get(ctx context.Context, endpoint, url string, header http.Header) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return c.Do(ctx, endpoint, req)
}

func (c *Client) attempt(ctx context.Context, orig *http.Request) (Response, error) {
	req := orig.Clone(ctx)
	if orig.GetBody != nil {
		body, err := orig.GetBody()
		if err != nil {
			return Response{}, err
		}
		req.Body = body
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: body}, nil
}
