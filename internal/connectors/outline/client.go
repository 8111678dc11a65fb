package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/outline-cli/internal/core/domain"
	"github.com/custodia-labs/outline-cli/internal/logger"
)

const (
	// DefaultTimeout is the per-attempt HTTP request timeout.
	DefaultTimeout = 10 * time.Minute

	// MaxRetries is the retry budget for transient failures
	// (4 attempts total).
	MaxRetries = 3

	// DefaultBackoffFactor scales the exponential backoff between
	// transport retries: factor * 2^step seconds.
	DefaultBackoffFactor = 1.0

	// DefaultRetryAfter is the wait applied to a 429 response without a
	// usable Retry-After header.
	DefaultRetryAfter = 60 * time.Second

	// MaxRetryAfter caps server-specified Retry-After waits.
	MaxRetryAfter = 300 * time.Second

	// DefaultPageSize is the limit used for listing calls.
	DefaultPageSize = 100
)

// sleepFunc blocks for the given duration or until the context is done.
// Injectable so tests never sleep for real.
type sleepFunc func(ctx context.Context, d time.Duration) error

// Client is an authenticated Outline API client. Every call is a POST to
// {workspace}/api/{endpoint} with a JSON body. Transient failures are
// retried with exponential backoff; 429 responses are retried after the
// server-specified delay.
type Client struct {
	httpClient    *http.Client
	apiKey        string
	workspaceURL  string
	maxRetries    int
	backoffFactor float64
	limiter       *RateLimiter
	sleep         sleepFunc
}

// NewClient creates an Outline API client for the given credentials.
func NewClient(creds domain.Credentials) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		apiKey:        strings.TrimSpace(creds.APIKey),
		workspaceURL:  creds.NormalizedURL(),
		maxRetries:    MaxRetries,
		backoffFactor: DefaultBackoffFactor,
		limiter:       NewRateLimiter(),
		sleep:         sleepContext,
	}
}

// WorkspaceURL returns the normalised workspace base URL.
func (c *Client) WorkspaceURL() string {
	return c.workspaceURL
}

// envelope is the common part of every Outline response body.
type envelope struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

// call issues one logical API call with retries. payload may be nil;
// Outline expects a JSON body on every endpoint, so nil becomes "{}".
// On success the full response body is decoded into out (may be nil).
func (c *Client) call(ctx context.Context, endpoint string, payload, out any) error {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	url := c.workspaceURL + "/api/" + endpoint

	// The backoff step advances only on transport failures; 429 retries
	// consume the budget but wait for the server-specified delay instead.
	backoffStep := 0
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		start := time.Now()
		status, header, respBody, err := c.post(ctx, url, body)
		if err != nil {
			if attempt >= c.maxRetries {
				return &TransportError{Endpoint: endpoint, Attempts: attempt + 1, Err: err}
			}
			wait := c.backoffDelay(backoffStep)
			backoffStep++
			logger.Warn("%s attempt %d failed (%v), retrying in %s", endpoint, attempt+1, err, wait)
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
			continue
		}
		logger.Request(endpoint, status, time.Since(start))

		if status == http.StatusTooManyRequests {
			wait := retryAfterDelay(header)
			if attempt >= c.maxRetries {
				return &RateLimitError{Endpoint: endpoint, RetryAfter: wait}
			}
			logger.Warn("%s rate limited, retrying in %s", endpoint, wait)
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
			continue
		}

		if status < 200 || status >= 300 {
			return &StatusError{Endpoint: endpoint, StatusCode: status, Message: errorMessage(respBody)}
		}

		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		if !env.Ok {
			return &APIError{Endpoint: endpoint, Message: env.Error}
		}

		if out != nil {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode %s response: %w", endpoint, err)
			}
		}
		return nil
	}
}

// post performs a single HTTP round trip and drains the response body.
func (c *Client) post(ctx context.Context, url string, body []byte) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, resp.Header, respBody, nil
}

// backoffDelay returns the exponential backoff wait for a transport retry.
func (c *Client) backoffDelay(step int) time.Duration {
	seconds := c.backoffFactor * math.Pow(2, float64(step))
	return time.Duration(seconds * float64(time.Second))
}

// retryAfterDelay reads the Retry-After header in seconds.
// Defaults to 60s when absent or unparsable, capped at 5 minutes.
func retryAfterDelay(header http.Header) time.Duration {
	wait := DefaultRetryAfter
	if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			wait = time.Duration(secs) * time.Second
		}
	}
	if wait > MaxRetryAfter {
		wait = MaxRetryAfter
	}
	return wait
}

// errorMessage pulls the service error string out of a non-2xx body.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Error
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
