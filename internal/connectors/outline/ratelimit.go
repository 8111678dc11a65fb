package outline

import (
	"context"

	"golang.org/x/time/rate"
)

// Outline allows roughly 1000 requests per minute per API key. The
// proactive limiter stays well under that so enumeration of large
// workspaces does not trip the server-side limit in the first place;
// 429 responses are still handled reactively by the client.
const (
	// ProactiveRate is the sustained request rate (requests/second).
	ProactiveRate = 8.0

	// ProactiveBurst is the maximum burst size.
	ProactiveBurst = 10
)

// RateLimiter throttles outbound API requests with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter with the default Outline rate.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveBurst),
	}
}

// Wait blocks until a request may be sent without exceeding the
// proactive rate.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Allow reports whether a request may be sent immediately.
func (r *RateLimiter) Allow() bool {
	return r.bucket.Allow()
}
