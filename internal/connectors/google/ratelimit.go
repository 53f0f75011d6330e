package google

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ServiceType identifies a Google API service for rate limiting purposes.
type ServiceType string

const (
	// ServiceDrive is the Google Drive API service.
	ServiceDrive ServiceType = "drive"
	// ServiceDocs is the Google Docs API service.
	ServiceDocs ServiceType = "docs"
)

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each service,
// well below Google's actual limits to avoid hitting quotas.
var DefaultRateLimits = map[ServiceType]RateLimitConfig{
	ServiceDrive: {RequestsPerSecond: 8.0, BurstSize: 10}, // Google allows 10/sec/user
	ServiceDocs:  {RequestsPerSecond: 5.0, BurstSize: 10},
}

// RateLimiter provides rate limiting for Google API requests.
// It uses a token bucket with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	service ServiceType
}

// NewRateLimiter creates a new rate limiter for the specified service.
func NewRateLimiter(service ServiceType) *RateLimiter {
	cfg, ok := DefaultRateLimits[service]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		service: service,
	}
}

// Wait blocks until a request can be made without exceeding the rate
// limit. It also respects any backoff period set by
// RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a rate limit error and sets a backoff
// period. Call this when receiving a 429 response.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}
