package ratelimit

import (
	"context"
	"time"
)

// Limiter throttles requests per caller key over a sliding window.
type Limiter interface {
	// Allow records a hit for key and reports whether it stays within
	// limit hits per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// Remaining returns the number of hits currently counted in the window.
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
