// Package idempotency deduplicates booking submissions. Every booking intent
// carries a client-generated key; a key seen before maps back to the booking
// it produced instead of creating a duplicate.
package idempotency

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a key is remembered. A replayed submission
// older than this may create a second booking; that window is accepted.
const DefaultTTL = 24 * time.Hour

type Store interface {
	// Get returns the booking id recorded for the key, if any.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put records the booking id produced by the key's first submission.
	Put(ctx context.Context, key, bookingId string, ttl time.Duration) error
}
