// Package session provides the TTL'd per-client state store. Each browsing
// session owns an independent JSON blob; entries vanish on expiry, so nothing
// survives a "reload" in the backend any more than it did in the client.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session key is absent or expired.
var ErrNotFound = errors.New("session not found or expired")

// Store is a keyed JSON document store with per-entry TTL.
type Store interface {
	// Get unmarshals the value under key into dest, or returns ErrNotFound.
	Get(ctx context.Context, key string, dest any) error
	// Set marshals value under key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
