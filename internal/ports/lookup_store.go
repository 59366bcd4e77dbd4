package ports

import "context"

// Port: a byte-value store backing the lookup caches.
// Implementations must treat keys as opaque and never expire entries on their own.
type LookupStore interface {
	// Return the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
