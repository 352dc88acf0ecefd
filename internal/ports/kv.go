package ports

import "context"

// KeyValueStore is durable, string-keyed, string-valued storage for the
// handful of cached session identifiers. Writes are full overwrites and
// idempotent.
type KeyValueStore interface {
	Set(ctx context.Context, key, value string) error

	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// DeleteMany removes all given keys; missing keys are not an error.
	DeleteMany(ctx context.Context, keys ...string) error
}
