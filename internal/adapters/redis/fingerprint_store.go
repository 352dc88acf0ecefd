package redis

// Package redis provides the Redis-backed fingerprint store: the durable,
// best-effort local mirror of a signed-in session.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/ports"
)

// FingerprintStore is a string-to-string key-value store over Redis. Values
// are small identifiers written opportunistically on sign-in and cleared on
// sign-out; the store is never authoritative for session state.
type FingerprintStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.KeyValueStore = (*FingerprintStore)(nil)

// NewFingerprintStore creates a fingerprint store with the default prefix.
func NewFingerprintStore(client redis.UniversalClient) *FingerprintStore {
	return &FingerprintStore{client: client, prefix: "fingerprint:"}
}

// NewFingerprintStoreWithPrefix creates a fingerprint store with a custom
// key prefix.
func NewFingerprintStoreWithPrefix(client redis.UniversalClient, prefix string) *FingerprintStore {
	return &FingerprintStore{client: client, prefix: prefix}
}

// Set stores a value. Writes are full overwrites with no TTL.
func (s *FingerprintStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Get retrieves a value and whether the key was present.
func (s *FingerprintStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// DeleteMany removes the given keys. Missing keys are not an error.
func (s *FingerprintStore) DeleteMany(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		if k == "" {
			return errors.New("key cannot be empty")
		}
		prefixed[i] = s.prefix + k
	}
	return s.client.Del(ctx, prefixed...).Err()
}

// IsLoggedIn reports whether a user id fingerprint is present: the fast
// "was previously logged in" check. Informational only; the identity
// provider's live notification remains the source of truth.
func (s *FingerprintStore) IsLoggedIn(ctx context.Context) (bool, error) {
	_, ok, err := s.Get(ctx, domainauth.FingerprintKeyUserID)
	return ok, err
}
