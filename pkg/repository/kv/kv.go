// Package kv provides the key-value primitive every entity store is built
// on: string values under fixed keys, no transactions.
package kv

import "context"

// Store is the sole persistence primitive
type Store interface {
	// Get retrieves a value; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores a value under a key, overwriting any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes a key; removing an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases backend resources
	Close() error
}
