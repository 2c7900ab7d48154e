// Package store provides the key-value byte stores the tracker persists into.
package store

//go:generate mockgen -destination=mock/mock.go -package=mockstore -source=interface.go

import "context"

// Store is a key-value byte store
type Store interface {
	// Get returns the value under key, or a not found error
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
