// Package kv implements the durable on-device key-value store backing the
// session. Keys and values are plain strings; there is no schema beyond the
// single metadata table and no versioning.
package kv

import "context"

type Repository interface {
	// Get returns the stored value, or "" with ok=false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	// Clear removes every persisted key.
	Clear(ctx context.Context) error
}
