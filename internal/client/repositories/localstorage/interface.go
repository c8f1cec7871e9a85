// Package localstorage persists string key/value pairs in the client's local
// SQLite database, the same shape a browser's localStorage offers.
package localstorage

import "context"

type Repository interface {
	// GetItem reports ok=false when key is not stored.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem is a no-op for keys that are not stored.
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
