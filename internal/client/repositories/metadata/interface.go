// Package metadata is the durable key/value table of the local client
// database. Each key is addressed independently; there is no cross-key
// transaction.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns every stored key in ascending order.
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
