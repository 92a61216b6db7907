package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is durable local storage for serialized records under fixed keys.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
