// Package storage provides the client's durable key-value store. The session
// store keeps the serialized user record here; the store survives process
// restarts.
package storage

import "context"

// KV is a durable string-keyed byte store.
//
// Get returns (nil, nil) when the key is absent; callers distinguish a miss
// from an I/O failure by the error value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
