package port

import "context"

// KV is the client-local key-value store the front-end persists into. Values
// are opaque and written wholesale; there are no partial updates.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
