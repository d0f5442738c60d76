package credentials

import (
	"context"
)

// Repository is a small durable key/value store for session credentials.
// It is the local-storage analog: values survive process restarts and are
// wiped together on logout or invalidation.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
