package i

import "context"

// ImageCache stores rendered maze images.
type ImageCache interface {
	// Get returns the cached bytes for key and whether they were present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte) error

	// Lock takes an exclusive lock on key and returns the function releasing it.
	Lock(ctx context.Context, key string) (func(), error)
}
