package service

import (
	"context"

	"harvest/internal/errors"
)

// ErrPublicURLUnavailable is returned when no public URL can be built for an object.
var ErrPublicURLUnavailable = errors.New("public url unavailable")

// ObjectStorage stores binary objects in named buckets.
type ObjectStorage interface {
	// Upload writes data under key and returns the object's public URL.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)

	// PublicURL returns the public URL of an existing object.
	PublicURL(ctx context.Context, bucket, key string) (string, error)

	// Remove deletes objects; keys that do not exist are ignored.
	Remove(ctx context.Context, bucket string, keys []string) error

	// KeyFromURL recovers the object key of a URL returned by Upload.
	KeyFromURL(bucket, url string) (string, bool)
}
