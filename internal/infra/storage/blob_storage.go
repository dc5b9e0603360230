// Package storage implements object storage on top of gocloud.dev/blob, so the same code
// serves GCS in production and local directories or memory in development and tests.
package storage

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"harvest/config"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ErrUnknownBucket is returned for bucket names without a configured URL.
var ErrUnknownBucket = errors.New("bucket is not configured")

// BlobStorage implements service.ObjectStorage with one gocloud bucket per logical name.
type BlobStorage struct {
	buckets       map[string]*blob.Bucket
	publicBaseURL string
	mu            sync.Mutex
}

// Params defines the dependencies of the fx constructor.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens every configured bucket and closes them on shutdown.
func New(params Params) (service.ObjectStorage, error) {
	store, err := Open(params.Ctx, params.Config.Storage)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing object storage buckets")

			return store.Close()
		},
	})

	return store, nil
}

// Open opens the buckets listed in cfg.
func Open(ctx context.Context, cfg *config.StorageConfig) (*BlobStorage, error) {
	if cfg == nil || len(cfg.Buckets) == 0 {
		return nil, errors.New("storage buckets are not configured")
	}

	store := &BlobStorage{
		buckets:       make(map[string]*blob.Bucket, len(cfg.Buckets)),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
	for name, bucketURL := range cfg.Buckets {
		bucket, err := blob.OpenBucket(ctx, bucketURL)
		if err != nil {
			_ = store.Close()

			return nil, errors.Wrapf(err, "failed to open bucket %s", name)
		}
		store.buckets[name] = bucket
	}

	return store, nil
}

// Upload writes data under key and returns its public URL.
func (s *BlobStorage) Upload(ctx context.Context, bucketName, key string, data []byte, contentType string) (string, error) {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return "", err
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := bucket.Upload(ctx, key, bytes.NewReader(data), opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s/%s", bucketName, key)
	}

	publicURL, err := s.PublicURL(ctx, bucketName, key)
	if err != nil {
		// An object nobody can link to is garbage.
		_ = bucket.Delete(ctx, key)

		return "", err
	}

	return publicURL, nil
}

// PublicURL joins the public base URL with the bucket and the escaped key.
func (s *BlobStorage) PublicURL(_ context.Context, bucketName, key string) (string, error) {
	if _, err := s.bucket(bucketName); err != nil {
		return "", err
	}
	if s.publicBaseURL == "" || key == "" {
		return "", service.ErrPublicURLUnavailable
	}

	return s.publicBaseURL + "/" + url.PathEscape(bucketName) + "/" + escapeKey(key), nil
}

// Remove deletes the given keys. Missing objects are not an error.
func (s *BlobStorage) Remove(ctx context.Context, bucketName string, keys []string) error {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return err
	}

	var errs []error
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			errs = append(errs, errors.Wrapf(err, "failed to delete %s/%s", bucketName, key))
		}
	}

	return errors.Join(errs...)
}

// KeyFromURL reverses PublicURL for objects of bucketName.
func (s *BlobStorage) KeyFromURL(bucketName, rawURL string) (string, bool) {
	if s.publicBaseURL == "" {
		return "", false
	}

	prefix := s.publicBaseURL + "/" + url.PathEscape(bucketName) + "/"
	escaped, ok := strings.CutPrefix(rawURL, prefix)
	if !ok || escaped == "" {
		return "", false
	}

	key, err := url.PathUnescape(escaped)
	if err != nil {
		return "", false
	}

	return key, true
}

// Close closes every open bucket.
func (s *BlobStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, bucket := range s.buckets {
		if err := bucket.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to close bucket %s", name))
		}
		delete(s.buckets, name)
	}

	return errors.Join(errs...)
}

func (s *BlobStorage) bucket(name string) (*blob.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownBucket, name)
	}

	return bucket, nil
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
