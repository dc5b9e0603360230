package storage

import (
	"context"
	"testing"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://cdn.example.com"

func openTestStorage(t *testing.T, baseURL string) *BlobStorage {
	t.Helper()

	store, err := Open(context.Background(), &config.StorageConfig{
		Buckets: map[string]string{
			constants.BucketPaymentProofs: "mem://",
			constants.BucketInvoices:      "mem://",
		},
		PublicBaseURL: baseURL,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestBlobStorage_UploadAndRemove(t *testing.T) {
	ctx := context.Background()
	store := openTestStorage(t, testBaseURL+"/")

	url, err := store.Upload(ctx, constants.BucketPaymentProofs, "order-1-1700000000000-proof.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/payment-proofs/order-1-1700000000000-proof.png", url)

	bucket, err := store.bucket(constants.BucketPaymentProofs)
	require.NoError(t, err)
	exists, err := bucket.Exists(ctx, "order-1-1700000000000-proof.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Remove(ctx, constants.BucketPaymentProofs, []string{"order-1-1700000000000-proof.png", "missing.png"}))

	exists, err = bucket.Exists(ctx, "order-1-1700000000000-proof.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	store := openTestStorage(t, testBaseURL)

	url, err := store.PublicURL(context.Background(), constants.BucketInvoices, "products/p 1/a.png")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/invoices/products/p%201/a.png", url)

	key, ok := store.KeyFromURL(constants.BucketInvoices, url)
	require.True(t, ok)
	assert.Equal(t, "products/p 1/a.png", key)

	_, ok = store.KeyFromURL(constants.BucketPaymentProofs, url)
	assert.False(t, ok)

	_, ok = store.KeyFromURL(constants.BucketInvoices, "https://elsewhere.example.com/a.png")
	assert.False(t, ok)
}

func TestBlobStorage_PublicURLUnavailable(t *testing.T) {
	store := openTestStorage(t, "")

	_, err := store.Upload(context.Background(), constants.BucketInvoices, "o.pdf", []byte("%PDF"), "application/pdf")
	assert.ErrorIs(t, err, service.ErrPublicURLUnavailable)
}

func TestBlobStorage_UnknownBucket(t *testing.T) {
	store := openTestStorage(t, testBaseURL)

	_, err := store.Upload(context.Background(), "unknown", "k", []byte("x"), "text/plain")
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestOpen_RequiresBuckets(t *testing.T) {
	_, err := Open(context.Background(), nil)
	assert.Error(t, err)

	_, err = Open(context.Background(), &config.StorageConfig{})
	assert.Error(t, err)
}
