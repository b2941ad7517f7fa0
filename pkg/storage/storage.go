// Package storage defines the blob-store contract used by the asset
// service. The production implementation (infra/storage) talks to an
// S3-compatible object store.
package storage

import "context"

// BlobStore writes, removes, and addresses objects in named buckets.
type BlobStore interface {
	// Upload writes data under bucket/object with the given content type.
	Upload(ctx context.Context, bucket, object string, data []byte, contentType string) error
	// Remove deletes bucket/object. Removing a missing object is not an
	// error on S3-compatible stores.
	Remove(ctx context.Context, bucket, object string) error
	// PublicURL returns the unauthenticated locator for bucket/object.
	PublicURL(bucket, object string) string
}
