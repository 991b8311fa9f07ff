package records

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

// BlobBackend keeps each record set as a <kind>.json object in a bucket.
// Supported bucket URLs: file:///dir, mem://, s3://bucket?region=...
type BlobBackend struct {
	bucket *blob.Bucket
}

// NewBlobBackend wraps an already opened bucket.
func NewBlobBackend(bucket *blob.Bucket) *BlobBackend {
	return &BlobBackend{bucket: bucket}
}

// OpenBlobBackend opens the bucket at url.
func OpenBlobBackend(ctx context.Context, url string) (*BlobBackend, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %q: %w", url, err)
	}
	return NewBlobBackend(bucket), nil
}

func blobKey(kind Kind) string {
	return string(kind) + ".json"
}

// Read returns the object content, or apperrors.ErrNotFound when it doesn't exist.
func (b *BlobBackend) Read(ctx context.Context, kind Kind) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, blobKey(kind))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write uploads the full object; the provider makes it visible only once complete.
func (b *BlobBackend) Write(ctx context.Context, kind Kind, data []byte) error {
	return b.bucket.WriteAll(ctx, blobKey(kind), data, &blob.WriterOptions{
		ContentType: "application/json",
	})
}

// Close releases the bucket.
func (b *BlobBackend) Close() error {
	return b.bucket.Close()
}
