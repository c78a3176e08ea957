package store

import (
	"context"
	"io"
)

// Blob is an object read from a BlobStore. The caller closes Body.
type Blob struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// BlobStore keeps binary content addressed by key.
type BlobStore interface {
	// Put stores size bytes from body under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// Get opens the object stored under key.
	// Returns ErrBlobNotFound if no such object exists.
	Get(ctx context.Context, key string) (*Blob, error)

	// Delete removes the object under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
