// Package objectstore defines the blob storage used for uploaded document
// files.
package objectstore

import (
	"context"
	"io"
	"time"
)

// Object is an object read back from the store.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Store keeps document files by key.
//
//go:generate mockgen -package mockobjectstore -source=interface.go -destination=mock/mockobjectstore.go *
type Store interface {
	// Put uploads size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the object stored under key. It returns serrors.ErrNotFound
	// when the key does not exist. Callers must close Body.
	Get(ctx context.Context, key string) (*Object, error)
	// PresignGet returns a time-limited download URL. A non-empty fileName
	// is used as the attachment name offered to the browser.
	PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
