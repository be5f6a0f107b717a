package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a reference does not resolve to a stored blob.
var ErrNotFound = errors.New("blob not found")

// Metadata travels with every stored blob.
type Metadata struct {
	ProjectID string
	Uploader  string
	MimeType  string
}

// BlobStore is the content store for uploaded file bytes. Project documents
// reference blobs by the opaque key returned from Store.
type BlobStore interface {
	// Store writes the blob and returns its opaque reference.
	Store(ctx context.Context, r io.Reader, filename string, meta Metadata) (string, error)
	// Retrieve returns the blob contents and mime type.
	Retrieve(ctx context.Context, ref string) (io.ReadCloser, string, error)
	// Delete removes the blob. Callers that treat deletion as best-effort
	// log the error instead of propagating it.
	Delete(ctx context.Context, ref string) error
	// GetUploader returns the account id recorded as the blob's uploader.
	GetUploader(ctx context.Context, ref string) (string, error)
}
