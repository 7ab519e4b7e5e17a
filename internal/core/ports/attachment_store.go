package ports

import (
	"context"
	"io"
	"time"
)

// Blob is an upload body.
type Blob struct {
	Body        io.Reader
	Size        int64
	ContentType string
}

// StoredObject describes one object found under a prefix.
type StoredObject struct {
	Key          string
	DisplayName  string
	Size         int64
	LastModified time.Time
}

// AttachmentStore keeps order attachments in object storage.
type AttachmentStore interface {
	// Store uploads the blob under key and returns its public URL.
	Store(ctx context.Context, key string, blob Blob) (string, error)

	// ListUnderPrefix returns every object whose key starts with prefix.
	ListUnderPrefix(ctx context.Context, prefix string) ([]StoredObject, error)

	// SignedURL returns a time-limited download URL. On failure it returns
	// an empty string and the error.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
