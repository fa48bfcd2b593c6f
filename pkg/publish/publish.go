package publish

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when an artifact doesn't exist.
var ErrNotFound = errors.New("publish: artifact not found")

// Artifact describes one published page.
type Artifact struct {
	// ID uniquely identifies this publish operation.
	ID string

	// Name is the document name the artifact was rendered from.
	Name string

	// Key is the destination path or object key.
	Key string

	// ContentType is the MIME type of the artifact.
	ContentType string

	// Size is the artifact size in bytes.
	Size int64

	// URL is where the artifact can be fetched, when the backend has one.
	URL string

	// PublishedAt is when the artifact was stored.
	PublishedAt time.Time
}

// Store is the interface for publish backends.
// Implement this interface to target other storage than disk or S3.
type Store interface {
	// Put stores an artifact under the given key.
	Put(ctx context.Context, name, key, contentType string, r io.Reader) (*Artifact, error)

	// Keys lists the keys currently stored.
	Keys(ctx context.Context) ([]string, error)

	// Remove deletes an artifact by key. Removing a missing key returns
	// ErrNotFound.
	Remove(ctx context.Context, key string) error
}
