package storage

import (
	"context"
	"io"
)

// MetadataOriginalFilename is the object metadata key holding the name the
// file was uploaded under. The object key itself is server-generated.
const MetadataOriginalFilename = "original-filename"

// Backend abstracts the object store holding uploaded media. Objects are
// written private, flipped public, and addressed by a deterministic URL.
type Backend interface {
	// Upload writes the object bytes under key with the given content type,
	// recording the original filename as metadata.
	Upload(ctx context.Context, key, contentType, originalName string, r io.Reader) error

	// MakePublic flips the object's ACL to public-read after the write
	// completes.
	MakePublic(ctx context.Context, key string) error

	// PublicURL derives the object's durable URL from the bucket and key.
	PublicURL(key string) string

	// List enumerates every object key in the bucket. No pagination is
	// exposed; cost grows with total objects ever uploaded.
	List(ctx context.Context) ([]string, error)

	// Name identifies the backend ("gcs", "s3") for logs.
	Name() string
}
