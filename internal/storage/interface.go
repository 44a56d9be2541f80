package storage

import (
	"context"
	"io"
)

// Storage is the object storage collaborator the lifecycle engine hands
// generated documents to. Implementations must return a durable,
// publicly retrievable URL.
type Storage interface {
	// Upload stores data under bucket/fileName and returns its URL.
	Upload(ctx context.Context, bucket, fileName string, data []byte, contentType string) (string, error)

	// DeleteFile removes an object. Used by operational cleanup only.
	DeleteFile(ctx context.Context, bucket, fileName string) error

	// ReadFile opens an object for reading. Only the mock backend's HTTP
	// download handler needs this.
	ReadFile(bucket, fileName string) (io.ReadCloser, error)
}
