// Package storage writes exported site files.
package storage

import (
	"context"
	"io"
)

// Store is a file storage backend addressed by slash-separated paths.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
