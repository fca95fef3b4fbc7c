package ports

import (
	"context"
	"io"
)

// FileStorage keeps uploaded bytes under a caller-chosen name.
type FileStorage interface {
	// Save writes r under name and returns the path to record on the entity.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Remove deletes a previously saved file. Missing files are not an error.
	Remove(ctx context.Context, path string) error
}
