package ports

import (
	"context"
	"io"
)

// Store is the file-storage abstraction. Put uploads content under a
// category-scoped name and returns the public URL. A disabled store returns
// ("", nil): a silent no-op, not an error.
type Store interface {
	Put(ctx context.Context, category, name, contentType string, size int64, r io.Reader) (string, error)
	Delete(ctx context.Context, paths ...string) error
}
