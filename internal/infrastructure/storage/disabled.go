package storage

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// DisabledStore is the no-op backend used when storage is turned off. Put
// reports an empty path so callers can skip the metadata row without treating
// the upload as an error.
type DisabledStore struct {
	log zerolog.Logger
}

func (s *DisabledStore) Put(ctx context.Context, category, name, contentType string, size int64, r io.Reader) (string, error) {
	s.log.Debug().Str("category", category).Str("name", name).Msg("storage disabled, upload skipped")
	return "", nil
}

func (s *DisabledStore) Delete(ctx context.Context, paths ...string) error {
	return nil
}
