// Package storage implements the file storage backends: S3, local disk, or a
// disabled no-op. The backend is selected once at startup from configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
)

// New selects and initialises the storage backend for the configured mode.
func New(ctx context.Context, cfg config.StorageConfig, appURL string, log zerolog.Logger) (ports.Store, error) {
	switch cfg.Mode {
	case "s3":
		return NewS3Store(ctx, cfg, log)
	case "local":
		return NewLocalStore(cfg.LocalDir, appURL, log)
	case "false", "":
		return &DisabledStore{log: log}, nil
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Mode)
	}
}
