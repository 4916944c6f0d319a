package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/brvhprince/planner-api/internal/api/metrics"
	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// uploadAndRecord streams one incoming file to storage under a fresh
// reference name and creates its metadata row. An empty path from the store
// (storage disabled) is reported to the caller as a nil result.
func uploadAndRecord(
	ctx context.Context,
	store ports.Store,
	files ports.FileRepository,
	userID, category string,
	upload *domain.FileUpload,
	hash string,
) (*domain.FileDetails, error) {
	name := secure.Reference() + filepath.Ext(upload.Name)

	r, err := upload.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	path, err := store.Put(ctx, category, name, upload.ContentType, upload.Size, r)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(category, "failure").Inc()
		return nil, err
	}
	if path == "" {
		metrics.UploadsTotal.WithLabelValues(category, "failure").Inc()
		return nil, nil
	}

	record, err := files.Create(ctx, &domain.FileDetails{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      upload.Name,
		Type:      upload.ContentType,
		Category:  category,
		Size:      upload.Size,
		Path:      path,
		Hash:      hash,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.UploadsTotal.WithLabelValues(category, "success").Inc()
	return record, nil
}
