package domain

import (
	"io"
	"time"
)

// Storage categories files are filed under.
const (
	StorageAccount = "account"
	StorageProfile = "profile"
)

var supportedImageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

var supportedDocumentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"text/csv":   {},
	"text/plain": {},
}

// IsSupportedImage reports whether contentType is an accepted image MIME type.
func IsSupportedImage(contentType string) bool {
	_, ok := supportedImageTypes[contentType]
	return ok
}

// IsSupportedDocument reports whether contentType is an accepted document
// MIME type.
func IsSupportedDocument(contentType string) bool {
	_, ok := supportedDocumentTypes[contentType]
	return ok
}

// FileUpload is an incoming file before it reaches storage. Open streams the
// uploaded content; callers must close the reader.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FileDetails is the metadata row created after each physical upload.
// Account and Profile records reference it by id.
type FileDetails struct {
	ID        string    `json:"id" bson:"file_id"`
	UserID    string    `json:"-" bson:"user_id"`
	Name      string    `json:"name" bson:"name"`
	Type      string    `json:"type" bson:"type"`
	Category  string    `json:"category" bson:"category"`
	Size      int64     `json:"size" bson:"size"`
	Path      string    `json:"path" bson:"path"`
	Hash      string    `json:"-" bson:"hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
