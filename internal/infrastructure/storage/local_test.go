package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "https://app.test/", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}

	url, err := store.Put(context.Background(), "accounts", "icon.png", "image/png", 4, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if url != "https://app.test/static/accounts/icon.png" {
		t.Fatalf("unexpected url: %q", url)
	}

	path := filepath.Join(dir, "accounts", "icon.png")
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(body) != "data" {
		t.Fatalf("unexpected contents: %q", body)
	}

	if err := store.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete")
	}
}

func TestLocalStore_DeleteIgnoresForeignPaths(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "https://app.test", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}

	// Paths outside the static prefix (e.g. S3 urls from a previous mode) are
	// skipped, and deleting a missing file is not an error.
	if err := store.Delete(context.Background(), "https://bucket.s3.amazonaws.com/accounts/icon.png",
		"https://app.test/static/accounts/missing.png"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestDisabledStore(t *testing.T) {
	store := &DisabledStore{}

	url, err := store.Put(context.Background(), "accounts", "icon.png", "image/png", 4, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty path, got %q", url)
	}

	if err := store.Delete(context.Background(), "anything"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
