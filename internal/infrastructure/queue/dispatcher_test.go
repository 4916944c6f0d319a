package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

type recordingRepo struct {
	mu      sync.Mutex
	entries []*domain.Activity
}

func (r *recordingRepo) Create(_ context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, activity)
	return nil
}

func (r *recordingRepo) snapshot() []*domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Activity, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitFor(t *testing.T, repo *recordingRepo, n int) []*domain.Activity {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if entries := repo.snapshot(); len(entries) >= n {
			return entries
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d records, have %d", n, len(repo.snapshot()))
	return nil
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Record(&domain.Activity{UserID: "user-1", Title: strconv.Itoa(i)})
	}

	entries := waitFor(t, repo, n)
	for i, a := range entries {
		if a.Title != strconv.Itoa(i) {
			t.Fatalf("record %d out of order: %q", i, a.Title)
		}
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	repo := &recordingRepo{}
	// Workers never started, so the single channel fills and Record must not
	// block the caller.
	d := NewDispatcher(1, repo, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(&domain.Activity{UserID: "user-1", Title: strconv.Itoa(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}
	if entries := repo.snapshot(); len(entries) != 0 {
		t.Fatalf("unexpected persistence without workers: %d", len(entries))
	}
}

func TestDispatcher_IgnoresNil(t *testing.T) {
	d := NewDispatcher(1, &recordingRepo{}, zerolog.Nop())
	d.Record(nil)
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingRepo{}, zerolog.Nop())
	for _, userID := range []string{"user-1", "user-2", ""} {
		if d.shardIndex(userID) != d.shardIndex(userID) {
			t.Fatalf("shard for %q not deterministic", userID)
		}
	}
}
