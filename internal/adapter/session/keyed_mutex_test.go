package session

import (
	"context"
	"testing"
	"time"
)

func TestKeyedMutex_EntryFreedAfterLastUnlock(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("s1")
	km.mu.Lock()
	if len(km.locks) != 1 {
		t.Errorf("entries = %d, want 1 while held", len(km.locks))
	}
	km.mu.Unlock()

	unlock()
	km.mu.Lock()
	if len(km.locks) != 0 {
		t.Errorf("entries = %d, want 0 after release", len(km.locks))
	}
	km.mu.Unlock()
}

func TestLock_ExclusionSurvivesEviction(t *testing.T) {
	store := newTestStore(t, 1)
	ctx := context.Background()

	id, _, _ := store.GetOrCreate(ctx, "")
	unlock := store.Lock(id)

	// Capacity eviction drops the session while its turn still holds
	// the lock. A second Lock on the same id must keep waiting on the
	// same mutex, not mint a new one.
	store.GetOrCreate(ctx, "")

	acquired := make(chan struct{})
	go func() {
		u := store.Lock(id)
		u()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first is still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock never handed over after release")
	}
}
