package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bovine/db"
	"go-bovine/fetchers"
)

// fakeFetcher blocks on release when set, so tests can hold a cycle
// open while poking the scheduler from outside.
type fakeFetcher struct {
	name    string
	err     error
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *fakeFetcher) Name() string { return f.name }

func (f *fakeFetcher) Fetch(ctx context.Context) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	return "ok", nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRunRefreshRecordsOutcomes(t *testing.T) {
	store := db.NewMemoryStore()
	good := &fakeFetcher{name: "weather"}
	bad := &fakeFetcher{name: "fires", err: errors.New("upstream 503")}
	s := New(store, []fetchers.Fetcher{good, bad}, 10*time.Minute)

	s.RunRefresh(context.Background())

	status := s.Status()
	assert.Equal(t, "ok", status.Outcomes["weather"])
	assert.Equal(t, "error: upstream 503", status.Outcomes["fires"])
	assert.False(t, status.LastUpdate.IsZero())
	assert.Equal(t, status.LastUpdate.Add(10*time.Minute), status.NextUpdate)

	// The cycle counts as completed even with a failing fetcher.
	persisted, err := store.GetBatchStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.Outcomes, persisted.Outcomes)
}

func TestRunRefreshDropsOverlappingCycle(t *testing.T) {
	store := db.NewMemoryStore()
	release := make(chan struct{})
	slow := &fakeFetcher{name: "weather", release: release}
	s := New(store, []fetchers.Fetcher{slow}, 10*time.Minute)

	done := make(chan struct{})
	go func() {
		s.RunRefresh(context.Background())
		close(done)
	}()

	// Wait until the first cycle is inside its fetcher.
	require.Eventually(t, func() bool { return slow.callCount() == 1 },
		time.Second, time.Millisecond)
	assert.True(t, s.Status().InProgress)

	// A second trigger while in progress is a no-op, not queued.
	s.RunRefresh(context.Background())
	assert.Equal(t, 1, slow.callCount())
	assert.True(t, s.LastUpdate().IsZero())

	close(release)
	<-done

	assert.Equal(t, 1, slow.callCount())
	assert.False(t, s.LastUpdate().IsZero())
	assert.False(t, s.Status().InProgress)
}

func TestFailureIsolation(t *testing.T) {
	store := db.NewMemoryStore()
	fs := []fetchers.Fetcher{
		&fakeFetcher{name: "a"},
		&fakeFetcher{name: "b", err: errors.New("boom")},
		&fakeFetcher{name: "c"},
	}
	s := New(store, fs, time.Minute)

	s.RunRefresh(context.Background())

	status := s.Status()
	assert.Equal(t, "ok", status.Outcomes["a"])
	assert.Equal(t, "error: boom", status.Outcomes["b"])
	assert.Equal(t, "ok", status.Outcomes["c"])
}

func TestShouldRefresh(t *testing.T) {
	s := New(db.NewMemoryStore(), nil, 10*time.Minute)

	// Never refreshed.
	assert.True(t, s.ShouldRefresh())

	s.mu.Lock()
	s.lastUpdate = time.Now().Add(-time.Minute)
	s.mu.Unlock()
	assert.False(t, s.ShouldRefresh())

	s.mu.Lock()
	s.lastUpdate = time.Now().Add(-11 * time.Minute)
	s.mu.Unlock()
	assert.True(t, s.ShouldRefresh())
}
