// Package scheduler runs the batch refresh cycle: fan-out over every
// registered fetcher, join on completion, record per-routine outcomes.
// A single in-process flag keeps cycles from overlapping; this is
// best-effort exclusion within one process only, a multi-instance
// deployment would need a distributed lock.
package scheduler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"go-bovine/db"
	"go-bovine/fetchers"
	"go-bovine/types"
)

// Scheduler owns the refresh cycle state. Construct with New and share
// one instance between the cron entry and the HTTP trigger handler.
type Scheduler struct {
	store    db.SignalStore
	fetchers []fetchers.Fetcher
	interval time.Duration

	inProgress atomic.Bool

	mu         sync.Mutex
	lastUpdate time.Time
	outcomes   map[string]string
}

func New(store db.SignalStore, fs []fetchers.Fetcher, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:    store,
		fetchers: fs,
		interval: interval,
		outcomes: make(map[string]string),
	}
}

// ShouldRefresh reports whether the cache is due for a refresh: never
// refreshed, or the interval has elapsed since the last completed run.
// Advisory only; the caller decides whether to refresh.
func (s *Scheduler) ShouldRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastUpdate.IsZero() {
		return true
	}
	return time.Since(s.lastUpdate) > s.interval
}

// RunRefresh executes one full refresh cycle. If a cycle is already in
// progress the call is dropped as a no-op: second triggers are never
// queued. Every fetcher runs concurrently; a failure in one never
// blocks or cancels the others.
func (s *Scheduler) RunRefresh(ctx context.Context) {
	if !s.inProgress.CompareAndSwap(false, true) {
		log.Println("Refresh already in progress, dropping trigger")
		return
	}
	defer s.inProgress.Store(false)

	log.Printf("Starting refresh cycle over %d fetchers", len(s.fetchers))
	start := time.Now()

	outcomes := make(map[string]string, len(s.fetchers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, f := range s.fetchers {
		wg.Add(1)
		go func(f fetchers.Fetcher) {
			defer wg.Done()
			msg, err := f.Fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Fetcher %s failed: %v", f.Name(), err)
				outcomes[f.Name()] = "error: " + err.Error()
				return
			}
			outcomes[f.Name()] = msg
		}(f)
	}
	wg.Wait()

	now := time.Now().UTC()
	s.mu.Lock()
	s.lastUpdate = now
	s.outcomes = outcomes
	s.mu.Unlock()

	status := types.BatchStatus{
		LastUpdate: now,
		NextUpdate: now.Add(s.interval),
		Outcomes:   outcomes,
	}
	if err := s.store.SetBatchStatus(ctx, status); err != nil {
		log.Printf("Failed to persist batch status: %v", err)
	}

	log.Printf("Refresh cycle finished in %s", time.Since(start).Round(time.Millisecond))
}

// TriggerAsync schedules a refresh to run in the background and returns
// immediately, regardless of ShouldRefresh. Collisions with a running
// cycle are silently dropped inside RunRefresh.
func (s *Scheduler) TriggerAsync(ctx context.Context) {
	go s.RunRefresh(ctx)
}

// Status returns the current batch update record.
func (s *Scheduler) Status() types.BatchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := types.BatchStatus{
		LastUpdate: s.lastUpdate,
		InProgress: s.inProgress.Load(),
		Outcomes:   make(map[string]string, len(s.outcomes)),
	}
	if !s.lastUpdate.IsZero() {
		status.NextUpdate = s.lastUpdate.Add(s.interval)
	}
	for k, v := range s.outcomes {
		status.Outcomes[k] = v
	}
	return status
}

// LastUpdate returns the completion time of the last refresh cycle, or
// the zero time if none has completed.
func (s *Scheduler) LastUpdate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdate
}

// StartCron registers the periodic refresh and starts the cron runner.
// The entry checks ShouldRefresh so a recent manual trigger skips the
// scheduled run.
func (s *Scheduler) StartCron() *cron.Cron {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	_, err := c.AddFunc("*/10 * * * *", func() {
		if !s.ShouldRefresh() {
			log.Println("CronJob: cache still fresh, skipping refresh")
			return
		}
		log.Println("CronJob: Signal Refresh Running")
		s.RunRefresh(context.Background())
	})
	if err != nil {
		log.Println("Error scheduling signal refresh:", err)
	}

	c.Start()
	return c
}
