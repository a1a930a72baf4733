package syncer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// staleRunAge is how long a sync run may stay running before startup
// recovery marks it crashed.
const staleRunAge = 2 * time.Hour

// ErrCycleRunning is returned by RunNow when a cycle is already in flight.
var ErrCycleRunning = errors.New("syncer: sync cycle already running")

// Scheduler runs the session refresh and, when enabled, the sales sync on a
// fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	syncer *Syncer
	log    *slog.Logger

	// running guards against a slow run overlapping the next tick.
	running sync.Mutex
}

// NewScheduler creates a Scheduler that runs sy every interval.
func NewScheduler(sy *Syncer, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		syncer: sy,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.run); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "sales", s.syncer.SalesEnabled())
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// RecoverStaleSyncRuns marks sync runs that a previous process left running
// as crashed. Failures are logged, not returned.
func (s *Scheduler) RecoverStaleSyncRuns(ctx context.Context) {
	if !s.syncer.SalesEnabled() {
		return
	}

	n, err := s.syncer.sales.RecoverStaleSyncRuns(ctx, staleRunAge)
	if err != nil {
		s.log.Error("recovering stale sync runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale sync runs as crashed", "count", n)
	}
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RunNow runs one cycle synchronously and returns its error. It returns
// ErrCycleRunning without doing anything when a cycle is already in flight.
func (s *Scheduler) RunNow(ctx context.Context) error {
	if !s.running.TryLock() {
		s.log.Warn("sync cycle already running, skipping")
		return ErrCycleRunning
	}
	defer s.running.Unlock()

	return s.cycle(ctx)
}

func (s *Scheduler) run() {
	s.RunNow(context.Background()) //nolint:errcheck // cycle logs its own failures
}

// cycle refreshes first so the sales sync uses a live token.
func (s *Scheduler) cycle(ctx context.Context) error {
	if _, err := s.syncer.RefreshSession(ctx); err != nil {
		s.log.Error("scheduled session refresh failed", "error", err)
		return err
	}

	if !s.syncer.SalesEnabled() {
		return nil
	}
	if _, err := s.syncer.SyncSales(ctx); err != nil {
		s.log.Error("scheduled sales sync failed", "error", err)
		return err
	}
	return nil
}
