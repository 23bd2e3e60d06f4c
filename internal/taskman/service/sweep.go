package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tasknest/tasknest/internal/taskman/store"
)

// SweepService periodically promotes due pending tasks to done. It is the
// only writer that moves a task to done; user edits always reset tasks to
// pending, so the sweep re-evaluates them on the next tick.
type SweepService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweepService creates a new sweep service with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewSweepService(st store.Store, logger *slog.Logger, interval time.Duration) *SweepService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &SweepService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that runs a sweep on every tick.
// Non-blocking; call Stop() for a graceful shutdown.
func (s *SweepService) Start() {
	go s.run()
	s.Logger.Info("sweep service started", "interval", s.Interval)
}

// Stop shuts down the background worker. Blocks until any in-flight sweep
// pass has finished, so no tick is ever cut off halfway.
func (s *SweepService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("sweep service stopped")
}

// run is the main background worker loop. Only one sweep pass is ever in
// flight: ticks are consumed serially on this goroutine.
func (s *SweepService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup to catch tasks that came due while the
	// process was down.
	s.tick()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopCh:
			return
		}
	}
}

func (s *SweepService) tick() {
	done, err := s.Sweep(context.Background())
	if err != nil {
		// Storage failures never halt the scheduler; the next tick gets a
		// fresh chance.
		s.Logger.Error("sweep pass failed", "error", err)
		return
	}
	if done > 0 {
		s.Logger.Info("sweep pass completed", "tasks_done", done)
	} else {
		s.Logger.Debug("sweep pass completed, nothing due")
	}
}

// Sweep runs a single pass: query the due-set once, then promote each task
// independently. Returns the number of tasks transitioned to done.
//
// The promotion is a compare-and-swap on status, so a task edited (and
// thereby reset to pending with a new execution time) between the query
// and the write is left alone rather than clobbered to done.
func (s *SweepService) Sweep(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	due, err := s.Store.Tasks().ListDueTasks(ctx, now)
	if err != nil {
		return 0, err
	}

	var done int
	for _, task := range due {
		transitioned, err := s.Store.Tasks().MarkTaskDone(ctx, task.ID)
		if err != nil {
			// Per-task failures don't block the rest of the due-set.
			s.Logger.Error("failed to mark task done", "task_id", task.ID, "error", err)
			continue
		}
		if !transitioned {
			// Lost the race with a concurrent edit; the task is pending
			// again with fresh fields and belongs to a later sweep.
			s.Logger.Debug("task no longer pending, skipped", "task_id", task.ID)
			continue
		}

		s.Logger.Info("task marked done", "task_id", task.ID, "name", task.Name, "user_id", task.UserID)
		done++
	}

	return done, nil
}
