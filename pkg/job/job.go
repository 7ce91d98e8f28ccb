// Package job runs named background tasks on a fixed interval.
package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type task struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	fn       func(ctx context.Context) error
}

type Scheduler struct {
	tasks []task
	wg    sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register adds a task that runs once at start and then every interval.
// A run is cancelled after timeout; zero means no per-run deadline.
func (s *Scheduler) Register(name string, interval, timeout time.Duration, fn func(ctx context.Context) error) *Scheduler {
	s.tasks = append(s.tasks, task{
		name:     name,
		interval: interval,
		timeout:  timeout,
		fn:       fn,
	})

	return s
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, t := range s.tasks {
		s.wg.Add(1)

		go s.run(ctx, t)
	}
}

func (s *Scheduler) run(ctx context.Context, t task) {
	defer s.wg.Done()

	l := slog.Default().With("task", t.name)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		err := s.runOnce(ctx, t)
		if err != nil {
			l.Error("task failed", "error", err)
		} else {
			l.Debug("task done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, t task) (err error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("task panic", "task", t.name, "error", r, "stack", string(debug.Stack()))
		}
	}()

	return t.fn(ctx)
}

// Wait blocks until every task loop has observed context cancellation.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
