// Package scheduler owns the daily scan trigger: one timer aligned to a
// wall-clock hour, plus an immediate kick at start.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunning reports a Start on a scheduler that was not stopped first.
var ErrRunning = errors.New("scheduler: already running")

// Scheduler fires the scan callback once shortly after Start and then
// once per day at the configured hour. The handle must be stopped before
// a new one starts; duplicate timers are how reminder storms happen.
type Scheduler struct {
	Hour int
	Run  func(ctx context.Context)
	Now  func() time.Time

	mu      sync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

func New(hour int, run func(ctx context.Context)) *Scheduler {
	return &Scheduler{Hour: hour, Run: run, Now: time.Now}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NextAligned returns the next occurrence of the scheduler's hour after
// now.
func (s *Scheduler) NextAligned(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Running reports whether the handle currently owns a pending timer.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// Start runs an immediate scan and installs the daily timer. Starting a
// scheduler that is already running is a checked error.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return ErrRunning
	}
	stop := make(chan struct{})
	stopped := make(chan struct{})
	s.stop = stop
	s.stopped = stopped
	s.mu.Unlock()

	go func() {
		defer close(stopped)

		// Immediate scan so the user sees current state without
		// waiting for the aligned firing.
		s.Run(ctx)

		timer := time.NewTimer(time.Until(s.NextAligned(s.now())))
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-timer.C:
				s.Run(ctx)
				timer.Reset(time.Until(s.NextAligned(s.now())))
			}
		}
	}()
	return nil
}

// Stop cancels the pending timer and waits for the loop to exit. Stopping
// a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	stop := s.stop
	stopped := s.stopped
	s.stop = nil
	s.stopped = nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-stopped
}
