package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNextAligned(t *testing.T) {
	s := New(8, nil)

	before := time.Date(2026, time.August, 31, 7, 0, 0, 0, time.UTC)
	next := s.NextAligned(before)
	if next != time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC) {
		t.Fatalf("before the hour should align same day, got %v", next)
	}

	after := time.Date(2026, time.August, 31, 9, 30, 0, 0, time.UTC)
	next = s.NextAligned(after)
	if next != time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC) {
		t.Fatalf("after the hour should align next day, got %v", next)
	}

	exactly := time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)
	next = s.NextAligned(exactly)
	if next != time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC) {
		t.Fatalf("exactly on the hour should align next day, got %v", next)
	}
}

func TestStartRunsImmediately(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := New(8, func(ctx context.Context) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected an immediate scan after start")
	}
}

func TestStartTwiceIsChecked(t *testing.T) {
	s := New(8, func(ctx context.Context) {})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning, got %v", err)
	}

	s.Stop()
	if s.Running() {
		t.Fatalf("expected stopped")
	}

	// a stopped handle may be started again
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	s.Stop()
}

func TestStopIsIdempotent(t *testing.T) {
	s := New(8, func(ctx context.Context) {})
	s.Stop() // never started

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Stop()
	s.Stop()
}
