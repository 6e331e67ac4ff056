package remind

import (
	"fmt"
	"testing"
	"time"

	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/store"
)

func testKV(t *testing.T) *store.KV {
	t.Helper()
	db, err := store.Open(store.FixedConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return store.NewKV(db)
}

func TestIdentityIsDeterministic(t *testing.T) {
	a := Identity(domain.Bill, "7f3c", "5")
	b := Identity(domain.Bill, "7f3c", "5")
	if a != b {
		t.Fatalf("identity not stable: %s vs %s", a, b)
	}
	if a == Identity(domain.Bill, "7f3c", "overdue") {
		t.Fatalf("stages must separate identities")
	}
	if a == Identity(domain.Subscription, "7f3c", "5") {
		t.Fatalf("kinds must separate identities")
	}
}

func TestDismiss(t *testing.T) {
	s := NewDismissStore(testKV(t))

	ok, err := s.IsDismissed("bill:1:5")
	if err != nil || ok {
		t.Fatalf("fresh store should have nothing dismissed: %v %v", ok, err)
	}

	if err := s.Dismiss("bill:1:5"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if err := s.Dismiss("bill:1:5"); err != nil {
		t.Fatalf("re-dismiss should be a no-op: %v", err)
	}

	ok, err = s.IsDismissed("bill:1:5")
	if err != nil || !ok {
		t.Fatalf("expected dismissed: %v %v", ok, err)
	}

	suppressed, err := s.Suppressed("bill:1:5")
	if err != nil || !suppressed {
		t.Fatalf("dismissed identity must be suppressed: %v %v", suppressed, err)
	}
}

func TestDismissTrimsOldest(t *testing.T) {
	s := NewDismissStore(testKV(t))
	for i := 0; i < maxDismissed+1; i++ {
		if err := s.Dismiss(fmt.Sprintf("bill:%d:0", i)); err != nil {
			t.Fatalf("dismiss %d: %v", i, err)
		}
	}
	if ok, _ := s.IsDismissed("bill:0:0"); ok {
		t.Fatalf("oldest entry should have been trimmed")
	}
	if ok, _ := s.IsDismissed(fmt.Sprintf("bill:%d:0", maxDismissed)); !ok {
		t.Fatalf("newest entry should survive")
	}
}

func TestSnoozeExpires(t *testing.T) {
	now := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	s := NewDismissStore(testKV(t))
	s.Now = func() time.Time { return now }

	if err := s.Snooze("insurance:2:10", 30); err != nil {
		t.Fatalf("snooze: %v", err)
	}

	if ok, _ := s.IsSnoozed("insurance:2:10"); !ok {
		t.Fatalf("expected snoozed right after snoozing")
	}

	now = now.Add(29 * time.Minute)
	if ok, _ := s.IsSnoozed("insurance:2:10"); !ok {
		t.Fatalf("expected still snoozed at 29 minutes")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := s.IsSnoozed("insurance:2:10"); ok {
		t.Fatalf("expected eligible again after expiry")
	}
	if suppressed, _ := s.Suppressed("insurance:2:10"); suppressed {
		t.Fatalf("expired snooze must not suppress")
	}
}

func TestSnoozeRejectsNonPositive(t *testing.T) {
	s := NewDismissStore(testKV(t))
	if err := s.Snooze("x", 0); err == nil {
		t.Fatalf("expected error for zero minutes")
	}
	if err := s.Snooze("x", -5); err == nil {
		t.Fatalf("expected error for negative minutes")
	}
}
