package push

import (
	"testing"

	"github.com/santoshphuyala/sambat/pkg/domain"
)

func TestTerminalPermissionAskedOnce(t *testing.T) {
	n := NewTerminal(false)
	if n.requestPermission() != PermissionDenied {
		t.Fatalf("disabled notifier should resolve to denied")
	}
	// flipping Enabled later must not change an already-decided session
	n.Enabled = true
	if n.requestPermission() != PermissionDenied {
		t.Fatalf("permission is decided at most once per session")
	}
}

func TestTerminalDeniedIsSilent(t *testing.T) {
	n := NewTerminal(false)
	n.Notify(Notification{Identity: "bill:1:5", Title: "Bill due", Urgency: domain.UrgencySoon, Kind: domain.Bill})
	if len(n.seen) != 0 {
		t.Fatalf("denied notifier must not deliver")
	}
}

func TestTerminalDedupesByTag(t *testing.T) {
	n := NewTerminal(true)
	note := Notification{Identity: "bill:1:5", Title: "Bill due", Urgency: domain.UrgencySoon, Kind: domain.Bill}
	n.Notify(note)
	n.Notify(note)
	if !n.seen["bill:1:5"] {
		t.Fatalf("expected delivery recorded")
	}
	if len(n.seen) != 1 {
		t.Fatalf("expected one tag, got %d", len(n.seen))
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Notify(Notification{Identity: "a"})
	r.Notify(Notification{Identity: "b"})
	if r.Identities() != "a,b" {
		t.Fatalf("unexpected identities %q", r.Identities())
	}
}
