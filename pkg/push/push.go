// Package push delivers best-effort local notifications. Delivery is a
// courtesy on top of the inbox: failure or missing permission never
// surfaces as an error.
package push

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/santoshphuyala/sambat/pkg/domain"
)

// Notification is one outbound reminder.
type Notification struct {
	Identity string
	Title    string
	Body     string
	Urgency  domain.Urgency
	Kind     domain.Kind
}

// Notifier is the platform delivery contract.
type Notifier interface {
	// Notify emits the notification if permitted. It never returns an
	// error; degraded delivery is silent.
	Notify(n Notification)
}

// Permission mirrors the platform notification permission states.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

// Terminal renders notifications to the terminal, which is this
// program's platform surface. It keeps the platform adapter semantics:
// a permission gate decided once per session, dedup by identity tag,
// and sticky styling for urgencies that require interaction.
type Terminal struct {
	Enabled bool

	permission Permission
	asked      bool
	seen       map[string]bool
}

func NewTerminal(enabled bool) *Terminal {
	return &Terminal{Enabled: enabled, seen: make(map[string]bool)}
}

// requestPermission resolves the session permission at most once.
func (t *Terminal) requestPermission() Permission {
	if t.asked {
		return t.permission
	}
	t.asked = true
	if t.Enabled {
		t.permission = PermissionGranted
	} else {
		t.permission = PermissionDenied
	}
	return t.permission
}

// Notify prints the notification once per identity per session.
func (t *Terminal) Notify(n Notification) {
	if t.requestPermission() != PermissionGranted {
		return
	}
	if t.seen == nil {
		t.seen = make(map[string]bool)
	}
	if t.seen[n.Identity] {
		return
	}
	t.seen[n.Identity] = true

	c := styleFor(n.Urgency)
	_, _ = c.Fprintf(color.Output, "%s %s", n.Kind.Icon(), n.Title)
	if n.Body != "" {
		_, _ = fmt.Fprintf(color.Output, " — %s", n.Body)
	}
	if n.Urgency.RequireInteraction() {
		faint := color.New(color.Faint)
		_, _ = faint.Fprintf(color.Output, "  (dismiss: sambat dismiss %q)", n.Identity)
	}
	_, _ = fmt.Fprintln(color.Output)
}

func styleFor(u domain.Urgency) *color.Color {
	switch u {
	case domain.UrgencyOverdue:
		return color.New(color.FgRed, color.Bold)
	case domain.UrgencyToday:
		return color.New(color.FgRed)
	case domain.UrgencyTomorrow:
		return color.New(color.FgYellow, color.Bold)
	case domain.UrgencySoon:
		return color.New(color.FgYellow)
	case domain.UrgencyConfirmation:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Faint)
	}
}

// Recorder captures notifications for tests and for surfaces that render
// later.
type Recorder struct {
	Sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Sent = append(r.Sent, n)
}

// Identities lists the tags delivered so far, in order.
func (r *Recorder) Identities() string {
	ids := make([]string, 0, len(r.Sent))
	for _, n := range r.Sent {
		ids = append(ids, n.Identity)
	}
	return strings.Join(ids, ",")
}
