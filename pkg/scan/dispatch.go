package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/push"
	"github.com/santoshphuyala/sambat/pkg/remind"
)

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Dispatcher routes due events that survive stage evaluation and dedup
// into the inbox and out to the push layer. It never writes dismiss or
// snooze state; that stays user-driven.
type Dispatcher struct {
	Evaluator *Evaluator
	Dismiss   *remind.DismissStore
	Inbox     *remind.Inbox
	Push      push.Notifier
}

// Dispatch evaluates one event. It returns whether a reminder was
// delivered (to the inbox, the push layer, or both).
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.DueEvent) (bool, error) {
	stage, urgency, deliver := d.Evaluator.Evaluate(ev)
	if !deliver {
		return false, nil
	}

	identity := remind.Identity(ev.Kind, ev.SourceID, stage)
	suppressed, err := d.Dismiss.Suppressed(identity)
	if err != nil {
		return false, fmt.Errorf("scan: dedup lookup for %s: %w", identity, err)
	}
	if suppressed {
		return false, nil
	}

	title := Title(ev.Kind, urgency, ev.DaysUntil)
	body := Body(ev)

	if _, err := d.Inbox.Add(remind.Item{
		Identity:    identity,
		Title:       title,
		Body:        body,
		Kind:        ev.Kind.String(),
		DueDate:     ev.DueDate,
		DaysUntil:   ev.DaysUntil,
		DisplayName: ev.DisplayName,
		Urgency:     urgency.String(),
	}); err != nil {
		return false, fmt.Errorf("scan: inbox insert for %s: %w", identity, err)
	}

	if d.Push != nil {
		d.Push.Notify(push.Notification{
			Identity: identity,
			Title:    title,
			Body:     body,
			Urgency:  urgency,
			Kind:     ev.Kind,
		})
	}
	return true, nil
}

// Title phrases the reminder headline for its urgency band.
func Title(kind domain.Kind, urgency domain.Urgency, daysUntil int) string {
	label := kind.Label()
	switch urgency {
	case domain.UrgencyOverdue:
		if kind == domain.MedicineExpiry {
			return fmt.Sprintf("%s: expired %d day(s) ago", label, -daysUntil)
		}
		return fmt.Sprintf("%s overdue by %d day(s)", label, -daysUntil)
	case domain.UrgencyToday:
		if kind == domain.MedicineStock {
			return fmt.Sprintf("%s: out of stock", label)
		}
		return fmt.Sprintf("%s due today", label)
	case domain.UrgencyTomorrow:
		if kind == domain.MedicineStock {
			return fmt.Sprintf("%s: critically low", label)
		}
		return fmt.Sprintf("%s due tomorrow", label)
	case domain.UrgencyConfirmation:
		return fmt.Sprintf("%s payment recorded", label)
	default:
		if kind == domain.MedicineStock {
			return fmt.Sprintf("%s: running low", label)
		}
		return fmt.Sprintf("%s due in %d days", label, daysUntil)
	}
}

// Body phrases the reminder detail line.
func Body(ev domain.DueEvent) string {
	body := ev.DisplayName
	if ev.DueDate != "" {
		body = fmt.Sprintf("%s (due %s)", body, ev.DueDate)
	}
	if ev.Context != "" {
		body = fmt.Sprintf("%s · %s", body, ev.Context)
	}
	return body
}

// Runner executes every scanner in registration order, isolating
// per-domain failures so one bad store never aborts the pass.
type Runner struct {
	Scanners   []Scanner
	Dispatcher *Dispatcher
}

// Run performs one full scan pass and returns how many reminders were
// delivered.
func (r *Runner) Run(ctx context.Context) int {
	delivered := 0
	for _, s := range r.Scanners {
		events, err := s.Scan(ctx)
		if err != nil {
			warnf("scan: %s: %s", s.Kind(), err)
			continue
		}
		for _, ev := range events {
			ok, err := r.Dispatcher.Dispatch(ctx, ev)
			if err != nil {
				warnf("scan: %s: %s", s.Kind(), err)
				continue
			}
			if ok {
				delivered++
			}
		}
	}
	return delivered
}
