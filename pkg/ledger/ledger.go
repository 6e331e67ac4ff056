package ledger

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/santoshphuyala/sambat/pkg/calendar"
	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/push"
	"github.com/santoshphuyala/sambat/pkg/remind"
)

// Ledger is the settlement service: it owns the tiered repository and
// emits confirmation reminders for renewals.
type Ledger struct {
	Repo  *Tiered
	Inbox *remind.Inbox
	Push  push.Notifier
	Cal   *calendar.Adapter
	Now   func() time.Time

	lastRecorded time.Time
}

func New(repo *Tiered, inbox *remind.Inbox, notifier push.Notifier, cal *calendar.Adapter) *Ledger {
	return &Ledger{Repo: repo, Inbox: inbox, Push: notifier, Cal: cal, Now: time.Now}
}

func (l *Ledger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// stamp assigns the id and the monotonic RecordedAt.
func (l *Ledger) stamp(rec *PaymentRecord) {
	if rec.LedgerID == "" {
		rec.LedgerID = uuid.NewString()
	}
	now := l.now()
	if !now.After(l.lastRecorded) {
		now = l.lastRecorded.Add(time.Nanosecond)
	}
	l.lastRecorded = now
	rec.RecordedAt = now
}

// Record writes one settlement record. It never fails loudly: storage
// trouble is logged and the overflow tier absorbs the write, so marking
// something paid always appears to succeed.
func (l *Ledger) Record(rec PaymentRecord) PaymentRecord {
	l.stamp(&rec)
	if rec.PaidDate == "" && l.Cal != nil {
		if today, err := l.Cal.Today(); err == nil {
			rec.PaidDate = today.String()
		}
	}
	if err := l.Repo.Append(rec); err != nil {
		fmt.Fprintf(os.Stderr, "ledger: record %s: %s\n", rec.LedgerID, err)
	}
	return rec
}

// History returns settlement records newest first, flushing the overflow
// tier on the way. A nil filter returns everything.
func (l *Ledger) History(ctx context.Context, filter Filter) ([]PaymentRecord, error) {
	records, err := l.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	out := make([]PaymentRecord, 0, len(records))
	for _, rec := range records {
		if filter(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Delete removes one record from history.
func (l *Ledger) Delete(id string) error {
	return l.Repo.Delete(id)
}

// Clear wipes the whole history.
func (l *Ledger) Clear(ctx context.Context) error {
	return l.Repo.Clear(ctx)
}

// Totals sums history amounts per source token.
func (l *Ledger) Totals(ctx context.Context) (map[string]decimal.Decimal, error) {
	records, err := l.History(ctx, nil)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		totals[rec.Source] = totals[rec.Source].Add(rec.Amount)
	}
	return totals, nil
}

// Renewal carries the settlement details for NotifyRenewal.
type Renewal struct {
	Kind          domain.Kind
	ItemID        string
	DisplayName   string
	NewDueDate    string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string
	Notes         string
	Meta          map[string]string
}

// NotifyRenewal is the single settlement entry point: it writes the
// payment record, then drops a confirmation reminder into the inbox and
// the push layer. The confirmation has its own urgency and is not
// subject to the staged dedup rules.
func (l *Ledger) NotifyRenewal(ctx context.Context, r Renewal) (PaymentRecord, error) {
	rec := l.Record(PaymentRecord{
		Source:         r.Kind.LedgerSource(),
		SourceItemID:   r.ItemID,
		DisplayName:    r.DisplayName,
		Amount:         r.Amount,
		Currency:       r.Currency,
		SettledDueDate: r.NewDueDate,
		PaymentMethod:  r.PaymentMethod,
		Notes:          r.Notes,
		Meta:           r.Meta,
	})

	identity := remind.Identity(r.Kind, r.ItemID, "confirmation-"+rec.LedgerID)
	title := fmt.Sprintf("%s payment recorded", r.Kind.Label())
	body := r.DisplayName
	if !r.Amount.IsZero() {
		body = fmt.Sprintf("%s · %s %s", body, r.Amount, r.Currency)
	}
	if r.NewDueDate != "" {
		body = fmt.Sprintf("%s · next due %s", body, r.NewDueDate)
	}

	if _, err := l.Inbox.Add(remind.Item{
		Identity:    identity,
		Title:       title,
		Body:        body,
		Kind:        r.Kind.String(),
		DueDate:     r.NewDueDate,
		DisplayName: r.DisplayName,
		Urgency:     domain.UrgencyConfirmation.String(),
	}); err != nil {
		return rec, fmt.Errorf("ledger: confirmation inbox insert: %w", err)
	}
	if l.Push != nil {
		l.Push.Notify(push.Notification{
			Identity: identity,
			Title:    title,
			Body:     body,
			Urgency:  domain.UrgencyConfirmation,
			Kind:     r.Kind,
		})
	}
	return rec, nil
}
