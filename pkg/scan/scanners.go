package scan

import (
	"context"
	"fmt"

	"github.com/santoshphuyala/sambat/pkg/calendar"
	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/store"
)

// Scanner reads one domain store and yields the due events for records
// that are still relevant. Scanners are pure read-and-transform; a record
// with a bad date is skipped with a diagnostic, never fatal.
type Scanner interface {
	Kind() domain.Kind
	Scan(ctx context.Context) ([]domain.DueEvent, error)
}

// daysUntil resolves a due-date distance, reporting whether the record
// qualifies. Unparseable dates fail closed.
func daysUntil(cal *calendar.Adapter, kind domain.Kind, id, due string) (int, bool) {
	if due == "" {
		warnf("scan: %s %s: no due date, skipping", kind, id)
		return 0, false
	}
	days, err := cal.DaysUntil(due)
	if err != nil {
		warnf("scan: %s %s: %s, skipping", kind, id, err)
		return 0, false
	}
	return days, true
}

// InsuranceScanner emits events for active policies approaching expiry.
type InsuranceScanner struct {
	Store *store.Collection[domain.InsurancePolicy]
	Cal   *calendar.Adapter
}

func (s *InsuranceScanner) Kind() domain.Kind { return domain.Insurance }

func (s *InsuranceScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, p := range s.Store.All(ctx) {
		if p.Status != "active" {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), p.ID, p.ExpiryDate)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    p.ID,
			DisplayName: p.Name,
			DueDate:     p.ExpiryDate,
			DaysUntil:   days,
			Context:     fmt.Sprintf("%s · policy %s · premium %s %s", p.Provider, p.PolicyNumber, p.Premium, p.Currency),
		})
	}
	return events, nil
}

// BillScanner emits events for unpaid bills.
type BillScanner struct {
	Store *store.Collection[domain.BillRecord]
	Cal   *calendar.Adapter
}

func (s *BillScanner) Kind() domain.Kind { return domain.Bill }

func (s *BillScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, b := range s.Store.All(ctx) {
		if b.Paid {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), b.ID, b.DueDate)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    b.ID,
			DisplayName: b.Name,
			DueDate:     b.DueDate,
			DaysUntil:   days,
			Context:     fmt.Sprintf("%s · %s %s", b.Category, b.Amount, b.Currency),
		})
	}
	return events, nil
}

// SubscriptionScanner emits events for active subscriptions approaching
// renewal.
type SubscriptionScanner struct {
	Store *store.Collection[domain.SubscriptionRecord]
	Cal   *calendar.Adapter
}

func (s *SubscriptionScanner) Kind() domain.Kind { return domain.Subscription }

func (s *SubscriptionScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, sub := range s.Store.All(ctx) {
		if !sub.Active {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), sub.ID, sub.RenewDate)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    sub.ID,
			DisplayName: sub.Name,
			DueDate:     sub.RenewDate,
			DaysUntil:   days,
			Context:     fmt.Sprintf("%s · %s %s", sub.Provider, sub.Fee, sub.Currency),
		})
	}
	return events, nil
}

// RecurringScanner emits events for active recurring payments.
type RecurringScanner struct {
	Store *store.Collection[domain.RecurringPayment]
	Cal   *calendar.Adapter
}

func (s *RecurringScanner) Kind() domain.Kind { return domain.Recurring }

func (s *RecurringScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, r := range s.Store.All(ctx) {
		if !r.Active {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), r.ID, r.NextDueDate)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    r.ID,
			DisplayName: r.Name,
			DueDate:     r.NextDueDate,
			DaysUntil:   days,
			Context:     fmt.Sprintf("%s %s", r.Amount, r.Currency),
		})
	}
	return events, nil
}

// NoteScanner emits events for reminder notes not yet done.
type NoteScanner struct {
	Store *store.Collection[domain.ReminderNote]
	Cal   *calendar.Adapter
}

func (s *NoteScanner) Kind() domain.Kind { return domain.Note }

func (s *NoteScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, n := range s.Store.All(ctx) {
		if n.Done {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), n.ID, n.RemindDate)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    n.ID,
			DisplayName: n.Title,
			DueDate:     n.RemindDate,
			DaysUntil:   days,
			Context:     n.Body,
		})
	}
	return events, nil
}

// VehicleScanner emits up to two events per vehicle, one per expiry the
// record carries.
type VehicleScanner struct {
	Store *store.Collection[domain.VehicleRecord]
	Cal   *calendar.Adapter
}

func (s *VehicleScanner) Kind() domain.Kind { return domain.Vehicle }

func (s *VehicleScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, v := range s.Store.All(ctx) {
		if v.InsuranceExpiry != "" {
			if days, ok := daysUntil(s.Cal, s.Kind(), v.ID, v.InsuranceExpiry); ok {
				events = append(events, domain.DueEvent{
					Kind:        s.Kind(),
					SourceID:    v.ID + "/insurance",
					DisplayName: v.Name + " insurance",
					DueDate:     v.InsuranceExpiry,
					DaysUntil:   days,
					Context:     fmt.Sprintf("plate %s", v.PlateNumber),
				})
			}
		}
		if v.RegistrationExpiry != "" {
			if days, ok := daysUntil(s.Cal, s.Kind(), v.ID, v.RegistrationExpiry); ok {
				events = append(events, domain.DueEvent{
					Kind:        s.Kind(),
					SourceID:    v.ID + "/registration",
					DisplayName: v.Name + " registration",
					DueDate:     v.RegistrationExpiry,
					DaysUntil:   days,
					Context:     fmt.Sprintf("plate %s", v.PlateNumber),
				})
			}
		}
	}
	return events, nil
}

// StockScanner emits events for medicines running low, classified by
// quantity on hand rather than by date.
type StockScanner struct {
	Store *store.Collection[domain.MedicineRecord]
}

func (s *StockScanner) Kind() domain.Kind { return domain.MedicineStock }

func (s *StockScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, m := range s.Store.All(ctx) {
		urgency, stage, ok := domain.ClassifyStock(m.Quantity)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    m.ID,
			DisplayName: m.Name,
			Context:     fmt.Sprintf("%d unit(s) left", m.Quantity),
			Urgency:     urgency,
			StageHint:   stage,
		})
	}
	return events, nil
}

// ExpiryScanner emits events for medicines at or near expiry, with its
// own threshold table instead of the staged lead times.
type ExpiryScanner struct {
	Store *store.Collection[domain.MedicineRecord]
	Cal   *calendar.Adapter
}

func (s *ExpiryScanner) Kind() domain.Kind { return domain.MedicineExpiry }

func (s *ExpiryScanner) Scan(ctx context.Context) ([]domain.DueEvent, error) {
	var events []domain.DueEvent
	for _, m := range s.Store.All(ctx) {
		if m.ExpiryDate == "" {
			continue
		}
		days, ok := daysUntil(s.Cal, s.Kind(), m.ID, m.ExpiryDate)
		if !ok {
			continue
		}
		urgency, stage, ok := domain.ClassifyExpiry(days)
		if !ok {
			continue
		}
		events = append(events, domain.DueEvent{
			Kind:        s.Kind(),
			SourceID:    m.ID,
			DisplayName: m.Name,
			DueDate:     m.ExpiryDate,
			DaysUntil:   days,
			Context:     fmt.Sprintf("%d unit(s) on hand", m.Quantity),
			Urgency:     urgency,
			StageHint:   stage,
		})
	}
	return events, nil
}
