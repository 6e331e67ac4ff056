// Package app assembles the engine: one Service owns the stores, the
// reminder state, the ledger, and the scheduler, and every surface goes
// through it. There are no package-level singletons; construct the
// Service once and pass it around.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/santoshphuyala/sambat/pkg/calendar"
	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/ledger"
	"github.com/santoshphuyala/sambat/pkg/push"
	"github.com/santoshphuyala/sambat/pkg/remind"
	"github.com/santoshphuyala/sambat/pkg/scan"
	"github.com/santoshphuyala/sambat/pkg/scheduler"
	"github.com/santoshphuyala/sambat/pkg/store"
)

// Service exposes every engine operation to the CLI and any other
// consumer.
type Service struct {
	Cal     *calendar.Adapter
	Dismiss *remind.DismissStore
	Inbox   *remind.Inbox
	Ledger  *ledger.Ledger
	Push    push.Notifier
	Sched   *scheduler.Scheduler

	Insurance     *store.Collection[domain.InsurancePolicy]
	Bills         *store.Collection[domain.BillRecord]
	Subscriptions *store.Collection[domain.SubscriptionRecord]
	Recurring     *store.Collection[domain.RecurringPayment]
	Notes         *store.Collection[domain.ReminderNote]
	Vehicles      *store.Collection[domain.VehicleRecord]
	Medicines     *store.Collection[domain.MedicineRecord]

	kv     *store.KV
	runner *scan.Runner
}

// New builds a Service from config, opening the diskv tree and wiring
// the default terminal notifier.
func New(cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	db, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, db, calendar.NewAdapter(), push.NewTerminal(cfg.PushEnabled())), nil
}

// NewWith builds a Service over explicit collaborators; tests use it to
// pin the clock and capture pushes.
func NewWith(cfg store.Config, db *store.DB, cal *calendar.Adapter, notifier push.Notifier) *Service {
	kv := store.NewKV(db)
	s := &Service{
		Cal:     cal,
		Dismiss: remind.NewDismissStore(kv),
		Inbox:   remind.NewInbox(kv),
		Push:    notifier,
		kv:      kv,

		Insurance: store.NewCollection(db, "insurance", func(r *domain.InsurancePolicy) *string {
			return &r.ID
		}),
		Bills: store.NewCollection(db, "bills", func(r *domain.BillRecord) *string {
			return &r.ID
		}),
		Subscriptions: store.NewCollection(db, "subscriptions", func(r *domain.SubscriptionRecord) *string {
			return &r.ID
		}),
		Recurring: store.NewCollection(db, "recurring", func(r *domain.RecurringPayment) *string {
			return &r.ID
		}),
		Notes: store.NewCollection(db, "notes", func(r *domain.ReminderNote) *string {
			return &r.ID
		}),
		Vehicles: store.NewCollection(db, "vehicles", func(r *domain.VehicleRecord) *string {
			return &r.ID
		}),
		Medicines: store.NewCollection(db, "medicines", func(r *domain.MedicineRecord) *string {
			return &r.ID
		}),
	}

	s.Ledger = ledger.New(
		ledger.NewTiered(ledger.NewPrimary(db), ledger.NewOverflow(kv)),
		s.Inbox, notifier, cal,
	)

	dispatcher := &scan.Dispatcher{
		Evaluator: scan.NewEvaluator(cfg.Stages()),
		Dismiss:   s.Dismiss,
		Inbox:     s.Inbox,
		Push:      notifier,
	}
	s.runner = &scan.Runner{
		Scanners: []scan.Scanner{
			&scan.InsuranceScanner{Store: s.Insurance, Cal: cal},
			&scan.BillScanner{Store: s.Bills, Cal: cal},
			&scan.SubscriptionScanner{Store: s.Subscriptions, Cal: cal},
			&scan.RecurringScanner{Store: s.Recurring, Cal: cal},
			&scan.NoteScanner{Store: s.Notes, Cal: cal},
			&scan.VehicleScanner{Store: s.Vehicles, Cal: cal},
			&scan.StockScanner{Store: s.Medicines},
			&scan.ExpiryScanner{Store: s.Medicines, Cal: cal},
		},
		Dispatcher: dispatcher,
	}
	s.Sched = scheduler.New(cfg.ScanHour(), func(ctx context.Context) {
		if _, _, err := s.RunAllChecks(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "scan: %s\n", err)
		}
	})
	return s
}

// RunAllChecks runs every scanner once and returns how many reminders
// were delivered along with the recomputed unread badge.
func (s *Service) RunAllChecks(ctx context.Context) (delivered, unread int, err error) {
	delivered = s.runner.Run(ctx)
	if err := s.kv.Put(store.KeyLastScan, time.Now().Format(time.RFC3339)); err != nil {
		return delivered, 0, fmt.Errorf("app: record last scan: %w", err)
	}
	unread, err = s.Inbox.Unread()
	return delivered, unread, err
}

// LastScan returns when the previous scan pass ran, if ever.
func (s *Service) LastScan() (time.Time, bool, error) {
	var raw string
	ok, err := s.kv.Get(store.KeyLastScan, &raw)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("app: bad last-scan timestamp: %w", err)
	}
	return ts, true, nil
}

// StartDaily installs the daily scheduler; the previous handle must have
// been stopped.
func (s *Service) StartDaily(ctx context.Context) error {
	return s.Sched.Start(ctx)
}

// StopDaily cancels the pending daily trigger.
func (s *Service) StopDaily() {
	s.Sched.Stop()
}
