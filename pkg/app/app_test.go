package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/santoshphuyala/sambat/pkg/calendar"
	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/ledger"
	"github.com/santoshphuyala/sambat/pkg/push"
	"github.com/santoshphuyala/sambat/pkg/remind"
	"github.com/santoshphuyala/sambat/pkg/scan"
	"github.com/santoshphuyala/sambat/pkg/store"
)

// testService pins today to 2083/05/15 BS and captures pushes.
func testService(t *testing.T) (*Service, *push.Recorder) {
	t.Helper()
	cfg := store.FixedConfig{
		Path:    t.TempDir(),
		Hour:    8,
		Offsets: []int{15, 10, 5, 1, 0},
		Push:    true,
	}
	db, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	cal := &calendar.Adapter{Now: func() time.Time {
		return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	}}
	rec := &push.Recorder{}
	return NewWith(cfg, db, cal, rec), rec
}

func TestBillFiveDaysOut(t *testing.T) {
	s, rec := testService(t)
	ctx := context.Background()

	b := domain.BillRecord{
		Name:     "Electricity",
		Amount:   decimal.RequireFromString("1450"),
		Currency: "NPR",
		DueDate:  "2083/05/20", // exactly 5 days from today
	}
	if _, err := s.Bills.Add(&b); err != nil {
		t.Fatalf("add: %v", err)
	}

	delivered, unread, err := s.RunAllChecks(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if delivered != 1 || unread != 1 {
		t.Fatalf("expected one delivery and one unread, got %d/%d", delivered, unread)
	}

	items, _ := s.Inbox.Items(false)
	if len(items) != 1 {
		t.Fatalf("expected 1 inbox entry, got %d", len(items))
	}
	if items[0].DaysUntil != 5 {
		t.Fatalf("expected daysUntilDue 5, got %d", items[0].DaysUntil)
	}
	if len(rec.Sent) != 1 || rec.Sent[0].Urgency.RequireInteraction() {
		t.Fatalf("5-days-out push must not require interaction")
	}

	// re-running the same day must not duplicate the inbox entry
	for i := 0; i < 2; i++ {
		if _, _, err := s.RunAllChecks(ctx); err != nil {
			t.Fatalf("re-run: %v", err)
		}
	}
	items, _ = s.Inbox.Items(false)
	if len(items) != 1 {
		t.Fatalf("repeated scans duplicated the reminder: %d", len(items))
	}
}

func TestOffStageBillStaysQuiet(t *testing.T) {
	s, rec := testService(t)
	ctx := context.Background()

	b := domain.BillRecord{Name: "Water", DueDate: "2083/05/22"} // 7 days out
	if _, err := s.Bills.Add(&b); err != nil {
		t.Fatalf("add: %v", err)
	}

	delivered, _, err := s.RunAllChecks(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if delivered != 0 || len(rec.Sent) != 0 {
		t.Fatalf("7 days is not a stage; nothing should fire")
	}
}

func TestOverdueBillRefires(t *testing.T) {
	s, rec := testService(t)
	ctx := context.Background()

	b := domain.BillRecord{Name: "Internet", DueDate: "2083/05/12"} // overdue by 3
	if _, err := s.Bills.Add(&b); err != nil {
		t.Fatalf("add: %v", err)
	}

	for i := 0; i < 3; i++ {
		delivered, _, err := s.RunAllChecks(ctx)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if delivered != 1 {
			t.Fatalf("overdue must fire on every scan, run %d delivered %d", i, delivered)
		}
	}
	if len(rec.Sent) != 3 {
		t.Fatalf("expected 3 pushes, got %d", len(rec.Sent))
	}
	items, _ := s.Inbox.Items(false)
	if len(items) != 1 {
		t.Fatalf("inbox dedups by identity; got %d entries", len(items))
	}

	identity := remind.Identity(domain.Bill, b.ID, scan.OverdueStage)
	if err := s.Dismiss.Dismiss(identity); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	delivered, _, err := s.RunAllChecks(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("dismissed overdue identity must stay quiet")
	}
}

func TestRenewalScenario(t *testing.T) {
	s, rec := testService(t)
	ctx := context.Background()

	p := domain.InsurancePolicy{
		Name:       "Life policy",
		Premium:    decimal.New(5000, 0),
		Currency:   "NPR",
		ExpiryDate: "2082/04/01",
		Status:     "active",
	}
	if _, err := s.Insurance.Add(&p); err != nil {
		t.Fatalf("add: %v", err)
	}

	payment, err := s.Ledger.NotifyRenewal(ctx, ledger.Renewal{
		Kind:        domain.Insurance,
		ItemID:      p.ID,
		DisplayName: p.Name,
		NewDueDate:  "2082/05/10",
		Amount:      decimal.New(5000, 0),
		Currency:    "NPR",
	})
	if err != nil {
		t.Fatalf("notify renewal: %v", err)
	}
	if !payment.Amount.Equal(decimal.New(5000, 0)) || payment.Currency != "NPR" || payment.SettledDueDate != "2082/05/10" {
		t.Fatalf("unexpected payment %+v", payment)
	}

	records, err := s.Ledger.History(ctx, nil)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 payment record, got %d", len(records))
	}

	items, _ := s.Inbox.Items(false)
	if len(items) != 1 || items[0].Urgency != domain.UrgencyConfirmation.String() {
		t.Fatalf("expected one confirmation inbox entry, got %v", items)
	}
	if len(rec.Sent) != 1 {
		t.Fatalf("expected confirmation push")
	}
}

func TestLastScanRecorded(t *testing.T) {
	s, _ := testService(t)
	ctx := context.Background()

	if _, ok, _ := s.LastScan(); ok {
		t.Fatalf("fresh service should have no last scan")
	}
	if _, _, err := s.RunAllChecks(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	ts, ok, err := s.LastScan()
	if err != nil || !ok {
		t.Fatalf("expected last scan recorded: %v %v", ok, err)
	}
	if time.Since(ts) > time.Minute {
		t.Fatalf("stale last-scan timestamp %v", ts)
	}
}

func TestSchedulerHandle(t *testing.T) {
	s, _ := testService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.StartDaily(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.StartDaily(ctx); err == nil {
		t.Fatalf("second start must be refused while running")
	}
	s.StopDaily()
	if err := s.StartDaily(ctx); err != nil {
		t.Fatalf("restart after stop: %v", err)
	}
	s.StopDaily()
}
