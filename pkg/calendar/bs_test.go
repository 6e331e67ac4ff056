package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestAnchorConversion(t *testing.T) {
	// 2081-01-01 BS is the well-known new year 2024-04-13 AD.
	g, err := ToGregorian(Date{Year: 2081, Month: 1, Day: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.Format("2006-01-02"); got != "2024-04-13" {
		t.Fatalf("expected 2024-04-13, got %s", got)
	}

	d, err := FromGregorian(time.Date(2024, time.April, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (Date{Year: 2081, Month: 1, Day: 1}) {
		t.Fatalf("expected 2081/01/01, got %s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	dates := []Date{
		{2070, 1, 1},
		{2079, 9, 17},
		{2082, 5, 10},
		{2083, 12, 30},
		{2099, 12, 30},
	}
	for _, d := range dates {
		g, err := ToGregorian(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		back, err := FromGregorian(g)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != d {
			t.Fatalf("round trip %s came back as %s", d, back)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{Date{2082, 5, 10}, Date{2082, 5, 10}, 0},
		{Date{2082, 5, 10}, Date{2082, 5, 15}, 5},
		{Date{2082, 5, 10}, Date{2082, 5, 7}, -3},
		// month boundary: Bhadra 2082 has 31 days
		{Date{2082, 5, 30}, Date{2082, 6, 2}, 3},
		// year boundary
		{Date{2082, 12, 30}, Date{2083, 1, 1}, 1},
	}
	for _, tc := range tests {
		got, err := DaysBetween(tc.a, tc.b)
		if err != nil {
			t.Fatalf("%s..%s: %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("%s..%s: expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays(Date{2082, 5, 30}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (Date{2082, 6, 1}) {
		t.Fatalf("expected 2082/06/01, got %s", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2082/05/10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (Date{2082, 5, 10}) {
		t.Fatalf("unexpected date %s", d)
	}
	if _, err := Parse("2082-05-10"); err != nil {
		t.Fatalf("dash separator should parse: %v", err)
	}

	bad := []string{"", "2082/05", "2082/13/01", "2082/05/33", "soon", "2082/x/10"}
	for _, s := range bad {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestParseOutOfRange(t *testing.T) {
	if _, err := Parse("2050/01/01"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestAdapterDaysUntil(t *testing.T) {
	a := &Adapter{Now: func() time.Time {
		// 2083-05-15 BS
		return time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	}}

	today, err := a.Today()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if today != (Date{2083, 5, 15}) {
		t.Fatalf("expected 2083/05/15, got %s", today)
	}

	days, err := a.DaysUntil("2083/05/20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("expected 5, got %d", days)
	}

	days, err = a.DaysUntil("2083/05/12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != -3 {
		t.Fatalf("expected -3, got %d", days)
	}

	if _, err := a.DaysUntil("not a date"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
