package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		days int
		want Urgency
	}{
		{-10, UrgencyOverdue},
		{-1, UrgencyOverdue},
		{0, UrgencyToday},
		{1, UrgencyTomorrow},
		{2, UrgencySoon},
		{5, UrgencySoon},
		{6, UrgencyUpcoming},
		{10, UrgencyUpcoming},
		{11, UrgencyDistant},
		{40, UrgencyDistant},
	}
	for _, tc := range tests {
		if got := Classify(tc.days); got != tc.want {
			t.Fatalf("Classify(%d): expected %s, got %s", tc.days, tc.want, got)
		}
	}
}

func TestRequireInteraction(t *testing.T) {
	needy := []Urgency{UrgencyOverdue, UrgencyToday, UrgencyTomorrow}
	for _, u := range needy {
		if !u.RequireInteraction() {
			t.Fatalf("%s should require interaction", u)
		}
	}
	quiet := []Urgency{UrgencySoon, UrgencyUpcoming, UrgencyDistant, UrgencyConfirmation}
	for _, u := range quiet {
		if u.RequireInteraction() {
			t.Fatalf("%s should not require interaction", u)
		}
	}
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		qty     int
		want    Urgency
		stage   string
		emitted bool
	}{
		{0, UrgencyToday, "stock-out", true},
		{1, UrgencyTomorrow, "stock-critical", true},
		{3, UrgencyTomorrow, "stock-critical", true},
		{4, UrgencySoon, "stock-low", true},
		{7, UrgencySoon, "stock-low", true},
		{8, UrgencyUpcoming, "stock-warning", true},
		{14, UrgencyUpcoming, "stock-warning", true},
		{15, UrgencyNone, "", false},
	}
	for _, tc := range tests {
		u, stage, ok := ClassifyStock(tc.qty)
		if u != tc.want || stage != tc.stage || ok != tc.emitted {
			t.Fatalf("ClassifyStock(%d) = %s %q %v", tc.qty, u, stage, ok)
		}
	}
}

func TestClassifyExpiry(t *testing.T) {
	tests := []struct {
		days    int
		want    Urgency
		stage   string
		emitted bool
	}{
		{-1, UrgencyOverdue, "expired", true},
		{0, UrgencyToday, "expiry-0", true},
		{7, UrgencySoon, "expiry-7", true},
		{8, UrgencyUpcoming, "expiry-30", true},
		{30, UrgencyUpcoming, "expiry-30", true},
		{31, UrgencyNone, "", false},
	}
	for _, tc := range tests {
		u, stage, ok := ClassifyExpiry(tc.days)
		if u != tc.want || stage != tc.stage || ok != tc.emitted {
			t.Fatalf("ClassifyExpiry(%d) = %s %q %v", tc.days, u, stage, ok)
		}
	}
}

func TestKindDispatchIsTotal(t *testing.T) {
	for _, k := range Kinds() {
		if k.Icon() == "•" {
			t.Fatalf("%s has no icon", k)
		}
		if k.Label() == "Unknown" {
			t.Fatalf("%s has no label", k)
		}
		if k.Route() == "home" {
			t.Fatalf("%s has no route", k)
		}
		if k.LedgerSource() == "other" {
			t.Fatalf("%s has no ledger source", k)
		}
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Fatalf("%s does not round-trip: %v", k, err)
		}
	}
	if _, err := ParseKind("gadgets"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
