// Package ledger is the durable, append-only record of settlement events,
// with an overflow tier that absorbs writes while the durable store is
// unavailable.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is one settlement event. Once written it is never
// mutated, only deleted.
type PaymentRecord struct {
	LedgerID       string            `json:"ledgerId"`
	Source         string            `json:"source"`
	SourceItemID   string            `json:"sourceItemId,omitempty"`
	DisplayName    string            `json:"displayName"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency,omitempty"`
	PaidDate       string            `json:"paidDate,omitempty"`
	SettledDueDate string            `json:"settledDueDate,omitempty"`
	PaymentMethod  string            `json:"paymentMethod,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Meta           map[string]string `json:"meta,omitempty"`
	RecordedAt     time.Time         `json:"recordedAt"`
}

// Filter selects history records; nil means everything.
type Filter func(PaymentRecord) bool

// BySource filters history to one ledger source token.
func BySource(source string) Filter {
	return func(r PaymentRecord) bool {
		return r.Source == source
	}
}
