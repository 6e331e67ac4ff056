// Package domain holds the typed vocabulary shared by the scanners, the
// reminder dispatcher, and the payment ledger.
package domain

import "fmt"

// Kind tags every due-date-bearing record and every reminder with the
// domain it came from.
type Kind int

const (
	Insurance Kind = iota
	Bill
	Subscription
	Recurring
	Note
	Vehicle
	MedicineStock
	MedicineExpiry
)

// Kinds lists every kind in scanner-registration order.
func Kinds() []Kind {
	return []Kind{Insurance, Bill, Subscription, Recurring, Note, Vehicle, MedicineStock, MedicineExpiry}
}

// String is the stable token used in reminder identities and persisted
// records. Renaming one breaks dedup against previously stored state.
func (k Kind) String() string {
	switch k {
	case Insurance:
		return "insurance"
	case Bill:
		return "bill"
	case Subscription:
		return "subscription"
	case Recurring:
		return "recurring"
	case Note:
		return "note"
	case Vehicle:
		return "vehicle"
	case MedicineStock:
		return "medicine-stock"
	case MedicineExpiry:
		return "medicine-expiry"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Icon returns the glyph shown next to reminders of this kind.
func (k Kind) Icon() string {
	switch k {
	case Insurance:
		return "🛡"
	case Bill:
		return "⚡"
	case Subscription:
		return "📺"
	case Recurring:
		return "🔁"
	case Note:
		return "📌"
	case Vehicle:
		return "🚗"
	case MedicineStock:
		return "💊"
	case MedicineExpiry:
		return "⏳"
	}
	return "•"
}

// Label returns the human heading for this kind.
func (k Kind) Label() string {
	switch k {
	case Insurance:
		return "Insurance"
	case Bill:
		return "Bill"
	case Subscription:
		return "Subscription"
	case Recurring:
		return "Recurring Payment"
	case Note:
		return "Reminder Note"
	case Vehicle:
		return "Vehicle"
	case MedicineStock:
		return "Medicine Stock"
	case MedicineExpiry:
		return "Medicine Expiry"
	}
	return "Unknown"
}

// Route names the view a reminder activation should open.
func (k Kind) Route() string {
	switch k {
	case Insurance:
		return "insurance"
	case Bill:
		return "bills"
	case Subscription:
		return "subscriptions"
	case Recurring:
		return "recurring"
	case Note:
		return "notes"
	case Vehicle:
		return "vehicles"
	case MedicineStock, MedicineExpiry:
		return "medicines"
	}
	return "home"
}

// LedgerSource maps a kind to the source token written into payment
// records. Both medicine kinds settle against the same store.
func (k Kind) LedgerSource() string {
	switch k {
	case Insurance:
		return "insurance"
	case Bill:
		return "bills"
	case Subscription:
		return "subscriptions"
	case Recurring:
		return "recurring"
	case Note:
		return "notes"
	case Vehicle:
		return "vehicles"
	case MedicineStock, MedicineExpiry:
		return "medicines"
	}
	return "other"
}

// ParseKind resolves a stable token back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("domain: unknown kind %q", s)
}
