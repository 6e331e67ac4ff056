package domain

import "github.com/shopspring/decimal"

// The seven stored record shapes. Dates are BS date strings (YYYY/MM/DD);
// the scanners hand them to the calendar adapter, never parse them here.

type InsurancePolicy struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Provider     string          `json:"provider,omitempty"`
	PolicyNumber string          `json:"policyNumber,omitempty"`
	Premium      decimal.Decimal `json:"premium"`
	Currency     string          `json:"currency,omitempty"`
	ExpiryDate   string          `json:"expiryDate"`
	Status       string          `json:"status"` // active, lapsed, cancelled
}

type BillRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	DueDate  string          `json:"dueDate"`
	Paid     bool            `json:"paid"`
}

type SubscriptionRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Provider  string          `json:"provider,omitempty"`
	Fee       decimal.Decimal `json:"fee"`
	Currency  string          `json:"currency,omitempty"`
	RenewDate string          `json:"renewDate"`
	Active    bool            `json:"active"`
}

type RecurringPayment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	NextDueDate string          `json:"nextDueDate"`
	Active      bool            `json:"active"`
}

type ReminderNote struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	RemindDate string `json:"remindDate"`
	Done       bool   `json:"done"`
}

// VehicleRecord carries two independent due dates; the scanner emits up to
// two events per vehicle.
type VehicleRecord struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PlateNumber        string `json:"plateNumber,omitempty"`
	InsuranceExpiry    string `json:"insuranceExpiry,omitempty"`
	RegistrationExpiry string `json:"registrationExpiry,omitempty"`
}

type MedicineRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}
