package calendar

import (
	"fmt"
	"time"
)

// Adapter resolves "today" and date distances for the scanners. Now is
// swappable so tests can pin the clock.
type Adapter struct {
	Now func() time.Time
}

func NewAdapter() *Adapter {
	return &Adapter{Now: time.Now}
}

func (a *Adapter) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Today returns the current date in the BS calendar.
func (a *Adapter) Today() (Date, error) {
	return FromGregorian(a.now())
}

// DaysUntil parses a stored BS due-date string and returns how many days
// remain until it, negative when the date has passed. Any parse or
// conversion failure is returned to the caller, which must treat the
// record as unknown rather than overdue.
func (a *Adapter) DaysUntil(due string) (int, error) {
	d, err := Parse(due)
	if err != nil {
		return 0, err
	}
	today, err := a.Today()
	if err != nil {
		return 0, fmt.Errorf("calendar: resolve today: %w", err)
	}
	return DaysBetween(today, d)
}

// Format renders a BS date the way the rest of the app stores it.
func (a *Adapter) Format(d Date) string {
	return d.String()
}
