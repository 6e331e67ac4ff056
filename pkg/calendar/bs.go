// Package calendar converts between the Bikram Sambat (BS) calendar and the
// Gregorian calendar, and answers date arithmetic for the reminder engine.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a Bikram Sambat calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// The conversion is table-driven: month lengths per supported BS year,
// anchored at 2070-01-01 BS = 2013-04-14 AD.
const (
	epochYear = 2070
	lastYear  = 2099
)

var epochAD = time.Date(2013, time.April, 14, 0, 0, 0, 0, time.UTC)

var monthDays = map[int][12]int{
	2070: {31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30},
	2071: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2072: {31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30},
	2073: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31},
	2074: {31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	2075: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2076: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2077: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31},
	2078: {31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30},
	2079: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
	2080: {31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30},
	2081: {31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2082: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2083: {31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	2084: {31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	2085: {31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	2086: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2087: {31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30},
	2088: {30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30},
	2089: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2090: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2091: {31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30},
	2092: {30, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2093: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2094: {31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30},
	2095: {31, 31, 32, 31, 31, 31, 30, 29, 30, 30, 30, 30},
	2096: {30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2097: {31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30},
	2098: {31, 31, 32, 31, 31, 31, 29, 30, 29, 30, 30, 30},
	2099: {31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30},
}

// ErrOutOfRange reports a BS year outside the conversion table.
var ErrOutOfRange = fmt.Errorf("calendar: year outside supported range %d..%d", epochYear, lastYear)

// Valid reports whether the date exists in the BS calendar table.
func (d Date) Valid() bool {
	days, ok := monthDays[d.Year]
	if !ok || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= days[d.Month-1]
}

// String renders the date as YYYY/MM/DD, the format used everywhere the
// application shows or stores a BS date.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Parse accepts YYYY/MM/DD or YYYY-MM-DD.
func Parse(s string) (Date, error) {
	sep := "/"
	if strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("calendar: malformed date %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("calendar: malformed date %q: %w", s, err)
		}
		nums[i] = n
	}
	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if _, ok := monthDays[d.Year]; !ok {
		return Date{}, ErrOutOfRange
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("calendar: no such date %q", s)
	}
	return d, nil
}

// daysFromEpoch counts days between the table epoch and d.
func daysFromEpoch(d Date) (int, error) {
	if _, ok := monthDays[d.Year]; !ok {
		return 0, ErrOutOfRange
	}
	if !d.Valid() {
		return 0, fmt.Errorf("calendar: no such date %s", d)
	}
	total := 0
	for y := epochYear; y < d.Year; y++ {
		days, ok := monthDays[y]
		if !ok {
			return 0, ErrOutOfRange
		}
		for _, md := range days {
			total += md
		}
	}
	days := monthDays[d.Year]
	for m := 1; m < d.Month; m++ {
		total += days[m-1]
	}
	return total + d.Day - 1, nil
}

// ToGregorian converts a BS date to the equivalent Gregorian date (UTC midnight).
func ToGregorian(d Date) (time.Time, error) {
	offset, err := daysFromEpoch(d)
	if err != nil {
		return time.Time{}, err
	}
	return epochAD.AddDate(0, 0, offset), nil
}

// FromGregorian converts a Gregorian date to the equivalent BS date.
func FromGregorian(t time.Time) (Date, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Sub(epochAD).Hours() / 24)
	if offset < 0 {
		return Date{}, ErrOutOfRange
	}
	for y := epochYear; y <= lastYear; y++ {
		days := monthDays[y]
		for m := 1; m <= 12; m++ {
			md := days[m-1]
			if offset < md {
				return Date{Year: y, Month: m, Day: offset + 1}, nil
			}
			offset -= md
		}
	}
	return Date{}, ErrOutOfRange
}

// DaysBetween returns b - a in days. Both dates must be in the table.
func DaysBetween(a, b Date) (int, error) {
	da, err := daysFromEpoch(a)
	if err != nil {
		return 0, err
	}
	db, err := daysFromEpoch(b)
	if err != nil {
		return 0, err
	}
	return db - da, nil
}

// AddDays returns the BS date n days after d (n may be negative).
func AddDays(d Date, n int) (Date, error) {
	g, err := ToGregorian(d)
	if err != nil {
		return Date{}, err
	}
	return FromGregorian(g.AddDate(0, 0, n))
}
