package domain

// DueEvent is the normalized output of one scanner hit. Events live for a
// single scan pass and are never persisted.
type DueEvent struct {
	Kind        Kind
	SourceID    string
	DisplayName string
	DueDate     string
	DaysUntil   int
	Context     string

	// Urgency and StageHint are set only by scanners that classify
	// without a due-date distance (medicine stock and expiry). For every
	// other scanner both stay zero and the dispatcher derives them from
	// DaysUntil.
	Urgency   Urgency
	StageHint string
}

// Preclassified reports whether the scanner already decided urgency.
func (e DueEvent) Preclassified() bool {
	return e.Urgency != UrgencyNone
}

// Urgency is the display band for a reminder.
type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyOverdue
	UrgencyToday
	UrgencyTomorrow
	UrgencySoon     // due within 5 days
	UrgencyUpcoming // due within 10 days
	UrgencyDistant  // more than 10 days out
	UrgencyConfirmation
)

// Classify buckets a days-until-due distance into its urgency band.
func Classify(daysUntil int) Urgency {
	switch {
	case daysUntil < 0:
		return UrgencyOverdue
	case daysUntil == 0:
		return UrgencyToday
	case daysUntil == 1:
		return UrgencyTomorrow
	case daysUntil <= 5:
		return UrgencySoon
	case daysUntil <= 10:
		return UrgencyUpcoming
	default:
		return UrgencyDistant
	}
}

// RequireInteraction reports whether the push layer must keep the
// notification up until the user acts on it.
func (u Urgency) RequireInteraction() bool {
	switch u {
	case UrgencyOverdue, UrgencyToday, UrgencyTomorrow:
		return true
	default:
		return false
	}
}

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyToday:
		return "today"
	case UrgencyTomorrow:
		return "tomorrow"
	case UrgencySoon:
		return "soon"
	case UrgencyUpcoming:
		return "upcoming"
	case UrgencyDistant:
		return "distant"
	case UrgencyConfirmation:
		return "confirmation"
	}
	return "none"
}

// ClassifyStock maps medicine quantity-on-hand to an urgency band and a
// stage token for dedup. Quantities above the warning threshold produce
// no event.
func ClassifyStock(quantity int) (Urgency, string, bool) {
	switch {
	case quantity <= 0:
		return UrgencyToday, "stock-out", true
	case quantity <= 3:
		return UrgencyTomorrow, "stock-critical", true
	case quantity <= 7:
		return UrgencySoon, "stock-low", true
	case quantity <= 14:
		return UrgencyUpcoming, "stock-warning", true
	default:
		return UrgencyNone, "", false
	}
}

// ClassifyExpiry maps days-until-expiry for medicines to an urgency band
// and a stage token. Anything more than 30 days out produces no event.
func ClassifyExpiry(daysUntil int) (Urgency, string, bool) {
	switch {
	case daysUntil < 0:
		return UrgencyOverdue, "expired", true
	case daysUntil == 0:
		return UrgencyToday, "expiry-0", true
	case daysUntil <= 7:
		return UrgencySoon, "expiry-7", true
	case daysUntil <= 30:
		return UrgencyUpcoming, "expiry-30", true
	default:
		return UrgencyNone, "", false
	}
}
