// Package scan turns stored records into due events and delivers the ones
// that are owed a reminder.
package scan

import (
	"strconv"

	"github.com/santoshphuyala/sambat/pkg/domain"
)

// DefaultStages are the lead-time day offsets a reminder fires at.
var DefaultStages = []int{15, 10, 5, 1, 0}

// OverdueStage is the perpetual stage token for events past their due
// date. It is not a day count on purpose: one dismiss of an overdue
// identity covers every later scan.
const OverdueStage = "overdue"

// Evaluator decides whether a due event is owed a reminder and at which
// stage.
type Evaluator struct {
	Stages []int
}

func NewEvaluator(stages []int) *Evaluator {
	if len(stages) == 0 {
		stages = DefaultStages
	}
	return &Evaluator{Stages: stages}
}

// Evaluate returns the stage token and urgency for the event, and whether
// it should be delivered at all. Preclassified events (medicine) carry
// their own stage and always deliver; date events deliver when overdue or
// when days-until-due sits exactly on a configured stage.
func (e *Evaluator) Evaluate(ev domain.DueEvent) (stage string, urgency domain.Urgency, deliver bool) {
	if ev.Preclassified() {
		return ev.StageHint, ev.Urgency, true
	}
	if ev.DaysUntil < 0 {
		return OverdueStage, domain.UrgencyOverdue, true
	}
	for _, offset := range e.Stages {
		if ev.DaysUntil == offset {
			return strconv.Itoa(offset), domain.Classify(ev.DaysUntil), true
		}
	}
	return "", domain.UrgencyNone, false
}
