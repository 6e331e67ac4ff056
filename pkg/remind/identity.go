// Package remind holds the reminder delivery state: the dedup store for
// dismissed and snoozed identities, and the bounded inbox.
package remind

import (
	"fmt"

	"github.com/santoshphuyala/sambat/pkg/domain"
)

// Identity derives the dedup key for one reminder. The same record at the
// same stage always maps to the same identity, across scans and restarts.
// Overdue reminders use the fixed stage token "overdue" so a single
// dismiss covers every later re-fire.
func Identity(kind domain.Kind, sourceID, stage string) string {
	return fmt.Sprintf("%s:%s:%s", kind, sourceID, stage)
}
