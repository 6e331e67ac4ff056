package remind

import (
	"fmt"
	"time"

	"github.com/santoshphuyala/sambat/pkg/store"
)

// maxDismissed bounds the persisted dismissed list; the oldest entries
// are trimmed first.
const maxDismissed = 500

// DismissStore records which reminder identities the user has dismissed
// or snoozed. Only user actions write here; the dispatcher only reads.
type DismissStore struct {
	kv  *store.KV
	Now func() time.Time
}

func NewDismissStore(kv *store.KV) *DismissStore {
	return &DismissStore{kv: kv, Now: time.Now}
}

func (s *DismissStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DismissStore) dismissed() ([]string, error) {
	var list []string
	if _, err := s.kv.Get(store.KeyDismissed, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *DismissStore) snoozes() (map[string]string, error) {
	snoozes := make(map[string]string)
	if _, err := s.kv.Get(store.KeySnoozes, &snoozes); err != nil {
		return nil, err
	}
	return snoozes, nil
}

// IsDismissed reports whether the identity was explicitly dismissed.
func (s *DismissStore) IsDismissed(identity string) (bool, error) {
	list, err := s.dismissed()
	if err != nil {
		return false, err
	}
	for _, id := range list {
		if id == identity {
			return true, nil
		}
	}
	return false, nil
}

// Dismiss marks the identity as permanently suppressed, trimming the
// oldest entries past the bound.
func (s *DismissStore) Dismiss(identity string) error {
	list, err := s.dismissed()
	if err != nil {
		return err
	}
	for _, id := range list {
		if id == identity {
			return nil
		}
	}
	list = append(list, identity)
	if len(list) > maxDismissed {
		list = list[len(list)-maxDismissed:]
	}
	return s.kv.Put(store.KeyDismissed, list)
}

// Snooze suppresses the identity until the given number of minutes has
// elapsed.
func (s *DismissStore) Snooze(identity string, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("remind: snooze minutes must be positive, got %d", minutes)
	}
	snoozes, err := s.snoozes()
	if err != nil {
		return err
	}
	snoozes[identity] = s.now().Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339)
	return s.kv.Put(store.KeySnoozes, snoozes)
}

// IsSnoozed reports whether a snooze is still in force. Expired entries
// are ignored, not purged.
func (s *DismissStore) IsSnoozed(identity string) (bool, error) {
	snoozes, err := s.snoozes()
	if err != nil {
		return false, err
	}
	raw, ok := snoozes[identity]
	if !ok {
		return false, nil
	}
	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		warn := fmt.Errorf("remind: bad snooze expiry for %s: %w", identity, err)
		return false, warn
	}
	return s.now().Before(expiry), nil
}

// Suppressed reports whether delivery for the identity must be skipped.
func (s *DismissStore) Suppressed(identity string) (bool, error) {
	dismissed, err := s.IsDismissed(identity)
	if err != nil {
		return false, err
	}
	if dismissed {
		return true, nil
	}
	return s.IsSnoozed(identity)
}
