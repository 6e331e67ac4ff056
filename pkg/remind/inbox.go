package remind

import (
	"sort"
	"time"

	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/store"
)

// maxInbox bounds the persisted inbox; the oldest items drop first.
const maxInbox = 100

// Item is one delivered reminder in the notification center.
type Item struct {
	Identity    string    `json:"identity"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Kind        string    `json:"domainType"`
	DueDate     string    `json:"dueDate,omitempty"`
	DaysUntil   int       `json:"daysUntilDue"`
	DisplayName string    `json:"displayName"`
	Urgency     string    `json:"urgency"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// KindOf resolves the item's persisted kind token.
func (i Item) KindOf() (domain.Kind, error) {
	return domain.ParseKind(i.Kind)
}

// Inbox is the bounded, persisted list of delivered reminders.
type Inbox struct {
	kv  *store.KV
	Now func() time.Time
}

func NewInbox(kv *store.KV) *Inbox {
	return &Inbox{kv: kv, Now: time.Now}
}

func (in *Inbox) now() time.Time {
	if in.Now != nil {
		return in.Now()
	}
	return time.Now()
}

func (in *Inbox) load() ([]Item, error) {
	var items []Item
	if _, err := in.kv.Get(store.KeyInbox, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (in *Inbox) save(items []Item) error {
	return in.kv.Put(store.KeyInbox, items)
}

// Add inserts the item unless one with the same identity is already
// present. Returns whether the item was actually inserted.
func (in *Inbox) Add(item Item) (bool, error) {
	items, err := in.load()
	if err != nil {
		return false, err
	}
	for _, existing := range items {
		if existing.Identity == item.Identity {
			return false, nil
		}
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = in.now()
	}
	items = append(items, item)
	if len(items) > maxInbox {
		items = items[len(items)-maxInbox:]
	}
	return true, in.save(items)
}

// Items returns the inbox newest-first. With unreadOnly set, read items
// are filtered out.
func (in *Inbox) Items(unreadOnly bool) ([]Item, error) {
	items, err := in.load()
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if unreadOnly && item.Read {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Unread returns the badge count.
func (in *Inbox) Unread() (int, error) {
	items, err := in.load()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

// MarkRead flips one item to read. Unknown identities are a no-op.
func (in *Inbox) MarkRead(identity string) error {
	items, err := in.load()
	if err != nil {
		return err
	}
	changed := false
	for i := range items {
		if items[i].Identity == identity && !items[i].Read {
			items[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return in.save(items)
}

// MarkAllRead flips every item to read.
func (in *Inbox) MarkAllRead() error {
	items, err := in.load()
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Read = true
	}
	return in.save(items)
}

// Delete removes one item by identity.
func (in *Inbox) Delete(identity string) error {
	items, err := in.load()
	if err != nil {
		return err
	}
	out := items[:0]
	for _, item := range items {
		if item.Identity != identity {
			out = append(out, item)
		}
	}
	return in.save(out)
}

// Clear empties the inbox.
func (in *Inbox) Clear() error {
	return in.save([]Item{})
}
