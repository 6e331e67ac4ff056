package ledger

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/santoshphuyala/sambat/pkg/store"
)

// maxOverflow caps the fallback list; the oldest entries are trimmed
// first when the durable tier stays down long enough to fill it.
const maxOverflow = 200

// Repository is the storage contract for settlement records.
type Repository interface {
	Append(rec PaymentRecord) error
	All(ctx context.Context) ([]PaymentRecord, error)
	Delete(id string) error
	Clear(ctx context.Context) error
}

// Primary stores records in their own diskv collection, outside the
// state namespace.
type Primary struct {
	col *store.Collection[PaymentRecord]
}

func NewPrimary(db *store.DB) *Primary {
	return &Primary{col: store.NewCollection(db, "ledger", func(r *PaymentRecord) *string {
		return &r.LedgerID
	})}
}

func (p *Primary) Append(rec PaymentRecord) error {
	_, err := p.col.Add(&rec)
	return err
}

func (p *Primary) All(ctx context.Context) ([]PaymentRecord, error) {
	return p.col.All(ctx), nil
}

func (p *Primary) Delete(id string) error {
	return p.col.Delete(id)
}

func (p *Primary) Clear(ctx context.Context) error {
	return p.col.Clear(ctx)
}

// Overflow keeps records in the capped fallback list inside the state
// namespace, for writes that arrive while the primary tier is down.
type Overflow struct {
	kv *store.KV
}

func NewOverflow(kv *store.KV) *Overflow {
	return &Overflow{kv: kv}
}

func (o *Overflow) load() ([]PaymentRecord, error) {
	var list []PaymentRecord
	if _, err := o.kv.Get(store.KeyLedgerFallback, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (o *Overflow) Append(rec PaymentRecord) error {
	list, err := o.load()
	if err != nil {
		return err
	}
	list = append(list, rec)
	if len(list) > maxOverflow {
		list = list[len(list)-maxOverflow:]
	}
	return o.kv.Put(store.KeyLedgerFallback, list)
}

func (o *Overflow) All(ctx context.Context) ([]PaymentRecord, error) {
	return o.load()
}

func (o *Overflow) Delete(id string) error {
	list, err := o.load()
	if err != nil {
		return err
	}
	out := list[:0]
	for _, rec := range list {
		if rec.LedgerID != id {
			out = append(out, rec)
		}
	}
	return o.kv.Put(store.KeyLedgerFallback, out)
}

func (o *Overflow) Clear(ctx context.Context) error {
	return o.kv.Put(store.KeyLedgerFallback, []PaymentRecord{})
}

// Tiered composes the two tiers. Appends prefer the primary and fall
// back to the overflow; reads flush the overflow back into the primary
// first so the tiers never permanently diverge.
type Tiered struct {
	Primary  Repository
	Overflow *Overflow
}

func NewTiered(primary Repository, overflow *Overflow) *Tiered {
	return &Tiered{Primary: primary, Overflow: overflow}
}

// Append writes to the primary tier, falling back to the overflow when
// the primary is unavailable. A settlement write never fails loudly:
// tier errors are logged and the other tier is still attempted.
func (t *Tiered) Append(rec PaymentRecord) error {
	if err := t.Primary.Append(rec); err != nil {
		fmt.Fprintf(os.Stderr, "ledger: primary append: %s, using overflow\n", err)
		if err := t.Overflow.Append(rec); err != nil {
			return fmt.Errorf("ledger: overflow append: %w", err)
		}
	}
	return nil
}

// FlushOverflow migrates any records sitting in the overflow into the
// primary. Records that fail to migrate stay in the overflow; the ones
// already migrated are removed, so a partial flush never duplicates.
func (t *Tiered) FlushOverflow(ctx context.Context) error {
	pending, err := t.Overflow.load()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	remaining := make([]PaymentRecord, 0, len(pending))
	var firstErr error
	for _, rec := range pending {
		if firstErr != nil {
			remaining = append(remaining, rec)
			continue
		}
		if err := t.Primary.Append(rec); err != nil {
			firstErr = err
			remaining = append(remaining, rec)
		}
	}
	if err := t.Overflow.kv.Put(store.KeyLedgerFallback, remaining); err != nil {
		return err
	}
	return firstErr
}

// All flushes the overflow, then reads the primary, newest first by
// RecordedAt.
func (t *Tiered) All(ctx context.Context) ([]PaymentRecord, error) {
	if err := t.FlushOverflow(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ledger: flush overflow: %s\n", err)
	}
	records, err := t.Primary.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})
	return records, nil
}

// Delete removes the record from whichever tier holds it.
func (t *Tiered) Delete(id string) error {
	if err := t.Primary.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "ledger: primary delete %s: %s\n", id, err)
	}
	return t.Overflow.Delete(id)
}

// Clear empties both tiers.
func (t *Tiered) Clear(ctx context.Context) error {
	if err := t.Primary.Clear(ctx); err != nil {
		return err
	}
	return t.Overflow.Clear(ctx)
}
