package store

import (
	"encoding/json"
	"fmt"
)

// Well-known names in the engine's state namespace. Renaming one orphans
// previously persisted state.
const (
	KeyDismissed      = "dismissed"
	KeySnoozes        = "snoozes"
	KeyInbox          = "inbox"
	KeyLastScan       = "last-scan"
	KeyLedgerFallback = "ledger-fallback"
)

const stateSegment = "state"

// KV is the engine state namespace: a handful of JSON blobs under one
// path segment, separate from the entity collections and the ledger.
type KV struct {
	db *DB
}

func NewKV(db *DB) *KV {
	return &KV{db: db}
}

func stateKey(name string) string {
	return stateSegment + "/" + name
}

// Get decodes the named blob into v. The second return is false when the
// key has never been written.
func (kv *KV) Get(name string, v interface{}) (bool, error) {
	key := stateKey(name)
	if !kv.db.has(key) {
		return false, nil
	}
	data, err := kv.db.read(key)
	if err != nil {
		return false, fmt.Errorf("store: read state %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("store: decode state %s: %w", name, err)
	}
	return true, nil
}

// Put encodes v into the named blob.
func (kv *KV) Put(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode state %s: %w", name, err)
	}
	if err := kv.db.write(stateKey(name), data); err != nil {
		return fmt.Errorf("store: write state %s: %w", name, err)
	}
	return nil
}

// Delete removes the named blob; missing keys are not an error.
func (kv *KV) Delete(name string) error {
	key := stateKey(name)
	if !kv.db.has(key) {
		return nil
	}
	return kv.db.erase(key)
}
