package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Collection is the generic per-entity store: JSON blobs under one path
// segment, one file per record.
type Collection[T any] struct {
	db   *DB
	name string
	id   func(*T) *string
}

// NewCollection binds a record type to a named collection. The id accessor
// points at the record's ID field so Add can assign one.
func NewCollection[T any](db *DB, name string, id func(*T) *string) *Collection[T] {
	return &Collection[T]{db: db, name: name, id: id}
}

// Name returns the collection's path segment.
func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) key(id string) string {
	return c.name + "/" + id
}

// All returns every record in the collection, sorted by id for stable
// output. Unreadable blobs are skipped with a diagnostic, never fatal.
func (c *Collection[T]) All(ctx context.Context) []T {
	keys := c.db.keys(ctx, c.name)
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, key := range keys {
		data, err := c.db.read(key)
		if err != nil {
			warnf("store: %s: %s", key, err)
			continue
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			warnf("store: %s: %s", key, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Get reads one record by id.
func (c *Collection[T]) Get(id string) (T, error) {
	var v T
	data, err := c.db.read(c.key(id))
	if err != nil {
		return v, fmt.Errorf("store: get %s/%s: %w", c.name, id, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("store: decode %s/%s: %w", c.name, id, err)
	}
	return v, nil
}

// Add stores a record, assigning a uuid when the record has none, and
// returns the id.
func (c *Collection[T]) Add(v *T) (string, error) {
	idp := c.id(v)
	if *idp == "" {
		*idp = uuid.NewString()
	}
	if err := c.put(*idp, v); err != nil {
		return "", err
	}
	return *idp, nil
}

// Update rewrites an existing record in place.
func (c *Collection[T]) Update(v *T) error {
	id := *c.id(v)
	if id == "" {
		return fmt.Errorf("store: update %s: record has no id", c.name)
	}
	if !c.db.has(c.key(id)) {
		return fmt.Errorf("store: update %s/%s: no such record", c.name, id)
	}
	return c.put(id, v)
}

func (c *Collection[T]) put(id string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s/%s: %w", c.name, id, err)
	}
	if err := c.db.write(c.key(id), data); err != nil {
		return fmt.Errorf("store: write %s/%s: %w", c.name, id, err)
	}
	return nil
}

// Delete removes one record.
func (c *Collection[T]) Delete(id string) error {
	return c.db.erase(c.key(id))
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(ctx context.Context) int {
	return len(c.db.keys(ctx, c.name))
}

// Clear removes every record in the collection.
func (c *Collection[T]) Clear(ctx context.Context) error {
	for _, key := range c.db.keys(ctx, c.name) {
		if err := c.db.erase(key); err != nil {
			return fmt.Errorf("store: clear %s: %w", c.name, err)
		}
	}
	return nil
}
