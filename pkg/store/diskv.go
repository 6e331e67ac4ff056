// Package store is the persistence layer: one diskv tree holding a
// collection per entity kind, the payment ledger, and the engine's
// key-value state namespace.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DB wraps the diskv tree every store hangs off.
type DB struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a DB rooted at the configured base path.
func Open(cfg Config) (*DB, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &DB{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath returns the root of the diskv tree.
func (db *DB) BasePath() string { return db.basePath }

// keys streams every key under a collection prefix.
func (db *DB) keys(ctx context.Context, collection string) []string {
	out := make([]string, 0)
	for key := range db.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) > 0 && pk.Path[0] == collection {
			out = append(out, key)
		}
	}
	return out
}

func (db *DB) read(key string) ([]byte, error) {
	return db.d.Read(key)
}

func (db *DB) write(key string, data []byte) error {
	return db.d.Write(key, data)
}

func (db *DB) erase(key string) error {
	return db.d.Erase(key)
}

func (db *DB) has(key string) bool {
	return db.d.Has(key)
}

// Keys are `collection/id`; ids may themselves contain dashes (uuids), so
// the separator is a slash, never a dash.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
