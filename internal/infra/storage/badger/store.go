// Package badger implements the settings, subscription and metadata stores
// on an embedded BadgerDB database, for single-host deployments without a
// Redis server.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabapcia/salestracker/internal/pkg/logger"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces every key written by salestracker.
const keyPrefix = "salestracker:"

// logAdapter routes badger's printf style logs to the application logger.
type logAdapter struct{}

func (logAdapter) Errorf(f string, v ...any) {
	logger.Error(context.Background(), fmt.Sprintf(f, v...), "component", "badger")
}

func (logAdapter) Warningf(f string, v ...any) {
	logger.Warn(context.Background(), fmt.Sprintf(f, v...), "component", "badger")
}

func (logAdapter) Infof(f string, v ...any) {
	logger.Info(context.Background(), fmt.Sprintf(f, v...), "component", "badger")
}

// Debugf is dropped: badger is very chatty at debug level.
func (logAdapter) Debugf(string, ...any) {}

type store struct {
	db *badger.DB
}

func (s *store) Close() error {
	return s.db.Close()
}

// Open opens, creating it when needed, the database stored under path.
// Writes are synced to disk before they are acknowledged.
func Open(path string) (*store, error) {
	if err := os.MkdirAll(filepath.Clean(path), 0o755); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}

	return open(badger.DefaultOptions(path).WithSyncWrites(true))
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*store, error) {
	opts.Logger = logAdapter{}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &store{db: db}, nil
}

// getJSON decodes the value stored under key into v. It returns
// badger.ErrKeyNotFound when the key does not exist.
func (s *store) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// setJSON stores v under key.
func (s *store) setJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}

// scanPrefix calls fn with the key and a copy of the value of every entry
// whose key starts with prefix, in key order.
func (s *store) scanPrefix(prefix string, fn func(key string, val []byte)) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()

			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			fn(string(item.KeyCopy(nil)), val)
		}

		return nil
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
