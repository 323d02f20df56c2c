package table

import (
	"fmt"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"

	"dcs/internal/aggregate"
)

// BadgerStore implements Store using BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(filepath.Clean(dir))
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Close() error { return b.db.Close() }

// Replace deletes all existing keys, then writes the new batch in one
// transaction.
func (b *BadgerStore) Replace(rows []aggregate.Row) error {
	return b.db.Update(func(txn *badger.Txn) error {
		// Collect keys first to avoid mutating while iterating.
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		var toDelete [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			toDelete = append(toDelete, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, k := range toDelete {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		for _, r := range rows {
			bytes, err := encodeRow(r)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(r.Key()), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BadgerStore) Get(key string) (aggregate.Row, bool) {
	var row aggregate.Row
	err := b.db.View(func(txn *badger.Txn) error {
		item, e := txn.Get([]byte(key))
		if e != nil {
			return e
		}
		v, e := item.ValueCopy(nil)
		if e != nil {
			return e
		}
		var dErr error
		row, dErr = decodeRow(v)
		return dErr
	})
	if err != nil {
		return aggregate.Row{}, false
	}
	return row, true
}

func (b *BadgerStore) Range(fn func(row aggregate.Row) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			r, err := decodeRow(v)
			if err != nil {
				return err
			}
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	})
}
