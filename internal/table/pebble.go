package table

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"dcs/internal/aggregate"
)

// PebbleStore implements Store using PebbleDB.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(dir string) (*PebbleStore, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: d}, nil
}

func (p *PebbleStore) Close() error { return p.db.Close() }

func encodeRow(r aggregate.Row) ([]byte, error) { return json.Marshal(&r) }

func decodeRow(val []byte) (aggregate.Row, error) {
	var r aggregate.Row
	if err := json.Unmarshal(val, &r); err != nil {
		return aggregate.Row{}, err
	}
	return r, nil
}

// Replace deletes all existing keys, then writes the new batch atomically.
func (p *PebbleStore) Replace(rows []aggregate.Row) error {
	var toDelete [][]byte
	it, err := p.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("iter: %w", err)
	}
	for it.First(); it.Valid(); it.Next() {
		toDelete = append(toDelete, append([]byte(nil), it.Key()...))
	}
	if err := it.Close(); err != nil {
		return fmt.Errorf("iter close: %w", err)
	}

	wb := p.db.NewBatch()
	defer wb.Close()
	for _, k := range toDelete {
		if err := wb.Delete(k, nil); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
	}
	for _, r := range rows {
		b, err := encodeRow(r)
		if err != nil {
			return fmt.Errorf("encode row %s: %w", r.Key(), err)
		}
		if err := wb.Set([]byte(r.Key()), b, nil); err != nil {
			return fmt.Errorf("set: %w", err)
		}
	}
	if err := wb.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (p *PebbleStore) Get(key string) (aggregate.Row, bool) {
	v, closer, err := p.db.Get([]byte(key))
	if err != nil {
		return aggregate.Row{}, false
	}
	defer closer.Close()
	r, e := decodeRow(v)
	if e != nil {
		return aggregate.Row{}, false
	}
	return r, true
}

// Range visits rows in key order, which for date#customer keys matches the
// aggregator's output order.
func (p *PebbleStore) Range(fn func(row aggregate.Row) error) error {
	it, err := p.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("iter: %w", err)
	}
	defer it.Close()
	for it.First(); it.Valid(); it.Next() {
		v := append([]byte(nil), it.Value()...)
		r, err := decodeRow(v)
		if err != nil {
			return err
		}
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}
