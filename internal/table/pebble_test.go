package table

import (
	"testing"

	"dcs/internal/aggregate"
)

func TestPebbleStore_Overwrite(t *testing.T) {
	st, err := NewPebbleStore(t.TempDir())
	if err != nil {
		t.Fatalf("pebble open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	checkOverwrite(t, st)
}

func TestPebbleStore_RangeIsKeyOrdered(t *testing.T) {
	st, err := NewPebbleStore(t.TempDir())
	if err != nil {
		t.Fatalf("pebble open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.Replace(rowsV1()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	var keys []string
	if err := st.Range(func(r aggregate.Row) error {
		keys = append(keys, r.Key())
		return nil
	}); err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(keys) != 2 || keys[0] != "2026-02-13#C001" || keys[1] != "2026-02-14#C003" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}
