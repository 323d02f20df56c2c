package table

import (
	"testing"

	"github.com/shopspring/decimal"

	"dcs/internal/aggregate"
)

func rowsV1() []aggregate.Row {
	return []aggregate.Row{
		{OrderDate: "2026-02-13", CustomerID: "C001", DailyRevenue: decimal.RequireFromString("213.50"), OrderCount: 2},
		{OrderDate: "2026-02-14", CustomerID: "C003", DailyRevenue: decimal.RequireFromString("42.25"), OrderCount: 1},
	}
}

func rowsV2() []aggregate.Row {
	return []aggregate.Row{
		{OrderDate: "2026-02-15", CustomerID: "C002", DailyRevenue: decimal.RequireFromString("9.99"), OrderCount: 1},
	}
}

func checkOverwrite(t *testing.T, st Store) {
	t.Helper()
	if err := st.Replace(rowsV1()); err != nil {
		t.Fatalf("replace1: %v", err)
	}
	r, ok := st.Get("2026-02-13#C001")
	if !ok || r.OrderCount != 2 || !r.DailyRevenue.Equal(decimal.RequireFromString("213.50")) {
		t.Fatalf("bad row after first replace: %+v ok=%v", r, ok)
	}

	if err := st.Replace(rowsV2()); err != nil {
		t.Fatalf("replace2: %v", err)
	}
	if _, ok := st.Get("2026-02-13#C001"); ok {
		t.Fatalf("stale key survived overwrite")
	}
	if _, ok := st.Get("2026-02-14#C003"); ok {
		t.Fatalf("stale key survived overwrite")
	}
	if r, ok := st.Get("2026-02-15#C002"); !ok || r.OrderCount != 1 {
		t.Fatalf("new batch missing: %+v ok=%v", r, ok)
	}

	count := 0
	if err := st.Range(func(row aggregate.Row) error { count++; return nil }); err != nil {
		t.Fatalf("range: %v", err)
	}
	if count != 1 {
		t.Fatalf("range count=%d want=1", count)
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	checkOverwrite(t, NewMemoryStore())
}

func TestMemoryStore_EmptyReplaceClears(t *testing.T) {
	st := NewMemoryStore()
	if err := st.Replace(rowsV1()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := st.Replace(nil); err != nil {
		t.Fatalf("empty replace: %v", err)
	}
	count := 0
	if err := st.Range(func(aggregate.Row) error { count++; return nil }); err != nil {
		t.Fatalf("range: %v", err)
	}
	if count != 0 {
		t.Fatalf("table should be empty, found %d rows", count)
	}
}
