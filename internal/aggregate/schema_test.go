package aggregate

import (
	"errors"
	"testing"
)

func TestOrderDate(t *testing.T) {
	cases := []struct {
		ts   string
		want string
	}{
		{"2026-02-13T09:10:00", "2026-02-13"},
		{"2026-02-13T23:59:59", "2026-02-13"},
		{"2026-02-13T09:10:00Z", "2026-02-13"},
		{"2026-02-13T09:10:00+02:00", "2026-02-13"},
		{"2026-02-13", "2026-02-13"},
	}
	for _, c := range cases {
		got, err := OrderDate(c.ts)
		if err != nil {
			t.Fatalf("OrderDate(%q): %v", c.ts, err)
		}
		if got != c.want {
			t.Fatalf("OrderDate(%q): got=%s want=%s", c.ts, got, c.want)
		}
	}
}

func TestOrderDate_Malformed(t *testing.T) {
	for _, ts := range []string{"", "13/02/2026", "2026-02-13 09:10:00:00", "yesterday"} {
		if _, err := OrderDate(ts); !errors.Is(err, ErrMalformedTimestamp) {
			t.Fatalf("OrderDate(%q): want ErrMalformedTimestamp, got %v", ts, err)
		}
	}
}

func TestRowKey(t *testing.T) {
	got := RowKey("2026-02-13", "C001")
	want := "2026-02-13#C001"
	if got != want {
		t.Fatalf("RowKey: got=%s want=%s", got, want)
	}
}
