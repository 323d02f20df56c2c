package sink

import (
	"fmt"
	"io"

	"dcs/internal/aggregate"
)

// Sink materializes one aggregated batch.
type Sink interface {
	Write(rows []aggregate.Row) error
}

// MultiSink fans out a batch to multiple underlying sinks.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(ss ...Sink) *MultiSink {
	return &MultiSink{sinks: ss}
}

func (m *MultiSink) Write(rows []aggregate.Row) error {
	for _, s := range m.sinks {
		if err := s.Write(rows); err != nil {
			return err
		}
	}
	return nil
}

// TextSink renders rows as an aligned text table, show()-style.
type TextSink struct {
	out io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{out: w}
}

func (s *TextSink) Write(rows []aggregate.Row) error {
	if _, err := fmt.Fprintf(s.out, "%-12s %-12s %14s %12s\n", "order_date", "customer_id", "daily_revenue", "order_count"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(s.out, "%-12s %-12s %14s %12d\n", r.OrderDate, r.CustomerID, r.DailyRevenue.StringFixed(2), r.OrderCount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(s.out, "%d row(s)\n", len(rows))
	return err
}
