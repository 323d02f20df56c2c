package aggregate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form used in keys and output rows.
const DateLayout = "2006-01-02"

// orderTSLayouts are the accepted order_ts forms, tried in order.
var orderTSLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	DateLayout,
}

// OrderDate parses an order_ts value and truncates it to its calendar date.
func OrderDate(ts string) (string, error) {
	for _, layout := range orderTSLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
}

// RowKey returns the composite key orderDate#customerID.
func RowKey(orderDate string, customerID string) string {
	return fmt.Sprintf("%s#%s", orderDate, customerID)
}

// Row is one aggregated output record (gold layer).
type Row struct {
	OrderDate    string          `json:"order_date"`
	CustomerID   string          `json:"customer_id"`
	DailyRevenue decimal.Decimal `json:"daily_revenue"` // 2dp, rounded half-up
	OrderCount   int64           `json:"order_count"`
}

// Key returns the row's composite key.
func (r Row) Key() string { return RowKey(r.OrderDate, r.CustomerID) }
