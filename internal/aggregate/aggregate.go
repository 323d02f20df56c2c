package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"dcs/internal/model"
)

// ErrMalformedTimestamp reports an order_ts that cannot be parsed as a date-time.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ErrInvalidAmount reports a negative order amount.
var ErrInvalidAmount = errors.New("invalid amount")

type groupKey struct {
	orderDate  string
	customerID string
}

type groupState struct {
	revenue decimal.Decimal
	count   int64
}

// Aggregate folds a fully-materialized batch of orders into one row per
// (order_date, customer_id), keeping only completed orders. Revenue is summed
// in input order with exact decimal arithmetic, so the result is identical
// under any permutation of the input, and rounded half-up to two places on
// output. A malformed timestamp or negative amount anywhere in the batch
// fails the whole call; no partial result is returned. Rows come back sorted
// ascending by (order_date, customer_id).
func Aggregate(orders []model.Order) ([]Row, error) {
	groups := make(map[groupKey]*groupState)
	for _, o := range orders {
		if !o.Completed() {
			continue
		}
		date, err := OrderDate(o.OrderTS)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.OrderID, err)
		}
		if o.Amount.IsNegative() {
			return nil, fmt.Errorf("order %s: %w: %s", o.OrderID, ErrInvalidAmount, o.Amount)
		}
		k := groupKey{orderDate: date, customerID: o.CustomerID}
		g, ok := groups[k]
		if !ok {
			g = &groupState{}
			groups[k] = g
		}
		g.revenue = g.revenue.Add(o.Amount)
		g.count++
	}

	rows := make([]Row, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, Row{
			OrderDate:    k.orderDate,
			CustomerID:   k.customerID,
			DailyRevenue: g.revenue.Round(2),
			OrderCount:   g.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderDate != rows[j].OrderDate {
			return rows[i].OrderDate < rows[j].OrderDate
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})
	return rows, nil
}
