package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the only status that contributes to aggregation.
// All other values (including unknown future tags) are filtered, not errored.
const StatusCompleted = "completed"

// Order represents one raw transactional record (bronze layer).
type Order struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	OrderTS    string          `json:"order_ts"`
	Amount     decimal.Decimal `json:"order_amount"`
	Status     string          `json:"status"`
}

// Validate checks field presence at the ingestion boundary. Timestamp shape
// and amount sign are the aggregator's concern.
func (o Order) Validate() error {
	if o.OrderID == "" {
		return fmt.Errorf("order has no order_id")
	}
	if o.CustomerID == "" {
		return fmt.Errorf("order %s: missing customer_id", o.OrderID)
	}
	if o.OrderTS == "" {
		return fmt.Errorf("order %s: missing order_ts", o.OrderID)
	}
	if o.Status == "" {
		return fmt.Errorf("order %s: missing status", o.OrderID)
	}
	return nil
}

// Completed reports whether the order qualifies for aggregation.
func (o Order) Completed() bool { return o.Status == StatusCompleted }
