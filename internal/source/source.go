package source

import (
	"github.com/shopspring/decimal"

	"dcs/internal/model"
)

// Source produces one fully-materialized batch of raw orders.
type Source interface {
	ReadBatch() ([]model.Order, error)
}

// Fixture returns a small built-in bronze batch for local runs without any
// input wiring.
func Fixture() []model.Order {
	return []model.Order{
		{OrderID: "1001", CustomerID: "C001", OrderTS: "2026-02-13T09:10:00", Amount: decimal.RequireFromString("125.50"), Status: "completed"},
		{OrderID: "1002", CustomerID: "C002", OrderTS: "2026-02-13T10:30:00", Amount: decimal.RequireFromString("20.00"), Status: "cancelled"},
		{OrderID: "1003", CustomerID: "C001", OrderTS: "2026-02-13T11:45:00", Amount: decimal.RequireFromString("88.00"), Status: "completed"},
		{OrderID: "1004", CustomerID: "C003", OrderTS: "2026-02-14T08:00:00", Amount: decimal.RequireFromString("42.25"), Status: "completed"},
	}
}

// SampleSource serves the fixture batch through the Source interface.
type SampleSource struct{}

func (SampleSource) ReadBatch() ([]model.Order, error) { return Fixture(), nil }
