package domain

import "github.com/shopspring/decimal"

// DeliveryResult is the per-package outcome of a dispatch run: the cost
// breakdown plus the estimated delivery time of the shipment carrying the
// package (its departure plus one one-way leg). Money is decimal so cost
// arithmetic stays exact. Produced once, read-only.
type DeliveryResult struct {
	PackageID    string
	OriginalCost decimal.Decimal
	Discount     decimal.Decimal
	TotalCost    decimal.Decimal
	DeliveryAt   float64
}

// DispatchPlan pairs the shipment schedule with the per-package results.
// Both are derived data, discarded after being handed to the caller.
type DispatchPlan struct {
	Shipments []Shipment
	Results   []DeliveryResult
}
