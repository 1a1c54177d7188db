package services

import (
	"fmt"

	"courier-dispatch-service/internal/domain"
)

// DispatchRequest carries the inputs of one planning run.
type DispatchRequest struct {
	Packages []domain.Package
	Vehicles []domain.Vehicle
	BaseCost float64
	// Catalog overrides the standard offer table; nil uses the default.
	Catalog *domain.Catalog
	// Sink receives planning trace events; nil discards them.
	Sink TraceSink
}

// PlanDispatch validates, prices, and schedules the request, then merges
// the two outputs into per-package results. Every input package yields
// exactly one DeliveryResult whose delivery time is the departure of its
// shipment plus one one-way leg. Inputs are treated as read-only snapshots.
func PlanDispatch(req DispatchRequest) (*domain.DispatchPlan, error) {
	if len(req.Vehicles) == 0 {
		return nil, fmt.Errorf("plan dispatch: %w", domain.ErrEmptyFleet)
	}

	seen := make(map[string]struct{}, len(req.Packages))
	for _, pkg := range req.Packages {
		if err := pkg.Validate(); err != nil {
			return nil, fmt.Errorf("plan dispatch: %w", err)
		}
		if _, ok := seen[pkg.ID]; ok {
			return nil, fmt.Errorf("plan dispatch: %w", &domain.InvalidPackageError{
				PackageID: pkg.ID, Field: "id", Reason: "is duplicated",
			})
		}
		seen[pkg.ID] = struct{}{}
	}
	for _, v := range req.Vehicles {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("plan dispatch: %w", err)
		}
	}

	shipments, err := PlanShipments(req.Packages, req.Vehicles, req.Sink)
	if err != nil {
		return nil, fmt.Errorf("plan dispatch: %w", err)
	}

	// Join shipment timing back onto package ids.
	deliveryAt := make(map[string]float64, len(req.Packages))
	for _, s := range shipments {
		eta := s.DepartureAt + s.OneWayHours
		for _, pkg := range s.Packages {
			deliveryAt[pkg.ID] = eta
		}
	}

	pricer := NewPricer(req.Catalog)
	results := make([]domain.DeliveryResult, 0, len(req.Packages))
	for _, pkg := range req.Packages {
		q := pricer.Quote(pkg, req.BaseCost)
		results = append(results, domain.DeliveryResult{
			PackageID:    pkg.ID,
			OriginalCost: q.OriginalCost,
			Discount:     q.Discount,
			TotalCost:    q.TotalCost,
			DeliveryAt:   deliveryAt[pkg.ID],
		})
	}

	return &domain.DispatchPlan{Shipments: shipments, Results: results}, nil
}
