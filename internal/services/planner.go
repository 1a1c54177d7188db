package services

import (
	"courier-dispatch-service/internal/domain"
)

// PlanShipments assigns every package to exactly one shipment, simulating
// vehicle availability over a discrete timeline.
//
// Each round hands the full unassigned pool to the earliest-available ready
// vehicle (lowest id on ties); when no vehicle is ready the clock jumps to
// the next availability instead of ticking. After a departure the clock
// also moves forward by one one-way leg: the planner processes one
// departure's worth of wall-clock time per assignment round. Shipments are
// returned in creation order, which is fully deterministic for identical
// inputs.
//
// The caller's package and vehicle slices are never mutated; the planner
// works on private copies, so independent runs may share inputs
// concurrently.
func PlanShipments(packages []domain.Package, vehicles []domain.Vehicle, sink TraceSink) ([]domain.Shipment, error) {
	if sink == nil {
		sink = NopSink{}
	}
	if len(vehicles) == 0 {
		return nil, domain.ErrEmptyFleet
	}

	// A package heavier than every vehicle can never be packed. Fail before
	// any shipment exists rather than stalling mid-run.
	maxLoad := 0.0
	for _, v := range vehicles {
		if v.MaxLoadKg > maxLoad {
			maxLoad = v.MaxLoadKg
		}
	}
	var unroutable []string
	for _, pkg := range packages {
		if pkg.WeightKg > maxLoad {
			unroutable = append(unroutable, pkg.ID)
		}
	}
	if len(unroutable) > 0 {
		return nil, &domain.UnroutableError{PackageIDs: unroutable}
	}

	pool := append([]domain.Package(nil), packages...)
	clock := NewFleetClock(vehicles)

	shipments := make([]domain.Shipment, 0, len(pool))
	for len(pool) > 0 {
		ready := clock.Ready()
		if len(ready) == 0 {
			from := clock.Now()
			clock.AdvanceToNextAvailable()
			sink.TimeAdvanced(from, clock.Now())
			continue
		}

		vehicle := ready[0]
		load := PackShipment(pool, vehicle.MaxLoadKg)
		if len(load) == 0 {
			// Nothing left fits the selected vehicle. Failing here keeps the
			// loop from spinning without progress.
			return nil, &domain.UnroutableError{PackageIDs: packageIDs(pool)}
		}

		distance := ShipmentDistanceKm(load)
		oneWay := distance / vehicle.MaxSpeedKmh
		departAt := clock.Now()

		shipment := domain.Shipment{
			VehicleID:   vehicle.ID,
			Packages:    load,
			DistanceKm:  distance,
			DepartureAt: departAt,
			OneWayHours: oneWay,
			ReturnAt:    departAt + 2*oneWay,
		}
		shipments = append(shipments, shipment)

		sink.ShipmentPacked(vehicle.ID, shipment.TotalWeightKg(), distance)
		sink.VehicleAssigned(vehicle.ID, departAt, shipment.PackageIDs())

		clock.Commit(vehicle, departAt, oneWay)
		pool = removePackages(pool, load)
		clock.Forward(oneWay)
	}

	return shipments, nil
}

func packageIDs(pkgs []domain.Package) []string {
	ids := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		ids = append(ids, pkg.ID)
	}
	return ids
}

func removePackages(pool, load []domain.Package) []domain.Package {
	loaded := make(map[string]struct{}, len(load))
	for _, pkg := range load {
		loaded[pkg.ID] = struct{}{}
	}

	remaining := pool[:0]
	for _, pkg := range pool {
		if _, ok := loaded[pkg.ID]; !ok {
			remaining = append(remaining, pkg)
		}
	}
	return remaining
}
