package domain

// Shipment is one vehicle's single round trip carrying a fixed subset of
// packages. DistanceKm is the farthest member drop-off; the vehicle is
// assumed to detour to every member within that one trip. A Shipment is
// created once by the planner and never mutated afterwards.
type Shipment struct {
	VehicleID   int
	Packages    []Package
	DistanceKm  float64
	DepartureAt float64
	OneWayHours float64
	ReturnAt    float64
}

// TotalWeightKg sums the member package weights.
func (s Shipment) TotalWeightKg() float64 {
	total := 0.0
	for _, pkg := range s.Packages {
		total += pkg.WeightKg
	}
	return total
}

// PackageIDs lists the member package ids in load order.
func (s Shipment) PackageIDs() []string {
	ids := make([]string, 0, len(s.Packages))
	for _, pkg := range s.Packages {
		ids = append(ids, pkg.ID)
	}
	return ids
}
