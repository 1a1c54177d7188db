package services

// TraceSink receives structured planning events as the shipment planner
// runs. Presentation layers can render these into a human-readable
// timeline; the planner itself never formats text.
type TraceSink interface {
	// TimeAdvanced fires when the simulated clock jumps because no vehicle
	// was ready.
	TimeAdvanced(fromHours, toHours float64)
	// ShipmentPacked fires once a load has been selected for a vehicle.
	ShipmentPacked(vehicleID int, totalWeightKg, distanceKm float64)
	// VehicleAssigned fires when a shipment departs.
	VehicleAssigned(vehicleID int, departAtHours float64, packageIDs []string)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) TimeAdvanced(float64, float64) {}

func (NopSink) ShipmentPacked(int, float64, float64) {}

func (NopSink) VehicleAssigned(int, float64, []string) {}
