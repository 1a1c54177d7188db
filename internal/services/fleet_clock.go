package services

import (
	"slices"

	"courier-dispatch-service/internal/domain"
)

// FleetClock tracks per-vehicle availability over the simulated timeline.
// Vehicles are ordered by (AvailableAt, ID) everywhere, so simultaneous
// availability resolves identically on every run.
type FleetClock struct {
	vehicles []*domain.Vehicle
	now      float64
}

// NewFleetClock copies the supplied vehicles; the caller's slice is never
// mutated by the planning run.
func NewFleetClock(vehicles []domain.Vehicle) *FleetClock {
	vs := make([]*domain.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		v := vehicles[i]
		vs = append(vs, &v)
	}
	return &FleetClock{vehicles: vs}
}

// Now is the current simulated time in hours.
func (c *FleetClock) Now() float64 { return c.now }

// Forward moves the simulated clock ahead by the given hours.
func (c *FleetClock) Forward(hours float64) { c.now += hours }

// Ready returns the vehicles available at the current time, earliest
// available first, lowest id on ties.
func (c *FleetClock) Ready() []*domain.Vehicle {
	ready := make([]*domain.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if v.AvailableAt <= c.now {
			ready = append(ready, v)
		}
	}
	sortVehicles(ready)
	return ready
}

// AdvanceToNextAvailable jumps the clock to the earliest vehicle
// availability. Called only when no vehicle is ready; there is no fixed
// tick, only this jump and Forward. Progress is monotonic because every
// AvailableAt is ahead of the clock when this runs.
func (c *FleetClock) AdvanceToNextAvailable() {
	if len(c.vehicles) == 0 {
		return
	}
	next := c.vehicles[0].AvailableAt
	for _, v := range c.vehicles[1:] {
		if v.AvailableAt < next {
			next = v.AvailableAt
		}
	}
	c.now = next
}

// Commit books a round trip on the vehicle: it becomes available again one
// full round trip after departure.
func (c *FleetClock) Commit(v *domain.Vehicle, departAt, oneWayHours float64) {
	v.AvailableAt = departAt + 2*oneWayHours
}

func sortVehicles(vs []*domain.Vehicle) {
	slices.SortFunc(vs, func(a, b *domain.Vehicle) int {
		if a.AvailableAt < b.AvailableAt {
			return -1
		}
		if a.AvailableAt > b.AvailableAt {
			return 1
		}
		return a.ID - b.ID
	})
}
