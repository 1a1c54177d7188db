package domain

import "fmt"

// Vehicle is one member of the delivery fleet.
// AvailableAt is the simulated hour at which the vehicle can next depart;
// it starts at zero and is advanced by the fleet clock as shipments are
// committed. IDs are stable for the duration of a planning run and break
// ties when several vehicles become available at the same time.
type Vehicle struct {
	ID          int
	MaxSpeedKmh float64
	MaxLoadKg   float64
	AvailableAt float64
}

// Validate reports the first invalid field, if any.
func (v Vehicle) Validate() error {
	if v.MaxSpeedKmh <= 0 {
		return fmt.Errorf("vehicle %d: max speed must be positive", v.ID)
	}
	if v.MaxLoadKg <= 0 {
		return fmt.Errorf("vehicle %d: max load must be positive", v.ID)
	}
	return nil
}
