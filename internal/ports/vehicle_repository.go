package ports

import (
	"context"

	"courier-dispatch-service/internal/domain"
)

// Port: a boundary for storing and retrieving the vehicle fleet.
type VehicleRepository interface {
	// Retrieve the fleet, ordered by vehicle id.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	// Store a vehicle, replacing any existing row with the same id.
	SaveVehicle(ctx context.Context, v domain.Vehicle) error
}
