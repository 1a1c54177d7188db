package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/platform/obs"
)

// SQL-backed implementation of the VehicleRepository port.
type SQLVehicleRepository struct{ DB *sql.DB }

func NewSQLVehicleRepository(db *sql.DB) *SQLVehicleRepository {
	return &SQLVehicleRepository{DB: db}
}

// Return the stored fleet ordered by vehicle id. AvailableAt always starts
// at zero: availability is planning-run state, not persisted state.
func (s *SQLVehicleRepository) ListVehicles(ctx context.Context) (_ []domain.Vehicle, err error) {
	defer obs.Time(ctx, "vehicles.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		max_speed_kmh,
		max_load_kg
	FROM vehicles
	ORDER BY vehicle_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0, 8)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.MaxSpeedKmh, &v.MaxLoadKg); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}

// Store a vehicle, replacing any existing row with the same id.
func (s *SQLVehicleRepository) SaveVehicle(ctx context.Context, v domain.Vehicle) (err error) {
	defer obs.Time(ctx, "vehicles.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("vehicle repository: DB is nil")
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("save vehicle: %w", err)
	}

	query := `
	INSERT INTO vehicles (vehicle_id, max_speed_kmh, max_load_kg)
	VALUES ($1, $2, $3)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET max_speed_kmh = EXCLUDED.max_speed_kmh,
		max_load_kg = EXCLUDED.max_load_kg;
	`
	if _, err := s.DB.ExecContext(ctx, query, v.ID, v.MaxSpeedKmh, v.MaxLoadKg); err != nil {
		return fmt.Errorf("save vehicle %d: %w", v.ID, err)
	}

	return nil
}
