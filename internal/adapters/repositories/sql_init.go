package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"courier-dispatch-service/internal/domain"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		package_id TEXT PRIMARY KEY,
		weight_kg DOUBLE PRECISION NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		offer_code TEXT
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY,
		max_speed_kmh DOUBLE PRECISION NOT NULL,
		max_load_kg DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createPackagesQuery,
		createVehiclesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PackageSeed struct {
	PackageID  string  `json:"package_id"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	OfferCode  string  `json:"offer_code"`
}

type VehicleSeed struct {
	VehicleID   int     `json:"vehicle_id"`
	MaxSpeedKmh float64 `json:"max_speed_kmh"`
	MaxLoadKg   float64 `json:"max_load_kg"`
}

type Seed struct {
	Packages []PackageSeed `json:"packages"`
	Vehicles []VehicleSeed `json:"vehicles"`
}

// Populate the database with package and vehicle data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dispatch data: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed dispatch data: parse json: %w", err)
	}

	for i, item := range data.Packages {
		pkg := domain.Package{
			ID:         strings.TrimSpace(item.PackageID),
			WeightKg:   item.WeightKg,
			DistanceKm: item.DistanceKm,
			OfferCode:  strings.TrimSpace(item.OfferCode),
		}
		if err := pkg.Validate(); err != nil {
			return fmt.Errorf("seed dispatch data: package at index %d: %w", i+1, err)
		}
	}
	for i, item := range data.Vehicles {
		v := domain.Vehicle{ID: item.VehicleID, MaxSpeedKmh: item.MaxSpeedKmh, MaxLoadKg: item.MaxLoadKg}
		if item.VehicleID <= 0 {
			return fmt.Errorf("seed dispatch data: invalid vehicle id at index %d: %d", i+1, item.VehicleID)
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("seed dispatch data: vehicle at index %d: %w", i+1, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed dispatch data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pkgStmt, err := tx.Prepare(`
	INSERT INTO packages (package_id, weight_kg, distance_km, offer_code)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (package_id) DO UPDATE
	SET weight_kg = EXCLUDED.weight_kg,
		distance_km = EXCLUDED.distance_km,
		offer_code = EXCLUDED.offer_code;
	`)
	if err != nil {
		return fmt.Errorf("seed dispatch data: prepare package insert: %w", err)
	}
	defer pkgStmt.Close()

	for _, p := range data.Packages {
		var offer sql.NullString
		if code := strings.TrimSpace(p.OfferCode); code != "" {
			offer = sql.NullString{String: code, Valid: true}
		}
		if _, err := pkgStmt.Exec(strings.TrimSpace(p.PackageID), p.WeightKg, p.DistanceKm, offer); err != nil {
			return fmt.Errorf("seed dispatch data: insert package %q: %w", p.PackageID, err)
		}
	}

	vehStmt, err := tx.Prepare(`
	INSERT INTO vehicles (vehicle_id, max_speed_kmh, max_load_kg)
	VALUES ($1, $2, $3)
	ON CONFLICT (vehicle_id) DO UPDATE
	SET max_speed_kmh = EXCLUDED.max_speed_kmh,
		max_load_kg = EXCLUDED.max_load_kg;
	`)
	if err != nil {
		return fmt.Errorf("seed dispatch data: prepare vehicle insert: %w", err)
	}
	defer vehStmt.Close()

	for _, v := range data.Vehicles {
		if _, err := vehStmt.Exec(v.VehicleID, v.MaxSpeedKmh, v.MaxLoadKg); err != nil {
			return fmt.Errorf("seed dispatch data: insert vehicle %d: %w", v.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dispatch data: commit tx: %w", err)
	}

	return nil
}
