package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/platform/obs"
)

// SQL-backed implementation of the PackageRepository port.
type SQLPackageRepository struct{ DB *sql.DB }

func NewSQLPackageRepository(db *sql.DB) *SQLPackageRepository {
	return &SQLPackageRepository{DB: db}
}

// Return all stored packages ordered by id.
func (s *SQLPackageRepository) ListPackages(ctx context.Context) (_ []domain.Package, err error) {
	defer obs.Time(ctx, "packages.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("package repository: DB is nil")
	}

	query := `
	SELECT
		package_id,
		weight_kg,
		distance_km,
		offer_code
	FROM packages
	ORDER BY package_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]domain.Package, 0, 64)
	for rows.Next() {
		var (
			pkg   domain.Package
			offer sql.NullString
		)
		if err := rows.Scan(&pkg.ID, &pkg.WeightKg, &pkg.DistanceKm, &offer); err != nil {
			return nil, fmt.Errorf("list packages: scan row: %w", err)
		}
		pkg.OfferCode = offer.String
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}

// Store a package, replacing any existing row with the same id.
func (s *SQLPackageRepository) SavePackage(ctx context.Context, pkg domain.Package) (err error) {
	defer obs.Time(ctx, "packages.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("package repository: DB is nil")
	}
	if err := pkg.Validate(); err != nil {
		return fmt.Errorf("save package: %w", err)
	}

	var offer sql.NullString
	if pkg.OfferCode != "" {
		offer = sql.NullString{String: pkg.OfferCode, Valid: true}
	}

	query := `
	INSERT INTO packages (package_id, weight_kg, distance_km, offer_code)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (package_id) DO UPDATE
	SET weight_kg = EXCLUDED.weight_kg,
		distance_km = EXCLUDED.distance_km,
		offer_code = EXCLUDED.offer_code;
	`
	if _, err := s.DB.ExecContext(ctx, query, pkg.ID, pkg.WeightKg, pkg.DistanceKm, offer); err != nil {
		return fmt.Errorf("save package %q: %w", pkg.ID, err)
	}

	return nil
}
