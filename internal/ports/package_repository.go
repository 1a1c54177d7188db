package ports

import (
	"context"

	"courier-dispatch-service/internal/domain"
)

// Port: a boundary for storing and retrieving Package entities.
type PackageRepository interface {
	// Retrieve all packages available for dispatch, ordered by id.
	ListPackages(ctx context.Context) ([]domain.Package, error)
	// Store a package, replacing any existing row with the same id.
	SavePackage(ctx context.Context, pkg domain.Package) error
}
