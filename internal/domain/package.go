package domain

import "strings"

// Represents a single delivery unit handled by the system.
// A Package is a weight carried over a distance, optionally tagged with a
// discount offer code. Pricing and scheduling never mutate a package; all
// derived data lives in DeliveryResult.
type Package struct {
	ID         string
	WeightKg   float64
	DistanceKm float64
	OfferCode  string
}

// Validate reports the first invalid field, if any.
// Packages are rejected before planning starts; a partial plan is never
// produced for invalid input.
func (p Package) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return &InvalidPackageError{PackageID: p.ID, Field: "id", Reason: "must be non-empty"}
	}
	if p.WeightKg <= 0 {
		return &InvalidPackageError{PackageID: p.ID, Field: "weight", Reason: "must be positive"}
	}
	if p.DistanceKm <= 0 {
		return &InvalidPackageError{PackageID: p.ID, Field: "distance", Reason: "must be positive"}
	}
	return nil
}
