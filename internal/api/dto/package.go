package dto

type PackageRequest struct {
	PackageID  string  `json:"package_id"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	OfferCode  string  `json:"offer_code,omitempty"`
}

type PackageResponse struct {
	PackageID  string  `json:"package_id"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	OfferCode  string  `json:"offer_code,omitempty"`
}

type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}
