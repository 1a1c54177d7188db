package dto

type OfferResponse struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	MinDistanceKm   float64 `json:"min_distance_km"`
	MaxDistanceKm   float64 `json:"max_distance_km"`
	MinWeightKg     float64 `json:"min_weight_kg"`
	MaxWeightKg     float64 `json:"max_weight_kg"`
}

type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}
