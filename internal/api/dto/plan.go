package dto

type PlanRequest struct {
	BaseDeliveryCost float64 `json:"base_delivery_cost"`
}

type ShipmentResponse struct {
	VehicleID   int      `json:"vehicle_id"`
	PackageIDs  []string `json:"package_ids"`
	DistanceKm  float64  `json:"distance_km"`
	DepartureAt float64  `json:"departure_at_hours"`
	OneWayHours float64  `json:"one_way_hours"`
	ReturnAt    float64  `json:"return_at_hours"`
	TotalWeight float64  `json:"total_weight_kg"`
}

type DeliveryResultResponse struct {
	PackageID    string  `json:"package_id"`
	OriginalCost float64 `json:"original_cost"`
	Discount     float64 `json:"discount"`
	TotalCost    float64 `json:"total_cost"`
	DeliveryAt   float64 `json:"delivery_at_hours"`
}

type PlanResponse struct {
	Shipments []ShipmentResponse       `json:"shipments"`
	Results   []DeliveryResultResponse `json:"results"`
}
