package dto

type VehicleRequest struct {
	VehicleID   int     `json:"vehicle_id"`
	MaxSpeedKmh float64 `json:"max_speed_kmh"`
	MaxLoadKg   float64 `json:"max_load_kg"`
}

type VehicleResponse struct {
	VehicleID   int     `json:"vehicle_id"`
	MaxSpeedKmh float64 `json:"max_speed_kmh"`
	MaxLoadKg   float64 `json:"max_load_kg"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
