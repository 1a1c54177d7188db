package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"courier-dispatch-service/internal/api/dto"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/ports"
)

// VehicleHandler exposes fleet CRUD endpoints over the repository port.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Repo.ListVehicles(r.Context())
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			VehicleID:   v.ID,
			MaxSpeedKmh: v.MaxSpeedKmh,
			MaxLoadKg:   v.MaxLoadKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.VehicleID <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle_id must be positive")
		return
	}

	v := domain.Vehicle{
		ID:          req.VehicleID,
		MaxSpeedKmh: req.MaxSpeedKmh,
		MaxLoadKg:   req.MaxLoadKg,
	}
	if err := v.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.SaveVehicle(r.Context(), v); err != nil {
		log.Printf("save vehicle failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.VehicleResponse{
		VehicleID:   v.ID,
		MaxSpeedKmh: v.MaxSpeedKmh,
		MaxLoadKg:   v.MaxLoadKg,
	})
}
