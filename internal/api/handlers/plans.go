package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"courier-dispatch-service/internal/api/dto"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/ports"
	"courier-dispatch-service/internal/services"
)

// Cached plans are advisory; they only short-circuit recomputation while
// the stored packages and fleet stay unchanged (the digest covers both).
const planCacheTTL = 10 * time.Minute

// PlanHandler prices and schedules the stored packages across the stored
// fleet. It coordinates repository access, the dispatch engine, and the
// optional plan cache.
type PlanHandler struct {
	Packages ports.PackageRepository
	Vehicles ports.VehicleRepository
	Catalog  *domain.Catalog
	Cache    ports.PlanCache // optional
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

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

	baseCost := req.BaseDeliveryCost
	if baseCost == 0 {
		baseCost = 100
	}
	if baseCost < 0 {
		writeError(w, r, http.StatusBadRequest, "base_delivery_cost must not be negative")
		return
	}

	packages, err := h.Packages.ListPackages(r.Context())
	if err != nil {
		log.Printf("plan: list packages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	vehicles, err := h.Vehicles.ListVehicles(r.Context())
	if err != nil {
		log.Printf("plan: list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	key := planCacheKey(baseCost, packages, vehicles)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(r.Context(), key); err == nil {
			writeRawJSON(w, http.StatusOK, cached)
			return
		} else if !errors.Is(err, ports.ErrCacheMiss) {
			// Degrade to planning without the cache.
			log.Printf("plan: cache get failed: %v", err)
		}
	}

	plan, err := services.PlanDispatch(services.DispatchRequest{
		Packages: packages,
		Vehicles: vehicles,
		BaseCost: baseCost,
		Catalog:  h.Catalog,
	})
	if err != nil {
		var invalid *domain.InvalidPackageError
		var unroutable *domain.UnroutableError
		switch {
		case errors.As(err, &invalid):
			writeError(w, r, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, domain.ErrEmptyFleet), errors.As(err, &unroutable):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("plan dispatch failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := planResponse(plan)

	body, err := json.Marshal(res)
	if err != nil {
		log.Printf("plan: marshal response failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, body, planCacheTTL); err != nil {
			log.Printf("plan: cache set failed: %v", err)
		}
	}

	writeRawJSON(w, http.StatusOK, body)
}

// planCacheKey digests the full planning input; identical inputs plan
// identically, so the digest is a safe cache key.
func planCacheKey(baseCost float64, packages []domain.Package, vehicles []domain.Vehicle) string {
	input := struct {
		BaseCost float64          `json:"base_cost"`
		Packages []domain.Package `json:"packages"`
		Vehicles []domain.Vehicle `json:"vehicles"`
	}{baseCost, packages, vehicles}

	raw, _ := json.Marshal(input)
	sum := sha256.Sum256(raw)
	return "plan:" + hex.EncodeToString(sum[:])
}

func planResponse(plan *domain.DispatchPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		Shipments: make([]dto.ShipmentResponse, 0, len(plan.Shipments)),
		Results:   make([]dto.DeliveryResultResponse, 0, len(plan.Results)),
	}
	for _, s := range plan.Shipments {
		res.Shipments = append(res.Shipments, dto.ShipmentResponse{
			VehicleID:   s.VehicleID,
			PackageIDs:  s.PackageIDs(),
			DistanceKm:  s.DistanceKm,
			DepartureAt: s.DepartureAt,
			OneWayHours: s.OneWayHours,
			ReturnAt:    s.ReturnAt,
			TotalWeight: s.TotalWeightKg(),
		})
	}
	for _, r := range plan.Results {
		res.Results = append(res.Results, dto.DeliveryResultResponse{
			PackageID:    r.PackageID,
			OriginalCost: r.OriginalCost.InexactFloat64(),
			Discount:     r.Discount.InexactFloat64(),
			TotalCost:    r.TotalCost.InexactFloat64(),
			DeliveryAt:   r.DeliveryAt,
		})
	}
	return res
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
