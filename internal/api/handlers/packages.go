package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"courier-dispatch-service/internal/api/dto"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/ports"
)

// PackageHandler exposes package CRUD endpoints over the repository port.
type PackageHandler struct {
	Repo ports.PackageRepository
}

func (h *PackageHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

func (h *PackageHandler) list(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.Repo.ListPackages(r.Context())
	if err != nil {
		log.Printf("list packages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPackagesResponse{
		Packages: make([]dto.PackageResponse, 0, len(pkgs)),
	}
	for _, p := range pkgs {
		res.Packages = append(res.Packages, dto.PackageResponse{
			PackageID:  p.ID,
			WeightKg:   p.WeightKg,
			DistanceKm: p.DistanceKm,
			OfferCode:  p.OfferCode,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PackageHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageRequest

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

	pkg := domain.Package{
		ID:         req.PackageID,
		WeightKg:   req.WeightKg,
		DistanceKm: req.DistanceKm,
		OfferCode:  req.OfferCode,
	}

	if err := h.Repo.SavePackage(r.Context(), pkg); err != nil {
		var invalid *domain.InvalidPackageError
		if errors.As(err, &invalid) {
			writeError(w, r, http.StatusBadRequest, invalid.Error())
			return
		}
		log.Printf("save package failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.PackageResponse{
		PackageID:  pkg.ID,
		WeightKg:   pkg.WeightKg,
		DistanceKm: pkg.DistanceKm,
		OfferCode:  pkg.OfferCode,
	})
}
