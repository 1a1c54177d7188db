package handlers

import (
	"net/http"

	"courier-dispatch-service/internal/api/dto"
	"courier-dispatch-service/internal/domain"
)

// OfferHandler exposes the offer catalog read-only. The catalog is fixed
// configuration; there is no mutation endpoint.
type OfferHandler struct {
	Catalog *domain.Catalog
}

func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	offers := h.Catalog.Offers()
	res := dto.ListOffersResponse{Offers: make([]dto.OfferResponse, 0, len(offers))}
	for _, o := range offers {
		res.Offers = append(res.Offers, dto.OfferResponse{
			Code:            o.Code,
			DiscountPercent: o.DiscountPercent,
			MinDistanceKm:   o.MinDistanceKm,
			MaxDistanceKm:   o.MaxDistanceKm,
			MinWeightKg:     o.MinWeightKg,
			MaxWeightKg:     o.MaxWeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
