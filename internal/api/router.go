package api

import (
	"net/http"

	"courier-dispatch-service/internal/api/handlers"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters. planCache may be nil when no cache is configured.
func NewRouter(
	packages ports.PackageRepository,
	vehicles ports.VehicleRepository,
	catalog *domain.Catalog,
	planCache ports.PlanCache,
) http.Handler {
	mux := http.NewServeMux()

	pkgHandler := &handlers.PackageHandler{Repo: packages}
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	offerHandler := &handlers.OfferHandler{Catalog: catalog}
	planHandler := &handlers.PlanHandler{
		Packages: packages,
		Vehicles: vehicles,
		Catalog:  catalog,
		Cache:    planCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/packages", pkgHandler.Handle)
	mux.HandleFunc("/vehicles", vehicleHandler.Handle)
	mux.HandleFunc("/offers", offerHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
