package handlers

import (
	"net/http"
)

const serviceName = "courier-dispatch-service"

// Health provides a minimal liveness check endpoint. It reports nothing
// about downstream dependencies; a live process answers ok.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Service: serviceName})
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
