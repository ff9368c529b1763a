package handlers

import "net/http"

const serviceName = "divergent-flow-api"

// HealthResponse is returned by the liveness endpoints
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: divergent-flow-api
	Service string `json:"service"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
// @Router /healthz [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: serviceName})
	}
}

// NewRootHandler sends browsers to the API docs when they are served,
// otherwise it reports the service status.
func NewRootHandler(docsEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if docsEnabled {
			http.Redirect(w, r, "/api-docs/", http.StatusFound)
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: serviceName})
	}
}
