package server

import (
	"encoding/json"
	"net/http"

	"SpotiQ/config"
	"SpotiQ/core/spotify"
	"SpotiQ/logger"
)

// APIHandler bundles the route controllers around the domain service.
type APIHandler struct {
	service spotify.Service
	cfg     *config.Config
}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler(service spotify.Service, cfg *config.Config) *APIHandler {
	return &APIHandler{service: service, cfg: cfg}
}

// respondJSON writes a JSON body with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response body", logger.ErrorField(err))
	}
}

// respondError writes the uniform {"result": message} error body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Result: message})
}
