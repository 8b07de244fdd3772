package handler

import (
	"encoding/json"
	"net/http"

	"zoo-food-costs/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and detail.
func writeError(w http.ResponseWriter, status int, detail string, logger zerolog.Logger) {
	logger.Warn().Str("detail", detail).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// NotFound handles requests for unknown routes.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found", logger)
	}
}

// MethodNotAllowed handles requests with an unsupported method on a known route.
func MethodNotAllowed(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", logger)
	}
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
