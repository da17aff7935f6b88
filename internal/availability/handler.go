package availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zboobraids/booking-api/pkg/logging"
)

// Handler handles HTTP requests for aggregated availability
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new availability handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetAvailability handles GET /api/availability requests
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAvailability(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		var provErr *ProviderError
		switch {
		case errors.Is(err, ErrInvalidDate):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "INVALID_DATE",
			})
		case errors.As(err, &provErr):
			h.logger.Error("provider availability failed", "provider", provErr.Provider, "status", provErr.Status)
			writeJSON(w, provErr.Status, map[string]string{
				"error":   "SQUARE_AVAILABILITY_ERROR",
				"details": provErr.Details,
			})
		default:
			h.logger.Error("availability lookup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "AVAILABILITY_ERROR",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
