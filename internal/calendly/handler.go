package calendly

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/zboobraids/booking-api/internal/availability"
	"github.com/zboobraids/booking-api/pkg/logging"
)

// Handler handles HTTP requests for the Calendly-facing endpoints
type Handler struct {
	client     *Client
	offset     string
	bookingURL string
	logger     *logging.Logger
}

// NewHandler creates a new Calendly handler
func NewHandler(client *Client, offset, bookingURL string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		client:     client,
		offset:     offset,
		bookingURL: bookingURL,
		logger:     logger,
	}
}

// GetAvailability handles GET /api/calendly/availability requests. The
// upstream query is widened around the requested day because Calendly trims
// results near range edges; the answer is then filtered back to slots whose
// instant falls inside the requested day in the salon's offset. Any failure
// degrades to the mock grid with a 200.
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	dateQuery := r.URL.Query().Get("date")
	eventTypeURI := r.URL.Query().Get("event_type")

	if dateQuery == "" || eventTypeURI == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing date or event_type parameter",
		})
		return
	}

	win, err := availability.BuildDailyWindow(dateQuery, h.offset)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid date parameter",
		})
		return
	}

	queryStart := win.StartUTC.AddDate(0, 0, -1)
	queryEnd := win.EndUTC.AddDate(0, 0, 2)

	raw, err := h.client.ListEventTypeTimes(r.Context(), eventTypeURI, queryStart, queryEnd)
	if err != nil {
		h.logger.Warn("calendly availability degraded to mock", "date", win.Date, "error", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"slots":  availability.MockSlots(win.Date, h.offset),
			"source": availability.SourceMock,
		})
		return
	}

	slots := make([]availability.Slot, 0, len(raw))
	for _, slot := range raw {
		start, err := time.Parse(time.RFC3339, slot.StartAt)
		if err != nil {
			continue
		}
		if start.Before(win.StartUTC) || start.After(win.EndUTC) {
			continue
		}
		slots = append(slots, slot)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"slots":  slots,
		"source": availability.SourceCalendly,
	})
}

// GetEventType handles GET /api/calendly/event-type requests
func (h *Handler) GetEventType(w http.ResponseWriter, r *http.Request) {
	eventTypeURI, err := h.client.ResolveEventType(r.Context())
	if err != nil {
		h.logger.Error("failed to resolve event type", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"eventTypeUri": eventTypeURI})
}

// CheckKey handles GET /api/calendly/test requests
func (h *Handler) CheckKey(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.client.CheckAPIKey(r.Context()))
}

// Schedule handles POST /api/calendly/schedule requests. Calendly has no
// direct-booking API, so the response carries a booking page URL with the
// visitor's details prefilled.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if req.EventTypeURI == "" || req.StartTime == "" || req.Name == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid startTime"})
		return
	}

	bookingURL, err := url.Parse(h.bookingURL)
	if err != nil {
		h.logger.Error("invalid booking url", "url", h.bookingURL, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create booking link"})
		return
	}

	params := bookingURL.Query()
	params.Set("name", req.Name)
	params.Set("email", req.Email)
	params.Set("month", startTime.Format("2006-01"))
	params.Set("date", startTime.Format("2006-01-02"))
	if req.Notes != "" {
		params.Set("a1", req.Notes)
	}
	bookingURL.RawQuery = params.Encode()

	h.logger.Info("generated booking link", "date", startTime.Format("2006-01-02"))

	writeJSON(w, http.StatusOK, ScheduleResponse{
		Success:    true,
		BookingURL: bookingURL.String(),
		Message:    "Redirecting to Calendly to complete your booking.",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
