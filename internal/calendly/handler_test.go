package calendly

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/zboobraids/booking-api/internal/availability"
)

func newTestHandler(t *testing.T, upstream *httptest.Server) *Handler {
	t.Helper()
	c := NewClient("key", "braids", "America/New_York", NewMemoryCache(time.Minute), nil)
	if upstream != nil {
		c.baseURL = upstream.URL
	}
	return NewHandler(c, "-04:00", "https://calendly.com/zboobraids/braids", nil)
}

func TestHandlerAvailabilityMissingParams(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, target := range []string{
		"/api/calendly/availability",
		"/api/calendly/availability?date=2025-03-10",
		"/api/calendly/availability?event_type=et_1",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		h.GetAvailability(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestHandlerAvailabilityInvalidDate(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/calendly/availability?date=not-a-date&event_type=et_1", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid date parameter") {
		t.Fatalf("expected invalid date message, got %q", rr.Body.String())
	}
}

func TestHandlerAvailabilityFiltersToRequestedDay(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"collection": []map[string]any{
				{"start_time": "2025-03-09T23:00:00-04:00", "invitees_remaining": 1},
				{"start_time": "2025-03-10T10:00:00-04:00", "invitees_remaining": 1},
				{"start_time": "2025-03-10T23:30:00-04:00", "invitees_remaining": 1},
				{"start_time": "2025-03-11T00:30:00-04:00", "invitees_remaining": 1},
			},
		})
	}))
	defer ts.Close()

	h := newTestHandler(t, ts)
	req := httptest.NewRequest(http.MethodGet, "/api/calendly/availability?date=2025-03-10&event_type=et_1", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Slots  []availability.Slot `json:"slots"`
		Source string              `json:"source"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Source != "calendly" {
		t.Errorf("expected calendly source, got %s", body.Source)
	}
	if len(body.Slots) != 2 {
		t.Fatalf("expected 2 slots inside the day, got %d: %+v", len(body.Slots), body.Slots)
	}
	if body.Slots[0].StartAt != "2025-03-10T10:00:00-04:00" {
		t.Errorf("unexpected first slot: %s", body.Slots[0].StartAt)
	}
}

func TestHandlerAvailabilityDegradesToMock(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	h := newTestHandler(t, ts)
	req := httptest.NewRequest(http.MethodGet, "/api/calendly/availability?date=2025-03-10&event_type=et_1", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Slots  []availability.Slot `json:"slots"`
		Source string              `json:"source"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Source != "mock" {
		t.Errorf("expected mock source, got %s", body.Source)
	}
	if len(body.Slots) != 24 {
		t.Errorf("expected 24 mock slots, got %d", len(body.Slots))
	}
}

func TestHandlerSchedule(t *testing.T) {
	h := newTestHandler(t, nil)

	payload := `{"eventTypeUri":"et_1","startTime":"2025-03-10T14:00:00-04:00","name":"Ada Lovelace","email":"ada@example.com","notes":"knotless medium"}`
	req := httptest.NewRequest(http.MethodPost, "/api/calendly/schedule", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	h.Schedule(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var res ScheduleResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}

	parsed, err := url.Parse(res.BookingURL)
	if err != nil {
		t.Fatalf("invalid booking url: %v", err)
	}
	q := parsed.Query()
	if q.Get("name") != "Ada Lovelace" || q.Get("email") != "ada@example.com" {
		t.Errorf("unexpected identity params: %v", q)
	}
	if q.Get("month") != "2025-03" || q.Get("date") != "2025-03-10" {
		t.Errorf("unexpected date params: %v", q)
	}
	if q.Get("a1") != "knotless medium" {
		t.Errorf("unexpected notes param: %v", q)
	}
}

func TestHandlerScheduleMissingFields(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/calendly/schedule", strings.NewReader(`{"name":"Ada"}`))
	rr := httptest.NewRecorder()
	h.Schedule(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
