package availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAvailabilityHandlerMock(t *testing.T) {
	svc := newTestService(nil, nil)
	h := NewHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-03-10", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var res Result
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Source != SourceMock {
		t.Errorf("expected mock source, got %s", res.Source)
	}
	if len(res.Slots) != 24 {
		t.Errorf("expected 24 slots, got %d", len(res.Slots))
	}
}

func TestGetAvailabilityHandlerInvalidDate(t *testing.T) {
	svc := newTestService(nil, nil)
	h := NewHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=bogus", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "INVALID_DATE" {
		t.Errorf("unexpected error code: %s", body["error"])
	}
}

func TestGetAvailabilityHandlerProviderError(t *testing.T) {
	cal := &fakeCalendar{err: &ProviderError{Provider: "calendly", Status: 500}}
	pos := &fakePOS{err: &ProviderError{Provider: "square", Status: 403, Details: "forbidden"}}
	svc := newTestService(cal, pos)
	h := NewHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-03-10", nil)
	rr := httptest.NewRecorder()
	h.GetAvailability(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected upstream status 403, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "SQUARE_AVAILABILITY_ERROR" {
		t.Errorf("unexpected error code: %s", body["error"])
	}
	if body["details"] != "forbidden" {
		t.Errorf("unexpected details: %s", body["details"])
	}
}
