package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zboobraids/booking-api/internal/observability/metrics"
)

type fakeCalendar struct {
	slots []Slot
	err   error
	calls int
}

func (f *fakeCalendar) ListAvailableTimes(_ context.Context, _, _ time.Time) ([]Slot, error) {
	f.calls++
	return f.slots, f.err
}

type fakePOS struct {
	result *ProviderResult
	err    error
	calls  int
}

func (f *fakePOS) ListAvailability(_ context.Context, _ Window) (*ProviderResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestService(cal CalendarProvider, pos POSProvider) *Service {
	return NewService(cal, pos, "-04:00", nil, nil)
}

func TestGetAvailabilityCalendarWins(t *testing.T) {
	cal := &fakeCalendar{slots: []Slot{{StartAt: "2025-03-10T14:00:00Z"}}}
	pos := &fakePOS{result: MockResult("2025-03-10", "-04:00")}
	svc := newTestService(cal, pos)

	res, err := svc.GetAvailability(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceCalendly {
		t.Errorf("expected calendly source, got %s", res.Source)
	}
	if len(res.Slots) != 1 {
		t.Errorf("expected 1 slot, got %d", len(res.Slots))
	}
	if pos.calls != 0 {
		t.Errorf("point of sale should not be called when calendar answers, got %d calls", pos.calls)
	}
}

func TestGetAvailabilityCalendarEmptyFallsThrough(t *testing.T) {
	cal := &fakeCalendar{slots: nil}
	pos := &fakePOS{result: &ProviderResult{
		Slots:  []Slot{{StartAt: "2025-03-10T15:00:00-04:00"}},
		Source: SourceSquare,
	}}
	svc := newTestService(cal, pos)

	res, err := svc.GetAvailability(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceSquare {
		t.Errorf("expected square source, got %s", res.Source)
	}
	if pos.calls != 1 {
		t.Errorf("expected one point-of-sale call, got %d", pos.calls)
	}
}

func TestGetAvailabilityCalendarErrorUnconfiguredPOS(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendly users/me request failed: 401")}
	pos := &fakePOS{result: MockResult("2025-03-10", "-04:00")}
	svc := newTestService(cal, pos)

	res, err := svc.GetAvailability(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceMock {
		t.Errorf("expected mock source, got %s", res.Source)
	}
	if len(res.Slots) != 24 {
		t.Errorf("expected 24 mock slots, got %d", len(res.Slots))
	}
}

func TestGetAvailabilityPOSErrorPropagates(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendly unavailable")}
	pos := &fakePOS{err: &ProviderError{Provider: "square", Status: 502, Details: "bad gateway"}}
	svc := newTestService(cal, pos)

	_, err := svc.GetAvailability(context.Background(), "2025-03-10")
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.Status != 502 {
		t.Errorf("expected status 502, got %d", provErr.Status)
	}
}

func TestGetAvailabilityNoProviders(t *testing.T) {
	svc := newTestService(nil, nil)

	res, err := svc.GetAvailability(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceMock {
		t.Errorf("expected mock source, got %s", res.Source)
	}
	if res.Date != "2025-03-10" {
		t.Errorf("unexpected date: %s", res.Date)
	}
	if len(res.Slots) != 24 {
		t.Errorf("expected 24 slots, got %d", len(res.Slots))
	}
}

func squareLatencySamples(t *testing.T, reg *prometheus.Registry) uint64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather error: %v", err)
	}
	var total uint64
	for _, fam := range families {
		if fam.GetName() != "zboobraids_availability_provider_latency_seconds" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "provider" && label.GetValue() == "square" {
					total += metric.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	return total
}

func TestGetAvailabilityMockAnswerSkipsLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewAvailabilityMetrics(reg)

	// A mock-source answer means the provider replied locally without an
	// upstream round trip; the latency histogram must stay empty.
	pos := &fakePOS{result: MockResult("2025-03-10", "-04:00")}
	svc := NewService(nil, pos, "-04:00", nil, m)
	if _, err := svc.GetAvailability(context.Background(), "2025-03-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := squareLatencySamples(t, reg); got != 0 {
		t.Fatalf("expected no latency samples for a mock answer, got %d", got)
	}

	// A real square answer is a round trip and must be observed.
	pos.result = &ProviderResult{
		Slots:  []Slot{{StartAt: "2025-03-10T15:00:00-04:00"}},
		Source: SourceSquare,
	}
	if _, err := svc.GetAvailability(context.Background(), "2025-03-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := squareLatencySamples(t, reg); got != 1 {
		t.Fatalf("expected one latency sample for a square answer, got %d", got)
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	svc := newTestService(nil, nil)
	if _, err := svc.GetAvailability(context.Background(), "garbage"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
