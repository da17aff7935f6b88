package availability

import (
	"context"
	"time"

	"github.com/zboobraids/booking-api/internal/observability/metrics"
	"github.com/zboobraids/booking-api/pkg/logging"
)

// CalendarProvider lists bookable start times inside a window. Implemented by
// the Calendly client.
type CalendarProvider interface {
	ListAvailableTimes(ctx context.Context, start, end time.Time) ([]Slot, error)
}

// POSProvider searches point-of-sale availability for a window. A provider
// that is not configured answers with mock slots itself; a configured
// provider whose upstream call fails returns the error so callers can
// surface it.
type POSProvider interface {
	ListAvailability(ctx context.Context, win Window) (*ProviderResult, error)
}

// Service aggregates availability across providers in priority order:
// calendar first, point of sale second, deterministic mock last.
type Service struct {
	calendar CalendarProvider
	pos      POSProvider
	offset   string
	logger   *logging.Logger
	metrics  *metrics.AvailabilityMetrics
}

func NewService(calendar CalendarProvider, pos POSProvider, offset string, logger *logging.Logger, m *metrics.AvailabilityMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{calendar: calendar, pos: pos, offset: offset, logger: logger, metrics: m}
}

// GetAvailability resolves the slots for one day. Calendar slots win when
// present. A calendar failure or empty answer falls through to the point of
// sale; a point-of-sale failure is returned to the caller. With no providers
// able to answer, the mock grid stands in.
func (s *Service) GetAvailability(ctx context.Context, dateQuery string) (*Result, error) {
	win, err := BuildDailyWindow(dateQuery, s.offset)
	if err != nil {
		return nil, err
	}

	if s.calendar != nil {
		start := time.Now()
		slots, err := s.calendar.ListAvailableTimes(ctx, win.StartUTC, win.EndUTC)
		s.metrics.ObserveProviderLatency("calendly", time.Since(start).Seconds())
		if err != nil {
			s.metrics.IncProviderError("calendly")
			s.logger.Warn("calendly availability failed", "date", win.Date, "error", err)
		} else if len(slots) > 0 {
			s.metrics.IncLookup(string(SourceCalendly))
			return &Result{Date: win.Date, Slots: slots, Source: SourceCalendly}, nil
		}
	}

	if s.pos != nil {
		start := time.Now()
		res, err := s.pos.ListAvailability(ctx, win)
		elapsed := time.Since(start).Seconds()
		if err != nil {
			s.metrics.ObserveProviderLatency("square", elapsed)
			s.metrics.IncProviderError("square")
			return nil, err
		}
		// An unconfigured provider answers locally with mock data; that
		// is not an upstream round trip and would skew the histogram.
		if res.Source != SourceMock {
			s.metrics.ObserveProviderLatency("square", elapsed)
		}
		s.metrics.IncLookup(string(res.Source))
		return &Result{Date: win.Date, Slots: res.Slots, Source: res.Source}, nil
	}

	s.metrics.IncLookup(string(SourceMock))
	return &Result{Date: win.Date, Slots: MockSlots(win.Date, s.offset), Source: SourceMock}, nil
}
