package availability

import (
	"errors"
	"testing"
	"time"
)

func TestBuildDailyWindow(t *testing.T) {
	win, err := BuildDailyWindow("2025-03-10", "-04:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if win.Date != "2025-03-10" {
		t.Errorf("expected date 2025-03-10, got %s", win.Date)
	}
	if win.StartAt != "2025-03-10T00:00:00-04:00" {
		t.Errorf("unexpected start: %s", win.StartAt)
	}
	if win.EndAt != "2025-03-10T23:59:59-04:00" {
		t.Errorf("unexpected end: %s", win.EndAt)
	}
	if got := win.StartUTC.Format(time.RFC3339); got != "2025-03-10T04:00:00Z" {
		t.Errorf("unexpected start utc: %s", got)
	}
	if got := win.EndUTC.Format(time.RFC3339); got != "2025-03-11T03:59:59Z" {
		t.Errorf("unexpected end utc: %s", got)
	}
}

func TestBuildDailyWindowPositiveOffset(t *testing.T) {
	win, err := BuildDailyWindow("2025-03-10", "+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if win.StartAt != "2025-03-10T00:00:00+05:30" {
		t.Errorf("unexpected start: %s", win.StartAt)
	}
	if got := win.StartUTC.Format(time.RFC3339); got != "2025-03-09T18:30:00Z" {
		t.Errorf("unexpected start utc: %s", got)
	}
}

func TestBuildDailyWindowInvalidDate(t *testing.T) {
	for _, q := range []string{"not-a-date", "2025-13-40", "03/10/2025"} {
		if _, err := BuildDailyWindow(q, "-04:00"); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("query %q: expected ErrInvalidDate, got %v", q, err)
		}
	}
}

func TestBuildDailyWindowDefaultsToToday(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time {
		return time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)
	}
	defer func() { nowFunc = orig }()

	// 02:00 UTC on the 11th is still the evening of the 10th at -04:00.
	win, err := BuildDailyWindow("", "-04:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if win.Date != "2025-03-10" {
		t.Errorf("expected today in local offset, got %s", win.Date)
	}
}

func TestParseOffsetMalformed(t *testing.T) {
	for _, o := range []string{"", "-4:00", "0400", "-04:0", "-aa:bb", "-15:00"} {
		if _, err := ParseOffset(o); err == nil {
			t.Errorf("offset %q: expected error", o)
		}
	}
}
