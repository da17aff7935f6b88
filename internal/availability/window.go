package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date query cannot be parsed as YYYY-MM-DD.
var ErrInvalidDate = errors.New("availability: invalid date")

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Window bounds one calendar day in the salon's configured UTC offset.
// StartAt/EndAt carry the offset suffix for providers that want local
// timestamps; StartUTC/EndUTC are the same instants for providers that
// query in UTC.
type Window struct {
	Date     string
	StartAt  string
	EndAt    string
	StartUTC time.Time
	EndUTC   time.Time
}

// ParseOffset converts an offset string like "-04:00" into a fixed location.
func ParseOffset(offset string) (*time.Location, error) {
	s := strings.TrimSpace(offset)
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return nil, fmt.Errorf("availability: malformed utc offset %q", offset)
	}
	hours, err := strconv.Atoi(s[1:3])
	if err != nil {
		return nil, fmt.Errorf("availability: malformed utc offset %q", offset)
	}
	minutes, err := strconv.Atoi(s[4:6])
	if err != nil || hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("availability: malformed utc offset %q", offset)
	}
	seconds := hours*3600 + minutes*60
	if s[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone("UTC"+s, seconds), nil
}

// BuildDailyWindow computes the 00:00:00–23:59:59 bounds for dateQuery in the
// given offset. An empty dateQuery means "today" evaluated in that offset.
func BuildDailyWindow(dateQuery, offset string) (Window, error) {
	loc, err := ParseOffset(offset)
	if err != nil {
		return Window{}, err
	}

	date := strings.TrimSpace(dateQuery)
	if date == "" {
		date = nowFunc().In(loc).Format("2006-01-02")
	} else if _, err := time.ParseInLocation("2006-01-02", date, loc); err != nil {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateQuery)
	}

	day, _ := time.ParseInLocation("2006-01-02", date, loc)
	start := day
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, loc)

	return Window{
		Date:     date,
		StartAt:  start.Format("2006-01-02T15:04:05-07:00"),
		EndAt:    end.Format("2006-01-02T15:04:05-07:00"),
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
	}, nil
}
