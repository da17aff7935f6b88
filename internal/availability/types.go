// Package availability aggregates bookable time slots from the configured
// scheduling providers, falling back to a deterministic local generator so
// the booking page always has something to show.
package availability

// Source identifies which provider produced a slot list.
type Source string

const (
	SourceCalendly Source = "calendly"
	SourceSquare   Source = "square"
	SourceMock     Source = "mock"
)

// Slot is a single bookable start instant. No end time is modeled; the
// appointment duration lives on the provider side.
type Slot struct {
	StartAt string `json:"startAt"`
}

// Result is the unified answer for one availability lookup.
type Result struct {
	Date   string `json:"date"`
	Slots  []Slot `json:"slots"`
	Source Source `json:"source"`
}

// ProviderResult is a slot list tagged with the source that produced it,
// before the date is attached.
type ProviderResult struct {
	Slots  []Slot
	Source Source
}
