package availability

import "fmt"

// MockSlots generates the deterministic open-hours grid used when no live
// provider can answer: every half hour from 09:00 through 20:30 local time.
func MockSlots(date, offset string) []Slot {
	slots := make([]Slot, 0, 24)
	for hour := 9; hour <= 20; hour++ {
		for _, minute := range []string{"00", "30"} {
			slots = append(slots, Slot{
				StartAt: fmt.Sprintf("%sT%02d:%s:00%s", date, hour, minute, offset),
			})
		}
	}
	return slots
}

// MockResult wraps MockSlots in a provider result tagged with the mock source.
func MockResult(date, offset string) *ProviderResult {
	return &ProviderResult{Slots: MockSlots(date, offset), Source: SourceMock}
}
