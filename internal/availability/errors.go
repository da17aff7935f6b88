package availability

import "fmt"

// ProviderError reports a failed upstream provider call. Status carries the
// upstream HTTP status so handlers can mirror it to the client.
type ProviderError struct {
	Provider string
	Status   int
	Details  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s availability request failed: status %d", e.Provider, e.Status)
}
