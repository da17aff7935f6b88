package calendly

type usersMeResponse struct {
	Resource struct {
		URI  string `json:"uri"`
		Name string `json:"name"`
	} `json:"resource"`
}

type eventTypesResponse struct {
	Collection []struct {
		URI string `json:"uri"`
	} `json:"collection"`
}

type availableTimesResponse struct {
	Collection []availableTime `json:"collection"`
}

type availableTime struct {
	StartTime         string `json:"start_time"`
	InviteesRemaining *int   `json:"invitees_remaining"`
}

// KeyDiagnostics reports whether the configured API key is present and
// accepted by Calendly.
type KeyDiagnostics struct {
	HasKey   bool   `json:"hasKey"`
	KeyWorks bool   `json:"keyWorks,omitempty"`
	Success  bool   `json:"success,omitempty"`
	User     string `json:"user,omitempty"`
	UserURI  string `json:"userUri,omitempty"`
	Status   int    `json:"status,omitempty"`
	Details  string `json:"details,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ScheduleRequest asks for a prefilled Calendly booking link.
type ScheduleRequest struct {
	EventTypeURI string `json:"eventTypeUri"`
	StartTime    string `json:"startTime"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Notes        string `json:"notes"`
}

// ScheduleResponse carries the booking link the client should follow.
type ScheduleResponse struct {
	Success    bool   `json:"success"`
	BookingURL string `json:"bookingUrl"`
	Message    string `json:"message"`
}
