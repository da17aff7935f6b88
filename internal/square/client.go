package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zboobraids/booking-api/internal/availability"
	"github.com/zboobraids/booking-api/pkg/logging"
)

const (
	defaultBaseURL = "https://connect.squareup.com"
	defaultTimeout = 20 * time.Second
	defaultLimit   = 100
)

var tracer = otel.Tracer("zboobraids.internal.square")

// Options carries the Square Bookings credentials and search parameters.
type Options struct {
	AccessToken        string
	LocationID         string
	ServiceVariationID string
	TeamMemberID       string
	TimezoneOffset     string
	SearchLimit        int
}

// Client searches Square appointment availability. An unconfigured client
// answers with the mock grid instead of calling Square.
type Client struct {
	baseURL    string
	httpClient *http.Client
	opts       Options
	logger     *logging.Logger
}

// NewClient creates a new Square availability client.
func NewClient(opts Options, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaultLimit
	}
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		opts:   opts,
		logger: logger,
	}
}

// SetBaseURL overrides the API endpoint, e.g. for the Square sandbox.
// Empty means keep the default.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// Configured reports whether the client has everything it needs to call
// Square: access token, location and service variation.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.opts.AccessToken) != "" &&
		strings.TrimSpace(c.opts.LocationID) != "" &&
		strings.TrimSpace(c.opts.ServiceVariationID) != ""
}

type searchRequest struct {
	LocationID     string          `json:"location_id"`
	StartAt        string          `json:"start_at"`
	EndAt          string          `json:"end_at"`
	Limit          int             `json:"limit"`
	SegmentFilters []segmentFilter `json:"segment_filters"`
}

type segmentFilter struct {
	ServiceVariationID string            `json:"service_variation_id"`
	TeamMemberIDFilter *teamMemberFilter `json:"team_member_id_filter,omitempty"`
}

type teamMemberFilter struct {
	Any []string `json:"any"`
}

type searchResponse struct {
	Availabilities []struct {
		StartAt string `json:"start_at"`
	} `json:"availabilities"`
}

// ListAvailability searches open appointment segments inside the window.
// Without credentials it returns the mock grid; with credentials a failed
// upstream call surfaces as a ProviderError carrying Square's status.
func (c *Client) ListAvailability(ctx context.Context, win availability.Window) (*availability.ProviderResult, error) {
	if !c.Configured() {
		return availability.MockResult(win.Date, c.opts.TimezoneOffset), nil
	}

	ctx, span := tracer.Start(ctx, "square.search_availability")
	defer span.End()
	span.SetAttributes(
		attribute.String("square.location_id", c.opts.LocationID),
		attribute.String("square.date", win.Date),
	)

	filter := segmentFilter{ServiceVariationID: c.opts.ServiceVariationID}
	if strings.TrimSpace(c.opts.TeamMemberID) != "" {
		filter.TeamMemberIDFilter = &teamMemberFilter{Any: []string{c.opts.TeamMemberID}}
	}

	body, err := json.Marshal(searchRequest{
		LocationID:     c.opts.LocationID,
		StartAt:        win.StartAt,
		EndAt:          win.EndAt,
		Limit:          c.opts.SearchLimit,
		SegmentFilters: []segmentFilter{filter},
	})
	if err != nil {
		return nil, fmt.Errorf("square: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/appointments/availability", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("square: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("square: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("square: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		details := string(respBody)
		if len(details) > 300 {
			details = details[:300]
		}
		return nil, &availability.ProviderError{
			Provider: "square",
			Status:   resp.StatusCode,
			Details:  details,
		}
	}

	var out searchResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("square: unmarshal response: %w", err)
	}

	slots := make([]availability.Slot, 0, len(out.Availabilities))
	for _, entry := range out.Availabilities {
		startAt := entry.StartAt
		if startAt == "" {
			startAt = win.StartAt
		}
		slots = append(slots, availability.Slot{StartAt: startAt})
	}

	return &availability.ProviderResult{Slots: slots, Source: availability.SourceSquare}, nil
}
