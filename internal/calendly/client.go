package calendly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zboobraids/booking-api/internal/availability"
	"github.com/zboobraids/booking-api/pkg/logging"
)

const (
	defaultBaseURL = "https://api.calendly.com"
	defaultTimeout = 20 * time.Second

	userURIKey = "user_uri"
)

var (
	ErrMissingAPIKey     = errors.New("calendly: missing api key")
	ErrMissingEventSlug  = errors.New("calendly: missing event slug")
	ErrEventTypeNotFound = errors.New("calendly: event type not found")
)

// UpstreamError reports a non-2xx answer from the Calendly API.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("calendly: %s request failed: status %d", e.Endpoint, e.Status)
}

// Client talks to the Calendly v2 API. Directory lookups (user URI, event
// type URI) go through the injected cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	eventSlug  string
	timezone   string
	cache      DirectoryCache
	logger     *logging.Logger
}

// NewClient creates a new Calendly API client.
func NewClient(apiKey, eventSlug, timezone string, cache DirectoryCache, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if cache == nil {
		cache = NewMemoryCache(0)
	}
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		apiKey:    apiKey,
		eventSlug: eventSlug,
		timezone:  timezone,
		cache:     cache,
		logger:    logger,
	}
}

// SetBaseURL overrides the API endpoint. Empty means keep the default.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// ResolveIdentity returns the authenticated user's URI, cached after the
// first lookup.
func (c *Client) ResolveIdentity(ctx context.Context) (string, error) {
	if uri, ok := c.cache.Get(ctx, userURIKey); ok {
		return uri, nil
	}

	var out usersMeResponse
	if err := c.doGet(ctx, "/users/me", nil, &out); err != nil {
		return "", err
	}
	if out.Resource.URI == "" {
		return "", fmt.Errorf("calendly: user uri missing in response")
	}

	c.cache.Set(ctx, userURIKey, out.Resource.URI)
	return out.Resource.URI, nil
}

// ResolveEventType returns the URI of the event type matching the configured
// slug, cached after the first lookup.
func (c *Client) ResolveEventType(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.eventSlug) == "" {
		return "", ErrMissingEventSlug
	}

	cacheKey := "event_type_uri:" + c.eventSlug
	if uri, ok := c.cache.Get(ctx, cacheKey); ok {
		return uri, nil
	}

	userURI, err := c.ResolveIdentity(ctx)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("user", userURI)
	query.Set("slug", c.eventSlug)

	var out eventTypesResponse
	if err := c.doGet(ctx, "/event_types", query, &out); err != nil {
		return "", err
	}
	if len(out.Collection) == 0 || out.Collection[0].URI == "" {
		return "", fmt.Errorf("%w: slug %q", ErrEventTypeNotFound, c.eventSlug)
	}

	c.cache.Set(ctx, cacheKey, out.Collection[0].URI)
	return out.Collection[0].URI, nil
}

// ListAvailableTimes returns open start times for the configured event type
// between start and end.
func (c *Client) ListAvailableTimes(ctx context.Context, start, end time.Time) ([]availability.Slot, error) {
	eventTypeURI, err := c.ResolveEventType(ctx)
	if err != nil {
		return nil, err
	}
	return c.ListEventTypeTimes(ctx, eventTypeURI, start, end)
}

// ListEventTypeTimes returns open start times for an explicit event type URI
// between start and end. Slots with no invitee capacity left are dropped, as
// are slots the upstream reports outside the requested window.
func (c *Client) ListEventTypeTimes(ctx context.Context, eventTypeURI string, start, end time.Time) ([]availability.Slot, error) {
	query := url.Values{}
	query.Set("event_type", eventTypeURI)
	query.Set("start_time", start.UTC().Format(time.RFC3339))
	query.Set("end_time", end.UTC().Format(time.RFC3339))
	if c.timezone != "" {
		query.Set("timezone", c.timezone)
	}

	var out availableTimesResponse
	if err := c.doGet(ctx, "/event_type_available_times", query, &out); err != nil {
		return nil, err
	}

	slots := make([]availability.Slot, 0, len(out.Collection))
	for _, entry := range out.Collection {
		if entry.StartTime == "" {
			continue
		}
		if entry.InviteesRemaining != nil && *entry.InviteesRemaining <= 0 {
			continue
		}
		at, err := time.Parse(time.RFC3339, entry.StartTime)
		if err != nil || at.Before(start) || at.After(end) {
			continue
		}
		slots = append(slots, availability.Slot{StartAt: entry.StartTime})
	}
	return slots, nil
}

// CheckAPIKey probes /users/me and reports whether the configured key works.
// It never returns an error; failures are part of the diagnostics.
func (c *Client) CheckAPIKey(ctx context.Context) *KeyDiagnostics {
	if strings.TrimSpace(c.apiKey) == "" {
		return &KeyDiagnostics{
			HasKey: false,
			Error:  "CALENDLY_API_KEY not found in environment",
		}
	}

	var out usersMeResponse
	if err := c.doGet(ctx, "/users/me", nil, &out); err != nil {
		diag := &KeyDiagnostics{HasKey: true, Error: err.Error()}
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			diag.Error = "API key is invalid or lacks permissions"
			diag.Status = upstream.Status
			diag.Details = upstream.Body
		}
		return diag
	}

	return &KeyDiagnostics{
		Success:  true,
		HasKey:   true,
		KeyWorks: true,
		User:     out.Resource.Name,
		UserURI:  out.Resource.URI,
	}
}

func (c *Client) doGet(ctx context.Context, path string, query url.Values, out interface{}) error {
	if strings.TrimSpace(c.apiKey) == "" {
		return ErrMissingAPIKey
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("calendly: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendly: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("calendly: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return &UpstreamError{Endpoint: path, Status: resp.StatusCode, Body: msg}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("calendly: unmarshal response: %w", err)
	}
	return nil
}
