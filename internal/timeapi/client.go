// Package timeapi looks up the current calendar date from an external
// time service for stamping release headers.
package timeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://worldtimeapi.org/api/timezone"
	defaultTimezone = "America/Toronto"

	requestTimeout = 5 * time.Second
)

// Client fetches the current date for a fixed timezone. Lookups are
// best effort: any failure yields an empty date, never an error.
type Client struct {
	baseURL  string
	timezone string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the time service base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTimezone sets the timezone to query.
func WithTimezone(tz string) Option {
	return func(c *Client) { c.timezone = tz }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a date lookup client. Defaults to worldtimeapi.org
// with America/Toronto.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:  defaultBaseURL,
		timezone: defaultTimezone,
		client:   &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// timePayload is the subset of the worldtimeapi response we use.
type timePayload struct {
	Datetime string `json:"datetime"`
}

// ReleaseDate returns the current date as "YYYY-MM-DD", or "" when the
// service is unreachable or returns a malformed payload. Single
// attempt, no retries.
func (c *Client) ReleaseDate(ctx context.Context) string {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.timezone)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return ""
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	var payload timePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Datetime == "" {
		return ""
	}

	return parseDate(payload.Datetime)
}

// parseDate extracts the calendar date from a combined timestamp like
// "2025-11-30T20:15:32.123456-05:00", discarding sub-second and offset
// components. Returns "" when the timestamp is malformed.
func parseDate(datetime string) string {
	trimmed, _, _ := strings.Cut(datetime, ".")

	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
