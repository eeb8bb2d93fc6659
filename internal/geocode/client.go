// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/fishfry/internal/geo"
	"github.com/staranto/fishfry/internal/version"
)

const (
	// DefaultURL is the public Nominatim search endpoint.
	DefaultURL = "https://nominatim.openstreetmap.org/search"

	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 10 * time.Second
)

// ErrNotFound means the geocoder answered but had no match.
var ErrNotFound = errors.New("location not found")

var zipRe = regexp.MustCompile(`^\d{5}$`)

// localHints are substrings that mean the caller already gave enough context.
var localHints = []string{"pa", "pennsylvania", "pittsburgh", ","}

// Expand adds Pittsburgh context to bare locations. A five digit ZIP gets
// ", PA"; anything without a state, city or comma is assumed to be a local
// neighborhood or landmark.
func Expand(location string) string {
	if zipRe.MatchString(strings.TrimSpace(location)) {
		location += ", PA"
	}

	lower := strings.ToLower(location)
	for _, h := range localHints {
		if strings.Contains(lower, h) {
			return location
		}
	}
	return location + ", Pittsburgh, PA"
}

// Client looks up locations with Nominatim.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a Nominatim client. An empty baseURL means DefaultURL and
// a non-positive timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: version.UserAgent(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resolve expands location and returns the coordinates of the best match.
// Every failure comes back as an error; nothing here writes to the terminal.
func (c *Client) Resolve(ctx context.Context, location string) (geo.Point, error) {
	query := Expand(location)

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}
	fullURL := c.baseURL + "?" + params.Encode()
	log.Debugf("geocode: %s", fullURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return geo.Point{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return geo.Point{}, fmt.Errorf("decode response: %w", err)
	}

	if len(places) == 0 {
		return geo.Point{}, fmt.Errorf("%w: %s", ErrNotFound, query)
	}

	return places[0].point()
}

// Nominatim response types. lat and lon arrive as strings.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) point() (geo.Point, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("decode lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("decode lon %q: %w", p.Lon, err)
	}
	log.Debugf("geocode match: %s", p.DisplayName)
	return geo.Point{Lat: lat, Lon: lon}, nil
}
