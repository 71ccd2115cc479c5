// SPDX-License-Identifier: MIT
// Package: latgen/geo
//
// nominatim.go - city lookups against an OpenStreetMap Nominatim endpoint.

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/katalvlaran/latgen/latency"
)

// DefaultNominatimURL is the public search endpoint.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// Geocoder resolves a city to a location.
type Geocoder interface {
	Geocode(ctx context.Context, city latency.City) (Point, error)
}

// Nominatim queries a Nominatim search endpoint.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewNominatim returns a client for baseURL; an empty URL selects
// DefaultNominatimURL.
func NewNominatim(baseURL, userAgent string) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}

	return &Nominatim{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode implements Geocoder using the first search hit. The request is
// bound to ctx and to the client timeout.
//
// Errors:
//   - ErrCityNotGeocoded if the search returns no places.
//   - a wrapped transport, status or decode error otherwise.
func (n *Nominatim) Geocode(ctx context.Context, city latency.City) (Point, error) {
	u, err := url.Parse(n.BaseURL)
	if err != nil {
		return Point{}, fmt.Errorf("Geocode: base url: %w", err)
	}
	q := u.Query()
	q.Set("city", string(city))
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("Geocode(%s): %w", city, err)
	}
	if n.UserAgent != "" {
		req.Header.Set("User-Agent", n.UserAgent)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("Geocode(%s): %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("Geocode(%s): unexpected status %s", city, resp.Status)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Point{}, fmt.Errorf("Geocode(%s): decode: %w", city, err)
	}
	if len(places) == 0 {
		return Point{}, fmt.Errorf("Geocode(%s): %w", city, ErrCityNotGeocoded)
	}

	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("Geocode(%s): lon: %w", city, err)
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("Geocode(%s): lat: %w", city, err)
	}

	return Point{Lon: lon, Lat: lat}, nil
}

// Refresh geocodes every city in order and stops at the first failure or
// when ctx is done. No partial result is returned.
//
// Complexity: O(c) geocoder calls for c cities, issued sequentially.
func Refresh(ctx context.Context, g Geocoder, cities []latency.City) (Coordinates, error) {
	out := make(Coordinates, len(cities))
	for _, c := range cities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := g.Geocode(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("Refresh: %w", err)
		}
		out[c] = p
	}

	return out, nil
}
