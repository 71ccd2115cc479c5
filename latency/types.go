// SPDX-License-Identifier: MIT
// Package: latgen/latency
//
// types.go - City, Table and the sentinel errors of the package.

package latency

import (
	"errors"
	"strings"
)

// SelfLatencyMs is the latency reported between a city and itself.
// The source data has no diagonal, so this is a fixed placeholder.
const SelfLatencyMs = 2

// Sentinel errors for index construction and lookups.
var (
	// ErrUnknownCity indicates a lookup key that is not in the city list.
	ErrUnknownCity = errors.New("latency: unknown city")

	// ErrMalformedLatency indicates a table cell that is missing or not an integer.
	ErrMalformedLatency = errors.New("latency: malformed latency cell")

	// ErrEmptyCityList indicates that no cities were supplied.
	ErrEmptyCityList = errors.New("latency: empty city list")

	// ErrDuplicateCity indicates the same city appears twice in the ordered list.
	ErrDuplicateCity = errors.New("latency: duplicate city")
)

// City is a normalized, lowercase location name.
type City string

// NormalizeCity trims surrounding whitespace and lowercases s.
func NormalizeCity(s string) City {
	return City(strings.ToLower(strings.TrimSpace(s)))
}

// String implements fmt.Stringer.
func (c City) String() string { return string(c) }

// Table is the raw jagged triangle as decoded from the source page.
// Row r is expected to carry r+1 cells; cells are kept as text.
type Table [][]string
