// SPDX-License-Identifier: MIT
// Package: latgen/placement
//
// placement.go - random assignment of nodes to cities.

// Package placement assigns each synthetic node to a city.
//
// Every node is drawn independently and uniformly from the city list, so two
// nodes may share a city. The random source is always supplied by the caller;
// the same seed yields the same placement.
package placement

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/latgen/latency"
)

const methodPlace = "Place"

var (
	// ErrInvalidNodeCount indicates a non-positive node count.
	ErrInvalidNodeCount = errors.New("placement: node count must be positive")

	// ErrNoCities indicates an empty candidate list.
	ErrNoCities = errors.New("placement: no cities to choose from")

	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("placement: rng is required")
)

// Place returns n cities drawn uniformly, with replacement, from cities.
// Exactly n values are drawn from rng.
//
// Complexity: O(n) time and space.
func Place(n int, cities []latency.City, rng *rand.Rand) ([]latency.City, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPlace, n, ErrInvalidNodeCount)
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("%s: %w", methodPlace, ErrNoCities)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPlace, ErrNeedRandSource)
	}

	out := make([]latency.City, n)
	for i := range out {
		out[i] = cities[rng.Intn(len(cities))]
	}

	return out, nil
}
