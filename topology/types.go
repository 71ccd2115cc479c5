// SPDX-License-Identifier: MIT
// Package: latgen/topology
//
// types.go - Connection, ConnectionSet, Policy and the sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context (method, edge, name) with %w.
//   - Lower-level errors (latency lookups, sampler failures) are wrapped, not
//     replaced, so errors.Is(err, latency.ErrUnknownCity) still works.

package topology

import (
	"errors"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/placement"
)

var (
	// ErrUnknownTopology indicates a policy name that is not registered.
	ErrUnknownTopology = errors.New("topology: unknown topology")

	// ErrInvalidNodeCount indicates an empty placement. It is the placement
	// sentinel, so callers match one error whichever layer rejects the count.
	ErrInvalidNodeCount = placement.ErrInvalidNodeCount

	// ErrDuplicatePolicy indicates a name or alias that is already registered.
	ErrDuplicatePolicy = errors.New("topology: policy already registered")

	// ErrConstructFailed indicates that a collaborator misbehaved (nil oracle or
	// sampler, short bandwidth batch) and no consistent set could be built.
	ErrConstructFailed = errors.New("topology: construction failed")
)

// Connection is one undirected link between two nodes.
type Connection struct {
	Src       int
	Dst       int
	LatencyMs int
	Bandwidth float64
}

// ConnectionSet is an ordered list of connections in generation order.
type ConnectionSet []Connection

// LatencyOracle answers city-to-city latency queries.
// *latency.Index is the production implementation.
type LatencyOracle interface {
	Between(c1, c2 latency.City) (int, error)
}

// Policy builds a ConnectionSet for one placement.
//
// Implementations MUST:
//   - return a nil set together with any error;
//   - emit Src < Dst in a stable order;
//   - draw bandwidth only through the supplied sampler.
type Policy interface {
	Name() string
	Generate(placement []latency.City, oracle LatencyOracle, sampler bandwidth.Sampler, meanBandwidth float64) (ConnectionSet, error)
}
