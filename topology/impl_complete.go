// SPDX-License-Identifier: MIT
// Package: latgen/topology
//
// impl_complete.go - the fully-connected mesh.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidNodeCount). A single node yields an empty set.
//   - One batch of n bandwidth samples (stddev bandwidth.DefaultStdDev) is drawn
//     before any edge is emitted.
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//   - Edge (i,j) carries bws[i]: the sample belongs to the lower-indexed node.
//
// Complexity:
//   - Time: O(n²) lookups. Space: O(n²) for the result.

package topology

import (
	"fmt"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
)

const (
	// NameFullyConnected is the registry name of FullyConnected.
	NameFullyConnected = "fcon"
	// AliasFullyConnected is the long-form alias of NameFullyConnected.
	AliasFullyConnected = "fully-connected"

	methodFullyConnected = "FullyConnected"
)

// FullyConnected links every pair of nodes.
type FullyConnected struct{}

// Name implements Policy.
func (FullyConnected) Name() string { return NameFullyConnected }

// Generate implements Policy.
func (FullyConnected) Generate(placement []latency.City, oracle LatencyOracle, sampler bandwidth.Sampler, meanBandwidth float64) (ConnectionSet, error) {
	n := len(placement)
	if err := checkInputs(methodFullyConnected, n, oracle, sampler); err != nil {
		return nil, err
	}

	bws, err := sampler.SampleMany(meanBandwidth, bandwidth.DefaultStdDev, n)
	if err != nil {
		return nil, fmt.Errorf("%s: sample bandwidth: %w", methodFullyConnected, err)
	}
	if len(bws) != n {
		return nil, fmt.Errorf("%s: sampler returned %d of %d values: %w", methodFullyConnected, len(bws), n, ErrConstructFailed)
	}

	set := make(ConnectionSet, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ms, err := oracle.Between(placement[i], placement[j])
			if err != nil {
				return nil, fmt.Errorf("%s: edge %d->%d: %w", methodFullyConnected, i, j, err)
			}
			set = append(set, Connection{Src: i, Dst: j, LatencyMs: ms, Bandwidth: bws[i]})
		}
	}

	return set, nil
}

// checkInputs performs the validation shared by the built-in policies.
func checkInputs(method string, n int, oracle LatencyOracle, sampler bandwidth.Sampler) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidNodeCount)
	}
	if oracle == nil {
		return fmt.Errorf("%s: nil latency oracle: %w", method, ErrConstructFailed)
	}
	if sampler == nil {
		return fmt.Errorf("%s: nil bandwidth sampler: %w", method, ErrConstructFailed)
	}

	return nil
}
