// SPDX-License-Identifier: MIT
// Package: latgen/topology
//
// impl_star.go - the star centered on node 0.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidNodeCount). A single node has no spokes and no
//     bandwidth is drawn for it.
//   - One sample (stddev bandwidth.DefaultStdDev) is drawn and divided by n-1;
//     every spoke carries that identical share.
//   - Emits spokes 0->i in increasing i.
//
// Complexity:
//   - Time: O(n) lookups. Space: O(n).

package topology

import (
	"fmt"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
)

const (
	// NameStar is the registry name of Star.
	NameStar = "star"

	methodStar = "Star"
	hubNode    = 0
)

// Star links node 0 to every other node.
type Star struct{}

// Name implements Policy.
func (Star) Name() string { return NameStar }

// Generate implements Policy.
func (Star) Generate(placement []latency.City, oracle LatencyOracle, sampler bandwidth.Sampler, meanBandwidth float64) (ConnectionSet, error) {
	n := len(placement)
	if err := checkInputs(methodStar, n, oracle, sampler); err != nil {
		return nil, err
	}
	if n == 1 {
		return ConnectionSet{}, nil
	}

	bws, err := sampler.SampleMany(meanBandwidth, bandwidth.DefaultStdDev, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: sample bandwidth: %w", methodStar, err)
	}
	if len(bws) != 1 {
		return nil, fmt.Errorf("%s: sampler returned %d of 1 values: %w", methodStar, len(bws), ErrConstructFailed)
	}
	share := bws[0] / float64(n-1)

	set := make(ConnectionSet, 0, n-1)
	for i := 1; i < n; i++ {
		ms, err := oracle.Between(placement[hubNode], placement[i])
		if err != nil {
			return nil, fmt.Errorf("%s: spoke %d->%d: %w", methodStar, hubNode, i, err)
		}
		set = append(set, Connection{Src: hubNode, Dst: i, LatencyMs: ms, Bandwidth: share})
	}

	return set, nil
}
