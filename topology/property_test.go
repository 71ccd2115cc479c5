package topology_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/placement"
	"github.com/katalvlaran/latgen/topology"
)

// TestPolicyProperties checks edge counts and endpoint ordering for random
// node counts and seeds.
func TestPolicyProperties(t *testing.T) {
	idx := fixtureIndex(t)
	cities := idx.Cities()

	build := func(name string, n int, seed int64) (topology.ConnectionSet, error) {
		rng := rand.New(rand.NewSource(seed))
		p, err := placement.Place(n, cities, rng)
		if err != nil {
			return nil, err
		}
		return topology.Generate(topology.DefaultRegistry(), name, p, idx, bandwidth.NewNormal(rng), 37.5)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("fcon emits n(n-1)/2 ordered pairs", prop.ForAll(
		func(n int, seed int64) bool {
			set, err := build(topology.NameFullyConnected, n, seed)
			if err != nil || len(set) != n*(n-1)/2 {
				return false
			}
			for _, c := range set {
				if c.Src >= c.Dst {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	properties.Property("star emits n-1 spokes with one bandwidth", prop.ForAll(
		func(n int, seed int64) bool {
			set, err := build(topology.NameStar, n, seed)
			if err != nil || len(set) != n-1 {
				return false
			}
			for _, c := range set {
				if c.Src != 0 || c.Bandwidth != set[0].Bandwidth {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Int64(),
	))

	properties.Property("same seed, same set", prop.ForAll(
		func(n int, seed int64) bool {
			a, errA := build(topology.NameFullyConnected, n, seed)
			b, errB := build(topology.NameFullyConnected, n, seed)
			if errA != nil || errB != nil || len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

var _ topology.LatencyOracle = (*latency.Index)(nil)
