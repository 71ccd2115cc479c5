package topology_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/topology"
)

// fixedSampler returns pre-set values and records every request.
type fixedSampler struct {
	values []float64
	calls  []sampleCall
}

type sampleCall struct {
	mean, stddev float64
	count        int
}

func (s *fixedSampler) SampleMany(mean, stddev float64, count int) ([]float64, error) {
	s.calls = append(s.calls, sampleCall{mean, stddev, count})
	if count > len(s.values) {
		count = len(s.values)
	}
	return append([]float64(nil), s.values[:count]...), nil
}

// failingSampler always errors.
type failingSampler struct{}

func (failingSampler) SampleMany(float64, float64, int) ([]float64, error) {
	return nil, bandwidth.ErrInvalidSamplerParams
}

func fixtureIndex(t *testing.T) *latency.Index {
	t.Helper()
	idx, err := latency.Build(
		[]latency.City{"chicago", "dallas", "denver", "houston"},
		latency.Table{
			{"0"},
			{"9", "25"},
			{"19", "22", "17"},
			{"13", "29", "14", "28"},
		},
	)
	require.NoError(t, err)
	return idx
}

var place4 = []latency.City{"denver", "chicago", "houston", "denver"}

func TestFullyConnected_Edges(t *testing.T) {
	idx := fixtureIndex(t)
	s := &fixedSampler{values: []float64{10, 20, 30, 40}}

	set, err := topology.FullyConnected{}.Generate(place4, idx, s, 37.5)
	require.NoError(t, err)

	want := topology.ConnectionSet{
		{Src: 0, Dst: 1, LatencyMs: 22, Bandwidth: 10},
		{Src: 0, Dst: 2, LatencyMs: 28, Bandwidth: 10},
		{Src: 0, Dst: 3, LatencyMs: latency.SelfLatencyMs, Bandwidth: 10},
		{Src: 1, Dst: 2, LatencyMs: 29, Bandwidth: 20},
		{Src: 1, Dst: 3, LatencyMs: 22, Bandwidth: 20},
		{Src: 2, Dst: 3, LatencyMs: 28, Bandwidth: 30},
	}
	assert.Equal(t, want, set)

	require.Len(t, s.calls, 1, "bandwidth must be drawn once per generation")
	assert.Equal(t, sampleCall{mean: 37.5, stddev: bandwidth.DefaultStdDev, count: 4}, s.calls[0])
}

func TestFullyConnected_CountAndCoverage(t *testing.T) {
	idx := fixtureIndex(t)
	cities := idx.Cities()

	for _, n := range []int{1, 2, 3, 7, 15} {
		p := make([]latency.City, n)
		for i := range p {
			p[i] = cities[i%len(cities)]
		}

		set, err := topology.FullyConnected{}.Generate(p, idx, bandwidth.NewNormal(rand.New(rand.NewSource(1))), 37.5)
		require.NoError(t, err)
		require.Len(t, set, n*(n-1)/2)

		seen := map[[2]int]bool{}
		for _, c := range set {
			assert.Less(t, c.Src, c.Dst)
			key := [2]int{c.Src, c.Dst}
			assert.False(t, seen[key], "pair %v emitted twice", key)
			seen[key] = true
		}
	}
}

func TestStar_Edges(t *testing.T) {
	idx := fixtureIndex(t)
	s := &fixedSampler{values: []float64{90}}

	set, err := topology.Star{}.Generate(place4, idx, s, 37.5)
	require.NoError(t, err)

	want := topology.ConnectionSet{
		{Src: 0, Dst: 1, LatencyMs: 22, Bandwidth: 30},
		{Src: 0, Dst: 2, LatencyMs: 28, Bandwidth: 30},
		{Src: 0, Dst: 3, LatencyMs: latency.SelfLatencyMs, Bandwidth: 30},
	}
	assert.Equal(t, want, set)
	require.Len(t, s.calls, 1)
	assert.Equal(t, 1, s.calls[0].count)
}

func TestStar_SharedBandwidth(t *testing.T) {
	idx := fixtureIndex(t)
	p := []latency.City{"dallas", "chicago", "denver", "houston", "chicago", "dallas"}

	set, err := topology.Star{}.Generate(p, idx, bandwidth.NewNormal(rand.New(rand.NewSource(5))), 37.5)
	require.NoError(t, err)
	require.Len(t, set, len(p)-1)

	for _, c := range set {
		assert.Equal(t, 0, c.Src)
		assert.Equal(t, set[0].Bandwidth, c.Bandwidth)
	}
}

func TestStar_SingleNode(t *testing.T) {
	s := &fixedSampler{values: []float64{1}}

	set, err := topology.Star{}.Generate([]latency.City{"dallas"}, fixtureIndex(t), s, 37.5)
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.Empty(t, s.calls)
}

func TestPolicies_EmptyPlacement(t *testing.T) {
	idx := fixtureIndex(t)
	s := &fixedSampler{}

	for _, p := range []topology.Policy{topology.FullyConnected{}, topology.Star{}} {
		set, err := p.Generate(nil, idx, s, 37.5)
		assert.ErrorIs(t, err, topology.ErrInvalidNodeCount, p.Name())
		assert.Nil(t, set)
	}
}

// TestPolicies_AllOrNothing: one unknown city anywhere aborts the whole set.
func TestPolicies_AllOrNothing(t *testing.T) {
	idx := fixtureIndex(t)
	p := []latency.City{"chicago", "dallas", "atlantis"}

	for _, pol := range []topology.Policy{topology.FullyConnected{}, topology.Star{}} {
		set, err := pol.Generate(p, idx, &fixedSampler{values: []float64{1, 2, 3}}, 37.5)
		assert.ErrorIs(t, err, latency.ErrUnknownCity, pol.Name())
		assert.Nil(t, set)
	}
}

func TestPolicies_CollaboratorFailures(t *testing.T) {
	idx := fixtureIndex(t)

	set, err := topology.FullyConnected{}.Generate(place4, idx, failingSampler{}, 37.5)
	assert.ErrorIs(t, err, bandwidth.ErrInvalidSamplerParams)
	assert.Nil(t, set)

	set, err = topology.FullyConnected{}.Generate(place4, idx, &fixedSampler{values: []float64{1}}, 37.5)
	assert.ErrorIs(t, err, topology.ErrConstructFailed)
	assert.Nil(t, set)

	_, err = topology.Star{}.Generate(place4, nil, &fixedSampler{values: []float64{1}}, 37.5)
	assert.ErrorIs(t, err, topology.ErrConstructFailed)

	_, err = topology.Star{}.Generate(place4, idx, nil, 37.5)
	assert.ErrorIs(t, err, topology.ErrConstructFailed)
}

func TestNegativeBandwidthPassesThrough(t *testing.T) {
	set, err := topology.Star{}.Generate(place4, fixtureIndex(t), &fixedSampler{values: []float64{-9}}, 37.5)
	require.NoError(t, err)
	for _, c := range set {
		assert.Equal(t, -3.0, c.Bandwidth)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	idx := fixtureIndex(t)
	reg := topology.DefaultRegistry()

	run := func() topology.ConnectionSet {
		set, err := topology.Generate(reg, topology.NameFullyConnected, place4, idx,
			bandwidth.NewNormal(rand.New(rand.NewSource(77))), 37.5)
		require.NoError(t, err)
		return set
	}
	assert.Equal(t, run(), run())
}

func TestGenerate_UnknownTopology(t *testing.T) {
	s := &fixedSampler{values: []float64{1, 2, 3, 4}}

	set, err := topology.Generate(topology.DefaultRegistry(), "bogus", place4, fixtureIndex(t), s, 37.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, topology.ErrUnknownTopology))
	assert.Nil(t, set)
	assert.Empty(t, s.calls, "no work may happen for an unknown topology")

	for _, name := range []string{"fcon", "fully-connected", "star"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestRegistry(t *testing.T) {
	reg := topology.DefaultRegistry()

	assert.Equal(t, []string{"fcon", "fully-connected", "star"}, reg.Names())
	assert.Equal(t, []string{"fcon", "star"}, reg.Policies())

	p, err := reg.Lookup(topology.AliasFullyConnected)
	require.NoError(t, err)
	assert.Equal(t, topology.NameFullyConnected, p.Name())

	err = reg.Register(topology.Star{})
	assert.ErrorIs(t, err, topology.ErrDuplicatePolicy)

	err = reg.Register(topology.Star{}, "hub")
	assert.ErrorIs(t, err, topology.ErrDuplicatePolicy)
	_, err = reg.Lookup("hub")
	assert.ErrorIs(t, err, topology.ErrUnknownTopology, "failed Register must not leave partial aliases")

	assert.ErrorIs(t, reg.Register(nil), topology.ErrConstructFailed)
}
