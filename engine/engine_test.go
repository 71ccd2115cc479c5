package engine_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latgen/engine"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/metrics"
	"github.com/katalvlaran/latgen/placement"
	"github.com/katalvlaran/latgen/topology"
)

var (
	cities = []latency.City{"chicago", "dallas", "denver", "houston"}
	table  = latency.Table{
		{"0"},
		{"9", "25"},
		{"19", "22", "17"},
		{"13", "29", "14", "28"},
	}
)

func TestNew_Placement(t *testing.T) {
	e, err := engine.New(cities, table, 6, engine.WithSeed(7))
	require.NoError(t, err)

	got := e.Placement()
	require.Len(t, got, 6)
	for _, c := range got {
		assert.Contains(t, cities, c)
	}

	// Placement returns a copy.
	got[0] = "nowhere"
	assert.NotEqual(t, latency.City("nowhere"), e.Placement()[0])
	assert.NotEmpty(t, e.RunID())
	assert.Equal(t, 4, e.Index().Len())
}

func TestNew_Errors(t *testing.T) {
	_, err := engine.New(cities, table, 0, engine.WithSeed(1))
	assert.ErrorIs(t, err, placement.ErrInvalidNodeCount)
	assert.ErrorIs(t, err, topology.ErrInvalidNodeCount)

	_, err = engine.New(nil, nil, 3, engine.WithSeed(1))
	assert.ErrorIs(t, err, latency.ErrEmptyCityList)
}

func TestGenerate_Deterministic(t *testing.T) {
	run := func() *engine.Result {
		e, err := engine.New(cities, table, 5, engine.WithSeed(42))
		require.NoError(t, err)
		res, err := e.Generate("fcon", 37.5)
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.Placement, b.Placement)
	assert.Equal(t, a.Connections, b.Connections)
	assert.Equal(t, a.Lines, b.Lines)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestGenerate_Shapes(t *testing.T) {
	e, err := engine.New(cities, table, 5, engine.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	full, err := e.Generate("fully-connected", 37.5)
	require.NoError(t, err)
	assert.Len(t, full.Connections, 10)
	assert.Len(t, full.Lines, 10)
	assert.Equal(t, "fully-connected", full.Topology)

	star, err := e.Generate("star", 40)
	require.NoError(t, err)
	require.Len(t, star.Connections, 4)
	for i, c := range star.Connections {
		assert.Equal(t, 0, c.Src)
		assert.Equal(t, i+1, c.Dst)
		assert.Equal(t, star.Connections[0].Bandwidth, c.Bandwidth)
		assert.True(t, strings.HasPrefix(star.Lines[i], "0->"))
	}

	g, err := star.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Degree(0))
}

func TestGenerate_UnknownTopology(t *testing.T) {
	m := metrics.NewRegistry()
	logger, hook := logtest.NewNullLogger()
	e, err := engine.New(cities, table, 3, engine.WithSeed(1), engine.WithMetrics(m), engine.WithLogger(logger))
	require.NoError(t, err)

	_, err = e.Generate("ring", 10)
	assert.ErrorIs(t, err, topology.ErrUnknownTopology)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "ring", hook.LastEntry().Data["topology"])
	assert.Equal(t, e.RunID(), hook.LastEntry().Data["run_id"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(metrics.UnknownTopology, metrics.StatusError)))

	// Arbitrary names share one series.
	_, err = e.Generate("mesh", 10)
	assert.ErrorIs(t, err, topology.ErrUnknownTopology)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(metrics.UnknownTopology, metrics.StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GenerationsTotal))
}

func TestGenerate_Metrics(t *testing.T) {
	m := metrics.NewRegistry()
	logger, hook := logtest.NewNullLogger()
	e, err := engine.New(cities, table, 4, engine.WithSeed(9), engine.WithMetrics(m), engine.WithLogger(logger))
	require.NoError(t, err)

	res, err := e.Generate("fcon", 37.5)
	require.NoError(t, err)
	require.Len(t, res.Connections, 6)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.LatencyLookupsTotal.WithLabelValues(metrics.LookupHit)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.BandwidthSamplesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("fcon", metrics.StatusOK)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "topology generated", entry.Message)
	assert.Equal(t, 6, entry.Data["connections"])
}

func TestGenerate_CustomRegistry(t *testing.T) {
	r := topology.NewRegistry()
	require.NoError(t, r.Register(topology.Star{}, "hub"))

	e, err := engine.New(cities, table, 3, engine.WithSeed(1), engine.WithRegistry(r))
	require.NoError(t, err)
	assert.Equal(t, []string{"hub", "star"}, e.Topologies())

	_, err = e.Generate("fcon", 10)
	assert.ErrorIs(t, err, topology.ErrUnknownTopology)
	_, err = e.Generate("hub", 10)
	assert.NoError(t, err)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { engine.WithRand(nil) })
	assert.Panics(t, func() { engine.WithLogger(nil) })
	assert.Panics(t, func() { engine.WithMetrics(nil) })
	assert.Panics(t, func() { engine.WithRegistry(nil) })
}
