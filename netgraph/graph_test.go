package netgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/netgraph"
	"github.com/katalvlaran/latgen/topology"
)

var placement = []latency.City{"dallas", "chicago", "dallas", "denver"}

func TestFromConnections_Star(t *testing.T) {
	set := topology.ConnectionSet{
		{Src: 0, Dst: 1, LatencyMs: 25, Bandwidth: 12.6},
		{Src: 0, Dst: 2, LatencyMs: 2, Bandwidth: 12.6},
		{Src: 0, Dst: 3, LatencyMs: 17, Bandwidth: 12.6},
	}

	g, err := netgraph.FromConnections(set, placement)
	require.NoError(t, err)

	require.Len(t, g.Vertices(), 4)
	assert.Equal(t, "2 dallas", g.Vertices()[2].Label())
	assert.Len(t, g.Edges(), 3)
	assert.Equal(t, "25, 12", g.Edges()[0].Label())

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nbs)
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 1, g.Degree(3))
}

func TestAddEdge_Rules(t *testing.T) {
	g := netgraph.NewGraph(placement)

	require.NoError(t, g.AddEdge(3, 1, 22, 5))
	assert.Equal(t, netgraph.Edge{From: 1, To: 3, LatencyMs: 22, Bandwidth: 5}, g.Edges()[0])

	assert.ErrorIs(t, g.AddEdge(1, 3, 22, 5), netgraph.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(2, 2, 2, 5), netgraph.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 9, 2, 5), netgraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 2, 2, 5), netgraph.ErrVertexNotFound)

	_, err := g.Neighbors(7)
	assert.ErrorIs(t, err, netgraph.ErrVertexNotFound)
}

func TestFromConnections_RejectsDuplicates(t *testing.T) {
	set := topology.ConnectionSet{
		{Src: 0, Dst: 1, LatencyMs: 25, Bandwidth: 1},
		{Src: 0, Dst: 1, LatencyMs: 25, Bandwidth: 1},
	}
	_, err := netgraph.FromConnections(set, placement)
	assert.ErrorIs(t, err, netgraph.ErrMultiEdgeNotAllowed)
}
