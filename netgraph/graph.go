// SPDX-License-Identifier: MIT
// Package: latgen/netgraph
//
// graph.go - the synthesized network as a graph, handed to renderers.
//
// Design:
//   - Vertices are the nodes 0..n-1; each carries its city.
//   - Edges are undirected links carrying latency and bandwidth.
//   - Simple graph: no self-loops, no parallel links.
//   - muGraph guards everything; reads take the read lock.

// Package netgraph holds a synthesized network (nodes at cities plus the links
// between them) in a form that renderers and reports can walk.
package netgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/topology"
)

// Sentinel errors for graph mutations.
var (
	// ErrVertexNotFound indicates an edge endpoint that is not a vertex.
	ErrVertexNotFound = errors.New("netgraph: vertex not found")

	// ErrLoopNotAllowed indicates a link from a node to itself.
	ErrLoopNotAllowed = errors.New("netgraph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second link between the same two nodes.
	ErrMultiEdgeNotAllowed = errors.New("netgraph: parallel link not allowed")
)

// Vertex is a node placed at a city.
type Vertex struct {
	ID   int
	City latency.City
}

// Label returns "<id> <city>".
func (v Vertex) Label() string {
	return strconv.Itoa(v.ID) + " " + string(v.City)
}

// Edge is an undirected link; From < To.
type Edge struct {
	From      int
	To        int
	LatencyMs int
	Bandwidth float64
}

// Label returns "<latency>, <bandwidth>" with bandwidth truncated like the
// connection records.
func (e Edge) Label() string {
	return strconv.Itoa(e.LatencyMs) + ", " + strconv.FormatInt(int64(e.Bandwidth), 10)
}

// Graph is a simple undirected graph over placed nodes.
type Graph struct {
	muGraph sync.RWMutex

	vertices  []Vertex
	edges     []Edge
	adjacency map[int]map[int]int // from -> to -> index in edges, mirrored
}

// NewGraph creates a graph with one vertex per placement entry.
// Complexity: O(n).
func NewGraph(placement []latency.City) *Graph {
	g := &Graph{
		vertices:  make([]Vertex, len(placement)),
		adjacency: make(map[int]map[int]int, len(placement)),
	}
	for i, c := range placement {
		g.vertices[i] = Vertex{ID: i, City: c}
	}

	return g
}

// AddEdge links u and v. Endpoints are stored with the smaller ID first.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v, latencyMs int, bw float64) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if u > v {
		u, v = v, u
	}

	g.muGraph.Lock()
	defer g.muGraph.Unlock()

	if u < 0 || v >= len(g.vertices) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if _, dup := g.adjacency[u][v]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.edges = append(g.edges, Edge{From: u, To: v, LatencyMs: latencyMs, Bandwidth: bw})
	eid := len(g.edges) - 1
	ensureAdjacency(g, u)[v] = eid
	ensureAdjacency(g, v)[u] = eid

	return nil
}

func ensureAdjacency(g *Graph, id int) map[int]int {
	m, ok := g.adjacency[id]
	if !ok {
		m = make(map[int]int)
		g.adjacency[id] = m
	}

	return m
}

// Vertices returns a copy of the vertices in ID order.
func (g *Graph) Vertices() []Vertex {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the IDs linked to id, sorted ascending.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of links at id, or 0 for unknown IDs.
func (g *Graph) Degree(id int) int {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	return len(g.adjacency[id])
}

// FromConnections builds the graph for a placement and its connection set.
func FromConnections(set topology.ConnectionSet, placement []latency.City) (*Graph, error) {
	g := NewGraph(placement)
	for _, c := range set {
		if err := g.AddEdge(c.Src, c.Dst, c.LatencyMs, c.Bandwidth); err != nil {
			return nil, fmt.Errorf("FromConnections: %w", err)
		}
	}

	return g, nil
}
