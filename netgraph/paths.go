// SPDX-License-Identifier: MIT
// Package: latgen/netgraph
//
// paths.go - end-to-end latency over the synthesized links.
//
// Dijkstra with a lazy-decrease-key min-heap: improved distances are pushed
// again and stale heap entries are skipped on pop.
//
// Complexity:
//   - ShortestLatencies: O((V + E) log V) time, O(V + E) space.
//   - WorstPathLatency: V runs of ShortestLatencies.
//   - Components: O(V + E) breadth-first sweeps.

package netgraph

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
)

// Unreachable marks a node with no path from the source.
const Unreachable = -1

// ErrNegativeLatency indicates a link whose latency cannot be summed.
var ErrNegativeLatency = errors.New("netgraph: negative link latency")

// ShortestLatencies returns the minimum summed link latency from src to every
// node, indexed by node ID. Unreachable nodes get Unreachable.
func (g *Graph) ShortestLatencies(src int) ([]int, error) {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	return g.shortestFrom(src)
}

// shortestFrom runs Dijkstra from src; the caller holds the read lock.
func (g *Graph) shortestFrom(src int) ([]int, error) {
	n := len(g.vertices)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("ShortestLatencies(%d): %w", src, ErrVertexNotFound)
	}
	for _, e := range g.edges {
		if e.LatencyMs < 0 {
			return nil, fmt.Errorf("ShortestLatencies: link %d-%d latency=%d: %w", e.From, e.To, e.LatencyMs, ErrNegativeLatency)
		}
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	visited := make([]bool, n)

	dist[src] = 0
	pq := nodePQ{{id: src, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for v, eid := range g.adjacency[u] {
			nd := dist[u] + g.edges[eid].LatencyMs
			if dist[v] != Unreachable && nd >= dist[v] {
				continue
			}
			dist[v] = nd
			heap.Push(&pq, nodeItem{id: v, dist: nd})
		}
	}

	return dist, nil
}

// WorstPathLatency returns the largest shortest-path latency between any two
// connected nodes, and the pair realizing it (lowest IDs on ties).
// A graph without links reports 0 and the pair (0, 0).
func (g *Graph) WorstPathLatency() (worst, from, to int, err error) {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	for s := range g.vertices {
		dist, err := g.shortestFrom(s)
		if err != nil {
			return 0, 0, 0, err
		}
		for t := s + 1; t < len(dist); t++ {
			if dist[t] > worst {
				worst, from, to = dist[t], s, t
			}
		}
	}

	return worst, from, to, nil
}

// Components groups node IDs into connected components. Components are
// ordered by their smallest ID and IDs inside a component ascend.
func (g *Graph) Components() [][]int {
	g.muGraph.RLock()
	defer g.muGraph.RUnlock()

	seen := make([]bool, len(g.vertices))
	var out [][]int
	for start := range g.vertices {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []int{start}
		for head := 0; head < len(comp); head++ {
			for nb := range g.adjacency[comp[head]] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// Connected reports whether every node can reach every other node.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}

type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap on dist.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
