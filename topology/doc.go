// Package topology turns a node placement into a set of connections.
//
// A Policy decides which node pairs are linked and how bandwidth is shared
// between them. Two policies ship with the package:
//
//   - FullyConnected ("fcon", alias "fully-connected"): every unordered pair
//     i<j is linked. One bandwidth batch of n samples is drawn up front and
//     every edge takes the sample of its lower-indexed endpoint, so all edges
//     leaving node i towards higher indices share bws[i].
//   - Star ("star"): node 0 is the hub. A single sample is drawn and split
//     evenly across the n-1 spokes.
//
// Latency for an edge is always latency(placement[src], placement[dst]).
//
// Policies are looked up by name through a Registry, which stays open for
// new variants (tree, partial mesh, ...) without touching the existing ones.
//
// Guarantees:
//
//   - Src < Dst on every connection; no reverse or duplicate edges.
//   - Stable emission order for a fixed random source.
//   - All-or-nothing: on any error the returned set is nil.
//   - Bandwidth values are carried as drawn, negative ones included.
package topology
