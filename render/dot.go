// SPDX-License-Identifier: MIT
// Package: latgen/render
//
// dot.go - Graphviz writer with pinned positions.

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/netgraph"
)

// dotPointsPerInch converts canvas units to Graphviz points.
const dotPointsPerInch = 72.0

// WriteDOT renders g as an undirected Graphviz graph. Node positions are
// pinned ("pos" with "!") so `neato -n` keeps the geographic layout.
func WriteDOT(w io.Writer, g *netgraph.Graph, coords geo.Coordinates, opts Options) error {
	points, err := GeoPositions(g, coords)
	if err != nil {
		return err
	}
	cfg := opts.Layout
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg = DefaultLayout
	}
	pos := Project(points, cfg)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph latgen {")
	fmt.Fprintln(bw, `  node [shape=circle, style=filled, fillcolor="#1f77b480", fontsize=12];`)
	for _, v := range g.Vertices() {
		p := pos[v.ID]
		// Graphviz y grows upwards; the canvas y grows downwards.
		fmt.Fprintf(bw, "  %d [label=%s, pos=\"%.1f,%.1f!\"];\n",
			v.ID, strconv.Quote(v.Label()), p.X, cfg.Height-p.Y)
	}
	for _, e := range g.Edges() {
		weight := strconv.FormatFloat(float64(e.LatencyMs)/dotPointsPerInch, 'f', 3, 64)
		if opts.LabelEdges {
			fmt.Fprintf(bw, "  %d -- %d [label=%s, len=%s];\n", e.From, e.To, strconv.Quote(e.Label()), weight)
		} else {
			fmt.Fprintf(bw, "  %d -- %d [len=%s];\n", e.From, e.To, weight)
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
