// SPDX-License-Identifier: MIT
// Package: latgen/render
//
// svg.go - SVG writer.

package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/netgraph"
)

const (
	nodeRadius = 18
	nodeFill   = "#1f77b4"
	edgeStroke = "#555555"
)

// WriteSVG renders g as an SVG document.
func WriteSVG(w io.Writer, g *netgraph.Graph, coords geo.Coordinates, opts Options) error {
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
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	fmt.Fprintln(bw, `<rect width="100%" height="100%" fill="white"/>`)

	fmt.Fprintf(bw, `<g stroke="%s" stroke-width="1.5" stroke-opacity="0.5">`+"\n", edgeStroke)
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", a.X, a.Y, b.X, b.Y)
	}
	fmt.Fprintln(bw, `</g>`)

	if opts.LabelEdges {
		fmt.Fprintln(bw, `<g font-family="sans-serif" font-size="14" text-anchor="middle">`)
		for _, e := range g.Edges() {
			a, b := pos[e.From], pos[e.To]
			fmt.Fprintf(bw, `<text class="edge-label" x="%.1f" y="%.1f">%s</text>`+"\n",
				(a.X+b.X)/2, (a.Y+b.Y)/2, html.EscapeString(e.Label()))
		}
		fmt.Fprintln(bw, `</g>`)
	}

	fmt.Fprintln(bw, `<g font-family="sans-serif" font-size="12" text-anchor="middle">`)
	for _, v := range g.Vertices() {
		p := pos[v.ID]
		fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s" fill-opacity="0.5"/>`+"\n",
			p.X, p.Y, nodeRadius, nodeFill)
		fmt.Fprintf(bw, `<text class="node-label" x="%.1f" y="%.1f">%s</text>`+"\n",
			p.X, p.Y+4, html.EscapeString(v.Label()))
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}
