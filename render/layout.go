// SPDX-License-Identifier: MIT
// Package: latgen/render
//
// layout.go - geographic node positions.
//
// Each node sits at its city's longitude/latitude. Several nodes often share a
// city; the k-th repeat of a city is shifted by (+k°, +k°) so that it stays
// visible next to the first one.

package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/netgraph"
)

// RepeatOffsetDeg is the shift applied per repeat of a city.
const RepeatOffsetDeg = 1.0

// Position is a 2D canvas coordinate.
type Position struct {
	X float64
	Y float64
}

// LayoutConfig sizes the canvas.
type LayoutConfig struct {
	Width   float64
	Height  float64
	Padding float64
}

// DefaultLayout is the canvas used when a zero LayoutConfig is supplied.
var DefaultLayout = LayoutConfig{Width: 1200, Height: 700, Padding: 60}

// GeoPositions returns the (longitude, latitude) of every vertex, with repeat
// offsets applied, indexed by vertex ID.
func GeoPositions(g *netgraph.Graph, coords geo.Coordinates) ([]geo.Point, error) {
	vs := g.Vertices()
	out := make([]geo.Point, len(vs))
	seen := make(map[latency.City]int, len(vs))

	for _, v := range vs {
		p, ok := coords[v.City]
		if !ok {
			return nil, fmt.Errorf("GeoPositions: node %d at %q: %w", v.ID, v.City, ErrMissingCoordinates)
		}
		k := float64(seen[v.City])
		seen[v.City]++
		out[v.ID] = geo.Point{Lon: p.Lon + k*RepeatOffsetDeg, Lat: p.Lat + k*RepeatOffsetDeg}
	}

	return out, nil
}

// Project maps geographic points onto the canvas: longitude grows to the
// right, latitude grows upwards. The bounding box is scaled uniformly.
func Project(points []geo.Point, cfg LayoutConfig) []Position {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg = DefaultLayout
	}
	out := make([]Position, len(points))
	if len(points) == 0 {
		return out
	}

	minLon, maxLon := math.Inf(1), math.Inf(-1)
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minLon, maxLon = math.Min(minLon, p.Lon), math.Max(maxLon, p.Lon)
		minLat, maxLat = math.Min(minLat, p.Lat), math.Max(maxLat, p.Lat)
	}

	innerW := cfg.Width - 2*cfg.Padding
	innerH := cfg.Height - 2*cfg.Padding
	spanLon := maxLon - minLon
	spanLat := maxLat - minLat

	scale := 1.0
	switch {
	case spanLon > 0 && spanLat > 0:
		scale = math.Min(innerW/spanLon, innerH/spanLat)
	case spanLon > 0:
		scale = innerW / spanLon
	case spanLat > 0:
		scale = innerH / spanLat
	}

	// Center the scaled bounding box. Padding is added last and the result
	// clamped, so rounding never pushes an extreme point outside the margin.
	marginX := (innerW - spanLon*scale) / 2
	marginY := (innerH - spanLat*scale) / 2
	for i, p := range points {
		x := marginX + (p.Lon-minLon)*scale + cfg.Padding
		y := marginY + (maxLat-p.Lat)*scale + cfg.Padding
		out[i] = Position{
			X: clamp(x, cfg.Padding, cfg.Width-cfg.Padding),
			Y: clamp(y, cfg.Padding, cfg.Height-cfg.Padding),
		}
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
