// SPDX-License-Identifier: MIT
// Package: latgen/render
//
// render.go - graph image output.

// Package render draws a synthesized network on a geographic canvas.
//
// Two output formats are supported and picked by file extension:
//
//	.svg  a self-contained SVG document
//	.dot  Graphviz input with fixed positions (render with `neato -n`)
//
// Node labels are "<id> <city>"; edge labels "<latency>, <bandwidth>" are
// drawn only when Options.LabelEdges is set.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/netgraph"
)

var (
	// ErrMissingCoordinates indicates a node whose city has no coordinates.
	ErrMissingCoordinates = errors.New("render: missing coordinates")

	// ErrUnsupportedFormat indicates an output extension with no writer.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")
)

// Options control what is drawn.
type Options struct {
	LabelEdges bool
	Layout     LayoutConfig
}

// Writer renders g to w.
type Writer func(w io.Writer, g *netgraph.Graph, coords geo.Coordinates, opts Options) error

var writers = map[string]Writer{
	".svg": WriteSVG,
	".dot": WriteDOT,
	".gv":  WriteDOT,
}

// WriterFor returns the writer registered for path's extension.
func WriterFor(path string) (Writer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	w, ok := writers[ext]
	if !ok {
		return nil, fmt.Errorf("WriterFor(%s): %q: %w", path, ext, ErrUnsupportedFormat)
	}

	return w, nil
}

// Save renders g into the file at path, choosing the format by extension.
// Layout problems are reported before the file is created.
func Save(path string, g *netgraph.Graph, coords geo.Coordinates, opts Options) error {
	write, err := WriterFor(path)
	if err != nil {
		return err
	}
	if _, err := GeoPositions(g, coords); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := write(f, g, coords, opts); err != nil {
		f.Close()
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return f.Close()
}
