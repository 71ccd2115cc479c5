// SPDX-License-Identifier: MIT
// Package: latgen/latsource
//
// latsource.go - decoding the published network-delay page.
//
// Page layout:
//   - City names are the text of <td nowrap> cells. Only names longer than
//     three characters are kept; shorter nowrap cells are column abbreviations.
//   - Latency values are the <td bgcolor="#66CC66"> cells in document order,
//     forming a lower triangle read row by row: 1 cell, then 2, then 3, ...
//
// The decoder only reshapes the page; the anchor-column correction belongs to
// latency.Build.

// Package latsource reads the city list and raw latency triangle from the
// network-delay HTML page.
package latsource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/katalvlaran/latgen/latency"
)

// LatencyCellColor is the background color marking latency cells.
const LatencyCellColor = "#66CC66"

// minCityNameLen is the length a nowrap cell must exceed to count as a city.
const minCityNameLen = 3

var (
	// ErrNoCities indicates that the page holds no city cells.
	ErrNoCities = errors.New("latsource: no cities found")

	// ErrRaggedTable indicates that the latency cells do not fill whole rows.
	ErrRaggedTable = errors.New("latsource: latency cells do not form a triangle")
)

// Source is the decoded page content.
type Source struct {
	Cities []latency.City
	Table  latency.Table
}

// Parse decodes the page read from r.
func Parse(r io.Reader) (*Source, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	var (
		cities []latency.City
		cells  []string
	)
	walk(doc, func(n *html.Node) {
		if n.DataAtom != atom.Td {
			return
		}
		switch {
		case hasAttr(n, "nowrap"):
			name := strings.TrimSpace(textContent(n))
			if utf8.RuneCountInString(name) > minCityNameLen {
				cities = append(cities, latency.NormalizeCity(name))
			}
		case strings.EqualFold(attr(n, "bgcolor"), LatencyCellColor):
			cells = append(cells, strings.TrimSpace(textContent(n)))
		}
	})

	if len(cities) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrNoCities)
	}

	table, err := triangle(cells)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return &Source{Cities: cities, Table: table}, nil
}

// Load opens path and parses it.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return src, nil
}

// triangle groups cells into rows of length 1, 2, 3, ...
func triangle(cells []string) (latency.Table, error) {
	var (
		table latency.Table
		pos   int
	)
	for width := 1; pos < len(cells); width++ {
		if pos+width > len(cells) {
			return nil, fmt.Errorf("row %d needs %d cells, %d left: %w", width-1, width, len(cells)-pos, ErrRaggedTable)
		}
		table = append(table, cells[pos:pos+width:pos+width])
		pos += width
	}

	return table, nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return b.String()
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}

	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}
