// SPDX-License-Identifier: MIT
// Package: latgen/latency
//
// index.go - Build and the symmetric Index.
//
// Contract:
//   - Build validates the city list (non-empty, unique) and converts the raw
//     triangle into a dense n×n grid in O(n²).
//   - The anchor-column skew is applied here only: pair (hi, lo) with hi > lo
//     reads raw[hi][lo+1].
//   - Cells are parsed once; a bad or missing cell is remembered and reported
//     by the lookups that touch it, so one broken cell does not poison the index.
//   - Between is O(1) and symmetric by construction.

package latency

import (
	"fmt"
	"strconv"
	"strings"
)

const methodBetween = "Between"

type cellState uint8

const (
	cellMissing cellState = iota
	cellOK
	cellBad
)

// cell is one decoded table entry.
type cell struct {
	ms    int
	raw   string
	state cellState
	row   int // raw row, for error context
	col   int // raw column, for error context
}

// Index answers latency queries between cities of a fixed, ordered list.
// It is immutable after Build and safe for concurrent readers.
type Index struct {
	cities []City
	pos    map[City]int
	cells  []cell // row-major n×n, mirrored across the diagonal
}

// Build decodes raw against the ordered city list.
//
// Position in cities is the key into raw, so the order must match the order
// of rows in the source table.
//
// Complexity: O(n²) time and space for n cities.
func Build(cities []City, raw Table) (*Index, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyCityList)
	}

	n := len(cities)
	idx := &Index{
		cities: make([]City, n),
		pos:    make(map[City]int, n),
		cells:  make([]cell, n*n),
	}
	copy(idx.cities, cities)

	for i, c := range idx.cities {
		if prev, dup := idx.pos[c]; dup {
			return nil, fmt.Errorf("Build: %q at positions %d and %d: %w", c, prev, i, ErrDuplicateCity)
		}
		idx.pos[c] = i
	}

	var hi, lo int
	for hi = 1; hi < n; hi++ {
		for lo = 0; lo < hi; lo++ {
			c := decodeCell(raw, hi, lo+1)
			idx.cells[hi*n+lo] = c
			idx.cells[lo*n+hi] = c
		}
	}

	return idx, nil
}

// decodeCell reads raw[row][col] and parses it.
func decodeCell(raw Table, row, col int) cell {
	c := cell{row: row, col: col}
	if row >= len(raw) || col >= len(raw[row]) {
		return c
	}

	c.raw = raw[row][col]
	ms, err := strconv.Atoi(strings.TrimSpace(c.raw))
	if err != nil {
		c.state = cellBad
		return c
	}
	c.ms = ms
	c.state = cellOK

	return c
}

// Between returns the latency in milliseconds between c1 and c2.
// Identical cities yield SelfLatencyMs.
func (x *Index) Between(c1, c2 City) (int, error) {
	i1, ok := x.pos[c1]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", methodBetween, c1, ErrUnknownCity)
	}
	i2, ok := x.pos[c2]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", methodBetween, c2, ErrUnknownCity)
	}

	if i1 == i2 {
		return SelfLatencyMs, nil
	}

	c := x.cells[i1*len(x.cities)+i2]
	switch c.state {
	case cellOK:
		return c.ms, nil
	case cellBad:
		return 0, fmt.Errorf("%s(%s, %s): cell [%d][%d] = %q: %w",
			methodBetween, c1, c2, c.row, c.col, c.raw, ErrMalformedLatency)
	default:
		return 0, fmt.Errorf("%s(%s, %s): cell [%d][%d] missing: %w",
			methodBetween, c1, c2, c.row, c.col, ErrMalformedLatency)
	}
}

// Contains reports whether c is part of the city list.
func (x *Index) Contains(c City) bool {
	_, ok := x.pos[c]
	return ok
}

// Cities returns a copy of the ordered city list.
func (x *Index) Cities() []City {
	out := make([]City, len(x.cities))
	copy(out, x.cities)

	return out
}

// Len returns the number of cities.
func (x *Index) Len() int { return len(x.cities) }
