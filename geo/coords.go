// SPDX-License-Identifier: MIT
// Package: latgen/geo
//
// coords.go - the city coordinate file.
//
// File format, one city per line:
//
//	<city name, may contain spaces> <longitude> <latitude>
//
// The last two fields are numbers; everything before them is the name.

// Package geo keeps longitude/latitude pairs for the cities of the latency
// table and refreshes them from a geocoding service.
package geo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/latgen/latency"
)

var (
	// ErrMalformedLine indicates a coordinate line that cannot be decoded.
	ErrMalformedLine = errors.New("geo: malformed coordinate line")

	// ErrCityNotGeocoded indicates the geocoder found no match for a city.
	ErrCityNotGeocoded = errors.New("geo: city not geocoded")
)

// Point is a longitude/latitude pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Coordinates maps cities to their location.
type Coordinates map[latency.City]Point

// ReadCoordinates decodes the coordinate file format from r.
// Blank lines are ignored. City names are normalized as in the latency table,
// and a later line for the same city replaces an earlier one.
//
// Errors:
//   - ErrMalformedLine for fewer than three fields or unparsable numbers.
//
// Complexity: O(total input) time, O(c) space for c cities.
func ReadCoordinates(r io.Reader) (Coordinates, error) {
	out := make(Coordinates)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: %d fields: %w", lineNo, len(fields), ErrMalformedLine)
		}

		k := len(fields)
		lon, err := strconv.ParseFloat(fields[k-2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", lineNo, errors.Join(ErrMalformedLine, err))
		}
		lat, err := strconv.ParseFloat(fields[k-1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", lineNo, errors.Join(ErrMalformedLine, err))
		}

		out[latency.NormalizeCity(strings.Join(fields[:k-2], " "))] = Point{Lon: lon, Lat: lat}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadCoordinates reads the coordinate file at path.
func LoadCoordinates(path string) (Coordinates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCoordinates: %w", err)
	}
	defer f.Close()

	coords, err := ReadCoordinates(f)
	if err != nil {
		return nil, fmt.Errorf("LoadCoordinates(%s): %w", path, err)
	}

	return coords, nil
}

// WriteCoordinates writes coords for the cities in order, skipping cities
// without an entry. Values are written with five decimals.
//
// Complexity: O(len(order)).
func WriteCoordinates(w io.Writer, coords Coordinates, order []latency.City) error {
	bw := bufio.NewWriter(w)
	for _, c := range order {
		p, ok := coords[c]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %.5f %.5f\n", c, p.Lon, p.Lat); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveCoordinates writes the coordinate file at path, replacing it.
func SaveCoordinates(path string, coords Coordinates, order []latency.City) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveCoordinates: %w", err)
	}
	if err := WriteCoordinates(f, coords, order); err != nil {
		f.Close()
		return fmt.Errorf("SaveCoordinates(%s): %w", path, err)
	}

	return f.Close()
}
