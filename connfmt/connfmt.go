// SPDX-License-Identifier: MIT
// Package: latgen/connfmt
//
// connfmt.go - text records for connection sets.

// Package connfmt renders connections as workload records and reads them back.
//
// A record is one line:
//
//	<src>-><dst> <latencyMs> <bandwidth>
//
// Bandwidth is carried as a float but written as an integer truncated toward
// zero (37.9 -> 37, -3.7 -> -3). Parsing a record therefore returns the
// truncated value.
package connfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/latgen/topology"
)

// Arrow separates source and destination in a record.
const Arrow = "->"

// ErrMalformedRecord indicates a line that is not a connection record.
var ErrMalformedRecord = errors.New("connfmt: malformed connection record")

// FormatConnection renders a single record as "<src>-><dst> <latency> <bw>".
// Bandwidth is truncated toward zero; NaN and ±Inf render as 0.
//
// Complexity: O(1).
func FormatConnection(c topology.Connection) string {
	return strconv.Itoa(c.Src) + Arrow + strconv.Itoa(c.Dst) + " " +
		strconv.Itoa(c.LatencyMs) + " " + strconv.FormatInt(truncate(c.Bandwidth), 10)
}

// Format renders set as one record per connection, in set order.
// An empty set yields an empty, non-nil slice.
//
// Complexity: O(m) time and space for m connections.
func Format(set topology.ConnectionSet) []string {
	out := make([]string, len(set))
	for i, c := range set {
		out[i] = FormatConnection(c)
	}

	return out
}

// Write writes the records of set to w, newline-separated, without a
// trailing newline. An empty set writes nothing. Errors come from w.
//
// Complexity: O(m) for m connections; the records are joined before one write.
func Write(w io.Writer, set topology.ConnectionSet) error {
	_, err := io.WriteString(w, strings.Join(Format(set), "\n"))
	return err
}

// IsRecord reports whether line looks like a connection record.
func IsRecord(line string) bool {
	return strings.Contains(line, Arrow)
}

// Parse reads one record. Surrounding whitespace is ignored; the line must
// hold exactly three fields with integer endpoints, latency and bandwidth.
//
// Errors:
//   - ErrMalformedRecord, joined with the strconv error when a number is bad.
//
// Complexity: O(len(line)).
func Parse(line string) (topology.Connection, error) {
	var c topology.Connection

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return c, fmt.Errorf("Parse(%q): want 3 fields, got %d: %w", line, len(fields), ErrMalformedRecord)
	}

	src, dst, ok := strings.Cut(fields[0], Arrow)
	if !ok {
		return c, fmt.Errorf("Parse(%q): missing %q: %w", line, Arrow, ErrMalformedRecord)
	}

	var err error
	if c.Src, err = strconv.Atoi(src); err != nil {
		return c, fmt.Errorf("Parse(%q): src: %w", line, errors.Join(ErrMalformedRecord, err))
	}
	if c.Dst, err = strconv.Atoi(dst); err != nil {
		return c, fmt.Errorf("Parse(%q): dst: %w", line, errors.Join(ErrMalformedRecord, err))
	}
	if c.LatencyMs, err = strconv.Atoi(fields[1]); err != nil {
		return c, fmt.Errorf("Parse(%q): latency: %w", line, errors.Join(ErrMalformedRecord, err))
	}
	bw, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return c, fmt.Errorf("Parse(%q): bandwidth: %w", line, errors.Join(ErrMalformedRecord, err))
	}
	c.Bandwidth = float64(bw)

	return c, nil
}

// ReadAll parses every record in r. Lines that are not records are skipped,
// so a whole workload file can be read back. The first malformed record stops
// the scan.
//
// Complexity: O(total input) time, O(m) space for m records.
func ReadAll(r io.Reader) (topology.ConnectionSet, error) {
	var set topology.ConnectionSet

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !IsRecord(line) {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, err
		}
		set = append(set, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadAll: %w", err)
	}

	return set, nil
}

// truncate drops the fractional part. Non-finite values render as 0 rather
// than an implementation-defined integer.
func truncate(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return int64(v)
}
