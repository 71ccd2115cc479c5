// SPDX-License-Identifier: MIT
// Package: latgen/workload
//
// workload.go - reading and rewriting workload files.

// Package workload edits simulator workload files.
//
// A workload file is line oriented. Its first line is the header, a
// comma-separated list of "key: value" settings such as
//
//	node_count: 5, duration: 60
//
// Connection records ("0->1 25 12") follow the header. Rewrite replaces all
// existing records with a fresh set and marks the header with
// "manual_links: true" so the simulator uses them verbatim.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/latgen/connfmt"
)

const (
	// DefaultNodeCount is used when the header has no node_count field.
	DefaultNodeCount = 10

	// KeyNodeCount names the header field holding the node count.
	KeyNodeCount = "node_count"

	// KeyManualLinks names the header field that disables simulator linking.
	KeyManualLinks = "manual_links"

	manualSuffix = ", " + KeyManualLinks + ": true"
)

var (
	// ErrBadNodeCount indicates a node_count field that is not a positive integer.
	ErrBadNodeCount = errors.New("workload: bad node_count")

	// ErrEmptyWorkload indicates a workload file without a header line.
	ErrEmptyWorkload = errors.New("workload: empty workload")
)

// NodeCount extracts node_count from a header line, or DefaultNodeCount when
// the field is absent. Keys and values are trimmed; the first node_count
// field wins.
//
// Errors:
//   - ErrBadNodeCount if the value is not an integer or is not positive.
//
// Complexity: O(len(header)).
func NodeCount(header string) (int, error) {
	for _, field := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(field, ":")
		if !ok || strings.TrimSpace(key) != KeyNodeCount {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("NodeCount: %q: %w", strings.TrimSpace(value), ErrBadNodeCount)
		}

		return n, nil
	}

	return DefaultNodeCount, nil
}

// ReadNodeCount reads the header of the workload at path and returns its node
// count. An empty file yields DefaultNodeCount.
func ReadNodeCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ReadNodeCount: %w", err)
	}
	defer f.Close()

	header, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("ReadNodeCount(%s): %w", path, err)
	}

	return NodeCount(strings.TrimRight(header, "\r\n"))
}

// RemoveConnections drops connection records and blank lines. The result is a
// new slice; lines keeps its contents.
//
// Complexity: O(L) for L lines.
func RemoveConnections(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" || strings.Contains(l, connfmt.Arrow) {
			continue
		}
		out = append(out, l)
	}

	return out
}

// SetManual marks the header with manual_links unless it already mentions it.
// The input slice is not modified.
func SetManual(lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyWorkload
	}
	out := append([]string(nil), lines...)
	if !strings.Contains(out[0], KeyManualLinks) {
		out[0] = strings.TrimRight(out[0], " \t") + manualSuffix
	}

	return out, nil
}

// InsertConnections places records right after the header, keeping the
// remaining lines in order.
//
// Complexity: O(L+R) time and space.
func InsertConnections(lines, records []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyWorkload
	}
	out := make([]string, 0, len(lines)+len(records))
	out = append(out, lines[0])
	out = append(out, records...)
	out = append(out, lines[1:]...)

	return out, nil
}

// Apply runs the full edit: remove old records, set manual links, insert
// the new records. Applying it twice with the same records gives the same
// lines.
//
// Errors:
//   - ErrEmptyWorkload if no header survives record removal.
//
// Complexity: O(L+R) time and space.
func Apply(lines, records []string) ([]string, error) {
	out, err := SetManual(RemoveConnections(lines))
	if err != nil {
		return nil, err
	}

	return InsertConnections(out, records)
}

// ReadLines returns the lines of r without line terminators. CRLF endings are
// accepted; a single line may be up to 1 MiB.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadLines: %w", err)
	}

	return lines, nil
}

// Rewrite applies Apply to the workload at path. The new content goes to a
// temporary file in the same directory which then replaces the original, so a
// failure never leaves a half-written workload behind.
func Rewrite(path string, records []string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Rewrite: %w", err)
	}
	lines, err := ReadLines(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("Rewrite(%s): %w", path, err)
	}

	out, err := Apply(lines, records)
	if err != nil {
		return fmt.Errorf("Rewrite(%s): %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("Rewrite: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("Rewrite: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, strings.Join(out, "\n")+"\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("Rewrite: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("Rewrite: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Rewrite: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}
