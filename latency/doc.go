// SPDX-License-Identifier: MIT

// Package latency turns the empirical city-to-city delay table into a symmetric
// latency oracle.
//
// The raw table arrives as a jagged lower triangle: row r holds r+1 cells and
// column 0 of every row belongs to an anchor city that is not part of the city
// list. A lookup between cities at positions hi > lo therefore reads
// raw[hi][lo+1]. Build applies that correction exactly once, while converting
// the triangle into a dense n×n cell grid; no other package ever sees raw row
// or column offsets.
//
// Self latency is not part of the data and is fixed at SelfLatencyMs.
//
// Errors:
//
//	ErrUnknownCity      - a lookup key is absent from the city list.
//	ErrMalformedLatency - the cell for a pair is missing or is not an integer.
//	ErrEmptyCityList    - Build was given no cities.
//	ErrDuplicateCity    - the city list repeats a name.
//
// Quick example:
//
//	idx, _ := latency.Build(
//		[]latency.City{"chicago", "dallas", "denver"},
//		latency.Table{{"x"}, {"x", "25"}, {"x", "22", "17"}},
//	)
//	ms, _ := idx.Between("denver", "chicago") // 22
package latency
