// SPDX-License-Identifier: MIT
// Package: latgen/bandwidth
//
// sampler.go - Normal bandwidth draws.
//
// Contract:
//   - Samples are i.i.d. N(mean, stddev). They are NOT clamped: a low mean with a
//     wide spread produces negative bandwidths and they are passed through.
//   - The RNG is always explicit; nothing reads the global math/rand source.
//   - Invalid parameters return ErrInvalidSamplerParams; nothing panics at draw time.

// Package bandwidth draws link bandwidth values from a Normal distribution.
package bandwidth

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultStdDev is the spread used by every built-in topology.
const DefaultStdDev = 10.0

const methodSampleMany = "SampleMany"

// ErrInvalidSamplerParams indicates a negative count or stddev, or a nil rng.
var ErrInvalidSamplerParams = errors.New("bandwidth: invalid sampler parameters")

// Sampler draws a batch of bandwidth values.
type Sampler interface {
	SampleMany(mean, stddev float64, count int) ([]float64, error)
}

// DrawFn produces one value from rng.
type DrawFn func(rng *rand.Rand) float64

// NormalFn returns a DrawFn sampling N(mean, stddev) without clipping.
func NormalFn(mean, stddev float64) DrawFn {
	return func(rng *rand.Rand) float64 {
		return rng.NormFloat64()*stddev + mean
	}
}

// SampleMany draws count values from N(mean, stddev) using rng.
//
// Complexity: O(count) time and space.
func SampleMany(mean, stddev float64, count int, rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: nil rng: %w", methodSampleMany, ErrInvalidSamplerParams)
	}
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodSampleMany, count, ErrInvalidSamplerParams)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("%s: stddev=%g: %w", methodSampleMany, stddev, ErrInvalidSamplerParams)
	}

	draw := NormalFn(mean, stddev)
	out := make([]float64, count)
	for i := range out {
		out[i] = draw(rng)
	}

	return out, nil
}

// Normal is a Sampler bound to one random source.
type Normal struct {
	rng *rand.Rand
}

// NewNormal binds a Normal sampler to rng.
// Panics on nil, like the other option-style constructors.
func NewNormal(rng *rand.Rand) *Normal {
	if rng == nil {
		panic("bandwidth: NewNormal(nil)")
	}

	return &Normal{rng: rng}
}

// SampleMany implements Sampler.
func (s *Normal) SampleMany(mean, stddev float64, count int) ([]float64, error) {
	return SampleMany(mean, stddev, count, s.rng)
}
