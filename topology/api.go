// SPDX-License-Identifier: MIT
// Package: latgen/topology
//
// api.go - the policy Registry and the Generate entry-point.
//
// Design contract:
//   - One orchestrator: Generate(registry, name, ...). Resolves the policy, runs it,
//     wraps any failure once with "Generate(<name>)".
//   - Names are case-sensitive and exact; aliases resolve to the same Policy value.
//   - A Registry is built once and then only read.

package topology

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/latency"
)

// Registry maps policy names and aliases to Policy values.
type Registry struct {
	byName    map[string]Policy
	canonical []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Policy)}
}

// DefaultRegistry returns a Registry holding the built-in policies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Built-in names are distinct constants; Register cannot fail here.
	_ = r.Register(FullyConnected{}, AliasFullyConnected)
	_ = r.Register(Star{})

	return r
}

// Register adds p under p.Name() and every alias.
// Nothing is registered if any of the names is already taken.
func (r *Registry) Register(p Policy, aliases ...string) error {
	if p == nil {
		return fmt.Errorf("Register: nil policy: %w", ErrConstructFailed)
	}

	names := append([]string{p.Name()}, aliases...)
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("Register: empty name for %T: %w", p, ErrConstructFailed)
		}
		if _, taken := r.byName[name]; taken {
			return fmt.Errorf("Register: %q: %w", name, ErrDuplicatePolicy)
		}
	}

	for _, name := range names {
		r.byName[name] = p
	}
	r.canonical = append(r.canonical, p.Name())
	slices.Sort(r.canonical)

	return nil
}

// Lookup resolves name to a Policy.
// The error for an unknown name lists every valid name.
func (r *Registry) Lookup(name string) (Policy, error) {
	if p, ok := r.byName[name]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%q (valid: %s): %w", name, strings.Join(r.Names(), ", "), ErrUnknownTopology)
}

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// Policies returns the canonical policy names, sorted.
func (r *Registry) Policies() []string {
	return slices.Clone(r.canonical)
}

// Generate resolves name in r and runs the policy.
// On error the returned set is always nil.
func Generate(r *Registry, name string, placement []latency.City, oracle LatencyOracle, sampler bandwidth.Sampler, meanBandwidth float64) (ConnectionSet, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	set, err := p.Generate(placement, oracle, sampler, meanBandwidth)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", name, err)
	}

	return set, nil
}
