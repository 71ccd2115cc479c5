// SPDX-License-Identifier: MIT
// Package: latgen/engine

// Package engine wires the latency index, node placement, bandwidth sampling
// and topology policies into one generator.
//
// An Engine places its nodes once, at construction. Every Generate call then
// reuses that placement and the same random source, so a seeded Engine
// produces the same sequence of connection sets on every run.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/latgen/bandwidth"
	"github.com/katalvlaran/latgen/connfmt"
	"github.com/katalvlaran/latgen/latency"
	"github.com/katalvlaran/latgen/metrics"
	"github.com/katalvlaran/latgen/netgraph"
	"github.com/katalvlaran/latgen/placement"
	"github.com/katalvlaran/latgen/topology"
)

// Engine generates connection sets over a fixed placement.
type Engine struct {
	runID     string
	index     *latency.Index
	placement []latency.City
	rng       *rand.Rand
	registry  *topology.Registry
	metrics   *metrics.Registry
	logger    logrus.FieldLogger
}

// Result is one generated topology.
type Result struct {
	RunID       string
	Topology    string
	Placement   []latency.City
	Connections topology.ConnectionSet
	Lines       []string
}

// Graph builds the visualization graph of r.
func (r *Result) Graph() (*netgraph.Graph, error) {
	return netgraph.FromConnections(r.Connections, r.Placement)
}

// New indexes table over cities and places n nodes.
func New(cities []latency.City, table latency.Table, n int, opts ...Option) (*Engine, error) {
	cfg := newEngineConfig(opts...)

	idx, err := latency.Build(cities, table)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	placed, err := placement.Place(n, idx.Cities(), cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Engine{
		runID:     uuid.NewString(),
		index:     idx,
		placement: placed,
		rng:       cfg.rng,
		registry:  cfg.registry,
		metrics:   cfg.metrics,
	}
	e.logger = cfg.logger.WithField("run_id", e.runID)
	e.logger.WithFields(logrus.Fields{
		"nodes":  n,
		"cities": idx.Len(),
	}).Debug("nodes placed")

	return e, nil
}

// RunID identifies this engine in logs.
func (e *Engine) RunID() string { return e.runID }

// Placement returns a copy of the node-to-city assignment.
func (e *Engine) Placement() []latency.City {
	return append([]latency.City(nil), e.placement...)
}

// Index returns the latency index the engine reads from.
func (e *Engine) Index() *latency.Index { return e.index }

// Topologies lists the names Generate accepts.
func (e *Engine) Topologies() []string { return e.registry.Names() }

// Generate builds the named topology with the given mean bandwidth.
func (e *Engine) Generate(name string, meanBandwidth float64) (*Result, error) {
	var (
		oracle  topology.LatencyOracle = e.index
		sampler bandwidth.Sampler      = bandwidth.NewNormal(e.rng)
	)
	if e.metrics != nil {
		oracle = countingOracle{inner: oracle, m: e.metrics}
		sampler = countingSampler{inner: sampler, m: e.metrics}
	}

	set, err := topology.Generate(e.registry, name, e.placement, oracle, sampler, meanBandwidth)
	if e.metrics != nil {
		label := name
		if errors.Is(err, topology.ErrUnknownTopology) {
			label = metrics.UnknownTopology
		}
		e.metrics.RecordGeneration(label, len(set), err)
	}
	log := e.logger.WithFields(logrus.Fields{
		"topology": name,
		"nodes":    len(e.placement),
	})
	if err != nil {
		log.WithError(err).Error("generation failed")
		return nil, fmt.Errorf("Generate: %w", err)
	}
	log.WithField("connections", len(set)).Info("topology generated")

	return &Result{
		RunID:       e.runID,
		Topology:    name,
		Placement:   e.Placement(),
		Connections: set,
		Lines:       connfmt.Format(set),
	}, nil
}

type countingOracle struct {
	inner topology.LatencyOracle
	m     *metrics.Registry
}

func (o countingOracle) Between(c1, c2 latency.City) (int, error) {
	ms, err := o.inner.Between(c1, c2)
	o.m.RecordLookup(err)
	return ms, err
}

type countingSampler struct {
	inner bandwidth.Sampler
	m     *metrics.Registry
}

func (s countingSampler) SampleMany(mean, stddev float64, count int) ([]float64, error) {
	out, err := s.inner.SampleMany(mean, stddev, count)
	if err == nil {
		s.m.RecordSamples(len(out))
	}
	return out, err
}
