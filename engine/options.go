// SPDX-License-Identifier: MIT
// Package: latgen/engine
//
// options.go - functional options for New.
//
// Option constructors panic on meaningless inputs (nil logger, nil source);
// New and Generate never panic.

package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/latgen/logging"
	"github.com/katalvlaran/latgen/metrics"
	"github.com/katalvlaran/latgen/topology"
)

// Option customizes an Engine before it places its nodes.
type Option func(*engineConfig)

type engineConfig struct {
	rng      *rand.Rand
	logger   logrus.FieldLogger
	metrics  *metrics.Registry
	registry *topology.Registry
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	if cfg.registry == nil {
		cfg.registry = topology.DefaultRegistry()
	}

	return cfg
}

// WithSeed makes placement and bandwidth draws reproducible.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("engine: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithMetrics records lookups, samples and generations into m. Panics on nil.
func WithMetrics(m *metrics.Registry) Option {
	if m == nil {
		panic("engine: WithMetrics(nil)")
	}
	return func(c *engineConfig) {
		c.metrics = m
	}
}

// WithRegistry replaces the built-in topology policies. Panics on nil.
func WithRegistry(r *topology.Registry) Option {
	if r == nil {
		panic("engine: WithRegistry(nil)")
	}
	return func(c *engineConfig) {
		c.registry = r
	}
}
