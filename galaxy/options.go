// SPDX-License-Identifier: MIT
// Package: galaxygen/galaxy
//
// options.go - functional options and the resolved generator configuration.
//
// Contract:
//   - Options are applied in order; last wins.
//   - Option constructors panic on nil arguments; generation never panics.
//   - There is no default RNG: New fails with ErrNeedRandSource unless
//     WithSeed or WithRand is given, so every run states its seed policy.

package galaxy

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Galaxy before construction.
type Option func(*galaxyConfig)

// galaxyConfig is resolved once in New and never changes afterwards.
type galaxyConfig struct {
	// rng is the single random stream of the run.
	rng *rand.Rand
	// sampler draws per-node target degrees.
	sampler DegreeSampler
	// log receives phase-level Debug entries.
	log *zap.Logger
}

// newGalaxyConfig builds a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newGalaxyConfig(opts ...Option) galaxyConfig {
	cfg := galaxyConfig{
		rng:     nil,
		sampler: SampleDegree,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a fresh *rand.Rand seeded with seed.
// Use it in tests and tools that need reproducible galaxies.
func WithSeed(seed int64) Option {
	return func(c *galaxyConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing RNG with the generator. The generator advances
// r; do not use r from another goroutine while generating. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("galaxy: WithRand(nil)")
	}
	return func(c *galaxyConfig) {
		c.rng = r
	}
}

// WithDegreeSampler replaces SampleDegree. Panics on nil.
func WithDegreeSampler(fn DegreeSampler) Option {
	if fn == nil {
		panic("galaxy: WithDegreeSampler(nil)")
	}
	return func(c *galaxyConfig) {
		c.sampler = fn
	}
}

// WithLogger routes phase logs to l. Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("galaxy: WithLogger(nil)")
	}
	return func(c *galaxyConfig) {
		c.log = l
	}
}
