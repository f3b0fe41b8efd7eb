// SPDX-License-Identifier: MIT
// Package: conelab/builder
//
// options.go - functional options for Build.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; Build itself
// never panics. Determinism is explicit: seeding is done via WithSeed or
// WithRand.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/conelab/core"
)

// BuilderOption customizes a build by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node naming function: idx -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the weight generator derived from Settings.
// The function receives the build RNG and MUST be pure w.r.t. its state to
// preserve determinism. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithLogger routes build logs to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithGraphOptions forwards options to core.NewGraph, e.g. core.WithIDFunc
// for reproducible UUIDs.
func WithGraphOptions(opts ...core.GraphOption) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
