// SPDX-License-Identifier: MIT
// Package: conelab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn      = DefaultIDFn    ("0","1","2",...)
//   • rng       = nil            (Build refuses to run until seeded)
//   • weightFn  = nil            (derived from Settings)
//   • logger    = slog.Default()

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/conelab/core"
)

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn // overrides Settings.WeightFn when non-nil
	logger    *slog.Logger
	graphOpts []core.GraphOption
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
