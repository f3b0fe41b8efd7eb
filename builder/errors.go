// SPDX-License-Identifier: MIT
// Package: conelab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
// Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrInvalidSettings indicates that Settings failed validation. The wrapped
// message names every offending field.
var ErrInvalidSettings = errors.New("builder: invalid settings")

// ErrNeedRandSource indicates that Build was called without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its draw attempts
// while picking distinct nodes.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrLoadSettings indicates that a settings document could not be read or
// decoded.
var ErrLoadSettings = errors.New("builder: cannot load settings")
