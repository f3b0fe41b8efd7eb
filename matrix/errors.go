// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) for context; callers match with errors.Is.
var (
	// ErrBadShape is returned when requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNegativeExponent is returned by Power for n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrInvalidSteps is returned by Reach for steps < -1.
	ErrInvalidSteps = errors.New("matrix: steps must be >= -1")
)
