package history

import "errors"

var (
	// ErrStepNotFound indicates an unknown StepID.
	ErrStepNotFound = errors.New("history: step not found")

	// ErrCorrupt indicates a saved tree that fails structural checks.
	ErrCorrupt = errors.New("history: corrupt tree")

	// ErrUnknownAttr indicates an attribute name that cannot be decoded.
	ErrUnknownAttr = errors.New("history: unknown attribute")
)
