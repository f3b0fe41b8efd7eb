package bounds

import "errors"

var (
	// ErrInvertedBounds is returned when Lo > Hi.
	ErrInvertedBounds = errors.New("bounds: lo is greater than hi")

	// ErrInvalidStep is returned by NewPages when step < 1.
	ErrInvalidStep = errors.New("bounds: step must be >= 1")

	// ErrInvalidLimit is returned by NewPages when limit < 1.
	ErrInvalidLimit = errors.New("bounds: limit must be >= 1")

	// ErrPageSizeOverflow is returned by NewPages when step*limit does not
	// fit in an int64.
	ErrPageSizeOverflow = errors.New("bounds: step*limit overflows int64")

	// ErrSpanOverflow is returned by New when Hi-Lo does not fit in an int64.
	ErrSpanOverflow = errors.New("bounds: interval length overflows int64")
)
