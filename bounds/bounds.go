package bounds

import (
	"fmt"
	"math"
)

// Bounds is a closed interval [Lo, Hi] over int64.
// A well-formed Bounds has Lo <= Hi; use New to enforce it at construction.
type Bounds struct {
	Lo int64 `json:"lo"`
	Hi int64 `json:"hi"`
}

// New returns the interval [lo, hi]. It fails with ErrInvertedBounds when
// lo > hi and with ErrSpanOverflow when hi-lo is not representable.
func New(lo, hi int64) (Bounds, error) {
	if lo > hi {
		return Bounds{}, fmt.Errorf("New(%d,%d): %w", lo, hi, ErrInvertedBounds)
	}
	if span(lo, hi) > math.MaxInt64 {
		return Bounds{}, fmt.Errorf("New(%d,%d): %w", lo, hi, ErrSpanOverflow)
	}

	return Bounds{Lo: lo, Hi: hi}, nil
}

// Len returns Hi-Lo. A single-point interval has length 0.
// Len wraps for literals New would reject; span does not.
func (b Bounds) Len() int64 {
	return b.Hi - b.Lo
}

// span returns hi-lo for lo <= hi without wrapping.
func span(lo, hi int64) uint64 {
	return uint64(hi) - uint64(lo)
}

// Contains reports whether o lies entirely inside b (equality included).
func (b Bounds) Contains(o Bounds) bool {
	return b.Lo <= o.Lo && o.Hi <= b.Hi
}

// Intersects reports whether b and o share at least one point.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Lo <= o.Hi && o.Lo <= b.Hi
}

// Touches reports whether b and o are adjacent without overlapping,
// e.g. [3,5] and [6,7].
func (b Bounds) Touches(o Bounds) bool {
	return (b.Hi < math.MaxInt64 && b.Hi+1 == o.Lo) ||
		(o.Hi < math.MaxInt64 && o.Hi+1 == b.Lo)
}

// Compare orders intervals by spatial position:
//
//	-1  b ends before o starts, or b starts before o and ends before o ends
//	+1  the mirror image
//	 0  b and o are equal or one is nested in the other
//
// This is a partial order; it is not transitive for overlapping chains.
func (b Bounds) Compare(o Bounds) int {
	switch {
	case b.Hi < o.Lo || (b.Lo < o.Lo && b.Hi < o.Hi):
		return -1
	case b.Lo > o.Hi || (b.Lo > o.Lo && b.Hi > o.Hi):
		return 1
	default:
		return 0
	}
}

// Union returns the enclosing interval when b and o overlap, nest or are
// adjacent. It returns false when a gap separates them.
// Complexity: O(1).
func (b Bounds) Union(o Bounds) (Bounds, bool) {
	if !b.Intersects(o) && !b.Touches(o) {
		return Bounds{}, false
	}

	return Bounds{Lo: min(b.Lo, o.Lo), Hi: max(b.Hi, o.Hi)}, true
}

// Intersect returns the common part of b and o. Adjacent intervals do not
// intersect.
// Complexity: O(1).
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	if !b.Intersects(o) {
		return Bounds{}, false
	}

	return Bounds{Lo: max(b.Lo, o.Lo), Hi: min(b.Hi, o.Hi)}, true
}

// Subtract returns b \ o. It returns false when nothing is left, i.e. when o
// covers b (equality included).
//
// Branches follow Compare:
//   - -1: the part of b left of o (b itself when they are disjoint);
//   - +1: the part of b right of o;
//   - 0 with b strictly containing o: b minus (o.Lo, b.Hi) followed by
//     b minus (b.Lo, o.Hi), i.e. the left and right remainders.
//
// Complexity: O(1).
func (b Bounds) Subtract(o Bounds) (Set, bool) {
	if o.Contains(b) {
		return Set{}, false
	}

	switch b.Compare(o) {
	case -1:
		return NewSet(Bounds{Lo: b.Lo, Hi: min(b.Hi, o.Lo-1)}), true
	case 1:
		return NewSet(Bounds{Lo: max(b.Lo, o.Hi+1), Hi: b.Hi}), true
	}

	// b strictly contains o; each side is itself a -1/+1 subtraction.
	var out Set
	if b.Lo < o.Lo {
		out.items = append(out.items, Bounds{Lo: b.Lo, Hi: o.Lo - 1})
	}
	if o.Hi < b.Hi {
		out.items = append(out.items, Bounds{Lo: o.Hi + 1, Hi: b.Hi})
	}

	return out, len(out.items) > 0
}

// String renders the interval as "[lo, hi]".
func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.Lo, b.Hi)
}
