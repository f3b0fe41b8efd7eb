package bounds

import (
	"cmp"
	"slices"
	"strings"
)

// Set is an ordered sequence of Bounds. Insertion order carries no meaning;
// Sort normalises it and Union additionally coalesces.
// The zero value is an empty set ready to use.
type Set struct {
	items []Bounds
}

// NewSet returns a Set holding a copy of items in the given order.
func NewSet(items ...Bounds) Set {
	if len(items) == 0 {
		return Set{}
	}

	return Set{items: slices.Clone(items)}
}

// Len returns the number of intervals in s.
func (s Set) Len() int { return len(s.items) }

// Empty reports whether s holds no intervals.
func (s Set) Empty() bool { return len(s.items) == 0 }

// Items returns a copy of the intervals in their current order.
func (s Set) Items() []Bounds { return slices.Clone(s.items) }

// Equal reports whether s and o hold the same intervals in the same order.
func (s Set) Equal(o Set) bool { return slices.Equal(s.items, o.items) }

// Concat returns s followed by o, without normalisation.
func (s Set) Concat(o Set) Set {
	out := make([]Bounds, 0, len(s.items)+len(o.items))
	out = append(out, s.items...)
	out = append(out, o.items...)

	return Set{items: out}
}

// Sort returns s stably sorted by (Lo, Hi). That order is a linear
// extension of Bounds.Compare: whenever a.Compare(b) == -1, a sorts first.
// Complexity: O(n log n).
func (s Set) Sort() Set {
	out := slices.Clone(s.items)
	slices.SortStableFunc(out, func(a, b Bounds) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	return Set{items: out}
}

// Union concatenates s and o, sorts, and folds left to right, merging each
// interval into the last accumulated one whenever Bounds.Union allows it.
// The result is sorted and no two of its intervals overlap, nest or touch.
// Complexity: O((n+m) log(n+m)).
func (s Set) Union(o Set) Set {
	sorted := s.Concat(o).Sort()
	if sorted.Empty() {
		return Set{}
	}

	acc := make([]Bounds, 0, sorted.Len())
	acc = append(acc, sorted.items[0])
	for _, b := range sorted.items[1:] {
		last := &acc[len(acc)-1]
		if merged, ok := last.Union(b); ok {
			*last = merged
			continue
		}
		acc = append(acc, b)
	}

	return Set{items: acc}
}

// Diff computes the part of s that is not covered by o.
//
// Phase 1 subtracts every interval of o from every interval of s and
// gathers the remainders. Phase 2 intersects those remainders pairwise
// (i < j, in gathering order); when at least one pairwise intersection
// exists, the intersections are the result, otherwise the remainders are.
// With a single interval in o the remainders are pairwise disjoint, so the
// result is simply s minus that interval. With several intervals in o a
// region survives only where remainders computed against different
// intervals agree.
//
// Diff returns (s, true) when o is empty and (Set{}, false) when nothing
// remains.
// Complexity: O(n·m + k²), k = number of remainders.
func (s Set) Diff(o Set) (Set, bool) {
	if o.Empty() {
		return s, true
	}

	var differences []Bounds
	for _, sb := range s.items {
		for _, ob := range o.items {
			if rest, ok := sb.Subtract(ob); ok {
				differences = append(differences, rest.items...)
			}
		}
	}
	if len(differences) == 0 {
		return Set{}, false
	}

	var intersections []Bounds
	for i := 0; i < len(differences); i++ {
		for j := i + 1; j < len(differences); j++ {
			if x, ok := differences[i].Intersect(differences[j]); ok {
				intersections = append(intersections, x)
			}
		}
	}
	if len(intersections) > 0 {
		return Set{items: intersections}, true
	}

	return Set{items: differences}, true
}

// Minus removes every interval of o from s one after another and returns the
// coalesced remainder. Unlike Diff it is exact for any shape of o.
// Complexity: O(n·m) subtractions plus a final Union.
func (s Set) Minus(o Set) Set {
	rest := s.items
	for _, ob := range o.items {
		next := make([]Bounds, 0, len(rest))
		for _, b := range rest {
			if part, ok := b.Subtract(ob); ok {
				next = append(next, part.items...)
			}
		}
		rest = next
	}

	return Set{items: rest}.Union(Set{})
}

// Covers reports whether a single interval of s fully contains b.
// On a coalesced set this answers "is b already loaded".
func (s Set) Covers(b Bounds) bool {
	for _, it := range s.items {
		if it.Contains(b) {
			return true
		}
	}

	return false
}

// String renders the set as "{[a, b] [c, d]}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
