package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Attr names a boolean flag of a graph element.
type Attr uint8

const (
	AttrDeleted Attr = iota + 1
	AttrSelected
)

func (a Attr) String() string {
	switch a {
	case AttrDeleted:
		return "deleted"
	case AttrSelected:
		return "selected"
	default:
		return fmt.Sprintf("Attr(%d)", uint8(a))
	}
}

// MarshalText encodes a as its name.
func (a Attr) MarshalText() ([]byte, error) {
	if a != AttrDeleted && a != AttrSelected {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAttr, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an attribute name.
func (a *Attr) UnmarshalText(b []byte) error {
	switch string(b) {
	case "deleted":
		*a = AttrDeleted
	case "selected":
		*a = AttrSelected
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttr, b)
	}
	return nil
}

// Change is one flag of one element, identified by the element's UUID.
type Change struct {
	ID   uuid.UUID `json:"id"`
	Attr Attr      `json:"attr"`
}

func compareChange(a, b Change) int {
	if c := bytes.Compare(a.ID[:], b.ID[:]); c != 0 {
		return c
	}
	return int(a.Attr) - int(b.Attr)
}

// Set is an unordered set of changes. It encodes to JSON as a sorted list.
type Set map[Change]struct{}

// NewSet returns a set holding cs.
func NewSet(cs ...Change) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s Set) Add(c Change) { s[c] = struct{}{} }

// Has reports membership.
func (s Set) Has(c Change) bool { _, ok := s[c]; return ok }

// Sorted lists the changes ordered by ID then Attr.
func (s Set) Sorted() []Change {
	out := make([]Change, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, compareChange)
	return out
}

// without returns s \ o.
func (s Set) without(o Set) Set {
	out := make(Set, len(s))
	for c := range s {
		if !o.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

func (s Set) union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range o {
		out[c] = struct{}{}
	}
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var cs []Change
	if err := json.Unmarshal(b, &cs); err != nil {
		return err
	}
	*s = NewSet(cs...)
	return nil
}

// Diff turns flags in Plus on and flags in Minus off.
type Diff struct {
	Plus  Set `json:"plus"`
	Minus Set `json:"minus"`
}

// NewDiff returns an empty diff with allocated sets.
func NewDiff() Diff {
	return Diff{Plus: Set{}, Minus: Set{}}
}

// Empty reports whether d changes nothing.
func (d Diff) Empty() bool { return len(d.Plus) == 0 && len(d.Minus) == 0 }

// Len returns the total number of changes.
func (d Diff) Len() int { return len(d.Plus) + len(d.Minus) }

// Reverse returns the diff that undoes d.
func (d Diff) Reverse() Diff {
	return Diff{Plus: d.Minus.union(nil), Minus: d.Plus.union(nil)}
}

// Squash returns the single diff equivalent to applying d and then next.
// A flag switched on by one and off by the other cancels out.
func (d Diff) Squash(next Diff) Diff {
	return Diff{
		Plus:  d.Plus.without(next.Minus).union(next.Plus.without(d.Minus)),
		Minus: d.Minus.without(next.Plus).union(next.Minus.without(d.Plus)),
	}
}

// Equal compares both sets.
func (d Diff) Equal(o Diff) bool {
	return setEqual(d.Plus, o.Plus) && setEqual(d.Minus, o.Minus)
}

func setEqual(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b.Has(c) {
			return false
		}
	}
	return true
}
