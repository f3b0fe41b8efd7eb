package history_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conelab/history"
)

var (
	idA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	idD = uuid.MustParse("00000000-0000-0000-0000-00000000000d")

	A = history.Change{ID: idA, Attr: history.AttrDeleted}
	B = history.Change{ID: idB, Attr: history.AttrDeleted}
	C = history.Change{ID: idC, Attr: history.AttrSelected}
	D = history.Change{ID: idD, Attr: history.AttrSelected}
)

func diff(plus, minus []history.Change) history.Diff {
	return history.Diff{Plus: history.NewSet(plus...), Minus: history.NewSet(minus...)}
}

func TestDiff_SquashCancels(t *testing.T) {
	on := diff([]history.Change{A, B}, nil)
	off := diff(nil, []history.Change{A})

	got := on.Squash(off)
	assert.True(t, got.Equal(diff([]history.Change{B}, nil)), "A on then off cancels")

	got = off.Squash(on)
	assert.True(t, got.Equal(diff([]history.Change{B}, nil)), "A off then on cancels")
}

func TestDiff_ReverseUndoes(t *testing.T) {
	d := diff([]history.Change{A}, []history.Change{B, C})
	r := d.Reverse()
	assert.True(t, r.Equal(diff([]history.Change{B, C}, []history.Change{A})))
	assert.True(t, d.Squash(r).Empty())
	assert.True(t, r.Reverse().Equal(d))
}

func TestDiff_SquashAssociative(t *testing.T) {
	x := diff([]history.Change{A}, []history.Change{D})
	y := diff([]history.Change{B}, []history.Change{A})
	z := diff([]history.Change{A, D}, []history.Change{B})

	left := x.Squash(y).Squash(z)
	right := x.Squash(y.Squash(z))
	assert.True(t, left.Equal(right))
	assert.True(t, left.Equal(diff([]history.Change{A}, nil)))
}

func TestDiff_Basics(t *testing.T) {
	d := history.NewDiff()
	assert.True(t, d.Empty())
	d.Plus.Add(A)
	d.Minus.Add(B)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Plus.Has(A))
	assert.False(t, d.Plus.Has(B))
}

func TestAttr_Text(t *testing.T) {
	b, err := json.Marshal(A)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"00000000-0000-0000-0000-00000000000a","attr":"deleted"}`, string(b))

	var c history.Change
	require.NoError(t, json.Unmarshal([]byte(`{"id":"00000000-0000-0000-0000-00000000000c","attr":"selected"}`), &c))
	assert.Equal(t, C, c)

	err = json.Unmarshal([]byte(`{"id":"00000000-0000-0000-0000-00000000000c","attr":"hidden"}`), &c)
	require.ErrorIs(t, err, history.ErrUnknownAttr)

	_, err = history.Attr(9).MarshalText()
	require.ErrorIs(t, err, history.ErrUnknownAttr)
	assert.Equal(t, "Attr(9)", history.Attr(9).String())
}

func TestSet_SortedJSON(t *testing.T) {
	s := history.NewSet(C, A, history.Change{ID: idA, Attr: history.AttrSelected})
	assert.Equal(t, []history.Change{A, {ID: idA, Attr: history.AttrSelected}, C}, s.Sorted())

	b, err := json.Marshal(s)
	require.NoError(t, err)
	var back history.Set
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}
