package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/matrix"
)

// chain builds 0→1→2→…→n-1.
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode("")
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(core.NodeIndex(i), core.NodeIndex(i+1), 1)
		require.NoError(t, err)
	}
	return g
}

// loop builds 0⇄1 with a double edge 0→1, plus 1→2.
func loop(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode("")
	}
	for _, e := range [][2]core.NodeIndex{{0, 1}, {0, 1}, {1, 0}, {1, 2}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	return g
}

func naivePower(t *testing.T, a *matrix.Dense, n int) *matrix.Dense {
	t.Helper()
	acc, err := matrix.Identity(a.Rows())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		acc, err = matrix.Mul(acc, a)
		require.NoError(t, err)
	}
	return acc
}

func TestAdjacency_SkipsDeleted(t *testing.T) {
	_, _, err := matrix.Adjacency(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	g := loop(t)
	a, order, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{0, 1, 2}, order)
	assert.Equal(t, "[0, 2, 0]\n[1, 0, 1]\n[0, 0, 0]\n", a.String())

	require.NoError(t, g.SetNodeDeleted(1, true))
	a, order, err = matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{0, 2}, order)
	assert.Equal(t, "[0, 0]\n[0, 0]\n", a.String())
}

func TestCache_PowerMatchesRepeatedMultiplication(t *testing.T) {
	g := loop(t)
	cached, err := matrix.NewCache(g)
	require.NoError(t, err)
	a := cached.Adjacency()

	// Mixed order exercises both the fresh and the resume-from-lower paths.
	for _, n := range []int{5, 3, 12, 1, 12, 7, 0, 6} {
		got, err := cached.Power(n)
		require.NoError(t, err)

		fresh, err := matrix.NewCache(g)
		require.NoError(t, err)
		direct, err := fresh.Power(n)
		require.NoError(t, err)

		want := naivePower(t, a, n)
		assert.True(t, want.Equal(got), "cached power %d", n)
		assert.True(t, want.Equal(direct), "fresh power %d", n)
	}

	_, err = cached.Power(-1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}

func TestCache_PowerCountsWalks(t *testing.T) {
	c, err := matrix.NewCache(loop(t))
	require.NoError(t, err)

	p2, err := c.Power(2)
	require.NoError(t, err)
	assert.Equal(t, "[2, 0, 2]\n[0, 2, 0]\n[0, 0, 0]\n", p2.String())
}

func TestCache_ReturnsCopies(t *testing.T) {
	c, err := matrix.NewCache(chain(t, 3))
	require.NoError(t, err)

	p, _ := c.Power(1)
	require.NoError(t, p.Set(0, 0, 42))
	again, _ := c.Power(1)
	v, _ := again.At(0, 0)
	assert.Zero(t, v)
}

func TestCache_LRUEviction(t *testing.T) {
	c, err := matrix.NewCache(chain(t, 6), matrix.WithCapacity(3))
	require.NoError(t, err)

	for n := 1; n <= 4; n++ {
		_, err := c.Power(n)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{4, 3, 2}, c.CachedPowers())

	_, err = c.Power(2) // hit, becomes most recent
	require.NoError(t, err)
	_, err = c.Power(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 4}, c.CachedPowers())

	st := c.PowerStats()
	assert.EqualValues(t, 1, st.Hits)
	assert.EqualValues(t, 5, st.Misses)
	assert.EqualValues(t, 2, st.Evictions)
	assert.Equal(t, 3, st.Len)
}

func TestCache_DefaultCapacity(t *testing.T) {
	c, err := matrix.NewCache(chain(t, 4))
	require.NoError(t, err)
	for s := 0; s < 15; s++ {
		_, err := c.Reach(s)
		require.NoError(t, err)
	}
	st := c.ReachStats()
	assert.Equal(t, matrix.DefaultCacheCapacity, st.Len)
	assert.EqualValues(t, 5, st.Evictions)
	assert.Equal(t, 14, c.CachedReach()[0])
}

func TestCache_ReachChain(t *testing.T) {
	c, err := matrix.NewCache(chain(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, c.LongestPath())

	r0, err := c.Reach(0)
	require.NoError(t, err)
	assert.True(t, r0.Equal(c.Uni()))

	r1, err := c.Reach(1)
	require.NoError(t, err)
	assert.Equal(t, "[1, 1, 0, 0]\n[0, 1, 1, 0]\n[0, 0, 1, 1]\n[0, 0, 0, 1]\n", r1.String())

	all, err := c.Reach(-1)
	require.NoError(t, err)
	assert.Equal(t, "[1, 1, 1, 1]\n[0, 1, 1, 1]\n[0, 0, 1, 1]\n[0, 0, 0, 1]\n", all.String())

	_, err = c.Reach(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidSteps)
}

func TestCache_ReachCyclic(t *testing.T) {
	c, err := matrix.NewCache(loop(t))
	require.NoError(t, err)
	assert.Equal(t, 2, c.LongestPath())

	r, err := c.Reach(-1)
	require.NoError(t, err)
	assert.Equal(t, "[1, 1, 1]\n[1, 1, 1]\n[0, 0, 1]\n", r.String())

	// Far more hops than needed still clamps to the same matrix.
	far, err := c.Reach(2000)
	require.NoError(t, err)
	assert.True(t, far.Equal(r))
}

func TestConeDistance(t *testing.T) {
	c, err := matrix.NewCache(chain(t, 4))
	require.NoError(t, err)

	d, err := c.ConeDistance(-1)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 2, 3]\n[1, 0, 1, 2]\n[2, 1, 0, 1]\n[3, 2, 1, 0]\n", d.String())

	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			a, _ := d.At(i, j)
			b, _ := d.At(j, i)
			assert.Equal(t, a, b)
		}
	}

	_, err = matrix.ConeDistance(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestCache_Invalidate(t *testing.T) {
	g := chain(t, 3)
	c, err := matrix.NewCache(g)
	require.NoError(t, err)
	_, _ = c.Power(2)
	_, _ = c.Reach(-1)

	require.NoError(t, g.SetNodeDeleted(2, true))
	require.NoError(t, c.Invalidate(g))

	assert.Equal(t, 2, c.Size())
	assert.Empty(t, c.CachedPowers())
	assert.Empty(t, c.CachedReach())
	assert.Equal(t, 1, c.LongestPath())
	require.ErrorIs(t, c.Invalidate(nil), matrix.ErrGraphNil)
}

func TestCache_EmptyGraph(t *testing.T) {
	c, err := matrix.NewCache(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())

	r, err := c.Reach(-1)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Rows())
}

func TestWithContext_PanicsOnNil(t *testing.T) {
	//nolint:staticcheck // nil context on purpose
	assert.Panics(t, func() { matrix.WithContext(nil) })
}
