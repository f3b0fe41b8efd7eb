package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/dfs"
)

// build creates n nodes and the given edges, in order.
func build(t *testing.T, n int, edges ...[2]core.NodeIndex) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode("")
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	return g
}

func TestDetectCycles_Errors(t *testing.T) {
	_, err := dfs.DetectCycles(nil, nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, 1)
	_, err = dfs.DetectCycles(g, []core.NodeIndex{3})
	require.ErrorIs(t, err, dfs.ErrRootNotFound)
}

// TestDetectCycles_Acyclic: A→B→C, B→D has no cycles.
func TestDetectCycles_Acyclic(t *testing.T) {
	g := build(t, 4, [2]core.NodeIndex{0, 1}, [2]core.NodeIndex{1, 2}, [2]core.NodeIndex{1, 3})
	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{0})
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

// TestDetectCycles_ThreeNodeCycle: 0→1→2→0 reached from a tail 3→0.
func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	g := build(t, 4,
		[2]core.NodeIndex{3, 0}, // e0
		[2]core.NodeIndex{0, 1}, // e1
		[2]core.NodeIndex{1, 2}, // e2
		[2]core.NodeIndex{2, 0}, // e3
	)
	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{3})
	require.NoError(t, err)
	require.Len(t, cycles, 1)

	want := dfs.Cycle{
		{Start: 0, Edge: 1, End: 1},
		{Start: 1, Edge: 2, End: 2},
		{Start: 2, Edge: 3, End: 0},
	}
	assert.Equal(t, want, cycles[0])
	assert.Equal(t, []core.NodeIndex{0, 1, 2}, cycles[0].Nodes())

	els := cycles[0].Elements()
	assert.Equal(t, []core.NodeIndex{0, 1, 2}, els.SortedNodes())
	assert.Equal(t, []core.EdgeIndex{1, 2, 3}, els.SortedEdges())
}

func TestDetectCycles_SelfLoopAndTwoCycle(t *testing.T) {
	g := build(t, 3,
		[2]core.NodeIndex{0, 0}, // e0 loop
		[2]core.NodeIndex{0, 1}, // e1
		[2]core.NodeIndex{1, 0}, // e2 back to root
		[2]core.NodeIndex{1, 2}, // e3
	)
	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{0})
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Equal(t, dfs.Cycle{{Start: 0, Edge: 0, End: 0}}, cycles[0])
	assert.Equal(t, dfs.Cycle{{Start: 0, Edge: 1, End: 1}, {Start: 1, Edge: 2, End: 0}}, cycles[1])
}

// TestDetectCycles_SharedColours: a cycle found from the first root is not
// reported again from the second.
func TestDetectCycles_SharedColours(t *testing.T) {
	g := build(t, 4,
		[2]core.NodeIndex{0, 2},
		[2]core.NodeIndex{1, 2},
		[2]core.NodeIndex{2, 3},
		[2]core.NodeIndex{3, 2},
	)
	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{0, 1})
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []core.NodeIndex{2, 3}, cycles[0].Nodes())
}

func TestDetectCycles_IgnoresTombstones(t *testing.T) {
	g := build(t, 2, [2]core.NodeIndex{0, 1}, [2]core.NodeIndex{1, 0})
	require.NoError(t, g.SetEdgeDeleted(1, true))
	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{0})
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

// TestDetectCycles_DeepChain exercises the explicit stack on a long path
// closed by a single back edge.
func TestDetectCycles_DeepChain(t *testing.T) {
	const n = 20000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode("")
	}
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(core.NodeIndex(i), core.NodeIndex(i+1), 1)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(n-1, 0, 1)
	require.NoError(t, err)

	cycles, err := dfs.DetectCycles(g, []core.NodeIndex{0})
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Len(t, cycles[0], n)
}
