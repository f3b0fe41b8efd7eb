package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/dfs"
)

func TestTopologicalSort(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, 4,
		[2]core.NodeIndex{2, 0},
		[2]core.NodeIndex{0, 1},
		[2]core.NodeIndex{2, 3},
		[2]core.NodeIndex{3, 1},
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{2, 0, 3, 1}, order)

	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	// tombstoning the closing edge restores acyclicity
	require.NoError(t, g.SetEdgeDeleted(4, true))
	_, err = dfs.TopologicalSort(g)
	require.NoError(t, err)
}

func TestLongestPath(t *testing.T) {
	g := build(t, 5,
		[2]core.NodeIndex{0, 1},
		[2]core.NodeIndex{1, 2},
		[2]core.NodeIndex{2, 3},
		[2]core.NodeIndex{0, 3},
	)
	got, err := dfs.LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	empty := core.NewGraph()
	got, err = dfs.LongestPath(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = g.AddEdge(3, 0, 1)
	require.NoError(t, err)
	_, err = dfs.LongestPath(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}
