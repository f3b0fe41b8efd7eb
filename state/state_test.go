package state_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conelab/bfs"
	"github.com/katalvlaran/conelab/builder"
	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/history"
	"github.com/katalvlaran/conelab/state"
)

var quiet = state.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// fixture builds the main line ini_0 → 1 → 2 → fin_3 plus a dead end 1→4,
// a back edge 2→1 and a node 5→2 unreachable from ini.
//
// Edges: e0 0→1, e1 1→2, e2 2→3, e3 1→4, e4 5→2, e5 2→1.
func fixture(t *testing.T) *state.State {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{"ini_0", "1", "2", "fin_3", "4", "5"} {
		g.AddNode(name)
	}
	for _, e := range []struct {
		from, to core.NodeIndex
		w        float64
	}{{0, 1, 1}, {1, 2, 2}, {2, 3, 4}, {1, 4, 1}, {5, 2, 1}, {2, 1, 1}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	s, err := state.FromGraph(g, quiet)
	require.NoError(t, err)
	return s
}

func nodes(ns ...core.NodeIndex) []core.NodeIndex { return ns }
func edges(es ...core.EdgeIndex) []core.EdgeIndex { return es }

func deleted(t *testing.T, s *state.State, name string) bool {
	t.Helper()
	n, err := s.NodeByName(name)
	require.NoError(t, err)
	node, err := s.Graph().Node(n)
	require.NoError(t, err)
	return node.Deleted
}

func TestFromGraph_Roles(t *testing.T) {
	_, err := state.FromGraph(nil)
	require.ErrorIs(t, err, state.ErrGraphNil)

	s := fixture(t)
	assert.Equal(t, nodes(0), s.Ini())
	assert.Equal(t, nodes(3), s.Fin())

	n, err := s.NodeByName("fin_3")
	require.NoError(t, err)
	assert.Equal(t, core.NodeIndex(3), n)
	_, err = s.NodeByName("nope")
	require.ErrorIs(t, err, state.ErrNodeNotFound)
}

func TestCone(t *testing.T) {
	s := fixture(t)

	all, err := s.Cone("1", core.Outgoing, bfs.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, nodes(1, 2, 3, 4), all.SortedNodes())
	assert.Equal(t, edges(1, 2, 3, 5), all.SortedEdges())

	one, err := s.Cone("1", core.Outgoing, 1)
	require.NoError(t, err)
	assert.Equal(t, nodes(1, 2, 4), one.SortedNodes())
	assert.Equal(t, edges(1, 3), one.SortedEdges())

	back, err := s.Cone("2", core.Incoming, 1)
	require.NoError(t, err)
	assert.Equal(t, nodes(1, 2, 5), back.SortedNodes())
	assert.Equal(t, edges(1, 4), back.SortedEdges())

	sink, err := s.Cone("fin_3", core.Outgoing, bfs.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, nodes(3), sink.SortedNodes())
	assert.Empty(t, sink.Edges)

	ini, err := s.IniCone(bfs.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, nodes(0, 1, 2, 3, 4), ini.SortedNodes())
	fin, err := s.FinCone(bfs.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, nodes(0, 1, 2, 3, 5), fin.SortedNodes())

	_, err = s.Cone("x", core.Outgoing, 1)
	require.ErrorIs(t, err, state.ErrNodeNotFound)
}

func TestCycles(t *testing.T) {
	s := fixture(t)
	cycles, err := s.Cycles()
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, nodes(1, 2), cycles[0].Nodes())

	els, err := s.CycleElements(0)
	require.NoError(t, err)
	assert.Equal(t, nodes(1, 2), els.SortedNodes())
	assert.Equal(t, edges(1, 5), els.SortedEdges())

	_, err = s.CycleElements(1)
	require.ErrorIs(t, err, state.ErrCycleNotFound)
	require.ErrorIs(t, s.DeleteCycle(-1), state.ErrCycleNotFound)

	require.NoError(t, s.ColorCycle(0))
	require.NoError(t, s.DeleteCycle(0))
	assert.True(t, deleted(t, s, "2"))

	cycles, err = s.Cycles()
	require.NoError(t, err)
	assert.Empty(t, cycles, "deleting the cycle breaks it")
}

func TestDeleteCone_HistoryRoundTrip(t *testing.T) {
	s := fixture(t)

	require.NoError(t, s.DeleteCone("1", core.Outgoing, 1))
	assert.Equal(t, history.StepID(1), s.Step())
	for _, name := range []string{"1", "2", "4"} {
		assert.True(t, deleted(t, s, name), name)
	}
	assert.False(t, deleted(t, s, "fin_3"))

	ini, err := s.IniCone(bfs.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, nodes(0), ini.SortedNodes())

	// The root is gone now, so the same edit changes nothing.
	require.NoError(t, s.DeleteCone("1", core.Outgoing, 1))
	assert.Equal(t, history.StepID(1), s.Step())

	s.Restore()
	assert.Equal(t, history.StepID(2), s.Step())
	assert.False(t, deleted(t, s, "1"))

	require.NoError(t, s.Checkout(1))
	assert.True(t, deleted(t, s, "2"))
	require.NoError(t, s.Checkout(history.Root))
	assert.False(t, deleted(t, s, "2"))

	require.NoError(t, s.ColorCone("ini_0", core.Outgoing, 1))
	steps := s.History()
	require.Len(t, steps, 4)
	assert.Equal(t, history.StepID(3), s.Step())
	assert.Equal(t, 1, steps[3].Gen, "editing from the root branches")
	assert.Equal(t, "color cone ini_0 outgoing 1", steps[3].Label)

	require.ErrorIs(t, s.Checkout(99), history.ErrStepNotFound)
}

func TestColorAndReset(t *testing.T) {
	s := fixture(t)
	require.NoError(t, s.ColorCone("fin_3", core.Incoming, 1))

	g := s.Graph()
	n2, _ := g.Node(2)
	e2, _ := g.Edge(2)
	assert.True(t, n2.Selected)
	assert.True(t, e2.Selected)

	s.ResetColors()
	n2, _ = g.Node(2)
	assert.False(t, n2.Selected)
	assert.Equal(t, history.StepID(2), s.Step())

	s.ResetColors()
	assert.Equal(t, history.StepID(2), s.Step(), "nothing left to reset")
}

func TestDeleteNodeAndEdge(t *testing.T) {
	s := fixture(t)

	require.NoError(t, s.DeleteEdge("ini_0", "1"))
	e0, _ := s.Graph().Edge(0)
	assert.True(t, e0.Deleted)
	require.ErrorIs(t, s.DeleteEdge("ini_0", "1"), state.ErrEdgeNotFound)
	require.ErrorIs(t, s.DeleteEdge("ini_0", "fin_3"), state.ErrEdgeNotFound)
	require.ErrorIs(t, s.DeleteEdge("x", "1"), state.ErrNodeNotFound)
	require.ErrorIs(t, s.DeleteEdge("1", "x"), state.ErrNodeNotFound)

	require.NoError(t, s.DeleteNode("4"))
	assert.True(t, deleted(t, s, "4"))
	require.ErrorIs(t, s.DeleteNode("x"), state.ErrNodeNotFound)
}

func TestMatrix_FollowsTombstones(t *testing.T) {
	s := fixture(t)
	m1, err := s.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 6, m1.Size())

	m2, err := s.Matrix()
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	require.NoError(t, s.DeleteNode("5"))
	m3, err := s.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 5, m3.Size())

	require.NoError(t, s.ColorCone("1", core.Outgoing, 1))
	m4, err := s.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 5, m4.Size(), "colouring leaves the active graph alone")
}

func TestDiamondFilter(t *testing.T) {
	s := fixture(t)
	require.NoError(t, s.DeleteNode("2"))
	require.NoError(t, s.DeleteNode("4"))

	rn, re := s.DiamondFilter()
	assert.Equal(t, 2, rn)
	assert.Equal(t, 2, re)
	g := s.Graph()
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, nodes(0), s.Ini())
	assert.Equal(t, nodes(3), s.Fin())
	assert.True(t, deleted(t, s, "2"), "tombstones inside the diamond survive")
	_, err := s.NodeByName("4")
	require.ErrorIs(t, err, state.ErrNodeNotFound)

	rn, re = s.DiamondFilter()
	assert.Zero(t, rn)
	assert.Zero(t, re)
	assert.Equal(t, 4, g.NodeCount())

	// Undo both deletes; the change for the removed node is skipped.
	require.NoError(t, s.Checkout(history.Root))
	assert.False(t, deleted(t, s, "2"))
}

func TestDiamondFilter_NoFin(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("ini_a")
	b := g.AddNode("b")
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	s, err := state.FromGraph(g, quiet)
	require.NoError(t, err)

	rn, re := s.DiamondFilter()
	assert.Equal(t, 2, rn)
	assert.Equal(t, 1, re)
	assert.Empty(t, s.Ini())
	assert.Zero(t, s.Graph().NodeCount())
}

func TestNew(t *testing.T) {
	settings := builder.DefaultSettings()
	settings.TotalCnt, settings.IniCnt, settings.FinCnt = 80, 3, 4

	s, err := state.New(context.Background(), settings, quiet, state.WithBuilderOptions(builder.WithSeed(11)))
	require.NoError(t, err)
	assert.Equal(t, 80, s.Graph().NodeCount())
	assert.Len(t, s.Ini(), 3)
	assert.LessOrEqual(t, len(s.Fin()), 4)

	settings.DiamondFilter = true
	f, err := state.New(context.Background(), settings, quiet, state.WithBuilderOptions(builder.WithSeed(11)))
	require.NoError(t, err)
	fwd, err := f.IniCone(bfs.Unlimited)
	require.NoError(t, err)
	bwd, err := f.FinCone(bfs.Unlimited)
	require.NoError(t, err)
	assert.Len(t, fwd.Intersect(bwd).Nodes, f.Graph().NodeCount(), "every survivor lies on an ini→fin path")

	rn, _ := f.DiamondFilter()
	assert.Zero(t, rn)

	_, err = state.New(context.Background(), settings, quiet)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	settings.MaxOutDegree = 0
	_, err = state.New(context.Background(), settings, quiet, state.WithBuilderOptions(builder.WithSeed(1)))
	require.ErrorIs(t, err, builder.ErrInvalidSettings)
}

func TestSaveHistory(t *testing.T) {
	s := fixture(t)
	require.NoError(t, s.DeleteNode("4"))

	var buf bytes.Buffer
	require.NoError(t, s.SaveHistory(&buf))
	tree, err := history.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	step, err := tree.Step(1)
	require.NoError(t, err)
	assert.Equal(t, "delete node 4", step.Label)
	assert.Equal(t, 1, step.Diff.Len())
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { state.WithLogger(nil) })
}
