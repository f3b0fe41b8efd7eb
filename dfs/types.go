package dfs

import (
	"errors"

	"github.com/katalvlaran/conelab/core"
)

// Node colours during DFS.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRootNotFound indicates a root index outside the graph.
	ErrRootNotFound = errors.New("dfs: root node not found")

	// ErrCycleDetected indicates that the active subgraph is not acyclic.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Path is one step of a walk: Start --Edge--> End.
type Path struct {
	Start core.NodeIndex
	Edge  core.EdgeIndex
	End   core.NodeIndex
}

// Cycle is a closed walk: the End of each Path is the Start of the next and
// the End of the last Path is the Start of the first.
type Cycle []Path

// Nodes returns the nodes of c in walk order, without repeating the first.
func (c Cycle) Nodes() []core.NodeIndex {
	out := make([]core.NodeIndex, len(c))
	for i, p := range c {
		out[i] = p.Start
	}

	return out
}

// Elements returns the nodes and edges of c as a set.
func (c Cycle) Elements() core.Elements {
	els := core.NewElements()
	for _, p := range c {
		els.AddNode(p.Start)
		els.AddNode(p.End)
		els.AddEdge(p.Edge)
	}

	return els
}
