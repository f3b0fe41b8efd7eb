package core

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a NodeIndex outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an EdgeIndex outside the arena.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NodeIndex addresses a node inside one Graph.
type NodeIndex int

// EdgeIndex addresses an edge inside one Graph.
type EdgeIndex int

// Direction selects which edges of a node a traversal follows.
type Direction int

const (
	// Outgoing follows edges from→to.
	Outgoing Direction = iota
	// Incoming follows edges to→from.
	Incoming
)

// String returns "outgoing" or "incoming".
func (d Direction) String() string {
	if d == Incoming {
		return "incoming"
	}
	return "outgoing"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Incoming {
		return Outgoing
	}
	return Incoming
}

// Node is a named vertex.
type Node struct {
	// ID is stable across Retain and Clone.
	ID uuid.UUID

	// Name is the human-readable label, e.g. "ini_3" or "17".
	Name string

	// Deleted marks a soft-deleted node.
	Deleted bool

	// Selected marks a coloured node.
	Selected bool
}

// Edge is a weighted directed connection From→To.
type Edge struct {
	ID       uuid.UUID
	Weight   float64
	From     NodeIndex
	To       NodeIndex
	Deleted  bool
	Selected bool
}

// Endpoint returns the node reached by walking e in direction dir.
func (e Edge) Endpoint(dir Direction) NodeIndex {
	if dir == Incoming {
		return e.From
	}
	return e.To
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithIDFunc overrides the UUID generator (uuid.New by default).
// Panics on nil.
func WithIDFunc(fn func() uuid.UUID) GraphOption {
	if fn == nil {
		panic("core: WithIDFunc(nil)")
	}
	return func(g *Graph) { g.newID = fn }
}

// Graph is an arena of nodes and edges with per-node adjacency lists in
// both directions. The zero value is not usable; call NewGraph.
type Graph struct {
	nodes []Node
	edges []Edge

	// out[n] and in[n] hold edge indices in insertion order.
	out [][]EdgeIndex
	in  [][]EdgeIndex

	newID func() uuid.UUID
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{newID: uuid.New}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
