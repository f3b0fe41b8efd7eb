package state

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/conelab/core"
)

// Metadata maps stable identities (UUIDs and names) to the current arena
// indices of a graph. It must be rebuilt after core.Graph.Retain.
type Metadata struct {
	nodeByID   map[uuid.UUID]core.NodeIndex
	edgeByID   map[uuid.UUID]core.EdgeIndex
	nodeByName map[string]core.NodeIndex
}

// NewMetadata indexes g. When names repeat, the lowest index wins.
func NewMetadata(g *core.Graph) *Metadata {
	m := &Metadata{
		nodeByID:   make(map[uuid.UUID]core.NodeIndex, g.NodeCount()),
		edgeByID:   make(map[uuid.UUID]core.EdgeIndex, g.EdgeCount()),
		nodeByName: make(map[string]core.NodeIndex, g.NodeCount()),
	}
	for i, n := range g.Nodes() {
		idx := core.NodeIndex(i)
		m.nodeByID[n.ID] = idx
		if _, dup := m.nodeByName[n.Name]; !dup {
			m.nodeByName[n.Name] = idx
		}
	}
	for i, e := range g.Edges() {
		m.edgeByID[e.ID] = core.EdgeIndex(i)
	}

	return m
}

// NodeByID resolves a node UUID.
func (m *Metadata) NodeByID(id uuid.UUID) (core.NodeIndex, bool) {
	n, ok := m.nodeByID[id]
	return n, ok
}

// EdgeByID resolves an edge UUID.
func (m *Metadata) EdgeByID(id uuid.UUID) (core.EdgeIndex, bool) {
	e, ok := m.edgeByID[id]
	return e, ok
}

// NodeByName resolves a node name.
func (m *Metadata) NodeByName(name string) (core.NodeIndex, bool) {
	n, ok := m.nodeByName[name]
	return n, ok
}
