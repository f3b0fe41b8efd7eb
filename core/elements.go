package core

import (
	"maps"
	"slices"
)

// Elements is a set of nodes and edges, e.g. a cone or a cycle.
type Elements struct {
	Nodes map[NodeIndex]struct{}
	Edges map[EdgeIndex]struct{}
}

// NewElements returns an empty, ready-to-use set.
func NewElements() Elements {
	return Elements{
		Nodes: make(map[NodeIndex]struct{}),
		Edges: make(map[EdgeIndex]struct{}),
	}
}

// AddNode inserts n.
func (e Elements) AddNode(n NodeIndex) { e.Nodes[n] = struct{}{} }

// AddEdge inserts i.
func (e Elements) AddEdge(i EdgeIndex) { e.Edges[i] = struct{}{} }

// HasNode reports membership of n.
func (e Elements) HasNode(n NodeIndex) bool { _, ok := e.Nodes[n]; return ok }

// HasEdge reports membership of i.
func (e Elements) HasEdge(i EdgeIndex) bool { _, ok := e.Edges[i]; return ok }

// Len returns the total number of nodes and edges.
func (e Elements) Len() int { return len(e.Nodes) + len(e.Edges) }

// Union returns a new set holding the elements of e and o.
func (e Elements) Union(o Elements) Elements {
	out := NewElements()
	maps.Copy(out.Nodes, e.Nodes)
	maps.Copy(out.Nodes, o.Nodes)
	maps.Copy(out.Edges, e.Edges)
	maps.Copy(out.Edges, o.Edges)

	return out
}

// Intersect returns a new set holding the elements present in both e and o.
func (e Elements) Intersect(o Elements) Elements {
	out := NewElements()
	for n := range e.Nodes {
		if o.HasNode(n) {
			out.AddNode(n)
		}
	}
	for i := range e.Edges {
		if o.HasEdge(i) {
			out.AddEdge(i)
		}
	}

	return out
}

// SortedNodes returns the node indices in ascending order.
func (e Elements) SortedNodes() []NodeIndex {
	return slices.Sorted(maps.Keys(e.Nodes))
}

// SortedEdges returns the edge indices in ascending order.
func (e Elements) SortedEdges() []EdgeIndex {
	return slices.Sorted(maps.Keys(e.Edges))
}
