package core

import "fmt"

// AddEdge appends a directed edge from→to with the given weight.
// Self-loops and parallel edges are accepted.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(from, to NodeIndex, weight float64) (EdgeIndex, error) {
	if !g.HasNode(from) {
		return 0, fmt.Errorf("AddEdge(%d→%d): from: %w", from, to, ErrNodeNotFound)
	}
	if !g.HasNode(to) {
		return 0, fmt.Errorf("AddEdge(%d→%d): to: %w", from, to, ErrNodeNotFound)
	}

	return g.addEdge(Edge{ID: g.newID(), Weight: weight, From: from, To: to}), nil
}

func (g *Graph) addEdge(e Edge) EdgeIndex {
	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, e)
	g.out[e.From] = append(g.out[e.From], idx)
	g.in[e.To] = append(g.in[e.To], idx)

	return idx
}

// HasEdge reports whether at least one edge from→to exists, soft-deleted
// edges included.
// Complexity: O(out-degree(from)).
func (g *Graph) HasEdge(from, to NodeIndex) bool {
	if !g.HasNode(from) {
		return false
	}
	for _, ei := range g.out[from] {
		if g.edges[ei].To == to {
			return true
		}
	}

	return false
}

// EdgesBetween returns every edge from→to, soft-deleted ones included.
func (g *Graph) EdgesBetween(from, to NodeIndex) []EdgeIndex {
	if !g.HasNode(from) {
		return nil
	}
	var out []EdgeIndex
	for _, ei := range g.out[from] {
		if g.edges[ei].To == to {
			out = append(out, ei)
		}
	}

	return out
}

// HasEdgeIndex reports whether i addresses an edge of g.
func (g *Graph) HasEdgeIndex(i EdgeIndex) bool {
	return i >= 0 && int(i) < len(g.edges)
}

// Edge returns a copy of edge i.
func (g *Graph) Edge(i EdgeIndex) (Edge, error) {
	if !g.HasEdgeIndex(i) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", i, ErrEdgeNotFound)
	}

	return g.edges[i], nil
}

// EdgeCount returns the number of edges, soft-deleted ones included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of all edges in index order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeActive reports whether edge i and both of its endpoints are not
// soft-deleted.
func (g *Graph) EdgeActive(i EdgeIndex) bool {
	if !g.HasEdgeIndex(i) {
		return false
	}
	e := g.edges[i]

	return !e.Deleted && !g.nodes[e.From].Deleted && !g.nodes[e.To].Deleted
}

// Adjacent returns the active edges leaving n (Outgoing) or entering n
// (Incoming), in insertion order. A soft-deleted n has no active edges.
// Complexity: O(deg(n)).
func (g *Graph) Adjacent(n NodeIndex, dir Direction) []EdgeIndex {
	if !g.HasNode(n) || g.nodes[n].Deleted {
		return nil
	}
	list := g.out[n]
	if dir == Incoming {
		list = g.in[n]
	}
	out := make([]EdgeIndex, 0, len(list))
	for _, ei := range list {
		if g.EdgeActive(ei) {
			out = append(out, ei)
		}
	}

	return out
}

// Incident returns every edge leaving (Outgoing) or entering (Incoming) n,
// soft-deleted ones included, in insertion order.
func (g *Graph) Incident(n NodeIndex, dir Direction) []EdgeIndex {
	if !g.HasNode(n) {
		return nil
	}
	list := g.out[n]
	if dir == Incoming {
		list = g.in[n]
	}

	return append([]EdgeIndex(nil), list...)
}

// OutDegree returns the number of edges leaving n, soft-deleted ones included.
func (g *Graph) OutDegree(n NodeIndex) int {
	if !g.HasNode(n) {
		return 0
	}
	return len(g.out[n])
}

// SetEdgeDeleted toggles the tombstone of edge i.
func (g *Graph) SetEdgeDeleted(i EdgeIndex, deleted bool) error {
	if !g.HasEdgeIndex(i) {
		return fmt.Errorf("SetEdgeDeleted(%d): %w", i, ErrEdgeNotFound)
	}
	g.edges[i].Deleted = deleted

	return nil
}

// SetEdgeSelected toggles the selection flag of edge i.
func (g *Graph) SetEdgeSelected(i EdgeIndex, selected bool) error {
	if !g.HasEdgeIndex(i) {
		return fmt.Errorf("SetEdgeSelected(%d): %w", i, ErrEdgeNotFound)
	}
	g.edges[i].Selected = selected

	return nil
}

// MaxWeight returns the largest weight among active edges, or 0 when there
// are none.
func (g *Graph) MaxWeight() float64 {
	var m float64
	for i := range g.edges {
		if g.EdgeActive(EdgeIndex(i)) && g.edges[i].Weight > m {
			m = g.edges[i].Weight
		}
	}

	return m
}
