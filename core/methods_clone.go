package core

// Clone returns a deep copy of g: nodes, edges, flags and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		nodes: make([]Node, len(g.nodes)),
		edges: make([]Edge, len(g.edges)),
		out:   make([][]EdgeIndex, len(g.out)),
		in:    make([][]EdgeIndex, len(g.in)),
		newID: g.newID,
	}
	copy(clone.nodes, g.nodes)
	copy(clone.edges, g.edges)
	for i := range g.out {
		clone.out[i] = append([]EdgeIndex(nil), g.out[i]...)
		clone.in[i] = append([]EdgeIndex(nil), g.in[i]...)
	}

	return clone
}

// Retain physically removes every node for which keep returns false, along
// with every edge touching such a node. Surviving elements keep their
// relative order, UUIDs and flags, but are re-indexed densely.
// It returns the number of nodes and edges removed.
// Complexity: O(V + E).
func (g *Graph) Retain(keep func(NodeIndex, Node) bool) (removedNodes, removedEdges int) {
	remap := make([]NodeIndex, len(g.nodes))
	nodes := make([]Node, 0, len(g.nodes))
	for i, n := range g.nodes {
		if !keep(NodeIndex(i), n) {
			remap[i] = -1
			continue
		}
		remap[i] = NodeIndex(len(nodes))
		nodes = append(nodes, n)
	}

	oldEdges := g.edges
	g.nodes = nodes
	g.edges = make([]Edge, 0, len(oldEdges))
	g.out = make([][]EdgeIndex, len(nodes))
	g.in = make([][]EdgeIndex, len(nodes))
	for _, e := range oldEdges {
		from, to := remap[e.From], remap[e.To]
		if from < 0 || to < 0 {
			removedEdges++
			continue
		}
		e.From, e.To = from, to
		g.addEdge(e)
	}

	return len(remap) - len(nodes), removedEdges
}
