package core

import "fmt"

// AddNode appends a node with a fresh UUID and returns its index.
// Complexity: O(1) amortised.
func (g *Graph) AddNode(name string) NodeIndex {
	return g.addNode(Node{ID: g.newID(), Name: name})
}

func (g *Graph) addNode(n Node) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return idx
}

// HasNode reports whether i addresses a node of g.
func (g *Graph) HasNode(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}

// Node returns a copy of node i.
func (g *Graph) Node(i NodeIndex) (Node, error) {
	if !g.HasNode(i) {
		return Node{}, fmt.Errorf("Node(%d): %w", i, ErrNodeNotFound)
	}

	return g.nodes[i], nil
}

// NodeCount returns the number of nodes, soft-deleted ones included.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns a copy of all nodes in index order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// ActiveNodes returns the indices of nodes that are not soft-deleted,
// in ascending order.
func (g *Graph) ActiveNodes() []NodeIndex {
	out := make([]NodeIndex, 0, len(g.nodes))
	for i := range g.nodes {
		if !g.nodes[i].Deleted {
			out = append(out, NodeIndex(i))
		}
	}

	return out
}

// Rename sets the name of node i.
func (g *Graph) Rename(i NodeIndex, name string) error {
	if !g.HasNode(i) {
		return fmt.Errorf("Rename(%d): %w", i, ErrNodeNotFound)
	}
	g.nodes[i].Name = name

	return nil
}

// SetNodeDeleted toggles the tombstone of node i.
func (g *Graph) SetNodeDeleted(i NodeIndex, deleted bool) error {
	if !g.HasNode(i) {
		return fmt.Errorf("SetNodeDeleted(%d): %w", i, ErrNodeNotFound)
	}
	g.nodes[i].Deleted = deleted

	return nil
}

// SetNodeSelected toggles the selection flag of node i.
func (g *Graph) SetNodeSelected(i NodeIndex, selected bool) error {
	if !g.HasNode(i) {
		return fmt.Errorf("SetNodeSelected(%d): %w", i, ErrNodeNotFound)
	}
	g.nodes[i].Selected = selected

	return nil
}
