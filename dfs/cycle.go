package dfs

import (
	"fmt"

	"github.com/katalvlaran/conelab/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	node  core.NodeIndex
	edges []core.EdgeIndex // active outgoing edges of node
	next  int              // index of the next edge to examine
}

// DetectCycles runs DFS from every root in order and returns one Cycle per
// back edge found, in discovery order. Soft-deleted roots are skipped.
// Returns ErrGraphNil or ErrRootNotFound for invalid input.
func DetectCycles(g *core.Graph, roots []core.NodeIndex) ([]Cycle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, r := range roots {
		if !g.HasNode(r) {
			return nil, fmt.Errorf("DetectCycles(root=%d): %w", r, ErrRootNotFound)
		}
	}

	color := make([]int, g.NodeCount())
	var cycles []Cycle
	for _, root := range roots {
		if n, _ := g.Node(root); n.Deleted || color[root] != White {
			continue
		}
		cycles = walk(g, root, color, cycles)
	}

	return cycles, nil
}

// walk explores everything reachable from root that is still White.
// path always holds the tree edges from root to the top of stack, so
// len(path) == len(stack)-1.
func walk(g *core.Graph, root core.NodeIndex, color []int, cycles []Cycle) []Cycle {
	color[root] = Gray
	stack := []frame{{node: root, edges: g.Adjacent(root, core.Outgoing)}}
	var path []Path

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			color[top.node] = Black
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				path = path[:len(stack)-1]
			}
			continue
		}

		ei := top.edges[top.next]
		top.next++
		e, _ := g.Edge(ei)
		step := Path{Start: top.node, Edge: ei, End: e.To}

		switch color[e.To] {
		case White:
			color[e.To] = Gray
			path = append(path, step)
			stack = append(stack, frame{node: e.To, edges: g.Adjacent(e.To, core.Outgoing)})
		case Gray:
			cycles = append(cycles, closeCycle(stack, path, step))
		}
	}

	return cycles
}

// closeCycle slices the tree edges starting at the ancestor the back edge
// points to and appends the back edge. For a self-loop the ancestor is the
// top of stack and the cycle is the back edge alone.
func closeCycle(stack []frame, path []Path, back Path) Cycle {
	at := len(stack) - 1
	for i := range stack {
		if stack[i].node == back.End {
			at = i
			break
		}
	}
	cycle := make(Cycle, 0, len(path)-at+1)
	cycle = append(cycle, path[at:]...)

	return append(cycle, back)
}
