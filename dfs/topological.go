package dfs

import (
	"fmt"

	"github.com/katalvlaran/conelab/core"
)

// TopologicalSort returns the active nodes of g ordered so that every active
// edge u→v has u before v. Ties are broken by ascending index, which makes
// the order deterministic. Self-loops count as cycles.
// Returns ErrGraphNil or ErrCycleDetected.
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph) ([]core.NodeIndex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	active := g.ActiveNodes()
	indeg := make([]int, g.NodeCount())
	for _, n := range active {
		indeg[n] = len(g.Adjacent(n, core.Incoming))
	}

	// FIFO frontier, seeded in ascending index order.
	queue := make([]core.NodeIndex, 0, len(active))
	for _, n := range active {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]core.NodeIndex, 0, len(active))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, ei := range g.Adjacent(n, core.Outgoing) {
			e, _ := g.Edge(ei)
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) != len(active) {
		return nil, fmt.Errorf("TopologicalSort: %d of %d nodes ordered: %w",
			len(order), len(active), ErrCycleDetected)
	}

	return order, nil
}

// LongestPath returns the number of edges on the longest path of the active
// subgraph. Returns ErrCycleDetected when no finite longest path exists.
// Complexity: O(V + E).
func LongestPath(g *core.Graph) (int, error) {
	order, err := TopologicalSort(g)
	if err != nil {
		return 0, err
	}

	dist := make([]int, g.NodeCount())
	best := 0
	for _, n := range order {
		for _, ei := range g.Adjacent(n, core.Outgoing) {
			e, _ := g.Edge(ei)
			if d := dist[n] + 1; d > dist[e.To] {
				dist[e.To] = d
				best = max(best, d)
			}
		}
	}

	return best, nil
}
