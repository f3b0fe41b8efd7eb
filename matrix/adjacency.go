package matrix

import (
	"github.com/katalvlaran/conelab/core"
)

// Adjacency builds the square adjacency matrix of the active subgraph of g.
//
// Rows and columns follow the returned index slice: row i corresponds to
// node order[i]. Soft-deleted nodes are omitted entirely; soft-deleted edges
// and edges touching a deleted node contribute nothing. Entry (i,j) counts
// active parallel edges, so Power(n) counts walks rather than paths.
// Complexity: O(V + E).
func Adjacency(g *core.Graph) (*Dense, []core.NodeIndex, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	order := g.ActiveNodes()
	pos := make(map[core.NodeIndex]int, len(order))
	for i, n := range order {
		pos[n] = i
	}

	m, _ := NewDense(len(order), len(order))
	for i, n := range order {
		for _, ei := range g.Adjacent(n, core.Outgoing) {
			e, _ := g.Edge(ei)
			j := pos[e.To]
			m.data[i*m.c+j]++
		}
	}

	return m, order, nil
}
