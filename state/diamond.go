package state

import (
	"log/slog"

	"github.com/katalvlaran/conelab/bfs"
	"github.com/katalvlaran/conelab/core"
)

// DiamondFilter keeps only the nodes lying on some path from an ini node to
// a fin node and removes everything else for good. Paths are taken over the
// full structure, tombstones included, so soft-deleted elements on a
// diamond survive with their flags. Ini and fin are rescanned from names
// afterwards. The filter is not a history step, and applying it twice
// removes nothing the second time.
//
// It returns the number of removed nodes and edges.
func (s *State) DiamondFilter() (removedNodes, removedEdges int) {
	fwd, _ := bfs.ConeFromMany(s.g, s.ini, core.Outgoing, bfs.Unlimited, bfs.WithIncludeDeleted())
	bwd, _ := bfs.ConeFromMany(s.g, s.fin, core.Incoming, bfs.Unlimited, bfs.WithIncludeDeleted())
	keep := fwd.Intersect(bwd)

	removedNodes, removedEdges = s.g.Retain(func(n core.NodeIndex, _ core.Node) bool {
		return keep.HasNode(n)
	})
	s.reindex()
	s.log.Info("state: diamond filter",
		slog.Int("removed_nodes", removedNodes),
		slog.Int("removed_edges", removedEdges),
		slog.Int("nodes", s.g.NodeCount()),
	)

	return removedNodes, removedEdges
}
