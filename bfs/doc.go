// Package bfs computes reachability cones over a core.Graph.
//
// What
//
//   - A cone is the set of nodes and edges reachable from a root within a
//     bounded number of hops, following either outgoing edges (forward cone,
//     "what does root feed") or incoming edges (backward cone, "what feeds root").
//   - Cone returns a core.Elements holding the visited nodes (root included)
//     and every active edge traversed from a node inside the step limit.
//   - Soft-deleted nodes and edges are invisible to the walk.
//
// Step limit
//
//	maxSteps >= 0 stops after that many hops (0 yields just the root).
//	maxSteps == Unlimited (-1) walks until the frontier is empty.
//	Anything below -1 is rejected with ErrOptionViolation.
//
// Cycles are safe: a node is enqueued at most once.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the queue and the result sets.
//
// Usage
//
//	cone, err := bfs.Cone(g, root, core.Outgoing, bfs.Unlimited)
//	cone, err := bfs.Cone(g, root, core.Incoming, 2,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(n core.NodeIndex, depth int) error { return nil }),
//	)
package bfs
