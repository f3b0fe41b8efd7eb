// Package conelab is a playground for random ini/fin graphs: build them,
// walk their cones, find their cycles, cut them down to the diamond between
// ini and fin, and step back and forth through every edit.
//
// What is inside?
//
//	bounds/  - closed int64 intervals, interval sets and request pages
//	core/    - directed multigraph with soft-deleted and selected flags
//	bfs/     - bounded cones (breadth-first, both directions)
//	dfs/     - elementary cycles reachable from a set of roots
//	matrix/  - adjacency matrix with cached powers and reachability
//	builder/ - validated settings and the random ini/fin generator
//	history/ - branching undo tree of attribute diffs
//	state/   - one graph, its roles, queries, edits, history and DOT output
//	cmd/conelab - command line front end
//
// Quick ASCII example:
//
//	ini_0 ──► 1 ──► fin_2
//	          ▲     │
//	          └─ 3 ◄┘
//
// The out-cone of ini_0 with one step is {ini_0, 1}. The diamond keeps
// every node reachable from ini_0 that also reaches fin_2, so 3 stays
// through the cycle 1→fin_2→3→1.
//
//	go install github.com/katalvlaran/conelab/cmd/conelab@latest
package conelab
