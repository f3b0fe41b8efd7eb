// Package core provides the arena-backed directed multigraph shared by every
// analysis package in conelab.
//
// Nodes and edges live in two slices and are addressed by stable integer
// indices (NodeIndex, EdgeIndex). Each element also carries a UUID that
// survives structural rewrites, plus two flags:
//
//   - Deleted  - soft delete (tombstone). The element stays in the arena and
//     is skipped by traversals (Adjacent) and views; Restore flips it back.
//   - Selected - colouring/selection, purely presentational.
//
// Only Retain removes elements physically; it compacts the arena, so indices
// change while UUIDs are preserved. Callers keeping index-based side tables
// must rebuild them after Retain.
//
// Parallel edges and self-loops are always allowed; the generator decides
// whether to avoid twins.
//
// Concurrency: Graph performs no locking. A Graph must not be mutated
// concurrently; callers own synchronisation.
//
// Complexity:
//
//	AddNode, AddEdge, Node, Edge  O(1) amortised
//	Adjacent                      O(deg)
//	HasEdge                       O(out-deg)
//	Retain, Clone                 O(V + E)
package core
