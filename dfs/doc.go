// Package dfs implements depth-first analyses on a core.Graph: cycle
// detection from a set of roots and topological ordering of the active
// subgraph.
//
// What:
//
//   - DetectCycles: three-colour DFS (White, Gray, Black) started from each
//     root in turn. Colours are shared between roots, so a node finished by
//     an earlier root is not explored again. Every edge reaching a Gray node
//     (a back edge) closes a cycle: the tree edges from that ancestor down to
//     the current node, followed by the back edge itself.
//   - TopologicalSort: Kahn ordering of the active nodes; ErrCycleDetected if
//     the active subgraph is cyclic.
//   - LongestPath: number of hops on the longest path of an acyclic active
//     subgraph, computed over the topological order.
//
// Soft-deleted nodes and edges are invisible to every analysis.
//
// The traversal is iterative (explicit frame stack), so deep chains cannot
// overflow the goroutine stack.
//
// Complexity:
//
//   - DetectCycles:    O(V + E + C·L) time (C cycles, L average length)
//   - TopologicalSort: O(V + E)
//   - LongestPath:     O(V + E)
package dfs
