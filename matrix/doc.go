// Package matrix provides the dense linear algebra used to inspect graph
// reachability: adjacency matrices, their powers, boolean reach matrices and
// pairwise cone-distance matrices, with a bounded LRU cache in front of the
// expensive parts.
//
// What & Why:
//
//	Adjacency(g) turns the active part of a core.Graph into a square Dense
//	where entry (i,j) counts active edges i→j. Power(n) is A multiplied by
//	itself n times, so entry (i,j) counts walks of exactly n hops. Reach(s)
//	adds I + A + … + A^s and clamps every nonzero entry to 1: "j is reachable
//	from i in at most s hops". ConeDistance compares reach rows pairwise:
//	D(i,j) = Σ_k |R(i,k) − R(j,k)|, a symmetric structural distance between
//	the forward cones of i and j.
//
// Caching:
//
//	Cache memoises powers and reach matrices in two independent LRU maps,
//	each bounded to DefaultCacheCapacity entries. Eviction is strictly least
//	recently used, so results never depend on map iteration order.
//
// Complexity:
//
//	Mul is O(n³); Power(k) costs at most k multiplications, fewer when a
//	lower power is cached; Reach(s) costs s multiplications; ConeDistance is
//	O(n³).
package matrix
