package matrix

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/dfs"
)

// DefaultCacheCapacity bounds each of the power and reach maps.
const DefaultCacheCapacity = 10

const (
	mapPower = "power"
	mapReach = "reach"
)

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCapacity overrides DefaultCacheCapacity. Values < 1 are treated as 1.
func WithCapacity(n int) CacheOption {
	return func(c *Cache) { c.capacity = n }
}

// WithContext sets the context used when recording cache metrics.
func WithContext(ctx context.Context) CacheOption {
	if ctx == nil {
		panic("matrix: WithContext(nil)")
	}
	return func(c *Cache) { c.ctx = ctx }
}

// Stats reports lookups against one of the cache maps.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Len       int
}

// Cache memoises powers and reach matrices of one adjacency matrix.
//
// Returned matrices are copies; callers may modify them freely.
// Not safe for concurrent use.
type Cache struct {
	ctx      context.Context
	capacity int

	adj     *Dense
	order   []core.NodeIndex
	longest int

	powers *lru[int, *Dense]
	reach  *lru[int, *Dense]
}

// NewCache snapshots the active subgraph of g and returns an empty cache
// over its adjacency matrix.
func NewCache(g *core.Graph, opts ...CacheOption) (*Cache, error) {
	c := &Cache{ctx: context.Background(), capacity: DefaultCacheCapacity}
	for _, opt := range opts {
		opt(c)
	}
	c.powers = newLRU[int, *Dense](c.capacity, func(int) { recordEviction(c.ctx, mapPower) })
	c.reach = newLRU[int, *Dense](c.capacity, func(int) { recordEviction(c.ctx, mapReach) })

	if err := c.Invalidate(g); err != nil {
		return nil, err
	}

	return c, nil
}

// Invalidate rebuilds the adjacency matrix from g and drops every cached
// power and reach matrix. Stats survive.
func (c *Cache) Invalidate(g *core.Graph) error {
	adj, order, err := Adjacency(g)
	if err != nil {
		return fmt.Errorf("Cache.Invalidate: %w", err)
	}

	longest, err := dfs.LongestPath(g)
	switch {
	case errors.Is(err, dfs.ErrCycleDetected):
		// With a cycle, every reachable pair is joined by a walk of at
		// most n-1 hops.
		longest = max(len(order)-1, 0)
	case err != nil:
		return fmt.Errorf("Cache.Invalidate: %w", err)
	}

	c.adj, c.order, c.longest = adj, order, longest
	c.powers.Purge()
	c.reach.Purge()

	return nil
}

// Size returns the dimension of the square adjacency matrix.
func (c *Cache) Size() int { return c.adj.r }

// Order returns the node index behind each row/column.
func (c *Cache) Order() []core.NodeIndex {
	out := make([]core.NodeIndex, len(c.order))
	copy(out, c.order)

	return out
}

// Adjacency returns a copy of the adjacency matrix (power one).
func (c *Cache) Adjacency() *Dense { return c.adj.Clone() }

// LongestPath returns the hop bound used by Reach(-1): the longest path of
// the active subgraph when it is acyclic, node count minus one otherwise.
func (c *Cache) LongestPath() int { return c.longest }

// Uni returns the identity matrix of the cache's size.
func (c *Cache) Uni() *Dense {
	m, _ := Identity(c.adj.r)

	return m
}

// Power returns the adjacency matrix multiplied by itself n times; entry
// (i,j) counts walks of exactly n hops. Power(0) is the identity.
//
// A miss starts from the highest cached lower exponent and multiplies by the
// adjacency matrix until it reaches n, then stores only A^n.
func (c *Cache) Power(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("Cache.Power(%d): %w", n, ErrNegativeExponent)
	}
	if n == 0 {
		return c.Uni(), nil
	}
	if m, ok := c.powers.Get(n); ok {
		recordLookup(c.ctx, mapPower, true)
		return m.Clone(), nil
	}
	recordLookup(c.ctx, mapPower, false)

	k, acc := 1, c.adj
	for j := n - 1; j > 1; j-- {
		if m, ok := c.powers.Peek(j); ok {
			k, acc = j, m
			break
		}
	}
	for ; k < n; k++ {
		next, err := Mul(acc, c.adj)
		if err != nil {
			return nil, fmt.Errorf("Cache.Power(%d): %w", n, err)
		}
		acc = next
	}

	out := acc.Clone()
	c.powers.Set(n, out)

	return out.Clone(), nil
}

// Reach returns I + A + … + A^steps with every nonzero entry clamped to 1:
// entry (i,j) is 1 when j is reachable from i in at most steps hops, i
// itself included. steps == -1 uses LongestPath().
//
// The frontier is clamped after every hop, so large step counts cannot
// overflow float64 walk counts.
func (c *Cache) Reach(steps int) (*Dense, error) {
	if steps < -1 {
		return nil, fmt.Errorf("Cache.Reach(%d): %w", steps, ErrInvalidSteps)
	}
	if steps == -1 {
		steps = c.longest
	}
	if m, ok := c.reach.Get(steps); ok {
		recordLookup(c.ctx, mapReach, true)
		return m.Clone(), nil
	}
	recordLookup(c.ctx, mapReach, false)

	acc := c.Uni()
	frontier := c.Uni()
	for k := 1; k <= steps; k++ {
		next, err := Mul(frontier, c.adj)
		if err != nil {
			return nil, fmt.Errorf("Cache.Reach(%d): %w", steps, err)
		}
		frontier = Clamp(next)
		if frontier.isZero() {
			break
		}
		acc, _ = Add(acc, frontier)
	}

	out := Clamp(acc)
	c.reach.Set(steps, out)

	return out.Clone(), nil
}

// ConeDistance returns the cone-distance matrix of Reach(steps).
func (c *Cache) ConeDistance(steps int) (*Dense, error) {
	r, err := c.Reach(steps)
	if err != nil {
		return nil, err
	}

	return ConeDistance(r)
}

// PowerStats returns counters for the power map.
func (c *Cache) PowerStats() Stats {
	return Stats{Hits: c.powers.hits, Misses: c.powers.misses, Evictions: c.powers.evictions, Len: c.powers.Len()}
}

// ReachStats returns counters for the reach map.
func (c *Cache) ReachStats() Stats {
	return Stats{Hits: c.reach.hits, Misses: c.reach.misses, Evictions: c.reach.evictions, Len: c.reach.Len()}
}

// CachedPowers lists cached exponents from most to least recently used.
func (c *Cache) CachedPowers() []int { return c.powers.Keys() }

// CachedReach lists cached step counts from most to least recently used.
func (c *Cache) CachedReach() []int { return c.reach.Keys() }

// ConeDistance computes D(i,j) = Σ_k |R(i,k) − R(j,k)| for every ordered
// pair of rows of reach. The result is square over the rows and symmetric
// with a zero diagonal.
// Complexity: O(r²·c).
func ConeDistance(reach *Dense) (*Dense, error) {
	if reach == nil {
		return nil, fmt.Errorf("ConeDistance: %w", ErrBadShape)
	}
	n, w := reach.r, reach.c
	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var d float64
			for k := 0; k < w; k++ {
				d += math.Abs(reach.data[i*w+k] - reach.data[j*w+k])
			}
			out.data[i*n+j] = d
			out.data[j*n+i] = d
		}
	}

	return out, nil
}
