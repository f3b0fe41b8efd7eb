package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/conelab/core"
)

// queueItem pairs a node with its hop distance from the root.
type queueItem struct {
	node  core.NodeIndex
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph    *core.Graph
	dir      core.Direction
	maxSteps int
	opts     Options
	ctx      context.Context
	queue    []queueItem
	res      core.Elements
}

// Cone walks g from root along dir for at most maxSteps hops and returns the
// visited nodes and traversed edges. A soft-deleted root yields an empty set.
// Returns ErrGraphNil, ErrRootNotFound, ErrOptionViolation, a context error
// or a wrapped OnVisit error.
func Cone(g *core.Graph, root core.NodeIndex, dir core.Direction, maxSteps int, opts ...Option) (core.Elements, error) {
	if g == nil {
		return core.Elements{}, ErrGraphNil
	}
	if maxSteps < Unlimited {
		return core.Elements{}, fmt.Errorf("%w: maxSteps=%d", ErrOptionViolation, maxSteps)
	}
	if !g.HasNode(root) {
		return core.Elements{}, fmt.Errorf("Cone(%d): %w", root, ErrRootNotFound)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		graph:    g,
		dir:      dir,
		maxSteps: maxSteps,
		opts:     o,
		ctx:      o.Ctx,
		res:      core.NewElements(),
	}
	if n, _ := g.Node(root); n.Deleted && !o.IncludeDeleted {
		return w.res, nil
	}
	w.enqueue(root, 0)

	return w.res, w.loop()
}

// ConeFromMany returns the union of the cones of every root.
func ConeFromMany(g *core.Graph, roots []core.NodeIndex, dir core.Direction, maxSteps int, opts ...Option) (core.Elements, error) {
	acc := core.NewElements()
	for _, r := range roots {
		cone, err := Cone(g, r, dir, maxSteps, opts...)
		if err != nil {
			return core.Elements{}, err
		}
		acc = acc.Union(cone)
	}

	return acc, nil
}

func (w *walker) enqueue(n core.NodeIndex, depth int) {
	w.res.AddNode(n)
	w.queue = append(w.queue, queueItem{node: n, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		if w.maxSteps != Unlimited && item.depth >= w.maxSteps {
			continue
		}
		w.expand(item)
	}

	return nil
}

// expand records every edge of item in w.dir and enqueues unseen endpoints
// one hop further. Tombstoned edges are skipped unless IncludeDeleted.
func (w *walker) expand(item queueItem) {
	edges := w.graph.Adjacent(item.node, w.dir)
	if w.opts.IncludeDeleted {
		edges = w.graph.Incident(item.node, w.dir)
	}
	for _, ei := range edges {
		e, _ := w.graph.Edge(ei)
		w.res.AddEdge(ei)
		next := e.Endpoint(w.dir)
		if !w.res.HasNode(next) {
			w.enqueue(next, item.depth+1)
		}
	}
}
