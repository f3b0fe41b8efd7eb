package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/conelab/core"
)

// Unlimited disables the step limit of Cone.
const Unlimited = -1

// Sentinel errors for cone computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrRootNotFound is returned when the root index is absent.
	ErrRootNotFound = errors.New("bfs: root node not found")

	// ErrOptionViolation is returned for a step limit below Unlimited.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures cone traversal via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a traversal.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// OnVisit is called for every dequeued node with its hop distance from
	// the root. Returning an error aborts the walk.
	OnVisit func(n core.NodeIndex, depth int) error

	// IncludeDeleted walks soft-deleted nodes and edges as well.
	IncludeDeleted bool
}

// DefaultOptions returns background context and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.NodeIndex, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("bfs: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit registers a callback run on every dequeued node.
// Panics on nil.
func WithOnVisit(fn func(n core.NodeIndex, depth int) error) Option {
	if fn == nil {
		panic("bfs: WithOnVisit(nil)")
	}
	return func(o *Options) { o.OnVisit = fn }
}

// WithIncludeDeleted makes the walk ignore tombstones and follow the full
// structure of the graph.
func WithIncludeDeleted() Option {
	return func(o *Options) { o.IncludeDeleted = true }
}
