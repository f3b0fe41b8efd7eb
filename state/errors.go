package state

import "errors"

var (
	// ErrNodeNotFound indicates an unknown node name.
	ErrNodeNotFound = errors.New("state: node not found")

	// ErrEdgeNotFound indicates that no active edge joins two named nodes.
	ErrEdgeNotFound = errors.New("state: edge not found")

	// ErrCycleNotFound indicates a cycle index outside Cycles().
	ErrCycleNotFound = errors.New("state: cycle not found")

	// ErrGraphNil indicates FromGraph(nil).
	ErrGraphNil = errors.New("state: graph is nil")
)
