package state

import (
	"fmt"

	"github.com/katalvlaran/conelab/bfs"
	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/dfs"
	"github.com/katalvlaran/conelab/matrix"
)

// NodeByName resolves a node name to its index.
func (s *State) NodeByName(name string) (core.NodeIndex, error) {
	n, ok := s.meta.NodeByName(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNodeNotFound)
	}
	return n, nil
}

// Cone returns the active nodes and edges reachable from the named node
// along dir within steps hops (bfs.Unlimited for no limit).
func (s *State) Cone(name string, dir core.Direction, steps int) (core.Elements, error) {
	root, err := s.NodeByName(name)
	if err != nil {
		return core.Elements{}, fmt.Errorf("Cone: %w", err)
	}
	cone, err := bfs.Cone(s.g, root, dir, steps)
	if err != nil {
		return core.Elements{}, fmt.Errorf("Cone(%q): %w", name, err)
	}

	return cone, nil
}

// IniCone returns the union of the forward cones of all ini nodes.
func (s *State) IniCone(steps int) (core.Elements, error) {
	return bfs.ConeFromMany(s.g, s.ini, core.Outgoing, steps)
}

// FinCone returns the union of the backward cones of all fin nodes.
func (s *State) FinCone(steps int) (core.Elements, error) {
	return bfs.ConeFromMany(s.g, s.fin, core.Incoming, steps)
}

// Cycles returns the cycles of the active graph found by walking from
// every ini node. The list is recomputed after any delete or restore, so an
// index is only meaningful against the latest call.
func (s *State) Cycles() ([]dfs.Cycle, error) {
	if !s.cyclesValid {
		cycles, err := dfs.DetectCycles(s.g, s.ini)
		if err != nil {
			return nil, fmt.Errorf("Cycles: %w", err)
		}
		s.cycles, s.cyclesValid = cycles, true
	}

	return s.cycles, nil
}

// CycleElements returns the nodes and edges of cycle i.
func (s *State) CycleElements(i int) (core.Elements, error) {
	cycles, err := s.Cycles()
	if err != nil {
		return core.Elements{}, err
	}
	if i < 0 || i >= len(cycles) {
		return core.Elements{}, fmt.Errorf("CycleElements(%d) of %d: %w", i, len(cycles), ErrCycleNotFound)
	}

	return cycles[i].Elements(), nil
}

// Matrix returns the adjacency cache of the active graph, rebuilding it
// after tombstone changes. Cached powers survive only while the active
// graph is unchanged.
func (s *State) Matrix() (*matrix.Cache, error) {
	if s.cacheValid {
		return s.cache, nil
	}

	var err error
	if s.cache == nil {
		s.cache, err = matrix.NewCache(s.g, s.cacheOpts...)
	} else {
		err = s.cache.Invalidate(s.g)
	}
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	s.cacheValid = true

	return s.cache, nil
}
