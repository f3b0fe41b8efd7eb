package state

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/history"
)

// DeleteCone soft-deletes the cone of the named node.
func (s *State) DeleteCone(name string, dir core.Direction, steps int) error {
	cone, err := s.Cone(name, dir, steps)
	if err != nil {
		return fmt.Errorf("DeleteCone: %w", err)
	}
	s.mark(fmt.Sprintf("delete cone %s %s %d", name, dir, steps), cone, history.AttrDeleted, true)

	return nil
}

// ColorCone selects the cone of the named node.
func (s *State) ColorCone(name string, dir core.Direction, steps int) error {
	cone, err := s.Cone(name, dir, steps)
	if err != nil {
		return fmt.Errorf("ColorCone: %w", err)
	}
	s.mark(fmt.Sprintf("color cone %s %s %d", name, dir, steps), cone, history.AttrSelected, true)

	return nil
}

// DeleteCycle soft-deletes the nodes and edges of cycle i.
func (s *State) DeleteCycle(i int) error {
	els, err := s.CycleElements(i)
	if err != nil {
		return fmt.Errorf("DeleteCycle: %w", err)
	}
	s.mark(fmt.Sprintf("delete cycle %d", i), els, history.AttrDeleted, true)

	return nil
}

// ColorCycle selects the nodes and edges of cycle i.
func (s *State) ColorCycle(i int) error {
	els, err := s.CycleElements(i)
	if err != nil {
		return fmt.Errorf("ColorCycle: %w", err)
	}
	s.mark(fmt.Sprintf("color cycle %d", i), els, history.AttrSelected, true)

	return nil
}

// DeleteNode soft-deletes the named node. Its edges become inactive but
// keep their own flags.
func (s *State) DeleteNode(name string) error {
	n, err := s.NodeByName(name)
	if err != nil {
		return fmt.Errorf("DeleteNode: %w", err)
	}
	els := core.NewElements()
	els.AddNode(n)
	s.mark("delete node "+name, els, history.AttrDeleted, true)

	return nil
}

// DeleteEdge soft-deletes every active edge from → to.
func (s *State) DeleteEdge(from, to string) error {
	u, err := s.NodeByName(from)
	if err != nil {
		return fmt.Errorf("DeleteEdge: %w", err)
	}
	v, err := s.NodeByName(to)
	if err != nil {
		return fmt.Errorf("DeleteEdge: %w", err)
	}

	els := core.NewElements()
	for _, ei := range s.g.EdgesBetween(u, v) {
		if s.g.EdgeActive(ei) {
			els.AddEdge(ei)
		}
	}
	if len(els.Edges) == 0 {
		return fmt.Errorf("DeleteEdge(%q,%q): %w", from, to, ErrEdgeNotFound)
	}
	s.mark(fmt.Sprintf("delete edge %s->%s", from, to), els, history.AttrDeleted, true)

	return nil
}

// Restore clears every Deleted flag.
func (s *State) Restore() {
	s.mark("restore", s.flagged(history.AttrDeleted), history.AttrDeleted, false)
}

// ResetColors clears every Selected flag.
func (s *State) ResetColors() {
	s.mark("reset colors", s.flagged(history.AttrSelected), history.AttrSelected, false)
}

// flagged collects the elements whose attr flag is set.
func (s *State) flagged(attr history.Attr) core.Elements {
	els := core.NewElements()
	for i, n := range s.g.Nodes() {
		if flagOf(n.Deleted, n.Selected, attr) {
			els.AddNode(core.NodeIndex(i))
		}
	}
	for i, e := range s.g.Edges() {
		if flagOf(e.Deleted, e.Selected, attr) {
			els.AddEdge(core.EdgeIndex(i))
		}
	}

	return els
}

func flagOf(deleted, selected bool, attr history.Attr) bool {
	if attr == history.AttrDeleted {
		return deleted
	}
	return selected
}

// mark sets attr to on for every element of els and records the elements
// that actually changed as one history step. Nothing is recorded when no
// flag changes.
func (s *State) mark(label string, els core.Elements, attr history.Attr, on bool) {
	d := history.NewDiff()
	target := d.Minus
	if on {
		target = d.Plus
	}

	for _, n := range els.SortedNodes() {
		node, _ := s.g.Node(n)
		if flagOf(node.Deleted, node.Selected, attr) == on {
			continue
		}
		s.setNode(n, attr, on)
		target.Add(history.Change{ID: node.ID, Attr: attr})
	}
	for _, ei := range els.SortedEdges() {
		e, _ := s.g.Edge(ei)
		if flagOf(e.Deleted, e.Selected, attr) == on {
			continue
		}
		s.setEdge(ei, attr, on)
		target.Add(history.Change{ID: e.ID, Attr: attr})
	}

	if d.Empty() {
		s.log.Debug("state: no-op edit", slog.String("op", label))
		return
	}
	if attr == history.AttrDeleted {
		s.invalidate()
	}
	id := s.tree.AddStep(label, d)
	s.log.Info("state: edit",
		slog.String("op", label),
		slog.Int("step", int(id)),
		slog.Int("changes", d.Len()),
	)
}

func (s *State) setNode(n core.NodeIndex, attr history.Attr, on bool) {
	if attr == history.AttrDeleted {
		_ = s.g.SetNodeDeleted(n, on)
		return
	}
	_ = s.g.SetNodeSelected(n, on)
}

func (s *State) setEdge(ei core.EdgeIndex, attr history.Attr, on bool) {
	if attr == history.AttrDeleted {
		_ = s.g.SetEdgeDeleted(ei, on)
		return
	}
	_ = s.g.SetEdgeSelected(ei, on)
}
