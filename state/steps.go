package state

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/conelab/history"
)

// Step returns the history step the graph currently reflects.
func (s *State) Step() history.StepID { return s.tree.Current() }

// History returns a snapshot of every recorded step.
func (s *State) History() []history.Step { return s.tree.Steps() }

// Checkout moves the graph to the flags recorded at step target by applying
// the diff through the lowest common ancestor. Changes naming elements
// removed by DiamondFilter are skipped.
func (s *State) Checkout(target history.StepID) error {
	d, err := s.tree.Checkout(target)
	if err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}

	applied, skipped := 0, 0
	for _, c := range d.Plus.Sorted() {
		if s.apply(c, true) {
			applied++
		} else {
			skipped++
		}
	}
	for _, c := range d.Minus.Sorted() {
		if s.apply(c, false) {
			applied++
		} else {
			skipped++
		}
	}
	s.invalidate()
	s.log.Info("state: checkout",
		slog.Int("step", int(target)),
		slog.Int("applied", applied),
		slog.Int("skipped", skipped),
	)

	return nil
}

func (s *State) apply(c history.Change, on bool) bool {
	if n, ok := s.meta.NodeByID(c.ID); ok {
		s.setNode(n, c.Attr, on)
		return true
	}
	if e, ok := s.meta.EdgeByID(c.ID); ok {
		s.setEdge(e, c.Attr, on)
		return true
	}
	return false
}

// SaveHistory writes the step tree as JSON.
func (s *State) SaveHistory(w io.Writer) error {
	return s.tree.Save(w)
}
