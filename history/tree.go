package history

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// StepID indexes a step. The root is always Root.
type StepID int

// Root is the initial state.
const Root StepID = 0

const noParent StepID = -1

// Step is one node of the tree.
type Step struct {
	ID       StepID   `json:"id"`
	Parent   StepID   `json:"parent"`
	Gen      int      `json:"gen"`
	Label    string   `json:"label"`
	Diff     Diff     `json:"diff"` // parent → this step
	Children []StepID `json:"children,omitempty"`
}

// Tree is a rooted tree of steps with a movable cursor.
type Tree struct {
	steps   []Step
	current StepID
	maxGen  int
}

// NewTree returns a tree holding only the root step.
func NewTree() *Tree {
	return &Tree{
		steps: []Step{{ID: Root, Parent: noParent, Label: "root", Diff: NewDiff()}},
	}
}

// Current returns the cursor.
func (t *Tree) Current() StepID { return t.current }

// MaxGen returns the highest generation number in use.
func (t *Tree) MaxGen() int { return t.maxGen }

// Len returns the number of steps, root included.
func (t *Tree) Len() int { return len(t.steps) }

func (t *Tree) has(id StepID) bool { return id >= 0 && int(id) < len(t.steps) }

// Step returns a copy of step id.
func (t *Tree) Step(id StepID) (Step, error) {
	if !t.has(id) {
		return Step{}, fmt.Errorf("Step(%d): %w", id, ErrStepNotFound)
	}
	s := t.steps[id]
	s.Children = slices.Clone(s.Children)

	return s, nil
}

// Steps returns copies of all steps in creation order.
func (t *Tree) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i := range t.steps {
		out[i], _ = t.Step(StepID(i))
	}
	return out
}

// Children returns the direct children of id in creation order.
func (t *Tree) Children(id StepID) ([]StepID, error) {
	if !t.has(id) {
		return nil, fmt.Errorf("Children(%d): %w", id, ErrStepNotFound)
	}
	return slices.Clone(t.steps[id].Children), nil
}

// AddStep records d as a child of the current step and moves the cursor to
// it. A child of a leaf keeps the leaf's generation; a further child of an
// inner step opens generation MaxGen()+1.
func (t *Tree) AddStep(label string, d Diff) StepID {
	cur := &t.steps[t.current]
	gen := cur.Gen
	if len(cur.Children) > 0 {
		t.maxGen++
		gen = t.maxGen
	}

	id := StepID(len(t.steps))
	cur.Children = append(cur.Children, id)
	t.steps = append(t.steps, Step{ID: id, Parent: t.current, Gen: gen, Label: label, Diff: d})
	t.current = id

	return id
}

// ancestors lists id, its parent, … up to Root.
func (t *Tree) ancestors(id StepID) []StepID {
	var out []StepID
	for s := id; s != noParent; s = t.steps[s].Parent {
		out = append(out, s)
	}
	return out
}

// LCA returns the lowest common ancestor of a and b. A step is its own
// ancestor, so LCA(a, parent(a)) == parent(a).
func (t *Tree) LCA(a, b StepID) (StepID, error) {
	if !t.has(a) || !t.has(b) {
		return 0, fmt.Errorf("LCA(%d,%d): %w", a, b, ErrStepNotFound)
	}
	seen := make(map[StepID]struct{})
	for _, s := range t.ancestors(a) {
		seen[s] = struct{}{}
	}
	for _, s := range t.ancestors(b) {
		if _, ok := seen[s]; ok {
			return s, nil
		}
	}

	// Unreachable: Root is an ancestor of every step.
	return Root, nil
}

// ComputeDiff returns the diff that turns the state at the cursor into the
// state at target, without moving the cursor.
func (t *Tree) ComputeDiff(target StepID) (Diff, error) {
	lca, err := t.LCA(t.current, target)
	if err != nil {
		return Diff{}, fmt.Errorf("ComputeDiff: %w", err)
	}

	back := NewDiff()
	for s := t.current; s != lca; s = t.steps[s].Parent {
		back = back.Squash(t.steps[s].Diff.Reverse())
	}

	var down []StepID
	for s := target; s != lca; s = t.steps[s].Parent {
		down = append(down, s)
	}
	fwd := NewDiff()
	for i := len(down) - 1; i >= 0; i-- {
		fwd = fwd.Squash(t.steps[down[i]].Diff)
	}

	return back.Squash(fwd), nil
}

// Checkout computes the diff to target and moves the cursor there.
func (t *Tree) Checkout(target StepID) (Diff, error) {
	d, err := t.ComputeDiff(target)
	if err != nil {
		return Diff{}, fmt.Errorf("Checkout: %w", err)
	}
	t.current = target

	return d, nil
}

type treeJSON struct {
	Current StepID `json:"current"`
	MaxGen  int    `json:"max_gen"`
	Steps   []Step `json:"steps"`
}

// Save writes the tree as JSON.
func (t *Tree) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(treeJSON{Current: t.current, MaxGen: t.maxGen, Steps: t.steps}); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Load reads a tree written by Save and checks its structure.
func Load(r io.Reader) (*Tree, error) {
	var doc treeJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Load: %w: %v", ErrCorrupt, err)
	}

	t := &Tree{steps: doc.Steps, current: doc.Current, maxGen: doc.MaxGen}
	if err := t.check(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	for i := range t.steps {
		if t.steps[i].Diff.Plus == nil {
			t.steps[i].Diff.Plus = Set{}
		}
		if t.steps[i].Diff.Minus == nil {
			t.steps[i].Diff.Minus = Set{}
		}
	}

	return t, nil
}

// check verifies ids, parent links, generations and the cursor. Parents
// always precede their children, which rules out cycles. Children lists must
// match the parent links exactly, in creation order.
func (t *Tree) check() error {
	if len(t.steps) == 0 || t.steps[0].Parent != noParent {
		return fmt.Errorf("%w: missing root", ErrCorrupt)
	}
	if !t.has(t.current) {
		return fmt.Errorf("%w: cursor %d", ErrCorrupt, t.current)
	}
	for i, s := range t.steps {
		if s.ID != StepID(i) {
			return fmt.Errorf("%w: step %d has id %d", ErrCorrupt, i, s.ID)
		}
		if i > 0 && (s.Parent < 0 || s.Parent >= s.ID) {
			return fmt.Errorf("%w: step %d has parent %d", ErrCorrupt, i, s.Parent)
		}
		if s.Gen < 0 || s.Gen > t.maxGen {
			return fmt.Errorf("%w: step %d generation %d outside [0, %d]", ErrCorrupt, i, s.Gen, t.maxGen)
		}
	}

	children := make([][]StepID, len(t.steps))
	for _, s := range t.steps[1:] {
		children[s.Parent] = append(children[s.Parent], s.ID)
	}
	for i, s := range t.steps {
		if !slices.Equal(s.Children, children[i]) {
			return fmt.Errorf("%w: step %d lists children %v, parent links give %v",
				ErrCorrupt, i, s.Children, children[i])
		}
	}

	return nil
}
