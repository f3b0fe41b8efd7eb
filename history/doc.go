// Package history records soft edits of a graph as a tree of steps.
//
// Every step stores the Diff that turns its parent's state into its own.
// A Diff is a pair of change sets: Plus lists (element, attribute) flags
// switched on, Minus lists flags switched off. Diffs compose with Squash and
// invert with Reverse, so moving between any two steps costs one walk up to
// their lowest common ancestor and one walk down:
//
//	ComputeDiff(target) = undo(current → LCA) ⨟ redo(LCA → target)
//
// Adding a step under a leaf continues the leaf's generation; adding a step
// under a node that already has children opens a new generation (a branch).
//
// Tree is not safe for concurrent use.
package history
