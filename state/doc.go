// Package state is the graph engine: it owns one generated graph together
// with its ini/fin roles, answers cone and cycle queries, applies soft edits
// (delete, restore, colour) as undoable history steps, performs the
// structural diamond filter and renders the result as Graphviz DOT.
//
// Soft edits only toggle the Deleted and Selected flags of core.Graph
// elements; every query then works on the active part of the graph. The
// diamond filter is the only operation that removes elements for good.
//
// A State is not safe for concurrent use; callers own synchronisation.
package state
