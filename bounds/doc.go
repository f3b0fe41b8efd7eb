// Package bounds implements closed integer interval arithmetic used to track
// which windows of paginated data have already been fetched.
//
// What & Why:
//
//	A Bounds is a closed interval [Lo, Hi] over int64 (typically millisecond
//	epoch timestamps). A Set is a sequence of Bounds that can be coalesced
//	(Union) and subtracted (Diff). Pages splits a Set into request-sized
//	chunks and LoadingState reports progress while those chunks are consumed.
//
// Typical flow:
//
//	requested := bounds.NewSet(bounds.Bounds{Lo: from, Hi: to})
//	missing, ok := requested.Diff(loaded)      // what still has to be fetched
//	pages, err := bounds.NewPages(missing, step, limit)
//	state := bounds.NewLoadingState(pages)
//	for page, ok := state.Next(); ok; page, ok = state.Next() { ... }
//	loaded = loaded.Union(missing)
//
// Conventions:
//
//   - Len() is Hi-Lo, so a single-point interval has length 0.
//   - Union merges adjacent intervals (Hi+1 == Lo); Intersect does not.
//   - Compare is a partial order: nested or equal intervals compare as 0.
//
// Complexity:
//
//	Bounds operations are O(1). Set.Union is O(n log n); Set.Diff is
//	O(n·m + k²) where k is the number of pieces left after subtraction.
//
// All values are immutable; every operation returns a new value.
package bounds
