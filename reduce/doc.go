// Package reduce implements the clock-reduction engine:
// the pipeline that runs once, at template finalize, to shrink a
// template's clock set while preserving every observable guard, invariant
// and reset.
//
// The pipeline has three stages, run in order against the non-spec
// clocks (spec clocks are set aside untouched and reattached at the end):
//
//  1. Reset pruning (prune.go) — drop resets no constraint can observe.
//  2. Splitting (split.go) — break a single-reset clock with several
//     constraints into one narrow shard per constraint, unless the shards
//     would conflict with each other.
//  3. Colour-merge (color.go, merge.go) — build a conflict graph over the
//     (possibly split) clocks via the dependency predicate (reachability.go)
//     and greedily colour it largest-degree-first, merging each colour
//     class into one clock.
//
// Reduce returns the finalized clock set and a mapping from every
// original clock name to the set of surviving clock names that represent
// it, so callers (package session) can rewrite queries recorded against
// original names.
package reduce
