// Package tagraph provides the multi-digraph primitive the rest of this
// module is built on: a directed graph over named locations whose edges
// (transitions) carry an integer id and may run in parallel.
//
// It exposes exactly what the clock-reduction engine needs and nothing
// more: add a location, add a transition, list neighbors, and answer
// the two reachability questions IsReachable and AllSimplePaths, the
// latter memoized per (source, target) pair since reduction re-asks the
// same questions for every guard/invariant/reset combination on a clock.
//
// A Graph is owned by exactly one template for exactly one build
// session; there is no internal locking. Mutating a Graph from
// more than one goroutine, or while a path query is in flight, is a
// programming error, not a supported use case.
package tagraph
