// Package tanta compiles a typed instruction stream describing real-time
// behaviour into a network of timed automata and a list of temporal
// queries.
//
// A Session (package session) is the entry point: feed it a sequence of
// session.Instruction values, one per "Traffic can be Red Green", "if
// the time spent after entering Red is more than 5 then ...", "deadlock
// never occurs" and so on, then call Session.FinalizeAll to get back
// the rendered NTA document and the rewritten query list.
//
// Package layout, leaves first:
//
//	tagraph/   — directed multigraph over location names; simple-path
//	             enumeration and reachability, memoized per (source, target).
//	tclock/    — the per-clock record: guards, invariants, resets, the
//	             spec-clock flag.
//	tatemplate/ — the incremental template builder: locations, transitions,
//	             committed-intermediate expansion, clock creation, Finalize.
//	reduce/    — the clock-reduction engine: reset pruning, splitting,
//	             conflict-graph colouring and merge, run once per Finalize.
//	emit/      — renders a finalized template set into the NTA text format.
//	session/   — the instruction dispatcher and NTA registry tying the rest
//	             together.
//
// The surface grammar that produces the instruction stream, any
// interactive shell, and invocation of an external model-checker are
// boundary concerns outside this module's scope.
package tanta
