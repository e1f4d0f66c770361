// Package tclock defines Clock, the per-clock record the rest of this
// module operates on: which transitions reset it, which transitions and
// locations constrain it (guards and invariants), and whether it is a
// "spec" clock introduced solely to express a query and therefore
// excluded from reduction.
//
// Clock is a pure data type: equality and identity are by Name. It
// knows how to accumulate guards/invariants/resets with the right dedup
// rules, but it performs no graph reasoning itself; that belongs to
// tatemplate (construction) and reduce (reduction).
package tclock
