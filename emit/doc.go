// Package emit renders a tatemplate.Finalized template (or a whole set of
// them) into a textual NTA document: per-template locations (with a committed flag), the initial
// location, transitions carrying guards, synchronisation and reset
// assignments, plus global channel/clock declarations and a system
// composition line.
//
// Rendering is pure and deterministic: the same Finalized value always
// produces the same bytes, so re-emitting a finalized template yields
// identical output.
package emit
