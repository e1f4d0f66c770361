// Package session implements the NTA registry and instruction
// dispatcher: it owns every template for one build, drives each one's
// builder operations from a typed instruction stream, and produces the
// finalized NTA document plus the rewritten query list.
//
// A Session is not safe for concurrent use: a build session is owned by
// one caller, so no internal locking is attempted. A construction error
// discards only the instruction that caused it; the session keeps
// consuming the rest of the stream.
package session
