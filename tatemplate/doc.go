// Package tatemplate implements the incremental template builder: it
// owns one template's locations, transitions, committed intermediates
// and clocks, and exposes the create/add operations the dispatcher
// (package session) drives.
//
// A Template is mutable until Finalize is called once; Finalize resolves
// abstract entering/leaving resets against the then-complete transition
// graph, hands the clock set to package reduce, and becomes read-only.
// Finalize is atomic per template: it either completes every reduction
// step or reports an error and leaves the template unfinalized.
package tatemplate
