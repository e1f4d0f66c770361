package tatemplate

import (
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// SyncDirection tags which half of a synchronisation pair a transition
// carries: none, receive ("?") or send ("!").
type SyncDirection int

const (
	SyncNone SyncDirection = iota
	SyncReceive
	SyncSend
)

// Sync is the synchronisation label attached to one transition.
type Sync struct {
	Direction SyncDirection
	Channel   string // bare channel name, no "?"/"!" suffix
}

// ResetKind tags an abstract "every transition entering/leaving this
// location" reset, resolved only once the template is finalized. The one
// exact-transition reset a clock always carries, the bootstrap
// LocationZero -> initial edge, is added by CreateClock itself.
type ResetKind int

const (
	ResetEntering ResetKind = iota
	ResetLeaving
)

// ResetSpec is one reset request passed to CreateClock.
type ResetSpec struct {
	Kind     ResetKind
	Location string
}

// EnteringReset requests a reset on every transition that enters loc, as
// of template finalize time.
func EnteringReset(loc string) ResetSpec {
	return ResetSpec{Kind: ResetEntering, Location: Normalize(loc)}
}

// LeavingReset requests a reset on every transition that leaves loc, as of
// template finalize time.
func LeavingReset(loc string) ResetSpec {
	return ResetSpec{Kind: ResetLeaving, Location: Normalize(loc)}
}

// GuardSpec is the optional guard argument to CreateClock: a single
// constraint on a single transition.
type GuardSpec struct {
	Transition tagraph.Transition
	Constraint string
}

// InvariantSpec is the optional invariant argument to CreateClock: one
// upper-bound constraint applied to every location in Locations.
type InvariantSpec struct {
	Locations  []string
	Constraint string
}

type pendingReset struct {
	clock *tclock.Clock
	spec  ResetSpec
}

// Template owns one timed-automaton template's locations, transitions,
// committed intermediates and clocks. See doc.go for the lifecycle.
type Template struct {
	Name string

	graph        *tagraph.Graph
	locations    []string // user-visible locations, normalized, in declared order
	locationSet  map[string]struct{}
	committedSet map[string]struct{}
	initial      string

	nextTransitionID int
	committedCount   int
	clockCount       int

	clocks  []*tclock.Clock
	pending []pendingReset

	syncs map[int]Sync // transition id -> sync label, absent entry = SyncNone

	channelOrder []string
	channelSet   map[string]struct{}

	finalized bool
	result    *Finalized
}
