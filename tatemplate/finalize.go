package tatemplate

import (
	"fmt"

	"github.com/tanta-nta/tanta/reduce"
	"github.com/tanta-nta/tanta/tclock"
)

// FinalTransition is one transition as it appears in a Finalized template:
// its endpoints plus whatever synchronisation label it carries. Guards and
// resets are not duplicated here; they live on the surviving Clocks and
// are looked up by Transition when package emit renders an edge.
type FinalTransition struct {
	ID   int
	From string
	To   string
	Sync Sync // Direction == SyncNone when the transition is unlabelled
}

// Finalized is the read-only result of Template.Finalize: everything
// package emit needs to render one template's declarations, locations,
// transitions and invariants, plus the clock-name mapping package session
// needs to rewrite queries recorded against pre-reduction clock names.
type Finalized struct {
	Name        string
	Locations   []string // LocationZero, then user-visible locations in declared order, then committed intermediates
	Committed   map[string]bool
	Initial     string
	Transitions []FinalTransition
	Clocks      []*tclock.Clock
	Mapping     map[string][]string
	Channels    []string
}

// Finalize resolves every pending entering/leaving reset against the
// template's complete transition graph, runs clock reduction, and freezes
// the template. Calling Finalize twice, or mutating the template
// afterwards, returns ErrAlreadyFinalized.
func (t *Template) Finalize() (*Finalized, error) {
	if t.finalized {
		return nil, ErrAlreadyFinalized
	}

	t.resolveResets()

	reduced, mapping, err := reduce.Reduce(t.graph, t.clocks, t.nextClockName)
	if err != nil {
		return nil, fmt.Errorf("tatemplate: Finalize %q: %w", t.Name, err)
	}

	allLocations := make([]string, 0, len(t.locations)+t.committedCount)
	allLocations = append(allLocations, LocationZero)
	allLocations = append(allLocations, t.locations...)
	for i := 0; i < t.committedCount; i++ {
		allLocations = append(allLocations, fmt.Sprintf("C%d", i))
	}

	committed := make(map[string]bool, len(t.committedSet))
	for c := range t.committedSet {
		committed[c] = true
	}

	transitions := make([]FinalTransition, 0, len(t.graph.Transitions()))
	for _, tr := range t.graph.Transitions() {
		transitions = append(transitions, FinalTransition{
			ID:   tr.ID,
			From: tr.From,
			To:   tr.To,
			Sync: t.syncs[tr.ID],
		})
	}

	result := &Finalized{
		Name:        t.Name,
		Locations:   allLocations,
		Committed:   committed,
		Initial:     t.initial,
		Transitions: transitions,
		Clocks:      reduced,
		Mapping:     mapping,
		Channels:    t.ChannelsUsed(),
	}

	t.finalized = true
	t.result = result
	return result, nil
}

// Result returns the Finalized produced by Finalize, or ErrNotFinalized
// if Finalize has not run yet.
func (t *Template) Result() (*Finalized, error) {
	if !t.finalized {
		return nil, ErrNotFinalized
	}
	return t.result, nil
}

// nextClockName is the allocator handed to reduce.Reduce so clocks minted
// by splitting share the same "x_k" namespace as clocks minted by
// CreateClock, with no risk of collision.
func (t *Template) nextClockName() string {
	name := fmt.Sprintf("x_%d", t.clockCount)
	t.clockCount++
	return name
}
