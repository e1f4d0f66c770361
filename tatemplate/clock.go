package tatemplate

import (
	"fmt"
	"strings"

	"github.com/tanta-nta/tanta/tclock"
)

// CreateClock allocates a fresh clock x_k and attaches at most one
// guard and/or one invariant plus the requested resets. The implicit
// LocationZero -> initial reset is always present, deduplicated against
// any caller-supplied reset that already covers it.
//
// guard and invariant are each optional (pass nil to omit). An invariant's
// constraint must already be upper-bound shaped ("<" or "<="); the
// front-end is responsible for having flipped the user's phrasing before
// it reaches the builder.
//
// Entering/leaving resets are resolved against the full transition graph
// only at Finalize, since transitions created after this call still
// count.
func (t *Template) CreateClock(guard *GuardSpec, invariant *InvariantSpec, resets []ResetSpec, isSpec bool) (string, error) {
	if t.finalized {
		return "", ErrAlreadyFinalized
	}

	name := fmt.Sprintf("x_%d", t.clockCount)
	t.clockCount++
	c := tclock.New(name, isSpec)

	if guard != nil {
		if _, ok := t.graph.Transition(guard.Transition.ID); !ok {
			return "", fmt.Errorf("tatemplate: CreateClock guard on transition %d: %w", guard.Transition.ID, ErrUnknownTransition)
		}
		c.AddGuard(guard.Transition, guard.Constraint)
	}
	if invariant != nil {
		cond := strings.TrimSpace(invariant.Constraint)
		if !strings.HasPrefix(cond, "<") {
			return "", fmt.Errorf("tatemplate: CreateClock invariant %q: %w", invariant.Constraint, ErrInvariantNotUpperBound)
		}
		for _, l := range invariant.Locations {
			l = Normalize(l)
			if _, ok := t.locationSet[l]; !ok && l != LocationZero {
				return "", fmt.Errorf("tatemplate: CreateClock invariant on %q: %w", l, ErrUnknownLocation)
			}
			c.AddInvariant(l, invariant.Constraint)
		}
	}

	bootstrap, _ := t.graph.Transition(bootstrapTransitionID)
	c.AddReset(bootstrap)
	for _, r := range resets {
		loc := Normalize(r.Location)
		if _, ok := t.locationSet[loc]; !ok {
			return "", fmt.Errorf("tatemplate: CreateClock reset on %q: %w", loc, ErrUnknownLocation)
		}
		t.pending = append(t.pending, pendingReset{clock: c, spec: ResetSpec{Kind: r.Kind, Location: loc}})
	}

	t.clocks = append(t.clocks, c)
	return name, nil
}

// resolveResets expands every pending entering/leaving reset against the
// template's complete transition graph. Run exactly once, immediately
// before reduction; transitions created after the requesting clock
// still count.
func (t *Template) resolveResets() {
	all := t.graph.Transitions()
	for _, p := range t.pending {
		for _, tr := range all {
			switch p.spec.Kind {
			case ResetEntering:
				if tr.To == p.spec.Location {
					p.clock.AddReset(tr)
				}
			case ResetLeaving:
				if tr.From == p.spec.Location {
					p.clock.AddReset(tr)
				}
			}
		}
	}
	t.pending = nil
}
