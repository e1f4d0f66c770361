package reduce

import (
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// splitClocks breaks each single-reset, multi-constraint clock into one
// shard per constraint, provided the shards would not conflict with each
// other. Clocks with zero or more than one reset are left
// untouched: a zero-reset clock has nothing to key a shard's scope from,
// and a multi-reset clock's constraints cannot be cleanly attributed to a
// single reset.
//
// mapping is updated in place: every original clock name that gets split
// now maps to the full set of shard names it produced.
func splitClocks(g *tagraph.Graph, clocks []*tclock.Clock, mapping map[string][]string, allocateName func() string) ([]*tclock.Clock, error) {
	out := make([]*tclock.Clock, 0, len(clocks))
	for _, c := range clocks {
		shards, err := trySplit(g, c, allocateName)
		if err != nil {
			return nil, err
		}
		if shards == nil {
			out = append(out, c)
			continue
		}
		names := make([]string, 0, len(shards))
		for _, s := range shards {
			names = append(names, s.Name)
		}
		mapping[c.Name] = names
		out = append(out, shards...)
	}
	return out, nil
}

// trySplit returns the shard set for c, or nil if c should not be split
// (wrong reset count, fewer than two constraints, or a conflicting pair of
// candidate shards).
func trySplit(g *tagraph.Graph, c *tclock.Clock, allocateName func() string) ([]*tclock.Clock, error) {
	resets := c.Resets()
	if len(resets) != 1 {
		return nil, nil
	}
	reset := resets[0]

	guards := c.Guards()
	invariants := c.Invariants()
	if len(guards)+len(invariants) < 2 {
		return nil, nil
	}

	// A shard is minted only for a constraint the reset can still observe:
	// one whose location is reachable from the reset's target without
	// crossing the reset again. Constraints that fail the check are dead
	// and vanish with the split.
	shards := make([]*tclock.Clock, 0, len(guards)+len(invariants))
	for _, ge := range guards {
		ok, err := ReachableWithoutReset(g, c, reset.To, ge.Transition.From)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		s := tclock.New(allocateName(), c.IsSpec)
		s.AddReset(reset)
		for _, cond := range ge.Conditions {
			s.AddGuard(ge.Transition, cond)
		}
		shards = append(shards, s)
	}
	for _, ie := range invariants {
		ok, err := ReachableWithoutReset(g, c, reset.To, ie.Location)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		s := tclock.New(allocateName(), c.IsSpec)
		s.AddReset(reset)
		for _, cond := range ie.Conditions {
			s.AddInvariant(ie.Location, cond)
		}
		shards = append(shards, s)
	}
	if len(shards) == 0 {
		return nil, nil
	}

	for i := 0; i < len(shards); i++ {
		for j := i + 1; j < len(shards); j++ {
			conflict, err := Dependent(g, shards[i], shards[j])
			if err != nil {
				return nil, err
			}
			if conflict {
				return nil, nil
			}
		}
	}
	return shards, nil
}
