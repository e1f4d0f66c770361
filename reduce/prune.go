package reduce

import (
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// pruneResets drops, from every clock, any reset that no reachable
// constraint of that same clock could ever observe. A reset at
// transition r is necessary if its target can reach a guarded
// transition's source or an invariant location without first crossing
// another reset of the clock.
//
// Concretely: reset r (ending at location r.To) is kept iff there exists
// a control location ctrl of the clock such that ctrl is reachable from
// r.To without crossing any of the clock's resets (including r.To ==
// ctrl, the trivial case).
func pruneResets(g *tagraph.Graph, clocks []*tclock.Clock) error {
	for _, c := range clocks {
		ctrlLocs := c.ControlLocations()
		if len(ctrlLocs) == 0 {
			// No guard or invariant references this clock at all (a clock
			// created with resets only, for instance); nothing to prune
			// against, so every reset is kept.
			continue
		}
		var keepErr error
		c.FilterResets(func(t tagraph.Transition) bool {
			if keepErr != nil {
				return true // stop mutating further once an error is pending
			}
			for _, ctrl := range ctrlLocs {
				ok, err := ReachableWithoutReset(g, c, t.To, ctrl)
				if err != nil {
					keepErr = err
					return true
				}
				if ok {
					return true
				}
			}
			return false
		})
		if keepErr != nil {
			return keepErr
		}
	}
	return nil
}
