package reduce

import (
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// ReachableWithoutReset reports whether some simple path from source to
// target exists that never crosses one of clock's own resets. Crossing a
// reset along the way would zero the clock before it reaches target, so
// such a path cannot witness that target still observes source's value.
//
// source == target is trivially reachable (the empty walk crosses nothing).
func ReachableWithoutReset(g *tagraph.Graph, clock *tclock.Clock, source, target string) (bool, error) {
	if source == target {
		return true, nil
	}
	paths, err := g.AllSimplePaths(source, target)
	if err != nil {
		return false, err
	}
	for _, p := range paths {
		if pathAvoidsResets(p, clock) {
			return true, nil
		}
	}
	return false, nil
}

// ComputeScope returns every simple path from source to target that
// avoids clock's own resets: the set of walks along which a value set at
// source can still be observed at target. Used by the dependency predicate to
// enumerate which locations a clock's reset-to-constraint reach passes
// through.
func ComputeScope(g *tagraph.Graph, clock *tclock.Clock, source, target string) ([][]string, error) {
	paths, err := g.AllSimplePaths(source, target)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for _, p := range paths {
		if pathAvoidsResets(p, clock) {
			out = append(out, p)
		}
	}
	return out, nil
}

// pathAvoidsResets reports whether no consecutive pair along p matches one
// of clock's resets by location.
func pathAvoidsResets(p []string, clock *tclock.Clock) bool {
	for i := 0; i+1 < len(p); i++ {
		if clock.ResetsBetween(p[i], p[i+1]) {
			return false
		}
	}
	return true
}

// Dependent reports whether a and b conflict: one's reset-to-constraint
// scope passes through a location that is the target of the other's
// reset. Merging two dependent clocks would let one clock's reset corrupt
// the other's view of its own constraints, so the predicate is checked in
// both directions.
func Dependent(g *tagraph.Graph, a, b *tclock.Clock) (bool, error) {
	conflict, err := scopeHitsResetTargets(g, a, b)
	if err != nil {
		return false, err
	}
	if conflict {
		return true, nil
	}
	return scopeHitsResetTargets(g, b, a)
}

// scopeHitsResetTargets reports whether any of from's reset-to-constraint
// scope paths pass through a location that is the target of one of
// against's resets. A scope path's first vertex is from's own reset
// target: a reset of against landing there fires in the same instant as
// from's, so only the tail of each path (second vertex onward) is
// examined.
func scopeHitsResetTargets(g *tagraph.Graph, from, against *tclock.Clock) (bool, error) {
	targets := make(map[string]struct{})
	for _, r := range against.Resets() {
		targets[r.To] = struct{}{}
	}
	if len(targets) == 0 {
		return false, nil
	}

	ctrlLocs := from.ControlLocations()
	for _, r := range from.Resets() {
		for _, ctrl := range ctrlLocs {
			paths, err := ComputeScope(g, from, r.To, ctrl)
			if err != nil {
				return false, err
			}
			for _, p := range paths {
				for _, loc := range p[1:] {
					if _, hit := targets[loc]; hit {
						return true, nil
					}
				}
			}
		}
	}
	return false, nil
}
