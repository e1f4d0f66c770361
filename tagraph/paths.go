package tagraph

import "fmt"

// AllSimplePaths returns every simple path (no repeated location) from
// source to target, in unspecified but deterministic order.
//
// When source == target, the result is exactly the single-location path
// []string{source}: a location carrying both a reset and a constraint
// trivially observes its own reset, and any walk that returns to source
// repeats a vertex, so it is not a simple path.
//
// Results are memoized per (source, target) pair for the lifetime of the
// Graph or until the next AddTransition call, since
// the clock-reduction engine re-asks the same (source, target) questions
// once per guard/invariant/reset combination on every clock.
// Complexity: O(V!) worst case, as with any simple-path enumeration; in
// practice bounded by the template's branching factor.
func (g *Graph) AllSimplePaths(source, target string) ([][]string, error) {
	if !g.HasLocation(source) {
		return nil, fmt.Errorf("tagraph: AllSimplePaths source %q: %w", source, ErrLocationNotFound)
	}
	if !g.HasLocation(target) {
		return nil, fmt.Errorf("tagraph: AllSimplePaths target %q: %w", target, ErrLocationNotFound)
	}

	key := pathKey{from: source, to: target}
	if cached, ok := g.cache[key]; ok {
		return clonePaths(cached), nil
	}

	if source == target {
		results := [][]string{{source}}
		g.cache[key] = results
		return clonePaths(results), nil
	}

	var results [][]string
	visited := map[string]bool{source: true}
	path := []string{source}
	var walk func(cur string)
	walk = func(cur string) {
		seen := make(map[string]bool) // skip duplicate parallel transitions to the same location
		for _, tr := range g.Neighbors(cur) {
			if seen[tr.To] {
				continue
			}
			seen[tr.To] = true

			if tr.To == target {
				full := make([]string, len(path)+1)
				copy(full, path)
				full[len(path)] = tr.To
				results = append(results, full)
				continue
			}
			if visited[tr.To] {
				continue
			}
			visited[tr.To] = true
			path = append(path, tr.To)
			walk(tr.To)
			path = path[:len(path)-1]
			visited[tr.To] = false
		}
	}
	walk(source)

	g.cache[key] = results
	return clonePaths(results), nil
}

// IsReachable reports whether at least one simple path exists from source
// to target (including the trivial source == target case).
// Complexity: same as AllSimplePaths.
func (g *Graph) IsReachable(source, target string) (bool, error) {
	paths, err := g.AllSimplePaths(source, target)
	if err != nil {
		return false, err
	}
	return len(paths) > 0, nil
}

// clonePaths deep-copies a [][]string so callers can't mutate the cache
// through the slice they were handed.
func clonePaths(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, p := range in {
		cp := make([]string, len(p))
		copy(cp, p)
		out[i] = cp
	}
	return out
}
