package tagraph

import (
	"fmt"
	"sort"
)

// AddLocation inserts a location by name. It is idempotent: adding the same
// name twice is a no-op and returns false the second time.
// Complexity: O(1).
func (g *Graph) AddLocation(name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyLocation
	}
	if _, exists := g.have[name]; exists {
		return false, nil
	}
	g.have[name] = struct{}{}
	g.order = append(g.order, name)
	return true, nil
}

// HasLocation reports whether name was added via AddLocation.
// Complexity: O(1).
func (g *Graph) HasLocation(name string) bool {
	_, exists := g.have[name]
	return exists
}

// Locations returns all location names in insertion order. The returned
// slice is a copy; mutating it does not affect the Graph.
// Complexity: O(V).
func (g *Graph) Locations() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// AddTransition adds a directed edge from -> to carrying the given id.
// Both endpoints must already exist. id must be unique within the
// Graph. Adding a transition invalidates the simple-path cache, since
// a new edge can create new paths between any pair of locations.
// Complexity: O(1) amortized, plus O(cache size) to invalidate.
func (g *Graph) AddTransition(from, to string, id int) error {
	if !g.HasLocation(from) {
		return fmt.Errorf("tagraph: AddTransition source %q: %w", from, ErrLocationNotFound)
	}
	if !g.HasLocation(to) {
		return fmt.Errorf("tagraph: AddTransition target %q: %w", to, ErrLocationNotFound)
	}
	if _, exists := g.ids[id]; exists {
		return fmt.Errorf("tagraph: AddTransition id %d: %w", id, ErrDuplicateTransitionID)
	}
	g.ids[id] = Transition{ID: id, From: from, To: to}
	g.out[from] = append(g.out[from], id)
	g.invalidateCache()
	return nil
}

// Transition looks up a transition by id.
// Complexity: O(1).
func (g *Graph) Transition(id int) (Transition, bool) {
	t, ok := g.ids[id]
	return t, ok
}

// Neighbors returns every transition with the given source, in the order
// they were added. An unknown location yields an empty (nil) slice, not an
// error: callers that enumerate locations and ask for neighbors of each
// should not need to special-case leaves.
// Complexity: O(deg(from)).
func (g *Graph) Neighbors(from string) []Transition {
	ids := g.out[from]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Transition, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.ids[id])
	}
	return out
}

// Transitions returns every transition in the graph, ordered by id.
// Complexity: O(E log E).
func (g *Graph) Transitions() []Transition {
	out := make([]Transition, 0, len(g.ids))
	for _, tr := range g.ids {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// invalidateCache drops all memoized AllSimplePaths results. Called by
// AddTransition; AddLocation does not call it, since a location with no
// transitions adds no path between locations already present.
func (g *Graph) invalidateCache() {
	if len(g.cache) > 0 {
		g.cache = make(map[pathKey][][]string)
	}
}
