package reduce

import (
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// colorMerge builds the dependency conflict graph over clocks, colours
// it largest-degree-first, and merges each colour class into a single
// clock named after its lowest-index member. mapping is updated so every
// clock that was folded into a survivor now maps to that survivor's
// name.
func colorMerge(g *tagraph.Graph, clocks []*tclock.Clock, mapping map[string][]string) ([]*tclock.Clock, error) {
	if len(clocks) <= 1 {
		return clocks, nil
	}

	byName := make(map[string]*tclock.Clock, len(clocks))
	names := make([]string, 0, len(clocks))
	for _, c := range clocks {
		byName[c.Name] = c
		names = append(names, c.Name)
	}

	adj := make(map[string]map[string]bool, len(clocks))
	for _, n := range names {
		adj[n] = make(map[string]bool)
	}
	for i := 0; i < len(clocks); i++ {
		for j := i + 1; j < len(clocks); j++ {
			dep, err := Dependent(g, clocks[i], clocks[j])
			if err != nil {
				return nil, err
			}
			if dep {
				a, b := clocks[i].Name, clocks[j].Name
				adj[a][b] = true
				adj[b][a] = true
			}
		}
	}

	colors := greedyColorLargestFirst(names, adj)

	classes := make(map[int][]string)
	for _, n := range names {
		c := colors[n]
		classes[c] = append(classes[c], n)
	}

	var merged []*tclock.Clock
	for _, members := range classes {
		sortNamesByClockOrder(members)
		rep := members[0]
		out := tclock.New(rep, byName[rep].IsSpec)
		for _, m := range members {
			out.MergeFrom(byName[m])
		}
		merged = append(merged, out)

		if len(members) > 1 {
			rewriteMapping(mapping, members, rep)
		}
	}
	sortClocksByName(merged)
	return merged, nil
}

// rewriteMapping replaces every occurrence of a merged member's name in
// mapping's value sets with rep, deduplicating, so a query recorded
// against any pre-merge name resolves to the surviving representative.
func rewriteMapping(mapping map[string][]string, members []string, rep string) {
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	for orig, survivors := range mapping {
		changed := false
		seen := make(map[string]bool, len(survivors))
		next := make([]string, 0, len(survivors))
		for _, s := range survivors {
			if memberSet[s] {
				s = rep
				changed = true
			}
			if !seen[s] {
				seen[s] = true
				next = append(next, s)
			}
		}
		if changed {
			mapping[orig] = next
		}
	}
}
