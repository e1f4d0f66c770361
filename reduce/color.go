package reduce

import "sort"

// greedyColorLargestFirst colours the graph described by adj (an
// undirected adjacency set, symmetric) using the largest-degree-first
// greedy heuristic: repeatedly pick the uncoloured node with the highest
// degree, assign it the smallest colour not used by an already-coloured
// neighbour, breaking ties by clock-index order for full determinism.
func greedyColorLargestFirst(nodes []string, adj map[string]map[string]bool) map[string]int {
	order := append([]string(nil), nodes...)
	sort.Slice(order, func(i, j int) bool {
		di, dj := len(adj[order[i]]), len(adj[order[j]])
		if di != dj {
			return di > dj
		}
		return clockLess(order[i], order[j])
	})

	colors := make(map[string]int, len(nodes))
	for _, n := range order {
		used := make(map[int]bool)
		for nbr := range adj[n] {
			if c, ok := colors[nbr]; ok {
				used[c] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[n] = c
	}
	return colors
}
