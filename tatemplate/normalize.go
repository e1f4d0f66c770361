package tatemplate

import "strings"

// LocationZero is the synthetic pre-initial location every template carries
// outside its user-visible graph. It is never returned by
// UserLocations and never accepted as an explicit endpoint from a caller.
const LocationZero = "LocationZero"

// Normalize folds names to TitleCase, so "RED",
// "red" and "Red" all denote the same location (or template). Channel
// names are not folded; they pass through CreateTransition as given.
// Complexity: O(len(s)).
func Normalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// dedupeLocations normalizes and de-duplicates a location list,
// preserving first-seen order.
func dedupeLocations(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Normalize(n)
		if _, exists := seen[n]; exists {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
