package reduce

import (
	"fmt"

	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// Reduce runs the full clock-reduction pipeline against clocks and
// returns the surviving clock set plus a mapping from every original
// clock name to the surviving name(s) that represent it.
//
// Spec clocks (tclock.Clock.IsSpec) are set aside before any of the three
// stages run and reattached afterwards, unchanged: they exist to be read
// by a query, not to drive observable behaviour, so reduction must not
// touch them.
//
// allocateName is called once per shard produced by the splitting stage
// and must return a name never used by any clock in this template,
// matching the allocation the template used for clocks themselves
// (tatemplate hands in its own "x_k" counter-backed allocator).
func Reduce(g *tagraph.Graph, clocks []*tclock.Clock, allocateName func() string) ([]*tclock.Clock, map[string][]string, error) {
	mapping := make(map[string][]string, len(clocks))
	for _, c := range clocks {
		mapping[c.Name] = []string{c.Name}
	}

	var specClocks, nonSpec []*tclock.Clock
	for _, c := range clocks {
		if c.IsSpec {
			specClocks = append(specClocks, c)
		} else {
			nonSpec = append(nonSpec, c)
		}
	}

	if err := pruneResets(g, nonSpec); err != nil {
		return nil, nil, err
	}

	// Splitting is attempted per-clock regardless of how many other clocks
	// exist: a single clock carrying several independent constraints off
	// one reset is the canonical case splitting exists for. Colour-merge
	// is a no-op below two candidates, so there is no separate guard
	// needed for it either.
	shards, err := splitClocks(g, nonSpec, mapping, allocateName)
	if err != nil {
		return nil, nil, err
	}
	reduced, err := colorMerge(g, shards, mapping)
	if err != nil {
		return nil, nil, err
	}

	final := make([]*tclock.Clock, 0, len(reduced)+len(specClocks))
	final = append(final, reduced...)
	final = append(final, specClocks...)
	sortClocksByName(final)

	if err := validate(clocks, final, mapping); err != nil {
		return nil, nil, err
	}

	return final, mapping, nil
}

// validate checks the internal-invariant that mapping is total over the
// original clock set and surjective onto the survivors: every original
// name must map to at least one surviving name, and every surviving
// clock must be the target of at least one mapping entry.
func validate(original, final []*tclock.Clock, mapping map[string][]string) error {
	survivorSet := make(map[string]bool, len(final))
	for _, c := range final {
		survivorSet[c.Name] = true
	}
	hit := make(map[string]bool, len(final))

	for _, c := range original {
		targets, ok := mapping[c.Name]
		if !ok || len(targets) == 0 {
			return fmt.Errorf("reduce: clock %q has no surviving mapping: %w", c.Name, ErrInternalInvariant)
		}
		for _, t := range targets {
			if !survivorSet[t] {
				return fmt.Errorf("reduce: clock %q maps to non-surviving %q: %w", c.Name, t, ErrInternalInvariant)
			}
			hit[t] = true
		}
	}
	for _, c := range final {
		if !hit[c.Name] {
			return fmt.Errorf("reduce: surviving clock %q is not the target of any mapping: %w", c.Name, ErrInternalInvariant)
		}
	}
	return nil
}
