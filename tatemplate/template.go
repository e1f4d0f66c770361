package tatemplate

import (
	"fmt"

	"github.com/tanta-nta/tanta/tagraph"
)

// bootstrapTransitionID is reserved for the implicit LocationZero ->
// initial edge every template carries. User transitions are numbered
// starting at 1 so the bootstrap edge's id never collides.
const bootstrapTransitionID = 0

// Create builds a new Template named name, with the given locations and
// initial location. locations is normalized and de-duplicated; initial
// must (after normalization) be among them.
//
// Effect: a tagraph.Graph is created with LocationZero plus every declared
// location, and the implicit bootstrap edge LocationZero -> initial is
// added.
func Create(name string, locations []string, initial string) (*Template, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	locs := dedupeLocations(locations)
	if len(locs) == 0 {
		return nil, ErrNoLocations
	}
	for _, l := range locs {
		if l == "" {
			return nil, ErrEmptyName
		}
	}
	init := Normalize(initial)
	initialKnown := false
	for _, l := range locs {
		if l == init {
			initialKnown = true
			break
		}
	}
	if !initialKnown {
		return nil, fmt.Errorf("tatemplate: Create(%q) initial %q: %w", name, init, ErrInitialNotInLocations)
	}

	g := tagraph.NewGraph()
	if _, err := g.AddLocation(LocationZero); err != nil {
		return nil, err
	}
	for _, l := range locs {
		if _, err := g.AddLocation(l); err != nil {
			return nil, err
		}
	}
	if err := g.AddTransition(LocationZero, init, bootstrapTransitionID); err != nil {
		return nil, err
	}

	return &Template{
		Name:             Normalize(name),
		graph:            g,
		locations:        locs,
		locationSet:      toSet(locs),
		committedSet:     make(map[string]struct{}),
		initial:          init,
		nextTransitionID: bootstrapTransitionID + 1,
		syncs:            make(map[int]Sync),
		channelSet:       make(map[string]struct{}),
	}, nil
}

// UserLocations returns the template's user-visible locations (excluding
// LocationZero and any committed intermediate), in declared order.
func (t *Template) UserLocations() []string {
	out := make([]string, len(t.locations))
	copy(out, t.locations)
	return out
}

// Initial returns the template's initial location.
func (t *Template) Initial() string {
	return t.initial
}

// ChannelsUsed returns the distinct channel names this template has
// declared, in first-use order.
func (t *Template) ChannelsUsed() []string {
	out := make([]string, len(t.channelOrder))
	copy(out, t.channelOrder)
	return out
}

// IsCommitted reports whether loc was synthesized as a committed
// intermediate by CreateTransition.
func (t *Template) IsCommitted(loc string) bool {
	_, ok := t.committedSet[loc]
	return ok
}

func (t *Template) nextID() int {
	id := t.nextTransitionID
	t.nextTransitionID++
	return id
}

func (t *Template) declareChannel(name string) {
	if _, exists := t.channelSet[name]; exists {
		return
	}
	t.channelSet[name] = struct{}{}
	t.channelOrder = append(t.channelOrder, name)
}

func toSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
