package tclock

import "github.com/tanta-nta/tanta/tagraph"

// GuardEntry is one transition's accumulated guard conditions, in the
// order they were added. Multiple conditions on the same transition are
// joined with a logical AND at emission time.
type GuardEntry struct {
	Transition tagraph.Transition
	Conditions []string
}

// InvariantEntry is one location's accumulated invariant conditions, in
// the order they were added.
type InvariantEntry struct {
	Location   string
	Conditions []string
}

// Clock is the per-clock record the reduction pipeline operates on.
// Two Clocks are the same clock iff their Name matches; nothing else is
// compared.
type Clock struct {
	// Name is the clock's identifier, e.g. "x_3". Allocated by
	// tatemplate.Template.CreateClock; never reused within a template while
	// the clock is live.
	Name string

	// IsSpec marks a clock created to express a query. Spec clocks bypass
	// pruning, splitting and merging entirely.
	IsSpec bool

	guardOrder []tagraph.Transition
	guards     map[tagraph.Transition][]string

	invOrder   []string
	invariants map[string][]string

	resetOrder []tagraph.Transition
	resetSet   map[tagraph.Transition]struct{}
}

// New returns an empty Clock with the given name.
func New(name string, isSpec bool) *Clock {
	return &Clock{
		Name:       name,
		IsSpec:     isSpec,
		guards:     make(map[tagraph.Transition][]string),
		invariants: make(map[string][]string),
		resetSet:   make(map[tagraph.Transition]struct{}),
	}
}

// AddGuard appends cond to the constraint list for transition t, creating
// the entry if t has not been guarded before. Repeated calls with the same
// (t, cond) append again; only the *key* (the transition) is
// deduplicated.
func (c *Clock) AddGuard(t tagraph.Transition, cond string) {
	if _, exists := c.guards[t]; !exists {
		c.guardOrder = append(c.guardOrder, t)
	}
	c.guards[t] = append(c.guards[t], cond)
}

// AddInvariant appends cond to the constraint list for location l.
func (c *Clock) AddInvariant(l string, cond string) {
	if _, exists := c.invariants[l]; !exists {
		c.invOrder = append(c.invOrder, l)
	}
	c.invariants[l] = append(c.invariants[l], cond)
}

// AddReset records that t resets this clock. Unlike guards/invariants,
// resets are a true set: adding the same transition twice is a no-op.
// Reports whether t was newly added.
func (c *Clock) AddReset(t tagraph.Transition) bool {
	if _, exists := c.resetSet[t]; exists {
		return false
	}
	c.resetSet[t] = struct{}{}
	c.resetOrder = append(c.resetOrder, t)
	return true
}

// HasReset reports whether t is among this clock's resets.
func (c *Clock) HasReset(t tagraph.Transition) bool {
	_, exists := c.resetSet[t]
	return exists
}

// ResetsBetween reports whether any reset of this clock runs from -> to.
// Reduction's reachability-without-resets predicate operates on simple
// paths, which are location sequences, not transition-id sequences;
// whether a given step "passes a reset" is therefore a question about the
// (from, to) location pair, not about which parallel transition a walker
// happens to take.
func (c *Clock) ResetsBetween(from, to string) bool {
	for _, t := range c.resetOrder {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// Guards returns the clock's guard entries in the order their transitions
// were first guarded.
func (c *Clock) Guards() []GuardEntry {
	out := make([]GuardEntry, 0, len(c.guardOrder))
	for _, t := range c.guardOrder {
		out = append(out, GuardEntry{Transition: t, Conditions: append([]string(nil), c.guards[t]...)})
	}
	return out
}

// Invariants returns the clock's invariant entries in the order their
// locations were first constrained.
func (c *Clock) Invariants() []InvariantEntry {
	out := make([]InvariantEntry, 0, len(c.invOrder))
	for _, l := range c.invOrder {
		out = append(out, InvariantEntry{Location: l, Conditions: append([]string(nil), c.invariants[l]...)})
	}
	return out
}

// Resets returns the clock's reset transitions in the order they were
// first added.
func (c *Clock) Resets() []tagraph.Transition {
	return append([]tagraph.Transition(nil), c.resetOrder...)
}

// FilterResets keeps only the resets for which keep returns true,
// preserving relative order. Used by reduce's pruning stage to drop
// resets that no reachable constraint needs. A clock may
// end up with zero resets; it is still retained as a degenerate clock
// whose value is fixed at creation.
func (c *Clock) FilterResets(keep func(tagraph.Transition) bool) {
	var order []tagraph.Transition
	set := make(map[tagraph.Transition]struct{})
	for _, t := range c.resetOrder {
		if keep(t) {
			order = append(order, t)
			set[t] = struct{}{}
		}
	}
	c.resetOrder = order
	c.resetSet = set
}

// ControlLocations returns every location that constrains this clock: the
// source of each guarded transition, plus every invariant-bearing
// location. Used by reduce for reset pruning and the dependency
// predicate.
func (c *Clock) ControlLocations() []string {
	out := make([]string, 0, len(c.guardOrder)+len(c.invOrder))
	for _, t := range c.guardOrder {
		out = append(out, t.From)
	}
	out = append(out, c.invOrder...)
	return out
}

// MergeFrom folds other's guards, invariants and resets into c: guards
// and invariants are concatenated per key, resets are set-unioned. c's
// own Name and IsSpec are left untouched; callers choose the surviving
// name before merging.
func (c *Clock) MergeFrom(other *Clock) {
	for _, t := range other.guardOrder {
		if _, exists := c.guards[t]; !exists {
			c.guardOrder = append(c.guardOrder, t)
		}
		c.guards[t] = append(c.guards[t], other.guards[t]...)
	}
	for _, l := range other.invOrder {
		if _, exists := c.invariants[l]; !exists {
			c.invOrder = append(c.invOrder, l)
		}
		c.invariants[l] = append(c.invariants[l], other.invariants[l]...)
	}
	for _, t := range other.resetOrder {
		c.AddReset(t)
	}
}
