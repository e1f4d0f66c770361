package tatemplate

import "fmt"

// CreateTransition creates transitions from every location in from to
// every location in to. An empty from or to means "every current
// user-visible location", excluding LocationZero and committed
// intermediates; both empty yields the full Cartesian product.
//
// recv and send are bare channel names (no "?"/"!" suffix); empty means
// absent. If both are non-empty, exactly one fresh committed location is
// inserted for this call and shared by every (source, target) pair it
// produces: the receive edge runs source -> committed, the send edge
// runs committed -> target. At most one of recv/send may be used
// directly on a non-committed edge.
//
// Returns every transition created, in creation order. A channel is
// declared (once, template-wide) the first time it is used here.
func (t *Template) CreateTransition(from, to []string, recv, send string) ([]Transition, error) {
	if t.finalized {
		return nil, ErrAlreadyFinalized
	}
	srcs, err := t.resolveLocations(from)
	if err != nil {
		return nil, err
	}
	dsts, err := t.resolveLocations(to)
	if err != nil {
		return nil, err
	}

	var created []Transition
	if recv != "" && send != "" {
		committed := t.createCommittedLocation()
		t.declareChannel(recv)
		t.declareChannel(send)
		for _, s := range srcs {
			for _, d := range dsts {
				id1 := t.nextID()
				if err := t.graph.AddTransition(s, committed, id1); err != nil {
					return nil, err
				}
				t.syncs[id1] = Sync{Direction: SyncReceive, Channel: recv}
				created = append(created, Transition{ID: id1, From: s, To: committed})

				id2 := t.nextID()
				if err := t.graph.AddTransition(committed, d, id2); err != nil {
					return nil, err
				}
				t.syncs[id2] = Sync{Direction: SyncSend, Channel: send}
				created = append(created, Transition{ID: id2, From: committed, To: d})
			}
		}
		return created, nil
	}

	var sync Sync
	switch {
	case recv != "":
		t.declareChannel(recv)
		sync = Sync{Direction: SyncReceive, Channel: recv}
	case send != "":
		t.declareChannel(send)
		sync = Sync{Direction: SyncSend, Channel: send}
	}

	for _, s := range srcs {
		for _, d := range dsts {
			id := t.nextID()
			if err := t.graph.AddTransition(s, d, id); err != nil {
				return nil, err
			}
			if sync.Direction != SyncNone {
				t.syncs[id] = sync
			}
			created = append(created, Transition{ID: id, From: s, To: d})
		}
	}
	return created, nil
}

// Transition is the builder-facing view of one created edge: its id and
// endpoints. For a committed-intermediate expansion, the receive half is
// the edge whose To is the committed location and the send half the edge
// whose From is; the struct itself carries no half marker.
type Transition struct {
	ID   int
	From string
	To   string
}

// createCommittedLocation allocates the next "C<n>" committed location and
// adds it to the underlying graph.
func (t *Template) createCommittedLocation() string {
	name := fmt.Sprintf("C%d", t.committedCount)
	t.committedCount++
	t.committedSet[name] = struct{}{}
	// Graph addition cannot fail: the name is freshly minted and non-empty.
	_, _ = t.graph.AddLocation(name)
	return name
}

// resolveLocations expands an empty list to every user-visible location,
// and otherwise normalizes and validates each given name.
func (t *Template) resolveLocations(names []string) ([]string, error) {
	if len(names) == 0 {
		return t.UserLocations(), nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Normalize(n)
		if _, ok := t.locationSet[n]; !ok {
			return nil, fmt.Errorf("tatemplate: CreateTransition %q: %w", n, ErrUnknownLocation)
		}
		out = append(out, n)
	}
	return out, nil
}
