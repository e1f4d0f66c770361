package session

import (
	"fmt"

	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tatemplate"
)

// Dispatch consumes one Instruction and invokes the matching tatemplate
// builder call(s). It is a single switch over Kind, never reflection
// over Instruction's fields.
//
// A construction error is returned to the caller and nothing about this
// instruction is retained; the session itself is left usable for the
// next instruction in the stream.
func (s *Session) Dispatch(in Instruction) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}

	switch in.Kind {
	case KindInitSingle:
		return s.dispatchInit(in.Template, []string{in.Location}, in.Location)
	case KindInitMulti:
		return s.dispatchInit(in.Template, in.Locations, in.Initial)
	case KindSimpleTransition:
		_, err := s.transition(in.Template, in.From, in.To, "", "")
		return err
	case KindSynchSendTransition:
		_, err := s.transition(in.Template, in.From, in.To, "", in.Channel)
		return err
	case KindSynchRecvCondTransition:
		_, err := s.transition(in.Template, in.From, in.To, in.Channel, in.SendChannel)
		return err
	case KindTimeCondTransition:
		return s.dispatchTimeCond(in, "", in.SendChannel)
	case KindSynchTimeCondTransition:
		return s.dispatchTimeCond(in, in.Channel, in.SendChannel)
	case KindInvariant:
		return s.dispatchInvariant(in)
	case KindQueryGeneral:
		if _, err := s.template(in.Template); err != nil {
			return err
		}
		return s.recordQuery(in.Template, "", fmt.Sprintf("%s %s", in.PathOp.encode(), in.StateFormula))
	case KindQueryDeadlock:
		return s.recordQuery("", "", fmt.Sprintf("%s not deadlock", in.PathOp.encode()))
	case KindQueryLeadsTo:
		if _, err := s.template(in.Template); err != nil {
			return err
		}
		return s.recordQuery(in.Template, "", fmt.Sprintf("%s --> %s", in.LHS, in.RHS))
	case KindQueryBoundedResponse:
		return s.dispatchBoundedResponse(in)
	case KindQueryReachability:
		return s.dispatchReachability(in)
	default:
		return fmt.Errorf("session: Dispatch kind %d: %w", in.Kind, ErrUnknownKind)
	}
}

func (s *Session) dispatchInit(name string, locations []string, initial string) error {
	key := tatemplate.Normalize(name)
	if _, exists := s.templates[key]; exists {
		return fmt.Errorf("session: init %q: %w", name, ErrDuplicateTemplate)
	}
	t, err := tatemplate.Create(name, locations, initial)
	if err != nil {
		return fmt.Errorf("session: init %q: %w", name, err)
	}
	s.addTemplate(key, t)
	return nil
}

func (s *Session) transition(templateName string, from, to []string, recv, send string) ([]tatemplate.Transition, error) {
	t, err := s.template(templateName)
	if err != nil {
		return nil, err
	}
	return t.CreateTransition(from, to, recv, send)
}

// dispatchTimeCond builds one transition per (from, to) pair and mints
// one clock per (condition, transition) pair. Every condition in
// TimeConds is applied as a guard over every transition this call
// creates; "entering"/"leaving" select where the clock resets, so each
// clock measures time since the named location was entered or left.
func (s *Session) dispatchTimeCond(in Instruction, recv, send string) error {
	trs, err := s.transition(in.Template, in.From, in.To, recv, send)
	if err != nil {
		return err
	}
	t, err := s.template(in.Template)
	if err != nil {
		return err
	}
	for _, tc := range in.TimeConds {
		resets := make([]tatemplate.ResetSpec, 0, 1)
		if tc.Entering {
			resets = append(resets, tatemplate.EnteringReset(tc.Location))
		} else {
			resets = append(resets, tatemplate.LeavingReset(tc.Location))
		}
		for _, tr := range trs {
			guard := &tatemplate.GuardSpec{
				Transition: tagraph.Transition{ID: tr.ID, From: tr.From, To: tr.To},
				Constraint: tc.Constraint(),
			}
			if _, err := t.CreateClock(guard, nil, resets, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// dispatchInvariant mints one clock per invariant condition, constrained
// in every listed location and reset on every transition entering one of
// them: "time spent in L" starts counting when L is entered.
func (s *Session) dispatchInvariant(in Instruction) error {
	t, err := s.template(in.Template)
	if err != nil {
		return err
	}
	resets := make([]tatemplate.ResetSpec, 0, len(in.Locations))
	for _, l := range in.Locations {
		resets = append(resets, tatemplate.EnteringReset(l))
	}
	for _, cond := range in.InvConds {
		inv := &tatemplate.InvariantSpec{Locations: in.Locations, Constraint: cond}
		if _, err := t.CreateClock(nil, inv, resets, false); err != nil {
			return err
		}
	}
	return nil
}

// dispatchBoundedResponse mints a spec clock reset on every transition
// entering in.Location and records the query "AG(not loc or clk <=
// bound)" parameterized by that clock's pre-reduction name, to be
// rewritten once the mapping is known.
func (s *Session) dispatchBoundedResponse(in Instruction) error {
	t, err := s.template(in.Template)
	if err != nil {
		return err
	}
	name, err := t.CreateClock(nil, nil, []tatemplate.ResetSpec{tatemplate.EnteringReset(in.Location)}, true)
	if err != nil {
		return err
	}
	formula := fmt.Sprintf("A[] not %s.%s or %%s <= %d", t.Name, tatemplate.Normalize(in.Location), in.Bound)
	return s.recordQuery(in.Template, name, formula)
}

// dispatchReachability records the query "EF template.loc" over an
// existing location. Unlike the other query kinds it references the
// template's structure, so both names are validated; it never mutates
// the graph to make itself satisfiable.
func (s *Session) dispatchReachability(in Instruction) error {
	t, err := s.template(in.Template)
	if err != nil {
		return err
	}
	loc := tatemplate.Normalize(in.Location)
	known := false
	for _, l := range t.UserLocations() {
		if l == loc {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("session: reachability query location %q: %w", in.Location, tatemplate.ErrUnknownLocation)
	}
	return s.recordQuery(in.Template, "", fmt.Sprintf("E<> %s.%s", t.Name, loc))
}

// recordQuery appends a query to the session's pending list. If clockName
// is non-empty, formula must contain exactly one "%s" verb, substituted at
// FinalizeAll time with each surviving representative of clockName.
func (s *Session) recordQuery(templateName, clockName, formula string) error {
	if templateName != "" {
		templateName = tatemplate.Normalize(templateName)
	}
	s.queries = append(s.queries, pendingQuery{template: templateName, clockName: clockName, formula: formula})
	return nil
}
