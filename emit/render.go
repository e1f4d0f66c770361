package emit

import (
	"fmt"
	"strings"

	"github.com/tanta-nta/tanta/tatemplate"
)

// Document renders the full NTA text for every finalized template: global
// channel/clock declarations (deduplicated, first-use order across all
// templates, appended to one shared declaration block), each template's
// locations/invariants/transitions, and a closing system composition
// line.
func Document(finals []*tatemplate.Finalized) string {
	var b strings.Builder

	channels, clocks := collectDeclarations(finals)
	for _, c := range clocks {
		fmt.Fprintf(&b, "clock %s;\n", c)
	}
	for _, c := range channels {
		fmt.Fprintf(&b, "chan %s;\n", c)
	}
	if len(channels) > 0 || len(clocks) > 0 {
		b.WriteString("\n")
	}

	names := make([]string, 0, len(finals))
	for _, f := range finals {
		b.WriteString(RenderTemplate(f))
		b.WriteString("\n")
		names = append(names, f.Name)
	}

	b.WriteString(RenderSystem(names))
	return b.String()
}

// collectDeclarations gathers every channel and clock name across finals
// in first-appearance order, deduplicated by name. A name reused by a
// second template's independently-minted clock is declared once; clocks
// are template-scoped in everything but the declaration block.
func collectDeclarations(finals []*tatemplate.Finalized) (channels, clocks []string) {
	seenChan := make(map[string]bool)
	seenClock := make(map[string]bool)
	for _, f := range finals {
		for _, ch := range f.Channels {
			if !seenChan[ch] {
				seenChan[ch] = true
				channels = append(channels, ch)
			}
		}
		for _, c := range f.Clocks {
			if !seenClock[c.Name] {
				seenClock[c.Name] = true
				clocks = append(clocks, c.Name)
			}
		}
	}
	return channels, clocks
}

// RenderTemplate renders one finalized template's locations, invariants
// and transitions.
func RenderTemplate(f *tatemplate.Finalized) string {
	var b strings.Builder
	fmt.Fprintf(&b, "template %s\n", f.Name)

	for _, loc := range f.Locations {
		line := "  location " + loc
		if loc == f.Initial {
			line += " initial"
		}
		if f.Committed[loc] {
			line += " committed"
		}
		b.WriteString(line + "\n")
	}

	for _, line := range renderInvariants(f) {
		b.WriteString("  invariant " + line + "\n")
	}

	for _, tr := range f.Transitions {
		b.WriteString("  " + renderTransition(f, tr) + "\n")
	}

	b.WriteString("end\n")
	return b.String()
}

// RenderSystem renders the closing `system T1, T2, …;` composition line.
func RenderSystem(templateNames []string) string {
	return "system " + strings.Join(templateNames, ", ") + ";\n"
}

// renderInvariants returns one "Location: cond1 && cond2" line per
// location that carries at least one invariant, in first-declared order
// across the template's surviving clocks.
func renderInvariants(f *tatemplate.Finalized) []string {
	order := make([]string, 0)
	byLoc := make(map[string][]string)
	for _, c := range f.Clocks {
		for _, ie := range c.Invariants() {
			if _, seen := byLoc[ie.Location]; !seen {
				order = append(order, ie.Location)
			}
			for _, cond := range ie.Conditions {
				byLoc[ie.Location] = append(byLoc[ie.Location], c.Name+cond)
			}
		}
	}
	out := make([]string, 0, len(order))
	for _, loc := range order {
		out = append(out, loc+": "+strings.Join(byLoc[loc], " && "))
	}
	return out
}

// renderTransition renders one edge with its guard, synchronisation and
// reset annotations. Multiple guards on the same edge are AND-joined;
// multiple resets on the same edge are comma-joined.
func renderTransition(f *tatemplate.Finalized, tr tatemplate.FinalTransition) string {
	line := fmt.Sprintf("edge %s -> %s", tr.From, tr.To)

	var guardParts []string
	var resetNames []string
	for _, c := range f.Clocks {
		for _, ge := range c.Guards() {
			if ge.Transition.ID == tr.ID {
				for _, cond := range ge.Conditions {
					guardParts = append(guardParts, c.Name+cond)
				}
			}
		}
		for _, r := range c.Resets() {
			if r.ID == tr.ID {
				resetNames = append(resetNames, c.Name)
			}
		}
	}
	if len(guardParts) > 0 {
		line += " guard " + strings.Join(guardParts, " && ")
	}
	switch tr.Sync.Direction {
	case tatemplate.SyncReceive:
		line += " sync " + tr.Sync.Channel + "?"
	case tatemplate.SyncSend:
		line += " sync " + tr.Sync.Channel + "!"
	}
	if len(resetNames) > 0 {
		assigns := make([]string, len(resetNames))
		for i, n := range resetNames {
			assigns[i] = n + " = 0"
		}
		line += " reset " + strings.Join(assigns, ", ")
	}
	return line
}

