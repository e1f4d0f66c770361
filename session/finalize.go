package session

import (
	"fmt"
	"strings"

	"github.com/tanta-nta/tanta/emit"
	"github.com/tanta-nta/tanta/tatemplate"
)

// Result is the terminal output of FinalizeAll: the rendered NTA document
// plus the rewritten query list, one line per surviving clock
// representative.
type Result struct {
	Document string
	Queries  []string
}

// FinalizeAll finalizes every template in this session, in the order their
// init instruction registered them, then rewrites every pending query
// against each template's clock-name mapping and renders the NTA
// document. FinalizeAll is atomic per-template only: a template's own
// Finalize either completes every reduction step or reports an error; a
// later template's failure does not undo an earlier template's
// successful finalize, but FinalizeAll itself returns the error and
// produces no Result.
//
// Calling FinalizeAll twice returns ErrAlreadyFinalized.
func (s *Session) FinalizeAll() (*Result, error) {
	if s.finalized {
		return nil, ErrAlreadyFinalized
	}

	finals := make(map[string]*tatemplate.Finalized, len(s.order))
	ordered := make([]*tatemplate.Finalized, 0, len(s.order))
	for _, name := range s.order {
		f, err := s.templates[name].Finalize()
		if err != nil {
			return nil, err
		}
		finals[name] = f
		ordered = append(ordered, f)
	}

	s.finalized = true
	s.finals = ordered

	queries := make([]string, 0, len(s.queries))
	for _, q := range s.queries {
		if q.clockName == "" {
			queries = append(queries, q.formula)
			continue
		}
		f, ok := finals[q.template]
		if !ok {
			return nil, fmt.Errorf("session: query for template %q: %w", q.template, ErrUnknownTemplate)
		}
		reps, ok := f.Mapping[q.clockName]
		if !ok || len(reps) == 0 {
			return nil, fmt.Errorf("session: query clock %q: %w", q.clockName, ErrUnknownTemplate)
		}
		for _, rep := range reps {
			queries = append(queries, fmt.Sprintf(q.formula, rep))
		}
	}

	return &Result{
		Document: emit.Document(ordered),
		Queries:  queries,
	}, nil
}

// QueryText joins Result.Queries with newlines, one query per line.
func (r *Result) QueryText() string {
	return strings.Join(r.Queries, "\n")
}
