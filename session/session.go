package session

import (
	"fmt"

	"github.com/tanta-nta/tanta/tatemplate"
)

// pendingQuery is a query recorded before Finalize. If clockName is
// non-empty, formula contains exactly one "%s" verb; FinalizeAll
// substitutes every surviving representative the reduction mapping
// assigns to clockName, emitting one line per representative.
type pendingQuery struct {
	template  string
	clockName string
	formula   string
}

// Session owns every template created by one instruction stream and the
// queries recorded against them.
type Session struct {
	order     []string
	templates map[string]*tatemplate.Template
	queries   []pendingQuery

	finalized bool
	finals    []*tatemplate.Finalized
}

// New returns an empty Session.
func New() *Session {
	return &Session{templates: make(map[string]*tatemplate.Template)}
}

// template looks a template up by name, under the same case-alias policy
// tatemplate applies to locations: "traffic" and "Traffic" name the same
// template.
func (s *Session) template(name string) (*tatemplate.Template, error) {
	t, ok := s.templates[tatemplate.Normalize(name)]
	if !ok {
		return nil, fmt.Errorf("session: template %q: %w", name, ErrUnknownTemplate)
	}
	return t, nil
}

func (s *Session) addTemplate(name string, t *tatemplate.Template) {
	s.order = append(s.order, name)
	s.templates[name] = t
}
