package state

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/logging"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/rs/zerolog"
)

// CommentMarker starts a line that is skipped even if it holds a marker.
const CommentMarker = "#"

// State is one parsed document. It is read-only once Parse returns.
type State struct {
	actions []types.Action
	tables  map[types.Domain]*Table
}

// Actions returns a copy of the action log in declaration order
func (s *State) Actions() []types.Action {
	out := make([]types.Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Len returns the number of recognized actions
func (s *State) Len() int {
	return len(s.actions)
}

// IsEmpty reports whether no action was recognized
func (s *State) IsEmpty() bool {
	return len(s.actions) == 0
}

// Table returns the lookup table for domain. A domain with no declaration
// yields an empty table.
func (s *State) Table(domain types.Domain) *Table {
	if t, ok := s.tables[domain]; ok {
		return t
	}
	return newTable(domain)
}

// Parser turns document text into a State using an ordered handler set.
type Parser struct {
	handlers *handlers.Set
	logger   zerolog.Logger
}

// NewParser creates a parser dispatching to set in its priority order
func NewParser(set *handlers.Set) *Parser {
	return &Parser{
		handlers: set,
		logger:   logging.GetLogger("state.parser"),
	}
}

// Parse scans content line by line. Comment lines and lines matching no
// handler are ignored. The first grammar or duplicate error aborts the parse
// and is wrapped with the 1-based line number and the untrimmed line.
func (p *Parser) Parse(content string) (*State, error) {
	s := &State{
		actions: []types.Action{},
		tables:  make(map[types.Domain]*Table, p.handlers.Count()),
	}
	for _, domain := range p.handlers.Domains() {
		s.tables[domain] = newTable(domain)
	}

	for index, line := range splitLines(content) {
		lineNumber := index + 1
		if err := p.parseLine(s, line, lineNumber); err != nil {
			return nil, errors.Wrapf(err, errors.ErrParseLine, "failed to parse line %d: %q", lineNumber, line).
				WithDetail("line", lineNumber).
				WithDetail("text", line)
		}
	}

	p.logger.Debug().
		Int("actions", len(s.actions)).
		Msg("State parsed")
	for _, domain := range p.handlers.Domains() {
		p.logger.Trace().
			Str("domain", domain.String()).
			Strs("identities", s.tables[domain].Identities()).
			Msg("Domain table")
	}

	return s, nil
}

func (p *Parser) parseLine(s *State, line string, lineNumber int) error {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(trimmed, CommentMarker) {
		return nil
	}

	h, ok := p.handlers.Match(trimmed)
	if !ok {
		return nil
	}

	action, err := h.Parse(trimmed)
	if err != nil {
		return err
	}
	action.Line = lineNumber

	if previous, duplicate := s.tables[h.Domain()].insert(action); duplicate {
		return h.DuplicateError(previous)
	}
	s.actions = append(s.actions, action)

	p.logger.Trace().
		Str("domain", action.Domain.String()).
		Str("identity", action.Identity).
		Int("line", lineNumber).
		Msg("Recognized action")

	return nil
}

// splitLines splits on "\n", dropping a trailing "\r" from each line and
// the empty remainder after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
