package handlers

import (
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Set is the ordered list of handlers a state is parsed and planned with.
// Order is dispatch priority; lookups by domain serve the planner.
type Set struct {
	ordered  []Handler
	byDomain map[types.Domain]Handler
}

// NewSet creates a Set, keeping the given priority order
func NewSet(handlers ...Handler) (*Set, error) {
	s := &Set{
		ordered:  make([]Handler, 0, len(handlers)),
		byDomain: make(map[types.Domain]Handler, len(handlers)),
	}
	for _, h := range handlers {
		if err := s.add(h); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNewSet is like NewSet but panics on error.
// This is useful when the handler list is fixed at compile time
func MustNewSet(handlers ...Handler) *Set {
	s, err := NewSet(handlers...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) add(h Handler) error {
	if h == nil {
		return errors.New(errors.ErrInvalidInput, "handler cannot be nil")
	}
	if h.Domain() == "" {
		return errors.New(errors.ErrInvalidInput, "handler domain cannot be empty")
	}
	if _, exists := s.byDomain[h.Domain()]; exists {
		return errors.Newf(errors.ErrInvalidInput, "handler for domain '%s' is already registered", h.Domain())
	}
	s.ordered = append(s.ordered, h)
	s.byDomain[h.Domain()] = h
	return nil
}

// Match returns the first handler, in priority order, whose marker matches line
func (s *Set) Match(line string) (Handler, bool) {
	for _, h := range s.ordered {
		if h.Matches(line) {
			return h, true
		}
	}
	return nil, false
}

// Get returns the handler owning domain
func (s *Set) Get(domain types.Domain) (Handler, bool) {
	h, ok := s.byDomain[domain]
	return h, ok
}

// Domains returns the registered domains in priority order
func (s *Set) Domains() []types.Domain {
	domains := make([]types.Domain, len(s.ordered))
	for i, h := range s.ordered {
		domains[i] = h.Domain()
	}
	return domains
}

// Count returns the number of registered handlers
func (s *Set) Count() int {
	return len(s.ordered)
}
