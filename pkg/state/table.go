package state

import (
	"maps"
	"slices"

	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Table maps an identity to the action that declared it, for one domain.
type Table struct {
	domain  types.Domain
	entries map[string]types.Action
}

func newTable(domain types.Domain) *Table {
	return &Table{
		domain:  domain,
		entries: make(map[string]types.Action),
	}
}

// insert records action unless its identity is already present, in which
// case the earlier action is returned and the table is left unchanged.
func (t *Table) insert(action types.Action) (types.Action, bool) {
	if previous, exists := t.entries[action.Identity]; exists {
		return previous, true
	}
	t.entries[action.Identity] = action
	return types.Action{}, false
}

// Domain returns the domain this table indexes
func (t *Table) Domain() types.Domain {
	return t.domain
}

// Lookup returns the action declared for identity
func (t *Table) Lookup(identity string) (types.Action, bool) {
	if t == nil {
		return types.Action{}, false
	}
	action, ok := t.entries[identity]
	return action, ok
}

// Contains reports whether identity was declared
func (t *Table) Contains(identity string) bool {
	_, ok := t.Lookup(identity)
	return ok
}

// Len returns the number of identities
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Identities returns every identity in sorted order
func (t *Table) Identities() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}
