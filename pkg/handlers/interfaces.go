package handlers

import (
	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Handler is the interface every domain must implement.
type Handler interface {
	// Domain returns the domain this handler owns
	Domain() types.Domain

	// Marker returns the substring that routes a line to this handler
	Marker() string

	// Matches reports whether a left-trimmed, non-comment line belongs to this domain
	Matches(line string) bool

	// Parse extracts an action from a line accepted by Matches
	Parse(line string) (types.Action, error)

	// DuplicateError reports a second declaration of previous.Identity.
	// The message embeds the payload recorded first.
	DuplicateError(previous types.Action) error

	// RemovalCommand uninstalls or unsets an identity absent from the target
	RemovalCommand(current types.Action) command.Command

	// InstallCommand installs an identity absent from the current state
	InstallCommand(target types.Action) command.Command

	// UpdateCommand moves an identity present in both states to the target payload
	UpdateCommand(target types.Action) command.Command
}
