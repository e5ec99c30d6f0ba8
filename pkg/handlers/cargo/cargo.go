// Package cargo handles "cargo install" declarations. A crate is identified
// by the first token after the marker and compared on the whole declared
// command line, flags included.
package cargo

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Options configures the cargo handler
type Options struct {
	// Program is the cargo executable name, also used to build the marker
	Program string
	// ForceFlag is appended to a changed install command to reinstall in place
	ForceFlag string
}

// DefaultOptions returns the stock cargo options
func DefaultOptions() Options {
	return Options{
		Program:   "cargo",
		ForceFlag: "--force",
	}
}

// Handler implements handlers.Handler for cargo installs
type Handler struct {
	opts   Options
	marker string
}

// New creates a cargo handler
func New(opts Options) *Handler {
	return &Handler{
		opts:   opts,
		marker: opts.Program + " install ",
	}
}

// Domain returns types.DomainCargo
func (h *Handler) Domain() types.Domain {
	return types.DomainCargo
}

// Marker returns "<program> install "
func (h *Handler) Marker() string {
	return h.marker
}

// Matches reports whether line contains the marker anywhere
func (h *Handler) Matches(line string) bool {
	return strings.Contains(line, h.marker)
}

// Parse keeps the declared command verbatim and takes the crate name from
// the first space-delimited token after the marker.
func (h *Handler) Parse(line string) (types.Action, error) {
	commandStr, err := handlers.StripSuffix(line, h.marker)
	if err != nil {
		return types.Action{}, err
	}

	var crateName string
	if idx := strings.Index(commandStr, h.marker); idx >= 0 {
		crateName, _, _ = strings.Cut(commandStr[idx+len(h.marker):], " ")
	}
	if err := handlers.RequireNonEmpty(crateName, errors.ErrEmptyIdentity, "empty crate name"); err != nil {
		return types.Action{}, err
	}

	cmd, err := command.FromString(commandStr)
	if err != nil {
		return types.Action{}, err
	}

	return types.Action{
		Domain:   types.DomainCargo,
		Identity: crateName,
		Payload:  cmd.String(),
	}, nil
}

// DuplicateError reports a crate installed twice
func (h *Handler) DuplicateError(previous types.Action) error {
	return errors.Newf(errors.ErrDuplicateIdentity,
		"%q crate already installed in a previous line: the command was [%s]",
		previous.Identity, previous.Payload).
		WithDetail("previous", previous.Payload).
		WithDetail("previous_line", previous.Line)
}

// RemovalCommand returns "<program> uninstall <crate>"
func (h *Handler) RemovalCommand(current types.Action) command.Command {
	return command.MustNew(h.opts.Program, "uninstall", current.Identity)
}

// InstallCommand returns the declared command unchanged
func (h *Handler) InstallCommand(target types.Action) command.Command {
	return declared(target)
}

// UpdateCommand returns the declared command with the force flag appended
func (h *Handler) UpdateCommand(target types.Action) command.Command {
	return declared(target).WithArgs(h.opts.ForceFlag)
}

func declared(action types.Action) command.Command {
	cmd, err := command.FromString(action.Payload)
	if err != nil {
		panic(fmt.Sprintf("cargo action %q holds an invalid command: %v", action.Identity, err))
	}
	return cmd
}

var _ handlers.Handler = (*Handler)(nil)
