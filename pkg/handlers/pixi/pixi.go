// Package pixi handles "pixi global install recipe=version" declarations.
package pixi

import (
	"strings"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Options configures the pixi handler
type Options struct {
	// Program is the pixi executable name, also used to build the marker
	Program string
	// StrictPrefix requires the line to start with the marker. When false
	// the marker may appear anywhere and the payload is what follows it.
	StrictPrefix bool
	// UpdateVerb replaces "install" when a recipe changes version
	UpdateVerb string
}

// DefaultOptions returns the stock pixi options
func DefaultOptions() Options {
	return Options{
		Program:      "pixi",
		StrictPrefix: true,
		UpdateVerb:   "upgrade",
	}
}

// Handler implements handlers.Handler for pixi global installs
type Handler struct {
	opts   Options
	marker string
}

// New creates a pixi handler
func New(opts Options) *Handler {
	return &Handler{
		opts:   opts,
		marker: opts.Program + " global install ",
	}
}

// Domain returns types.DomainPixi
func (h *Handler) Domain() types.Domain {
	return types.DomainPixi
}

// Marker returns "<program> global install "
func (h *Handler) Marker() string {
	return h.marker
}

// Matches reports whether line contains the marker anywhere
func (h *Handler) Matches(line string) bool {
	return strings.Contains(line, h.marker)
}

// Parse splits the "recipe=version" token on its first '='.
func (h *Handler) Parse(line string) (types.Action, error) {
	commandStr, err := handlers.StripSuffix(line, h.marker)
	if err != nil {
		return types.Action{}, err
	}

	recipeAndVersion, err := h.payload(commandStr)
	if err != nil {
		return types.Action{}, err
	}
	if err := handlers.RequireNonEmpty(recipeAndVersion, errors.ErrEmptyPayload, "neither recipe nor version"); err != nil {
		return types.Action{}, err
	}

	recipe, _, found := strings.Cut(recipeAndVersion, "=")
	if !found {
		return types.Action{}, errors.New(errors.ErrMissingEquals, "'=' is missing")
	}
	if err := handlers.RequireNonEmpty(recipe, errors.ErrEmptyIdentity, "empty recipe"); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		Domain:   types.DomainPixi,
		Identity: recipe,
		Payload:  recipeAndVersion,
	}, nil
}

func (h *Handler) payload(commandStr string) (string, error) {
	if h.opts.StrictPrefix {
		rest, ok := strings.CutPrefix(commandStr, h.marker)
		if !ok {
			return "", errors.Newf(errors.ErrMissingPrefix,
				"left trimmed line with %q but which does not start with %q", h.marker, h.marker)
		}
		return rest, nil
	}
	idx := strings.Index(commandStr, h.marker)
	if idx < 0 {
		return "", nil
	}
	return commandStr[idx+len(h.marker):], nil
}

// DuplicateError reports a recipe installed twice
func (h *Handler) DuplicateError(previous types.Action) error {
	return errors.Newf(errors.ErrDuplicateIdentity,
		"%q recipe already installed in a previous line: it was %s",
		previous.Identity, previous.Payload).
		WithDetail("previous", previous.Payload).
		WithDetail("previous_line", previous.Line)
}

// RemovalCommand returns "<program> global uninstall <recipe>"
func (h *Handler) RemovalCommand(current types.Action) command.Command {
	return command.MustNew(h.opts.Program, "global", "uninstall", current.Identity)
}

// InstallCommand returns "<program> global install <recipe>=<version>"
func (h *Handler) InstallCommand(target types.Action) command.Command {
	return command.MustNew(h.opts.Program, "global", "install", target.Payload)
}

// UpdateCommand returns "<program> global <update verb> <recipe>=<version>"
func (h *Handler) UpdateCommand(target types.Action) command.Command {
	return command.MustNew(h.opts.Program, "global", h.opts.UpdateVerb, target.Payload)
}

var _ handlers.Handler = (*Handler)(nil)
