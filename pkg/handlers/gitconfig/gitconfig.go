// Package gitconfig handles "git config set --global <option> <value>"
// declarations. A value wrapped in single quotes is stored without them.
package gitconfig

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// Options configures the git config handler
type Options struct {
	// Program is the git executable name, also used to build the marker
	Program string
}

// DefaultOptions returns the stock git options
func DefaultOptions() Options {
	return Options{Program: "git"}
}

// Handler implements handlers.Handler for global git configuration
type Handler struct {
	opts   Options
	marker string
}

// New creates a git config handler
func New(opts Options) *Handler {
	return &Handler{
		opts:   opts,
		marker: opts.Program + " config set --global ",
	}
}

// Domain returns types.DomainGitConfig
func (h *Handler) Domain() types.Domain {
	return types.DomainGitConfig
}

// Marker returns "<program> config set --global "
func (h *Handler) Marker() string {
	return h.marker
}

// Matches reports whether line contains the marker anywhere
func (h *Handler) Matches(line string) bool {
	return strings.Contains(line, h.marker)
}

// Parse splits what follows the marker on the first whitespace into option
// and value.
func (h *Handler) Parse(line string) (types.Action, error) {
	commandStr, err := handlers.StripSuffix(line, h.marker)
	if err != nil {
		return types.Action{}, err
	}

	var optionAndValue string
	if idx := strings.Index(commandStr, h.marker); idx >= 0 {
		optionAndValue = commandStr[idx+len(h.marker):]
	}

	sep := strings.IndexFunc(optionAndValue, unicode.IsSpace)
	if sep < 0 {
		return types.Action{}, errors.Newf(errors.ErrEmptyPayload, "%q git global option without value", optionAndValue)
	}
	_, width := utf8.DecodeRuneInString(optionAndValue[sep:])
	option := optionAndValue[:sep]
	value := optionAndValue[sep+width:]

	if err := handlers.RequireNonEmpty(option, errors.ErrEmptyIdentity, "empty option"); err != nil {
		return types.Action{}, err
	}

	if rest, quoted := strings.CutPrefix(value, "'"); quoted {
		unquoted, closed := strings.CutSuffix(rest, "'")
		if !closed {
			return types.Action{}, errors.Newf(errors.ErrUnterminatedQuote, "missing ending apostrophe in %q", value)
		}
		value = unquoted
	}
	if err := handlers.RequireNonEmpty(value, errors.ErrEmptyPayload, "empty value"); err != nil {
		return types.Action{}, err
	}

	return types.Action{
		Domain:   types.DomainGitConfig,
		Identity: option,
		Payload:  value,
	}, nil
}

// DuplicateError reports an option set twice
func (h *Handler) DuplicateError(previous types.Action) error {
	return errors.Newf(errors.ErrDuplicateIdentity,
		"%q git global option already set in a previous line: the value was %q",
		previous.Identity, previous.Payload).
		WithDetail("previous", previous.Payload).
		WithDetail("previous_line", previous.Line)
}

// RemovalCommand returns "<program> config unset --global <option>"
func (h *Handler) RemovalCommand(current types.Action) command.Command {
	return command.MustNew(h.opts.Program, "config", "unset", "--global", current.Identity)
}

// InstallCommand returns "<program> config set --global <option> <value>"
func (h *Handler) InstallCommand(target types.Action) command.Command {
	return h.setCommand(target)
}

// UpdateCommand is the same set form as InstallCommand; git overwrites in place
func (h *Handler) UpdateCommand(target types.Action) command.Command {
	return h.setCommand(target)
}

func (h *Handler) setCommand(target types.Action) command.Command {
	return command.MustNew(h.opts.Program, "config", "set", "--global", target.Identity, target.Payload)
}

var _ handlers.Handler = (*Handler)(nil)
