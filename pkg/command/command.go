// Package command provides the Command value: an ordered, non-empty
// program-plus-arguments sequence produced by parsing and planning and
// consumed by the executor.
package command

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/syncinstall/pkg/errors"
)

// Command is an immutable program and its arguments.
// The first token is always a non-empty program name.
type Command struct {
	tokens []string
}

// New builds a Command from a program and its arguments.
func New(programAndArgs ...string) (Command, error) {
	if len(programAndArgs) == 0 {
		return Command{}, errors.New(errors.ErrMissingProgram, "missing program")
	}
	if programAndArgs[0] == "" {
		return Command{}, errors.New(errors.ErrEmptyProgram, "empty program")
	}
	tokens := make([]string, len(programAndArgs))
	copy(tokens, programAndArgs)
	return Command{tokens: tokens}, nil
}

// MustNew is like New but panics on error. Use it only with program names
// that were validated beforehand.
func MustNew(programAndArgs ...string) Command {
	cmd, err := New(programAndArgs...)
	if err != nil {
		panic(err)
	}
	return cmd
}

// FromString splits s on single spaces. No shell parsing is done: declared
// install lines are reproduced token for token.
func FromString(s string) (Command, error) {
	return New(strings.Split(s, " ")...)
}

// IsZero reports whether c was never built through New.
func (c Command) IsZero() bool {
	return len(c.tokens) == 0
}

// Program returns the program name.
func (c Command) Program() string {
	if c.IsZero() {
		return ""
	}
	return c.tokens[0]
}

// Args returns a copy of the arguments following the program.
func (c Command) Args() []string {
	if len(c.tokens) < 2 {
		return []string{}
	}
	args := make([]string, len(c.tokens)-1)
	copy(args, c.tokens[1:])
	return args
}

// Split returns the program and its arguments.
func (c Command) Split() (string, []string) {
	return c.Program(), c.Args()
}

// Tokens returns a copy of every token, program first.
func (c Command) Tokens() []string {
	tokens := make([]string, len(c.tokens))
	copy(tokens, c.tokens)
	return tokens
}

// WithArgs derives a new Command with args appended. c is left untouched.
func (c Command) WithArgs(args ...string) Command {
	tokens := make([]string, 0, len(c.tokens)+len(args))
	tokens = append(tokens, c.tokens...)
	tokens = append(tokens, args...)
	return Command{tokens: tokens}
}

// Equal compares token by token.
func (c Command) Equal(other Command) bool {
	if len(c.tokens) != len(other.tokens) {
		return false
	}
	for i := range c.tokens {
		if c.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

// String joins the tokens with single spaces, the form used in the
// "---> [...]" stream and in error messages.
func (c Command) String() string {
	return strings.Join(c.tokens, " ")
}

// ShellString joins the tokens quoting any token a POSIX shell would split
// or expand.
func (c Command) ShellString() string {
	quoted := make([]string, len(c.tokens))
	for i, token := range c.tokens {
		quoted[i] = shellQuote(token)
	}
	return strings.Join(quoted, " ")
}

// MarshalJSON encodes the command as its token array.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Tokens())
}

// UnmarshalJSON decodes a token array, enforcing the program invariant.
func (c *Command) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	cmd, err := New(tokens...)
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}

const shellSpecialChars = " \t\n\"'\\$`|&;<>()*?[]{}~#!"

func shellQuote(token string) string {
	if token == "" {
		return "''"
	}
	if !strings.ContainsAny(token, shellSpecialChars) {
		return token
	}
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}
