package testutil

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
)

// AssertErrorCode checks that err carries code somewhere in its chain
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()

	if err == nil {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sExpected an error with code %s but got nil", msg, code)
		return
	}
	if !errors.IsErrorCode(err, code) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sError %q does not carry code %s", msg, err, code)
	}
}

// AssertRootCode checks the code of the innermost SyncError
func AssertRootCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()

	if got := errors.RootCode(err); got != code {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sRoot code mismatch. Expected: %s, Actual: %s (error: %v)", msg, code, got, err)
	}
}

// AssertContains checks if a string contains a substring
func AssertContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()

	if !strings.Contains(str, substr) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sString %q does not contain %q", msg, str, substr)
	}
}

// AssertCommands drains seq and compares each command's display string, in order
func AssertCommands(t *testing.T, expected []string, seq iter.Seq[command.Command], msgAndArgs ...interface{}) {
	t.Helper()

	actual := CommandStrings(slices.Collect(seq))
	if !slices.Equal(expected, actual) {
		msg := formatMessage(msgAndArgs...)
		t.Errorf("%sCommands mismatch\nExpected: %s\nActual:   %s",
			msg, strings.Join(quoteAll(expected), ", "), strings.Join(quoteAll(actual), ", "))
	}
}

// CommandStrings renders each command with String
func CommandStrings(cmds []command.Command) []string {
	out := make([]string, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.String()
	}
	return out
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("[%s]", v)
	}
	return out
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	if len(msgAndArgs) == 1 {
		return fmt.Sprint(msgAndArgs[0]) + "\n"
	}

	if format, ok := msgAndArgs[0].(string); ok && strings.Contains(format, "%") {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}

	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ") + "\n"
}
