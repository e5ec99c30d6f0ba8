package testutil

import (
	"context"
	"slices"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingRunner(t *testing.T) {
	runner := NewRecordingRunner().FailOn("cargo uninstall b")

	require.NoError(t, runner.Run(context.Background(), command.MustNew("cargo", "uninstall", "a")))
	err := runner.Run(context.Background(), command.MustNew("cargo", "uninstall", "b"))

	AssertErrorCode(t, err, errors.ErrCommandExecute)
	assert.Equal(t, []string{"cargo uninstall a", "cargo uninstall b"}, runner.Ran())
}

func TestMemFS(t *testing.T) {
	fsys := MemFS(t, map[string]string{"/a/Dockerfile": "FROM scratch\n"})

	data, err := fsys.ReadFile("/a/Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, "FROM scratch\n", string(data))
}

func TestDefaultHandlers(t *testing.T) {
	assert.Equal(t,
		[]types.Domain{types.DomainCargo, types.DomainPixi, types.DomainGitConfig},
		DefaultHandlers().Domains())
}

func TestAssertCommands(t *testing.T) {
	cmds := []command.Command{command.MustNew("git", "config", "unset", "--global", "x")}
	AssertCommands(t, []string{"git config unset --global x"}, slices.Values(cmds))
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "", formatMessage())
	assert.Equal(t, "single\n", formatMessage("single"))
	assert.Equal(t, "line 3\n", formatMessage("line %d", 3))
	assert.Equal(t, "a b\n", formatMessage("a", "b"))
}
