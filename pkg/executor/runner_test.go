package executor

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireProgram(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestProcessRunner_Success(t *testing.T) {
	requireProgram(t, "echo")

	var stdout bytes.Buffer
	runner := &ProcessRunner{Stdout: &stdout}

	err := runner.Run(context.Background(), command.MustNew("echo", "hello", "world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestProcessRunner_NonZeroExit(t *testing.T) {
	requireProgram(t, "false")

	err := NewProcessRunner().Run(context.Background(), command.MustNew("false"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCommandExecute, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "error status: exit status 1")
	assert.Equal(t, 1, errors.GetErrorDetails(err)["exit_code"])
}

func TestProcessRunner_SpawnFailure(t *testing.T) {
	err := NewProcessRunner().Run(context.Background(), command.MustNew("syncinstall-no-such-program-xyz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute process")
}
