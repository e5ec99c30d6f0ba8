package executor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
)

// Runner starts one command and waits for it
type Runner interface {
	Run(ctx context.Context, cmd command.Command) error
}

// ProcessRunner runs commands as child processes. Nil streams default to
// the parent's.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessRunner returns a runner inheriting the process' standard streams
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes cmd. A non-zero exit yields an error carrying the exit status.
func (r *ProcessRunner) Run(ctx context.Context, cmd command.Command) error {
	program, args := cmd.Split()

	proc := exec.CommandContext(ctx, program, args...)
	proc.Stdin = r.Stdin
	proc.Stdout = r.Stdout
	proc.Stderr = r.Stderr
	if proc.Stdin == nil {
		proc.Stdin = os.Stdin
	}
	if proc.Stdout == nil {
		proc.Stdout = os.Stdout
	}
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}

	if err := proc.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return errors.Newf(errors.ErrCommandExecute, "error status: %s", exitErr.ProcessState).
				WithDetail("exit_code", exitErr.ExitCode())
		}
		return errors.Wrap(err, errors.ErrCommandExecute, "failed to execute process")
	}
	return nil
}
