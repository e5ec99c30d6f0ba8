package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
)

// RecordingRunner records every command it is asked to run. A command whose
// display string is a key of Failures fails with that error instead.
type RecordingRunner struct {
	mu       sync.Mutex
	ran      []command.Command
	Failures map[string]error
}

// NewRecordingRunner returns a runner where every command succeeds
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{Failures: map[string]error{}}
}

// FailOn makes cmd fail with an exit-status error
func (r *RecordingRunner) FailOn(cmd string) *RecordingRunner {
	r.Failures[cmd] = errors.New(errors.ErrCommandExecute, "error status: exit status 1")
	return r
}

// Run records cmd and returns its configured failure, if any
func (r *RecordingRunner) Run(_ context.Context, cmd command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ran = append(r.ran, cmd)
	return r.Failures[cmd.String()]
}

// Ran returns the display strings of recorded commands, in order
func (r *RecordingRunner) Ran() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return CommandStrings(r.ran)
}
