package executor

import (
	"context"
	"iter"
	"time"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/logging"
	"github.com/arthur-debert/syncinstall/pkg/plan"
	"github.com/rs/zerolog"
)

// Reporter is told about each step before it runs
type Reporter interface {
	RenderStep(step plan.Step, dryRun bool) error
}

// Options contains configuration for the executor
type Options struct {
	DryRun   bool
	Runner   Runner
	Reporter Reporter
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Summary counts what a run did
type Summary struct {
	Planned  int
	Executed int
	DryRun   bool
	Duration time.Duration
}

// Executor walks a plan sequentially
type Executor struct {
	dryRun   bool
	runner   Runner
	reporter Reporter
	logger   zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewProcessRunner()
	}

	return &Executor{
		dryRun:   opts.DryRun,
		runner:   runner,
		reporter: opts.Reporter,
		logger:   logger,
	}
}

// Execute reports every step and, outside dry-run mode, runs it. It stops at
// the first reporting error, run failure or context cancellation.
func (e *Executor) Execute(ctx context.Context, steps iter.Seq[plan.Step]) (Summary, error) {
	start := time.Now()
	summary := Summary{DryRun: e.dryRun}

	for step := range steps {
		if err := ctx.Err(); err != nil {
			return e.finish(summary, start), err
		}
		summary.Planned++

		if e.reporter != nil {
			if err := e.reporter.RenderStep(step, e.dryRun); err != nil {
				return e.finish(summary, start), errors.Wrap(err, errors.ErrRenderOutput, "failed to write to stdout")
			}
		}
		if e.dryRun {
			continue
		}

		if err := e.run(ctx, step); err != nil {
			return e.finish(summary, start), err
		}
		summary.Executed++
	}

	return e.finish(summary, start), nil
}

func (e *Executor) run(ctx context.Context, step plan.Step) error {
	start := time.Now()
	program, args := step.Command.Split()
	logging.LogCommand(e.logger, program, args)

	if err := e.runner.Run(ctx, step.Command); err != nil {
		e.logger.Error().
			Err(err).
			Str("kind", string(step.Kind)).
			Str("identity", step.Identity).
			Msg("Command failed")
		return errors.Wrapf(err, errors.ErrCommandExecute, "failed to run [%s]", step.Command).
			WithDetail("command", step.Command.String())
	}

	e.logger.Info().
		Str("kind", string(step.Kind)).
		Str("domain", step.Domain.String()).
		Str("identity", step.Identity).
		Dur("duration", time.Since(start)).
		Msg("Command executed successfully")
	return nil
}

func (e *Executor) finish(summary Summary, start time.Time) Summary {
	summary.Duration = time.Since(start)
	e.logger.Debug().
		Int("planned", summary.Planned).
		Int("executed", summary.Executed).
		Bool("dry_run", summary.DryRun).
		Dur("duration", summary.Duration).
		Msg("Execution finished")
	return summary
}
