package plan

import (
	"iter"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/logging"
	"github.com/arthur-debert/syncinstall/pkg/state"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/rs/zerolog"
)

// Kind tells what a step does to its identity
type Kind string

const (
	KindRemove  Kind = "remove"
	KindInstall Kind = "install"
	KindUpdate  Kind = "update"
)

// Step is one planned command with the reason it was planned.
type Step struct {
	Kind     Kind            `json:"kind"`
	Domain   types.Domain    `json:"domain"`
	Identity string          `json:"identity"`
	Command  command.Command `json:"command"`
}

// Planner computes plans with the handlers states were parsed with.
type Planner struct {
	handlers *handlers.Set
	logger   zerolog.Logger
}

// NewPlanner creates a planner resolving domain policy through set
func NewPlanner(set *handlers.Set) *Planner {
	return &Planner{
		handlers: set,
		logger:   logging.GetLogger("plan"),
	}
}

// Steps yields removals then installs and updates. current and target are
// only read.
func (p *Planner) Steps(current, target *state.State) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for step := range p.removals(current, target) {
			if !yield(step) {
				return
			}
		}
		for step := range p.installs(current, target) {
			if !yield(step) {
				return
			}
		}
	}
}

// Commands yields the command of every step in Steps order
func (p *Planner) Commands(current, target *state.State) iter.Seq[command.Command] {
	return func(yield func(command.Command) bool) {
		for step := range p.Steps(current, target) {
			if !yield(step.Command) {
				return
			}
		}
	}
}

func (p *Planner) removals(current, target *state.State) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		actions := current.Actions()
		for i := len(actions) - 1; i >= 0; i-- {
			action := actions[i]
			if target.Table(action.Domain).Contains(action.Identity) {
				continue
			}
			h, ok := p.handlers.Get(action.Domain)
			if !ok {
				p.logger.Warn().Str("domain", action.Domain.String()).Msg("No handler for domain, skipping removal")
				continue
			}
			step := p.step(KindRemove, action, h.RemovalCommand(action))
			if !yield(step) {
				return
			}
		}
	}
}

func (p *Planner) installs(current, target *state.State) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, action := range target.Actions() {
			h, ok := p.handlers.Get(action.Domain)
			if !ok {
				p.logger.Warn().Str("domain", action.Domain.String()).Msg("No handler for domain, skipping install")
				continue
			}

			var step Step
			existing, found := current.Table(action.Domain).Lookup(action.Identity)
			switch {
			case !found:
				step = p.step(KindInstall, action, h.InstallCommand(action))
			case existing.SamePayload(action):
				p.logger.Trace().
					Str("domain", action.Domain.String()).
					Str("identity", action.Identity).
					Msg("Unchanged")
				continue
			default:
				step = p.step(KindUpdate, action, h.UpdateCommand(action))
			}

			if !yield(step) {
				return
			}
		}
	}
}

func (p *Planner) step(kind Kind, action types.Action, cmd command.Command) Step {
	p.logger.Debug().
		Str("kind", string(kind)).
		Str("domain", action.Domain.String()).
		Str("identity", action.Identity).
		Str("command", cmd.String()).
		Msg("Planned step")
	return Step{
		Kind:     kind,
		Domain:   action.Domain,
		Identity: action.Identity,
		Command:  cmd,
	}
}
