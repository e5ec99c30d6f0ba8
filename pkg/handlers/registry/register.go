// Package registry builds the handler set from configuration.
package registry

import (
	"github.com/arthur-debert/syncinstall/pkg/config"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/handlers/cargo"
	"github.com/arthur-debert/syncinstall/pkg/handlers/gitconfig"
	"github.com/arthur-debert/syncinstall/pkg/handlers/pixi"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// PriorityOrder is the order lines are matched against domain markers
var PriorityOrder = []types.Domain{
	types.DomainCargo,
	types.DomainPixi,
	types.DomainGitConfig,
}

// GetHandler returns a handler for domain configured from cfg.
// Returns nil if the domain is unknown
func GetHandler(domain types.Domain, cfg *config.Config) handlers.Handler {
	switch domain {
	case types.DomainCargo:
		return cargo.New(cargo.Options{
			Program:   cfg.Cargo.Program,
			ForceFlag: cfg.Cargo.ForceFlag,
		})
	case types.DomainPixi:
		return pixi.New(pixi.Options{
			Program:      cfg.Pixi.Program,
			StrictPrefix: cfg.Pixi.StrictPrefix,
			UpdateVerb:   cfg.Pixi.UpdateVerb,
		})
	case types.DomainGitConfig:
		return gitconfig.New(gitconfig.Options{
			Program: cfg.Git.Program,
		})
	default:
		return nil
	}
}

// Build returns every handler in PriorityOrder
func Build(cfg *config.Config) (*handlers.Set, error) {
	list := make([]handlers.Handler, 0, len(PriorityOrder))
	for _, domain := range PriorityOrder {
		list = append(list, GetHandler(domain, cfg))
	}
	return handlers.NewSet(list...)
}
