// pkg/handlers/set_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: cargo, pixi and gitconfig handlers
// PURPOSE: Test dispatch order and registration rules of the handler Set

package handlers_test

import (
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/handlers/cargo"
	"github.com/arthur-debert/syncinstall/pkg/handlers/gitconfig"
	"github.com/arthur-debert/syncinstall/pkg/handlers/pixi"
	"github.com/arthur-debert/syncinstall/pkg/testutil"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Match(t *testing.T) {
	set := testutil.DefaultHandlers()

	tests := []struct {
		line   string
		domain types.Domain
		found  bool
	}{
		{line: `cargo install fsays; \`, domain: types.DomainCargo, found: true},
		{line: `pixi global install ripgrep=14.1.1; \`, domain: types.DomainPixi, found: true},
		{line: `git config set --global user.name me; \`, domain: types.DomainGitConfig, found: true},
		{line: `cargo cache -r all`},
		{line: `apt-get install -y curl; \`},
		// Both markers present: priority order decides
		{line: `cargo install x && pixi global install y=1; \`, domain: types.DomainCargo, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h, ok := set.Match(tt.line)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.domain, h.Domain())
			}
		})
	}
}

func TestSet_Order(t *testing.T) {
	set := handlers.MustNewSet(
		gitconfig.New(gitconfig.DefaultOptions()),
		cargo.New(cargo.DefaultOptions()),
	)

	assert.Equal(t, []types.Domain{types.DomainGitConfig, types.DomainCargo}, set.Domains())
	assert.Equal(t, 2, set.Count())

	_, ok := set.Get(types.DomainPixi)
	assert.False(t, ok)
	h, ok := set.Get(types.DomainCargo)
	require.True(t, ok)
	assert.Equal(t, "cargo install ", h.Marker())
}

func TestNewSet_Rejects(t *testing.T) {
	_, err := handlers.NewSet(pixi.New(pixi.DefaultOptions()), pixi.New(pixi.DefaultOptions()))
	testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)

	_, err = handlers.NewSet(nil)
	testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)

	assert.Panics(t, func() { handlers.MustNewSet(nil) })
}

func TestStripSuffix(t *testing.T) {
	stripped, err := handlers.StripSuffix(`cargo install fsays; \`, "cargo install ")
	require.NoError(t, err)
	assert.Equal(t, "cargo install fsays", stripped)

	_, err = handlers.StripSuffix(`cargo install fsays;`, "cargo install ")
	testutil.AssertErrorCode(t, err, errors.ErrMissingSuffix)
	assert.Contains(t, err.Error(), `does not end with "; \\"`)
}
