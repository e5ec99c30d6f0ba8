package testutil

import (
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/filesystem"
	"github.com/arthur-debert/syncinstall/pkg/handlers"
	"github.com/arthur-debert/syncinstall/pkg/handlers/cargo"
	"github.com/arthur-debert/syncinstall/pkg/handlers/gitconfig"
	"github.com/arthur-debert/syncinstall/pkg/handlers/pixi"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/spf13/afero"
)

// MemFS returns an in-memory filesystem holding files (path -> content)
func MemFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to seed %s: %v", path, err)
		}
	}
	return filesystem.NewAferoFS(mem)
}

// DefaultHandlers returns cargo, pixi and git handlers with stock options
func DefaultHandlers() *handlers.Set {
	return handlers.MustNewSet(
		cargo.New(cargo.DefaultOptions()),
		pixi.New(pixi.DefaultOptions()),
		gitconfig.New(gitconfig.DefaultOptions()),
	)
}
