// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp dirs, environment variables
// PURPOSE: Test layered loading, validation and TOML generation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/config"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.Options{})
	require.NoError(t, err)

	assert.Equal(t, "cargo", cfg.Cargo.Program)
	assert.Equal(t, "--force", cfg.Cargo.ForceFlag)
	assert.Equal(t, "pixi", cfg.Pixi.Program)
	assert.True(t, cfg.Pixi.StrictPrefix)
	assert.Equal(t, "upgrade", cfg.Pixi.UpdateVerb)
	assert.Equal(t, "git", cfg.Git.Program)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Logging.File)

	assert.Equal(t, cfg, config.Default())
}

func TestLoad_UserFile(t *testing.T) {
	path := writeConfig(t, `
[pixi]
update_verb = "install"
strict_prefix = false

[output]
format = "json"
`)

	cfg, err := config.Load(config.Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "install", cfg.Pixi.UpdateVerb)
	assert.False(t, cfg.Pixi.StrictPrefix)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "cargo", cfg.Cargo.Program, "untouched keys keep their defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := config.Load(config.Options{File: missing})
	require.NoError(t, err)
	assert.Equal(t, "cargo", cfg.Cargo.Program)

	_, err = config.Load(config.Options{File: missing, Required: true})
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestLoad_BrokenFile(t *testing.T) {
	path := writeConfig(t, "[cargo\nprogram = ")

	_, err := config.Load(config.Options{File: path})
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
}

func TestLoad_Environment(t *testing.T) {
	path := writeConfig(t, "[cargo]\nprogram = \"cargo-from-file\"\n")
	t.Setenv("SYNCINSTALL_CARGO_PROGRAM", "cargo-nightly")
	t.Setenv("SYNCINSTALL_CARGO_FORCE_FLAG", "-f")
	t.Setenv("SYNCINSTALL_PIXI_STRICT_PREFIX", "false")
	t.Setenv("SYNCINSTALL_CONFIG_DIR", "/ignored")

	cfg, err := config.Load(config.Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "cargo-nightly", cfg.Cargo.Program, "env wins over the user file")
	assert.Equal(t, "-f", cfg.Cargo.ForceFlag)
	assert.False(t, cfg.Pixi.StrictPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SYNCINSTALL_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(config.Options{Overrides: map[string]interface{}{"output.format": "text"}})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"empty program", "[cargo]\nprogram = \"\"\n", "cargo.program"},
		{"program with spaces", "[git]\nprogram = \"my git\"\n", "git.program"},
		{"flag without dash", "[cargo]\nforce_flag = \"force\"\n", "cargo.force_flag"},
		{"unknown update verb", "[pixi]\nupdate_verb = \"reinstall\"\n", "pixi.update_verb"},
		{"unknown format", "[output]\nformat = \"yaml\"\n", "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.Options{File: writeConfig(t, tt.content)})
			require.Error(t, err)
			assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(err))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestGenerateConfigContent_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Pixi.UpdateVerb = "install"
	cfg.Cargo.ForceFlag = "-f"

	content, err := config.GenerateConfigContent(cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "[pixi]")
	assert.Regexp(t, `update_verb = ['"]install['"]`, content)

	loaded, err := config.Load(config.Options{File: writeConfig(t, content)})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, config.DefaultsContent(), "[cargo]")
}
