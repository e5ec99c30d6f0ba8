// pkg/command/command_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the program invariant, splitting and display forms

package command_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/command"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantCode errors.ErrorCode
	}{
		{name: "no tokens", tokens: nil, wantCode: errors.ErrMissingProgram},
		{name: "empty program", tokens: []string{"", "install"}, wantCode: errors.ErrEmptyProgram},
		{name: "program only", tokens: []string{"cargo"}},
		{name: "program with args", tokens: []string{"cargo", "install", "fsays"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := command.New(tt.tokens...)
			if tt.wantCode != "" {
				testutil.AssertErrorCode(t, err, tt.wantCode)
				assert.True(t, cmd.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, cmd.Tokens())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	tokens := []string{"cargo", "install", "fsays"}
	cmd := command.MustNew(tokens...)
	tokens[2] = "changed"

	assert.Equal(t, "cargo install fsays", cmd.String())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { command.MustNew() })
}

func TestFromString(t *testing.T) {
	cmd, err := command.FromString("cargo install cargo-cache --version 0.8.3")
	require.NoError(t, err)

	program, args := cmd.Split()
	assert.Equal(t, "cargo", program)
	assert.Equal(t, []string{"install", "cargo-cache", "--version", "0.8.3"}, args)

	// Single-space splitting keeps empty tokens between doubled spaces
	cmd, err = command.FromString("git  config")
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "", "config"}, cmd.Tokens())

	_, err = command.FromString(" leading")
	testutil.AssertErrorCode(t, err, errors.ErrEmptyProgram)
}

func TestArgs(t *testing.T) {
	assert.Empty(t, command.MustNew("true").Args())

	cmd := command.MustNew("cargo", "uninstall", "fsays")
	args := cmd.Args()
	args[0] = "install"
	assert.Equal(t, "cargo uninstall fsays", cmd.String(), "Args must return a copy")
}

func TestWithArgs(t *testing.T) {
	base := command.MustNew("cargo", "install", "cargo-cache")
	forced := base.WithArgs("--force")

	assert.Equal(t, "cargo install cargo-cache --force", forced.String())
	assert.Equal(t, "cargo install cargo-cache", base.String())
	assert.False(t, base.Equal(forced))
	assert.True(t, forced.Equal(command.MustNew("cargo", "install", "cargo-cache", "--force")))
}

func TestShellString(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "plain", tokens: []string{"cargo", "install", "fsays"}, want: "cargo install fsays"},
		{name: "space", tokens: []string{"git", "config", "set", "--global", "user.name", "Jane Doe"}, want: "git config set --global user.name 'Jane Doe'"},
		{name: "apostrophe", tokens: []string{"echo", "it's"}, want: `echo 'it'\''s'`},
		{name: "empty token", tokens: []string{"echo", ""}, want: "echo ''"},
		{name: "url stays bare", tokens: []string{"cargo", "install", "--git", "https://github.com/prefix-dev/pixi.git"}, want: "cargo install --git https://github.com/prefix-dev/pixi.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, command.MustNew(tt.tokens...).ShellString())
		})
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(command.MustNew("pixi", "global", "install", "ripgrep=14.1.1"))
	require.NoError(t, err)
	assert.JSONEq(t, `["pixi","global","install","ripgrep=14.1.1"]`, string(data))

	var cmd command.Command
	require.NoError(t, json.Unmarshal(data, &cmd))
	assert.Equal(t, "pixi global install ripgrep=14.1.1", cmd.String())

	err = json.Unmarshal([]byte(`[]`), &cmd)
	testutil.AssertErrorCode(t, err, errors.ErrMissingProgram)
}
