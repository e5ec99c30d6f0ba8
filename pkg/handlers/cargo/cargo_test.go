// pkg/handlers/cargo/cargo_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the cargo install line grammar and its command policy

package cargo_test

import (
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/handlers/cargo"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Parse(t *testing.T) {
	h := cargo.New(cargo.DefaultOptions())

	tests := []struct {
		name         string
		line         string
		wantIdentity string
		wantPayload  string
		wantCode     errors.ErrorCode
	}{
		{
			name:         "plain install",
			line:         `cargo install fsays --version 0.3.0 --locked; \`,
			wantIdentity: "fsays",
			wantPayload:  "cargo install fsays --version 0.3.0 --locked",
		},
		{
			name:         "install behind another program",
			line:         `pixi run -e openssl-pkgconfig cargo install cargo-update --version 16.1.0 --locked; \`,
			wantIdentity: "cargo-update",
			wantPayload:  "pixi run -e openssl-pkgconfig cargo install cargo-update --version 16.1.0 --locked",
		},
		{
			name:         "crate name without flags",
			line:         `cargo install ripgrep; \`,
			wantIdentity: "ripgrep",
			wantPayload:  "cargo install ripgrep",
		},
		{
			name:     "missing continuation suffix",
			line:     "cargo install fsays --version 0.3.0 --locked",
			wantCode: errors.ErrMissingSuffix,
		},
		{
			name:     "empty crate name",
			line:     `cargo install ; \`,
			wantCode: errors.ErrEmptyIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := h.Parse(tt.line)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.DomainCargo, action.Domain)
			assert.Equal(t, tt.wantIdentity, action.Identity)
			assert.Equal(t, tt.wantPayload, action.Payload)
		})
	}
}

func TestHandler_MissingSuffixMessage(t *testing.T) {
	h := cargo.New(cargo.DefaultOptions())

	_, err := h.Parse("RUN cargo install fsays --version 0.3.0 --locked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `line with "cargo install " but which does not end with "; \\"`)
}

func TestHandler_Matches(t *testing.T) {
	h := cargo.New(cargo.DefaultOptions())

	assert.True(t, h.Matches(`cargo install fsays; \`))
	assert.True(t, h.Matches(`RUN cargo install fsays`))
	assert.False(t, h.Matches(`cargo uninstall fsays; \`))
	assert.False(t, h.Matches(`cargo cache -r all`))
}

func TestHandler_CustomProgram(t *testing.T) {
	h := cargo.New(cargo.Options{Program: "cargo-nightly", ForceFlag: "-f"})

	assert.Equal(t, "cargo-nightly install ", h.Marker())
	action, err := h.Parse(`cargo-nightly install bat --locked; \`)
	require.NoError(t, err)
	assert.Equal(t, "bat", action.Identity)
	assert.Equal(t, "cargo-nightly install bat --locked -f", h.UpdateCommand(action).String())
	assert.Equal(t, "cargo-nightly uninstall bat", h.RemovalCommand(action).String())
}

func TestHandler_Commands(t *testing.T) {
	h := cargo.New(cargo.DefaultOptions())
	action := types.Action{
		Domain:   types.DomainCargo,
		Identity: "cargo-cache",
		Payload:  "cargo install cargo-cache --version 0.8.3",
	}

	t.Run("removal uninstalls by crate name", func(t *testing.T) {
		assert.Equal(t, []string{"cargo", "uninstall", "cargo-cache"}, h.RemovalCommand(action).Tokens())
	})

	t.Run("install replays the declared command", func(t *testing.T) {
		assert.Equal(t,
			[]string{"cargo", "install", "cargo-cache", "--version", "0.8.3"},
			h.InstallCommand(action).Tokens())
	})

	t.Run("update appends the force flag", func(t *testing.T) {
		assert.Equal(t,
			[]string{"cargo", "install", "cargo-cache", "--version", "0.8.3", "--force"},
			h.UpdateCommand(action).Tokens())
	})
}

func TestHandler_DuplicateError(t *testing.T) {
	h := cargo.New(cargo.DefaultOptions())
	previous := types.Action{
		Domain:   types.DomainCargo,
		Identity: "fsays",
		Payload:  "cargo install fsays --version 0.1.0 --locked",
		Line:     2,
	}

	err := h.DuplicateError(previous)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateIdentity))
	assert.Contains(t, err.Error(), `"fsays" crate already installed in a previous line: `)
	assert.Contains(t, err.Error(), "the command was [cargo install fsays --version 0.1.0 --locked]")
	assert.Equal(t, previous.Payload, errors.GetErrorDetails(err)["previous"])
}
