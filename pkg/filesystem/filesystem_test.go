// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, OS temp dirs
// PURPOSE: Test state document reading through both implementations

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText_Afero(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/work/Dockerfile", []byte("RUN cargo install a; \\\n"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/work/binary", []byte{0xff, 0xfe, 0x00}, 0644))
	require.NoError(t, mem.MkdirAll("/work/dir", 0755))
	fsys := filesystem.NewAferoFS(mem)

	content, err := filesystem.ReadText(fsys, "/work/Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, "RUN cargo install a; \\\n", content)

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing file", "/work/missing", `failed to read "/work/missing"`},
		{"directory", "/work/dir", `failed to read "/work/dir"`},
		{"invalid utf-8", "/work/binary", "stream did not contain valid UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filesystem.ReadText(fsys, tt.path)
			require.Error(t, err)
			assert.Equal(t, errors.ErrFileRead, errors.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestReadText_OS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dockerfile")
	require.NoError(t, os.WriteFile(path, []byte("FROM scratch\n"), 0644))
	fsys := filesystem.NewOS()

	content, err := filesystem.ReadText(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "FROM scratch\n", content)

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = filesystem.ReadText(fsys, filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}
