package filesystem

import (
	"unicode/utf8"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/types"
)

// ReadText reads a whole state document. The content must be valid UTF-8.
// Process substitution paths such as /dev/fd/63 are read like any file.
func ReadText(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %q", path).
			WithDetail("path", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Wrapf(errors.New(errors.ErrFileRead, "stream did not contain valid UTF-8"),
			errors.ErrFileRead, "failed to read %q", path).
			WithDetail("path", path)
	}
	return string(data), nil
}
