package handlers

import (
	"strings"

	"github.com/arthur-debert/syncinstall/pkg/errors"
)

// ContinuationSuffix ends every recognized line: the declarations live inside
// a multi-line "RUN set -eux; \" block.
const ContinuationSuffix = "; \\"

// StripSuffix removes ContinuationSuffix from line, failing with
// ErrMissingSuffix when it is absent.
func StripSuffix(line, marker string) (string, error) {
	stripped, ok := strings.CutSuffix(line, ContinuationSuffix)
	if !ok {
		return "", errors.Newf(errors.ErrMissingSuffix,
			"line with %q but which does not end with %q", marker, ContinuationSuffix).
			WithDetail("marker", marker)
	}
	return stripped, nil
}

// RequireNonEmpty fails with code when value is empty.
func RequireNonEmpty(value string, code errors.ErrorCode, message string) error {
	if value == "" {
		return errors.New(code, message)
	}
	return nil
}
