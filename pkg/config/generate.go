package config

import (
	"bytes"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders cfg as a TOML document that Load accepts
// back as a user file.
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("# syncinstall configuration\n\n")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
