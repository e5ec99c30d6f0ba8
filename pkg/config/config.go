package config

import (
	stderrors "errors"
	"strings"
	"unicode"

	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Config is the effective configuration
type Config struct {
	Cargo   CargoConfig   `koanf:"cargo" toml:"cargo"`
	Pixi    PixiConfig    `koanf:"pixi" toml:"pixi"`
	Git     GitConfig     `koanf:"git" toml:"git"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
}

// CargoConfig configures the crate domain
type CargoConfig struct {
	Program   string `koanf:"program" toml:"program" validate:"program"`
	ForceFlag string `koanf:"force_flag" toml:"force_flag" validate:"flag"`
}

// PixiConfig configures the recipe domain
type PixiConfig struct {
	Program      string `koanf:"program" toml:"program" validate:"program"`
	StrictPrefix bool   `koanf:"strict_prefix" toml:"strict_prefix"`
	UpdateVerb   string `koanf:"update_verb" toml:"update_verb" validate:"oneof=upgrade update install"`
}

// GitConfig configures the global git option domain
type GitConfig struct {
	Program string `koanf:"program" toml:"program" validate:"program"`
}

// OutputConfig selects the renderer
type OutputConfig struct {
	Format string `koanf:"format" toml:"format" validate:"oneof=auto term terminal text plain json"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// A program name starts a line marker and must be a single token.
	_ = v.RegisterValidation("program", func(fl validator.FieldLevel) bool {
		return isToken(fl.Field().String())
	})
	_ = v.RegisterValidation("flag", func(fl validator.FieldLevel) bool {
		flag := fl.Field().String()
		return isToken(flag) && strings.HasPrefix(flag, "-")
	})
	return v
}

func isToken(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}

// Validate checks every field, reporting the first failure by its key
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); !ok || len(fieldErrs) == 0 {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	first := fieldErrs[0]
	key := keyFor(first.Namespace())
	return errors.Newf(errors.ErrConfigValid, "invalid configuration: %s=%q fails %q", key, first.Value(), first.Tag()).
		WithDetail("key", key).
		WithDetail("rule", first.Tag())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	return stderrors.As(err, target)
}

// keyFor turns "Config.Pixi.UpdateVerb" into "pixi.update_verb"
func keyFor(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
