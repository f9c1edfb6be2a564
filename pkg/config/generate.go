package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
)

const generatedHeader = `# dotkeeper configuration
#
# Place this file at $XDG_CONFIG_HOME/dotkeeper/config.toml. Every key can
# also be set with a DOTKEEPER_<KEY> environment variable or a flag.

`

// Generate renders cfg as a TOML config file.
func Generate(cfg *Config) (string, error) {
	var b strings.Builder
	b.WriteString(generatedHeader)

	enc := toml.NewEncoder(&b)
	enc.SetArraysMultiline(false)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return b.String(), nil
}
