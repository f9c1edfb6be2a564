package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
)

// Config is the effective dotkeeper configuration.
type Config struct {
	Separator  string   `koanf:"separator" toml:"separator"`
	LinksFile  string   `koanf:"links_file" toml:"links_file"`
	SearchRoot string   `koanf:"search_root" toml:"search_root"`
	StoreLink  string   `koanf:"store_link" toml:"store_link"`
	Exclude    []string `koanf:"exclude" toml:"exclude"`
}

// forbiddenSeparators can never separate fields: they occur in paths, end
// lines or start the home placeholder.
var forbiddenSeparators = map[string]bool{
	"/":               true,
	"\n":              true,
	"\r":              true,
	paths.Placeholder: true,
}

// Validate checks the separator and the required paths.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return errors.Newf(errors.ErrConfigValid, "separator must be a single character, got %q", c.Separator).
			WithDetail("separator", c.Separator)
	}
	if forbiddenSeparators[c.Separator] {
		return errors.Newf(errors.ErrConfigValid, "%q cannot be used as a separator", c.Separator).
			WithDetail("separator", c.Separator)
	}

	for key, value := range map[string]string{
		"links_file":  c.LinksFile,
		"search_root": c.SearchRoot,
		"store_link":  c.StoreLink,
	} {
		if value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key).
				WithDetail("key", key)
		}
	}

	return nil
}

// Resolve returns a copy with "~" expanded against home and relative
// paths made absolute against the working directory.
func (c *Config) Resolve(home string) (*Config, error) {
	resolved := *c
	resolved.Exclude = append([]string(nil), c.Exclude...)

	for _, p := range []*string{&resolved.LinksFile, &resolved.SearchRoot, &resolved.StoreLink} {
		abs, err := filepath.Abs(paths.Expand(*p, home))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "cannot resolve path %q", *p)
		}
		*p = abs
	}

	return &resolved, nil
}
