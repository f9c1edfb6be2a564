package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotkeeper/pkg/config"
	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/testutil"
)

func writeUserConfig(t *testing.T, content string) string {
	t.Helper()
	path := config.UserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	testutil.NewEnvironment(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "\t", cfg.Separator)
	assert.Equal(t, "links", cfg.LinksFile)
	assert.Equal(t, "~", cfg.SearchRoot)
	assert.Equal(t, "~/.dotkeep-link", cfg.StoreLink)
	assert.Empty(t, cfg.Exclude)
}

func TestLoadLayering(t *testing.T) {
	env := testutil.NewEnvironment(t)

	path := writeUserConfig(t, `
separator = "|"
links_file = "from-file"
exclude = [".cache", "**/node_modules"]
`)
	assert.Equal(t, filepath.Join(env.Root, "xdg", "config", "dotkeeper", "config.toml"), path)

	t.Setenv("DOTKEEPER_LINKS_FILE", "from-env")
	t.Setenv("DOTKEEPER_SEARCH_ROOT", "/srv")

	cfg, err := config.Load(config.LoadOptions{
		Flags: map[string]interface{}{"search_root": "/from-flag"},
	})
	require.NoError(t, err)

	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, "from-env", cfg.LinksFile)
	assert.Equal(t, "/from-flag", cfg.SearchRoot)
	assert.Equal(t, []string{".cache", "**/node_modules"}, cfg.Exclude)
}

func TestLoadExcludeFromEnv(t *testing.T) {
	testutil.NewEnvironment(t)
	t.Setenv("DOTKEEPER_EXCLUDE", ".cache,Library")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{".cache", "Library"}, cfg.Exclude)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	env := testutil.NewEnvironment(t)

	path := env.HomeFile("custom.toml", "store_link = \"~/store\"\n")
	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "~/store", cfg.StoreLink)

	_, err = config.Load(config.LoadOptions{ConfigFile: filepath.Join(env.Home, "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidToml(t *testing.T) {
	testutil.NewEnvironment(t)
	writeUserConfig(t, "separator = \n")

	_, err := config.Load(config.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsBadSeparator(t *testing.T) {
	testutil.NewEnvironment(t)

	_, err := config.Load(config.LoadOptions{Flags: map[string]interface{}{"separator": "::"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{Separator: "\t", LinksFile: "links", SearchRoot: "~", StoreLink: "~/.dotkeep-link"}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"defaults", func(c *config.Config) {}, false},
		{"pipe", func(c *config.Config) { c.Separator = "|" }, false},
		{"multibyte rune", func(c *config.Config) { c.Separator = "§" }, false},
		{"empty separator", func(c *config.Config) { c.Separator = "" }, true},
		{"two characters", func(c *config.Config) { c.Separator = "->" }, true},
		{"slash", func(c *config.Config) { c.Separator = "/" }, true},
		{"newline", func(c *config.Config) { c.Separator = "\n" }, true},
		{"carriage return", func(c *config.Config) { c.Separator = "\r" }, true},
		{"placeholder", func(c *config.Config) { c.Separator = "~" }, true},
		{"empty links file", func(c *config.Config) { c.LinksFile = "" }, true},
		{"empty store link", func(c *config.Config) { c.StoreLink = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := &config.Config{
		Separator:  "\t",
		LinksFile:  "links",
		SearchRoot: "~",
		StoreLink:  "~/.dotkeep-link",
		Exclude:    []string{".cache"},
	}

	resolved, err := cfg.Resolve("/home/u")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "links"), resolved.LinksFile)
	assert.Equal(t, "/home/u", resolved.SearchRoot)
	assert.Equal(t, "/home/u/.dotkeep-link", resolved.StoreLink)
	assert.Equal(t, "~", cfg.SearchRoot, "original is left untouched")

	resolved.Exclude[0] = "changed"
	assert.Equal(t, ".cache", cfg.Exclude[0])
}

func TestGenerate(t *testing.T) {
	out, err := config.Generate(&config.Config{
		Separator:  "\t",
		LinksFile:  "links",
		SearchRoot: "~",
		StoreLink:  "~/.dotkeep-link",
		Exclude:    []string{".cache"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "# dotkeeper configuration")
	for _, key := range []string{"separator", "links_file", "search_root", "store_link", "exclude"} {
		assert.Contains(t, out, key+" = ")
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	testutil.NewEnvironment(t)

	original := &config.Config{
		Separator:  "|",
		LinksFile:  "saved-links",
		SearchRoot: "/srv",
		StoreLink:  "~/store",
		Exclude:    []string{"a", "b/**"},
	}
	out, err := config.Generate(original)
	require.NoError(t, err)
	writeUserConfig(t, out)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, original, cfg)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, config.DefaultsContent(), `store_link = "~/.dotkeep-link"`)
}
