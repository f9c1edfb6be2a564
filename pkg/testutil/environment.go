package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Environment is a sandboxed home directory with a store and the store link
// pointing at it.
type Environment struct {
	// Root is the resolved temp directory everything lives in
	Root string

	// Home is used as HOME and as the default search root
	Home string

	// Store is the resolved store directory
	Store string

	// StoreLink is the symlink in Home pointing at Store
	StoreLink string

	t *testing.T
}

// NewEnvironment creates the sandbox and points HOME, XDG_CONFIG_HOME and
// XDG_STATE_HOME into it for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &Environment{
		Root:  root,
		Home:  filepath.Join(root, "home"),
		Store: filepath.Join(root, "store"),
		t:     t,
	}
	env.StoreLink = filepath.Join(env.Home, ".dotkeep-link")

	env.mkdir(env.Home)
	env.mkdir(env.Store)
	if err := os.Symlink(env.Store, env.StoreLink); err != nil {
		t.Fatalf("Failed to create store link: %v", err)
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg", "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "xdg", "state"))

	return env
}

// StoreFile creates an empty file at rel inside the store and returns its
// absolute path.
func (env *Environment) StoreFile(rel string) string {
	env.t.Helper()
	path := filepath.Join(env.Store, rel)
	env.mkdir(filepath.Dir(path))
	if err := os.WriteFile(path, []byte(rel+"\n"), 0644); err != nil {
		env.t.Fatalf("Failed to create store file %s: %v", rel, err)
	}
	return path
}

// StoreDir creates a directory at rel inside the store.
func (env *Environment) StoreDir(rel string) string {
	env.t.Helper()
	path := filepath.Join(env.Store, rel)
	env.mkdir(path)
	return path
}

// HomeFile creates a regular file at rel inside the home directory.
func (env *Environment) HomeFile(rel, content string) string {
	env.t.Helper()
	path := filepath.Join(env.Home, rel)
	env.mkdir(filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to create home file %s: %v", rel, err)
	}
	return path
}

// HomeDir creates a directory at rel inside the home directory.
func (env *Environment) HomeDir(rel string) string {
	env.t.Helper()
	path := filepath.Join(env.Home, rel)
	env.mkdir(path)
	return path
}

// Link creates a symlink at rel inside the home directory pointing to
// target and returns the link path. Missing parent directories are created.
func (env *Environment) Link(target, rel string) string {
	env.t.Helper()
	path := filepath.Join(env.Home, rel)
	env.mkdir(filepath.Dir(path))
	if err := os.Symlink(target, path); err != nil {
		env.t.Fatalf("Failed to create link %s: %v", rel, err)
	}
	return path
}

// Readlink returns the immediate target of the link at path.
func (env *Environment) Readlink(path string) string {
	env.t.Helper()
	dest, err := os.Readlink(path)
	if err != nil {
		env.t.Fatalf("Failed to read link %s: %v", path, err)
	}
	return dest
}

func (env *Environment) mkdir(path string) {
	env.t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}
