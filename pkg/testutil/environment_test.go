package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment(t)

	assert.DirExists(t, env.Home)
	assert.DirExists(t, env.Store)
	assert.Equal(t, env.Home, os.Getenv("HOME"))

	resolved, err := filepath.EvalSymlinks(env.StoreLink)
	require.NoError(t, err)
	assert.Equal(t, env.Store, resolved)
}

func TestEnvironmentHelpers(t *testing.T) {
	env := NewEnvironment(t)

	target := env.StoreFile("nvim/init.lua")
	assert.FileExists(t, target)

	link := env.Link(target, ".config/nvim/init.lua")
	assert.Equal(t, target, env.Readlink(link))

	file := env.HomeFile(".bashrc", "export A=1\n")
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n", string(content))

	assert.DirExists(t, env.StoreDir("empty"))
	assert.DirExists(t, env.HomeDir("subdir"))
}
