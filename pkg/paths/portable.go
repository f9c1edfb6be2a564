package paths

import (
	"path/filepath"
	"strings"
)

// Placeholder is the token that stands for the home directory in saved records.
const Placeholder = "~"

// Portable replaces a leading home directory in path with the placeholder.
// A home of "/" is never substituted since every absolute path would match.
func Portable(path, home string) string {
	home = filepath.Clean(home)
	if home == "" || home == "." || home == string(filepath.Separator) {
		return path
	}
	if path == home {
		return Placeholder
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return Placeholder + path[len(home):]
	}
	return path
}

// Expand replaces a leading placeholder segment with home.
func Expand(path, home string) string {
	if path == Placeholder {
		return home
	}
	if strings.HasPrefix(path, Placeholder+string(filepath.Separator)) {
		return home + path[len(Placeholder):]
	}
	return path
}

// HasPlaceholderPrefix reports whether the first segment of path is the
// placeholder itself, which Expand would rewrite.
func HasPlaceholderPrefix(path string) bool {
	return path == Placeholder || strings.HasPrefix(path, Placeholder+string(filepath.Separator))
}
