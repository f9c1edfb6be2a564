package paths

import (
	"path/filepath"
	"strings"
)

// Within reports whether path equals root or lies below it. The check is
// on path segments, so /store2/x is not within /store.
func Within(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return true
	}
	if root == string(filepath.Separator) {
		return filepath.IsAbs(path)
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// RelativeTo strips root and the following separator from path. It returns
// "" when path is root itself and false when path is not within root.
func RelativeTo(root, path string) (string, bool) {
	if !Within(root, path) {
		return "", false
	}
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return "", true
	}
	if root == string(filepath.Separator) {
		return path[1:], true
	}
	return path[len(root)+1:], true
}
