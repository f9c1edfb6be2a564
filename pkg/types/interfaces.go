package types

import (
	"io/fs"
)

// FS is the filesystem interface the scanner and restorer run against.
// Unlike io/fs it is symlink-aware: Lstat never follows the final link and
// EvalSymlinks dereferences every link on the way.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)

	// Remove deletes a file, a symlink or an empty directory. It never
	// recurses.
	Remove(name string) error

	// WalkDir walks the tree rooted at root without following symlinks.
	WalkDir(root string, fn fs.WalkDirFunc) error
}
