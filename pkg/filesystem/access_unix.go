//go:build unix

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func osAccess(path string, mode AccessMode) error {
	if err := unix.Access(path, uint32(mode)); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
