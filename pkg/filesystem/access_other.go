//go:build !unix

package filesystem

import (
	"io/fs"
	"os"
)

func osAccess(path string, mode AccessMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&(os.FileMode(mode)<<6) == 0 {
		return &fs.PathError{Op: "access", Path: path, Err: fs.ErrPermission}
	}
	return nil
}
