package filesystem

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// AccessMode selects which permission CheckAccess verifies. The values
// match the R_OK/W_OK bits of access(2).
type AccessMode uint32

const (
	Readable AccessMode = 4
	Writable AccessMode = 2
)

// NewRecordFS returns the afero filesystem record files are read from and
// written to.
func NewRecordFS() afero.Fs {
	return afero.NewOsFs()
}

// CheckAccess reports whether the current user may access path with the
// given mode. On the OS filesystem it asks the kernel; on any other afero
// filesystem it inspects the owner permission bits.
func CheckAccess(fsys afero.Fs, path string, mode AccessMode) error {
	if _, ok := fsys.(*afero.OsFs); ok {
		return osAccess(path, mode)
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&(os.FileMode(mode)<<6) == 0 {
		return &fs.PathError{Op: "access", Path: path, Err: fs.ErrPermission}
	}
	return nil
}
