package paths

import (
	"io/fs"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// DefaultStoreLink is the fixed symlink that points at the store.
const DefaultStoreLink = "~/.dotkeep-link"

// ResolveStore checks that storeLink is a symbolic link pointing to a
// directory and returns the fully resolved directory path.
func ResolveStore(fsys types.FS, storeLink string) (string, error) {
	invalid := func(err error) error {
		msg := `"` + storeLink + `" must be a symbolic link pointing to a directory`
		if err != nil {
			return errors.Wrap(err, errors.ErrStoreInvalid, msg).WithDetail("store_link", storeLink)
		}
		return errors.New(errors.ErrStoreInvalid, msg).WithDetail("store_link", storeLink)
	}

	info, err := fsys.Lstat(storeLink)
	if err != nil {
		return "", invalid(err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", invalid(nil)
	}

	store, err := fsys.EvalSymlinks(storeLink)
	if err != nil {
		return "", invalid(err)
	}

	info, err = fsys.Stat(store)
	if err != nil {
		return "", invalid(err)
	}
	if !info.IsDir() {
		return "", invalid(nil)
	}

	return store, nil
}
