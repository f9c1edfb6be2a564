package restorer

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// State is what currently occupies a record's link path.
type State int

const (
	// StateMissing means nothing exists at the link path.
	StateMissing State = iota
	// StateLinked means the link path is already a symlink to the target.
	StateLinked
	// StateConflict means something else occupies the link path.
	StateConflict
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateLinked:
		return "linked"
	case StateConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Classification is the result of inspecting one record on disk.
type Classification struct {
	Record types.LinkRecord
	State  State

	// Target is the absolute path the link should point to.
	Target string

	// Existing describes what occupies the link path on a conflict
	// ("file", "directory" or "symlink to <dest>").
	Existing string

	// TargetExists is false when the store no longer has the target.
	TargetExists bool
}

// TargetPath joins the store root and a record's local path. The local
// path must be non-empty and must not climb out of the store.
func TargetPath(store string, record types.LinkRecord) (string, error) {
	if record.LocalPath == "" {
		return "", errors.New(errors.ErrStructure, "record has an empty local path").
			WithDetail("link", record.LinkPath)
	}
	target := filepath.Join(store, record.LocalPath)
	if rel, ok := paths.RelativeTo(store, target); !ok || rel == "" {
		return "", errors.Newf(errors.ErrMalformedRecord, "local path %q escapes the store", record.LocalPath).
			WithDetail("local", record.LocalPath).
			WithDetail("link", record.LinkPath)
	}
	return target, nil
}

// Classify inspects the link path of record without changing anything.
func Classify(fsys types.FS, store string, record types.LinkRecord) (Classification, error) {
	c := Classification{Record: record}

	if !filepath.IsAbs(record.LinkPath) {
		return c, errors.Newf(errors.ErrMalformedRecord, "link path %q is not absolute", record.LinkPath).
			WithDetail("link", record.LinkPath)
	}

	target, err := TargetPath(store, record)
	if err != nil {
		return c, err
	}
	c.Target = target

	if _, err := fsys.Stat(target); err == nil {
		c.TargetExists = true
	}

	info, err := fsys.Lstat(record.LinkPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.State = StateMissing
			return c, nil
		}
		return c, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %q", record.LinkPath).
			WithDetail("link", record.LinkPath)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		dest, err := fsys.Readlink(record.LinkPath)
		if err != nil {
			return c, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %q", record.LinkPath).
				WithDetail("link", record.LinkPath)
		}
		if pointsTo(fsys, record.LinkPath, dest, target) {
			c.State = StateLinked
			return c, nil
		}
		c.Existing = "symlink to " + dest
	case info.IsDir():
		c.Existing = "directory"
	default:
		c.Existing = "file"
	}

	c.State = StateConflict
	return c, nil
}

// pointsTo reports whether the link at link (with immediate destination
// dest) ends up at target, either literally or once both are resolved.
func pointsTo(fsys types.FS, link, dest, target string) bool {
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(link), dest)
	}
	if filepath.Clean(dest) == target {
		return true
	}

	resolved, err := fsys.EvalSymlinks(link)
	if err != nil {
		return false
	}
	resolvedTarget, err := fsys.EvalSymlinks(target)
	if err != nil {
		return false
	}
	return resolved == resolvedTarget
}
