// Package scanner finds the symlinks under a search root that resolve into
// the store.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/logging"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
	"github.com/arthur-debert/dotkeeper/pkg/serializer"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// Options configures a scan. StoreRoot must already be resolved.
type Options struct {
	StoreRoot  string
	SearchRoot string

	// Home is the prefix rewritten to the placeholder in every record.
	Home string

	// SelfReference is the store link. Nothing at or below it is reported.
	SelfReference string

	// Separator may not appear in either field of a record. Empty means
	// serializer.DefaultSeparator.
	Separator string

	// Exclude holds doublestar patterns matched against paths relative to
	// SearchRoot.
	Exclude []string

	FS types.FS
}

// Scan walks opts.SearchRoot and returns one record per symlink that
// resolves into the store. The order of the result is unspecified.
//
// A search root that is itself a symlink to a directory is followed. Link
// paths keep the search root's spelling.
func Scan(opts Options) ([]types.LinkRecord, error) {
	logger := logging.GetLogger("scanner")

	if opts.Separator == "" {
		opts.Separator = serializer.DefaultSeparator
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrConfigValid, "invalid exclude pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}

	walkRoot, err := followRoot(opts.FS, opts.SearchRoot)
	if err != nil {
		return nil, err
	}
	if walkRoot != opts.SearchRoot {
		logger.Debug().Str("root", opts.SearchRoot).Str("resolved", walkRoot).Msg("Following symlinked search root")
	}

	var records []types.LinkRecord

	err = opts.FS.WalkDir(walkRoot, func(found string, d fs.DirEntry, err error) error {
		path := respell(walkRoot, opts.SearchRoot, found)
		if err != nil {
			if path == opts.SearchRoot {
				return errors.Wrapf(err, errors.ErrWalk, "cannot read search root %q", path)
			}
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if path != opts.SearchRoot && excluded(opts, path) {
			logger.Trace().Str("path", path).Msg("Excluded")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// Links inside the store are never reported.
			if paths.Within(opts.StoreRoot, found) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}

		record, ok, err := inspect(opts, found, path)
		if err != nil {
			return err
		}
		if ok {
			logger.Debug().Str("link", record.LinkPath).Str("local", record.LocalPath).Msg("Found link")
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// followRoot returns the directory to walk for root: root itself, or its
// resolved form when root is a symlink to a directory.
func followRoot(fsys types.FS, root string) (string, error) {
	info, err := fsys.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		// WalkDir reports a missing root itself
		return root, nil
	}
	if target, err := fsys.Stat(root); err != nil || !target.IsDir() {
		return root, nil
	}
	resolved, err := fsys.EvalSymlinks(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrWalk, "cannot resolve search root %q", root).
			WithDetail("path", root)
	}
	return resolved, nil
}

// respell maps a path under the walked directory back under root.
func respell(walked, root, path string) string {
	if walked == root {
		return path
	}
	rel, err := filepath.Rel(walked, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// inspect turns a single symlink into a record. found is where the walk
// found the link and link is the same entry spelled under the search root. ok is
// false when the link does not qualify or was dropped with a warning.
func inspect(opts Options, found, link string) (record types.LinkRecord, ok bool, err error) {
	logger := logging.GetLogger("scanner")

	if paths.Within(opts.StoreRoot, found) {
		return record, false, nil
	}
	if opts.SelfReference != "" && (paths.Within(opts.SelfReference, link) || paths.Within(opts.SelfReference, found)) {
		return record, false, nil
	}

	target, err := resolve(opts.FS, found)
	if err != nil {
		logger.Warn().Err(err).Str("path", link).Msg("Skipping unresolvable link")
		return record, false, nil
	}

	local, inside := paths.RelativeTo(opts.StoreRoot, target)
	if !inside {
		return record, false, nil
	}
	if local == "" {
		return record, false, errors.Newf(errors.ErrStructure,
			"link %q resolves to the store root itself, local path would be empty", link).
			WithDetail("link", link)
	}
	if paths.HasPlaceholderPrefix(local) {
		logger.Warn().Str("path", link).Str("local", local).
			Msg("Store path starts with the home placeholder and will be skipped")
		return record, false, nil
	}

	record = types.LinkRecord{
		LocalPath: paths.Portable(local, opts.Home),
		LinkPath:  paths.Portable(link, opts.Home),
	}

	if strings.Contains(record.LocalPath, opts.Separator) || strings.Contains(record.LinkPath, opts.Separator) {
		logger.Warn().Str("path", link).Str("local", local).
			Msg("Link has the separator in its path and will be skipped")
		return types.LinkRecord{}, false, nil
	}

	return record, true, nil
}

// resolve fully dereferences link. A dangling link is resolved as far as
// its parent directory allows, so a link to a deleted store file still
// maps into the store.
func resolve(fsys types.FS, link string) (string, error) {
	target, err := fsys.EvalSymlinks(link)
	if err == nil {
		return target, nil
	}

	dest, err := fsys.Readlink(link)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(link), dest)
	}
	dest = filepath.Clean(dest)

	if dir, err := fsys.EvalSymlinks(filepath.Dir(dest)); err == nil {
		return filepath.Join(dir, filepath.Base(dest)), nil
	}
	return dest, nil
}

func excluded(opts Options, path string) bool {
	if len(opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(opts.SearchRoot, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range opts.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
