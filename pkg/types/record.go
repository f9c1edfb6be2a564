package types

import "fmt"

// LinkRecord describes one symlink relationship: a link at LinkPath whose
// target is LocalPath inside the store.
type LinkRecord struct {
	// LocalPath is the target relative to the store root (e.g. "nvim/init.lua").
	LocalPath string `json:"local_path" yaml:"local_path"`

	// LinkPath is where the symlink lives. In a saved record the home
	// directory prefix is replaced by the portable placeholder.
	LinkPath string `json:"link_path" yaml:"link_path"`
}

// String renders the record the way it is shown to users.
func (r LinkRecord) String() string {
	return fmt.Sprintf("%s -> %s", r.LinkPath, r.LocalPath)
}
