// Package commands provides the save, restore and status operations.
//
// It sits between the CLI and the core packages: it resolves the
// configuration and the store, runs the scanner, serializer and restorer,
// and returns a display.Result for the renderers.
package commands

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dotkeeper/pkg/config"
	"github.com/arthur-debert/dotkeeper/pkg/filesystem"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
	"github.com/arthur-debert/dotkeeper/pkg/serializer"
	"github.com/arthur-debert/dotkeeper/pkg/types"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// Options is shared by every command.
type Options struct {
	// Config is the loaded, unresolved configuration.
	Config *config.Config

	// Home defaults to the user's home directory.
	Home string

	DryRun bool

	// FS defaults to the real filesystem.
	FS types.FS

	// RecordFS holds the links file. Defaults to the real filesystem.
	RecordFS afero.Fs

	// OnStore, when set, is called with the resolved store before any
	// link is scanned or restored.
	OnStore func(store string)
}

// environment is everything a command needs once paths are resolved.
type environment struct {
	cfg        *config.Config
	home       string
	store      string
	fs         types.FS
	serializer *serializer.Serializer
}

func prepare(opts Options) (*environment, error) {
	home := opts.Home
	if home == "" {
		var err error
		if home, err = paths.GetHomeDirectory(); err != nil {
			return nil, err
		}
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	cfg, err := opts.Config.Resolve(home)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	recordFS := opts.RecordFS
	if recordFS == nil {
		recordFS = filesystem.NewRecordFS()
	}

	store, err := paths.ResolveStore(fsys, cfg.StoreLink)
	if err != nil {
		return nil, err
	}
	if opts.OnStore != nil {
		opts.OnStore(store)
	}

	return &environment{
		cfg:        cfg,
		home:       home,
		store:      store,
		fs:         fsys,
		serializer: serializer.New(recordFS, cfg.Separator, home),
	}, nil
}

func (env *environment) result(command string, dryRun bool) *display.Result {
	return &display.Result{
		Command:   command,
		Store:     env.store,
		LinksFile: env.cfg.LinksFile,
		DryRun:    dryRun,
		Entries:   []display.Entry{},
	}
}

func (env *environment) target(local string) string {
	return filepath.Join(env.store, local)
}
