package dotkeeper

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Save and restore linked dotfiles"
	MsgSaveShort       = "Record the links that point into the store"
	MsgRestoreShort    = "Recreate the links recorded in the links file"
	MsgStatusShort     = "Compare the links file with the filesystem"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgStoreFound   = "Dotkeep found at %q"
	MsgRestoring    = "Restoring %s -> %s (%s)"
	MsgVersionLine  = "dotkeeper version %s\n"
	MsgCommitLine   = "  commit: %s\n"
	MsgBuiltLine    = "  built:  %s\n"
	MsgNoCommand    = "no command specified"
	MsgUnknownShell = "unknown shell: %s"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/dotkeeper/config.toml)"
	MsgFlagSeparator  = "Character separating the fields of a record (default TAB)"
	MsgFlagLinksFile  = "Links file to write or read (default \"links\")"
	MsgFlagSearchRoot = "Directory scanned for links (default ~)"
	MsgFlagStoreLink  = "Symlink pointing at the store (default ~/.dotkeep-link)"
	MsgFlagExclude    = "Glob pattern, relative to the search root, to skip (repeatable)"
	MsgFlagSilent     = "Never prompt; treat every conflict as an error"
	MsgFlagOutput     = "Output format: auto, term, text, json or yaml"
	MsgFlagDefaults   = "Print the built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/save-long.txt
	msgSaveLongRaw string
	MsgSaveLong    = strings.TrimSpace(msgSaveLongRaw)

	//go:embed msgs/save-example.txt
	msgSaveExampleRaw string
	MsgSaveExample    = strings.TrimRight(msgSaveExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/restore-example.txt
	msgRestoreExampleRaw string
	MsgRestoreExample    = strings.TrimRight(msgRestoreExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
