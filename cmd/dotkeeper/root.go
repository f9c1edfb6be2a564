package dotkeeper

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotkeeper/internal/version"
	"github.com/arthur-debert/dotkeeper/pkg/config"
	"github.com/arthur-debert/dotkeeper/pkg/logging"
)

// globalFlags holds the values of the persistent flags.
type globalFlags struct {
	verbosity  int
	dryRun     bool
	configFile string
	separator  string
	linksFile  string
	searchRoot string
	storeLink  string
	exclude    []string
}

// configKeys maps persistent flag names to configuration keys.
var configKeys = map[string]string{
	"separator":   "separator",
	"links-file":  "links_file",
	"search-root": "search_root",
	"store-link":  "store_link",
	"exclude":     "exclude",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dotkeeper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVarP(&flags.separator, "separator", "s", "", MsgFlagSeparator)
	pf.StringVarP(&flags.linksFile, "links-file", "f", "", MsgFlagLinksFile)
	pf.StringVarP(&flags.searchRoot, "search-root", "r", "", MsgFlagSearchRoot)
	pf.StringVar(&flags.storeLink, "store-link", "", MsgFlagStoreLink)
	pf.StringArrayVarP(&flags.exclude, "exclude", "x", nil, MsgFlagExclude)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSaveCmd(flags))
	rootCmd.AddCommand(newRestoreCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig layers the explicitly set flags over the file and
// environment configuration.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	values := map[string]interface{}{
		"separator":   flags.separator,
		"links-file":  flags.linksFile,
		"search-root": flags.searchRoot,
		"store-link":  flags.storeLink,
		"exclude":     flags.exclude,
	}

	overrides := make(map[string]interface{})
	for name, key := range configKeys {
		if cmd.Flags().Changed(name) {
			overrides[key] = values[name]
		}
	}

	return config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		Flags:      overrides,
	})
}
