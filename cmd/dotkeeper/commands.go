package dotkeeper

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotkeeper/internal/version"
	"github.com/arthur-debert/dotkeeper/pkg/commands"
	"github.com/arthur-debert/dotkeeper/pkg/config"
	"github.com/arthur-debert/dotkeeper/pkg/restorer"
	"github.com/arthur-debert/dotkeeper/pkg/ui"
	"github.com/arthur-debert/dotkeeper/pkg/ui/confirmations"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
	"github.com/arthur-debert/dotkeeper/pkg/ui/styles"
)

// commandOptions loads the configuration and fills the shared options.
func commandOptions(cmd *cobra.Command, flags *globalFlags) (commands.Options, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return commands.Options{}, err
	}
	return commands.Options{
		Config:  cfg,
		DryRun:  flags.dryRun,
		OnStore: func(store string) { progress(cmd.ErrOrStderr(), MsgStoreFound, store) },
	}, nil
}

// progress writes a line to w, which is stderr, so it shows up ahead of
// any prompt and never mixes with the rendered result.
func progress(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(w, styles.GetStyle("Muted").Render(fmt.Sprintf(format, args...)))
}

// render writes result in the format chosen with -o.
func render(cmd *cobra.Command, output string, result *display.Result) error {
	format, err := ui.ParseFormat(output)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func newSaveCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   MsgSaveShort,
		Long:    MsgSaveLong,
		Example: MsgSaveExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commandOptions(cmd, flags)
			if err != nil {
				return err
			}

			result, err := commands.Save(commands.SaveOptions{Options: opts})
			if err != nil {
				return err
			}

			log.Info().Str("store", result.Store).Int("links", len(result.Entries)).Msg("Save finished")
			return render(cmd, output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func newRestoreCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		silent bool
	)

	cmd := &cobra.Command{
		Use:     "restore",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commandOptions(cmd, flags)
			if err != nil {
				return err
			}

			result, err := commands.Restore(commands.RestoreOptions{
				Options: opts,
				Silent:  silent,
				Confirm: confirmations.NewConsole().Confirm,
				OnOutcome: func(o restorer.Outcome) {
					progress(cmd.ErrOrStderr(), MsgRestoring, o.Record.LinkPath, o.Target, o.Action)
					log.Info().
						Str("link", o.Record.LinkPath).
						Str("target", o.Target).
						Str("action", string(o.Action)).
						Msg("Restoring link")
				},
			})
			if result != nil {
				if rerr := render(cmd, output, result); rerr != nil && err == nil {
					err = rerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&silent, "silent", false, MsgFlagSilent)
	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := commandOptions(cmd, flags)
			if err != nil {
				return err
			}

			result, err := commands.Status(commands.StatusOptions{Options: opts})
			if err != nil {
				return err
			}
			return render(cmd, output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			content, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionLine, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitLine, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltLine, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf(MsgUnknownShell, args[0])
		},
	}
}
