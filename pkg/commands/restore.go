package commands

import (
	"github.com/arthur-debert/dotkeeper/pkg/logging"
	"github.com/arthur-debert/dotkeeper/pkg/restorer"
	"github.com/arthur-debert/dotkeeper/pkg/types"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// RestoreOptions defines the options for the Restore command.
type RestoreOptions struct {
	Options

	// Silent turns every conflict into an error instead of asking.
	Silent bool

	// Confirm is asked about conflicts when Silent is false.
	Confirm types.ConfirmFunc

	// OnOutcome is passed through to the restorer.
	OnOutcome func(restorer.Outcome)
}

var actionStatus = map[restorer.Action]string{
	restorer.ActionCreate:    display.StatusCreated,
	restorer.ActionUnchanged: display.StatusUnchanged,
	restorer.ActionOverwrite: display.StatusOverwritten,
	restorer.ActionSkip:      display.StatusSkipped,
	restorer.ActionConflict:  display.StatusConflict,
}

// Restore reads the links file and recreates every link in it. On a fatal
// error the result still describes the records processed so far.
func Restore(opts RestoreOptions) (*display.Result, error) {
	logger := logging.GetLogger("commands.restore")
	done := logging.LogOperationStart(logger, "restore")
	defer done()

	env, err := prepare(opts.Options)
	if err != nil {
		return nil, err
	}

	records, err := env.serializer.Read(env.cfg.LinksFile)
	if err != nil {
		return nil, err
	}

	confirm := opts.Confirm
	if opts.Silent || confirm == nil {
		confirm = restorer.Silent
	}

	report, err := restorer.Restore(env.store, records, restorer.Options{
		FS:        env.fs,
		Confirm:   confirm,
		DryRun:    opts.DryRun,
		OnOutcome: opts.OnOutcome,
	})

	result := env.result("restore", opts.DryRun)
	for _, o := range report.Outcomes {
		result.Entries = append(result.Entries, entryFor(o.Classification, actionStatus[o.Action]))
	}
	return result, err
}

func entryFor(c restorer.Classification, status string) display.Entry {
	return display.Entry{
		LocalPath:     c.Record.LocalPath,
		LinkPath:      c.Record.LinkPath,
		Target:        c.Target,
		Status:        status,
		Detail:        c.Existing,
		TargetMissing: !c.TargetExists,
	}
}
