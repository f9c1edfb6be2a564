// Package restorer recreates the symlinks described by a list of records.
//
// Each record goes through a small state machine:
//
//	missing            -> create the link
//	linked             -> nothing to do ("already exists")
//	conflict, confirm  -> remove the existing entry (never recursively), create the link
//	conflict, decline  -> skip the record
//
// The confirmation is injected. Silent is the non-interactive policy: it
// turns every conflict into a RESTORE_CONFLICT error and leaves the
// existing path untouched.
package restorer

import (
	"fmt"

	"github.com/arthur-debert/dotkeeper/pkg/errors"
	"github.com/arthur-debert/dotkeeper/pkg/logging"
	"github.com/arthur-debert/dotkeeper/pkg/types"
)

// Action is what happened (or, in a dry run, would happen) to a record.
type Action string

const (
	ActionCreate    Action = "create"
	ActionUnchanged Action = "unchanged"
	ActionOverwrite Action = "overwrite"
	ActionSkip      Action = "skip"
	// ActionConflict is only reported by dry runs, where nobody is asked.
	ActionConflict Action = "conflict"
)

// Outcome is reported once per processed record.
type Outcome struct {
	Classification
	Action Action
	DryRun bool
}

// Report summarises a restore run.
type Report struct {
	Outcomes []Outcome

	Created     int
	Unchanged   int
	Overwritten int
	Skipped     int
	Conflicts   int
}

// Options configures a restore run.
type Options struct {
	FS types.FS

	// Confirm decides conflicts. Nil behaves like Silent.
	Confirm types.ConfirmFunc

	// DryRun classifies every record and reports what would happen
	// without touching the filesystem or asking for confirmation.
	DryRun bool

	// OnOutcome, when set, is called as soon as a record is processed.
	OnOutcome func(Outcome)
}

// Silent is the confirmation policy of silent mode: every conflict is fatal.
func Silent(req types.ConfirmationRequest) (bool, error) {
	return false, errors.Newf(errors.ErrRestoreConflict, "a link already exists at %q", req.ID).
		WithDetail("link", req.ID)
}

// Restore processes records in order. A declined conflict skips the
// record; any other failure stops the run and returns the report so far.
func Restore(store string, records []types.LinkRecord, opts Options) (Report, error) {
	logger := logging.GetLogger("restorer")

	confirm := opts.Confirm
	if confirm == nil {
		confirm = Silent
	}

	var report Report
	for _, record := range records {
		c, err := Classify(opts.FS, store, record)
		if err != nil {
			return report, err
		}

		logger.Debug().
			Str("link", record.LinkPath).
			Str("target", c.Target).
			Str("state", c.State.String()).
			Msg("Restoring link")

		action, err := apply(opts, confirm, c)
		if err != nil {
			return report, err
		}

		outcome := Outcome{Classification: c, Action: action, DryRun: opts.DryRun}
		report.add(outcome)
		if opts.OnOutcome != nil {
			opts.OnOutcome(outcome)
		}
	}

	logger.Info().
		Int("created", report.Created).
		Int("unchanged", report.Unchanged).
		Int("overwritten", report.Overwritten).
		Int("skipped", report.Skipped).
		Bool("dryRun", opts.DryRun).
		Msg("Restore finished")

	return report, nil
}

func apply(opts Options, confirm types.ConfirmFunc, c Classification) (Action, error) {
	link := c.Record.LinkPath

	switch c.State {
	case StateLinked:
		return ActionUnchanged, nil

	case StateMissing:
		if opts.DryRun {
			return ActionCreate, nil
		}
		if err := createLink(opts.FS, c.Target, link); err != nil {
			return "", err
		}
		return ActionCreate, nil

	default:
		if opts.DryRun {
			return ActionConflict, nil
		}

		approved, err := confirm(types.ConfirmationRequest{
			ID:          link,
			Title:       "Overwrite existing path",
			Description: fmt.Sprintf("A %s already exists at %q. Overwrite it?", c.Existing, link),
			Items:       []string{link},
			Default:     false,
		})
		if err != nil {
			return "", err
		}
		if !approved {
			return ActionSkip, nil
		}

		if err := opts.FS.Remove(link); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRemove, "cannot remove existing %s at %q", c.Existing, link).
				WithDetail("link", link)
		}
		if err := createLink(opts.FS, c.Target, link); err != nil {
			return "", err
		}
		return ActionOverwrite, nil
	}
}

func createLink(fsys types.FS, target, link string) error {
	if err := fsys.Symlink(target, link); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create link %q", link).
			WithDetail("link", link).
			WithDetail("target", target)
	}
	return nil
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Action {
	case ActionCreate:
		r.Created++
	case ActionUnchanged:
		r.Unchanged++
	case ActionOverwrite:
		r.Overwritten++
	case ActionSkip:
		r.Skipped++
	case ActionConflict:
		r.Conflicts++
	}
}
