package commands

import (
	"github.com/arthur-debert/dotkeeper/pkg/logging"
	"github.com/arthur-debert/dotkeeper/pkg/restorer"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	Options
}

var stateStatus = map[restorer.State]string{
	restorer.StateMissing:  display.StatusMissing,
	restorer.StateLinked:   display.StatusLinked,
	restorer.StateConflict: display.StatusConflict,
}

// Status compares the links file with the filesystem without changing
// anything.
func Status(opts StatusOptions) (*display.Result, error) {
	logger := logging.GetLogger("commands.status")
	done := logging.LogOperationStart(logger, "status")
	defer done()

	env, err := prepare(opts.Options)
	if err != nil {
		return nil, err
	}

	records, err := env.serializer.Read(env.cfg.LinksFile)
	if err != nil {
		return nil, err
	}

	result := env.result("status", false)
	for _, record := range records {
		c, err := restorer.Classify(env.fs, env.store, record)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, entryFor(c, stateStatus[c.State]))
	}
	return result, nil
}
