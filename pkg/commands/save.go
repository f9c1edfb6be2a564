package commands

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/dotkeeper/pkg/logging"
	"github.com/arthur-debert/dotkeeper/pkg/paths"
	"github.com/arthur-debert/dotkeeper/pkg/scanner"
	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// SaveOptions defines the options for the Save command.
type SaveOptions struct {
	Options
}

// Save scans the search root for links into the store and writes them to
// the links file. Records are sorted by link path so that saving an
// unchanged tree rewrites an identical file.
func Save(opts SaveOptions) (*display.Result, error) {
	logger := logging.GetLogger("commands.save")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	env, err := prepare(opts.Options)
	if err != nil {
		return nil, err
	}

	records, err := scanner.Scan(scanner.Options{
		StoreRoot:     env.store,
		SearchRoot:    env.cfg.SearchRoot,
		Home:          env.home,
		SelfReference: env.cfg.StoreLink,
		Separator:     env.cfg.Separator,
		Exclude:       env.cfg.Exclude,
		FS:            env.fs,
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		logger.Warn().Str("searchRoot", env.cfg.SearchRoot).Str("store", env.store).
			Msg("No links into the store were found")
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].LinkPath < records[j].LinkPath
	})

	result := env.result("save", opts.DryRun)
	for _, r := range records {
		result.Entries = append(result.Entries, display.Entry{
			LocalPath: r.LocalPath,
			LinkPath:  paths.Expand(r.LinkPath, env.home),
			Target:    env.target(r.LocalPath),
			Status:    display.StatusSaved,
		})
	}

	if opts.DryRun {
		result.Message = fmt.Sprintf("Would write %d links to %s", len(records), env.cfg.LinksFile)
		return result, nil
	}

	if err := env.serializer.Write(env.cfg.LinksFile, records); err != nil {
		return nil, err
	}
	result.Message = fmt.Sprintf("Saved %d links to %s", len(records), env.cfg.LinksFile)

	logger.Info().Int("records", len(records)).Str("linksFile", env.cfg.LinksFile).Msg("Links saved")
	return result, nil
}
