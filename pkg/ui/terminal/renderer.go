// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
	"github.com/arthur-debert/dotkeeper/pkg/ui/styles"
)

var statusStyles = map[string]string{
	display.StatusSaved:       "Created",
	display.StatusCreated:     "Created",
	display.StatusLinked:      "Linked",
	display.StatusUnchanged:   "Linked",
	display.StatusOverwritten: "Overwritten",
	display.StatusSkipped:     "Skipped",
	display.StatusConflict:    "Conflict",
	display.StatusMissing:     "Missing",
}

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a command result with styled statuses and paths
func (r *Renderer) RenderResult(result *display.Result) error {
	if result == nil {
		return nil
	}

	if result.Message != "" {
		if err := r.RenderMessage(result.Message); err != nil {
			return err
		}
	}

	if result.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle("DryRunBanner").Render("DRY RUN: nothing was changed")); err != nil {
			return err
		}
	}

	header := styles.GetStyle("Header").Render(result.Command) + " " +
		styles.GetStyle("Muted").Render(result.LinksFile)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	for _, e := range result.Entries {
		if _, err := fmt.Fprintf(r.output, "  %s %s\n", renderStatus(e.Status), renderEntry(e)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.output, styles.GetStyle("Summary").Render(result.Summary()))
	return err
}

func renderStatus(status string) string {
	return styles.GetStyle(statusStyles[status]).Render(status)
}

func renderEntry(e display.Entry) string {
	target := e.Target
	if target == "" {
		target = e.LocalPath
	}
	out := styles.GetStyle("FilePath").Render(e.LinkPath) +
		styles.GetStyle("Arrow").Render(" -> ") +
		styles.GetStyle("Muted").Render(target)
	if e.Detail != "" {
		out += " " + styles.GetStyle("Warning").Render("("+e.Detail+")")
	}
	if e.TargetMissing {
		out += " " + styles.GetStyle("Error").Render("[target missing]")
	}
	return out
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
