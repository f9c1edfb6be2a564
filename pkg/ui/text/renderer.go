// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotkeeper/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult writes a header, one line per entry and a summary.
func (r *Renderer) RenderResult(result *display.Result) error {
	if result == nil {
		return nil
	}

	if result.Message != "" {
		if _, err := fmt.Fprintln(r.output, result.Message); err != nil {
			return err
		}
	}

	header := result.Command
	if result.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintf(r.output, "%s: %s\n", header, result.LinksFile); err != nil {
		return err
	}

	for _, e := range result.Entries {
		if _, err := fmt.Fprintf(r.output, "  %-11s %s\n", e.Status, Line(e)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.output, result.Summary())
	return err
}

// Line formats an entry without its status.
func Line(e display.Entry) string {
	target := e.Target
	if target == "" {
		target = e.LocalPath
	}
	line := fmt.Sprintf("%s -> %s", e.LinkPath, target)
	if e.Detail != "" {
		line += fmt.Sprintf(" (%s)", e.Detail)
	}
	if e.TargetMissing {
		line += " [target missing]"
	}
	return line
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
