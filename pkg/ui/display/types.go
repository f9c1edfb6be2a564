// Package display holds the structures commands hand to the renderers.
package display

import (
	"fmt"
	"sort"
	"strings"
)

// Entry statuses. Save reports StatusSaved, status reports the
// classification states and restore reports the action taken.
const (
	StatusSaved       = "saved"
	StatusLinked      = "linked"
	StatusMissing     = "missing"
	StatusConflict    = "conflict"
	StatusCreated     = "created"
	StatusUnchanged   = "unchanged"
	StatusOverwritten = "overwritten"
	StatusSkipped     = "skipped"
)

// Result is the output of a save, restore or status command.
type Result struct {
	Command   string  `json:"command" yaml:"command"`
	Store     string  `json:"store" yaml:"store"`
	LinksFile string  `json:"linksFile" yaml:"linksFile"`
	DryRun    bool    `json:"dryRun" yaml:"dryRun"`
	Message   string  `json:"message,omitempty" yaml:"message,omitempty"`
	Entries   []Entry `json:"entries" yaml:"entries"`
}

// Entry is one link as seen by a command.
type Entry struct {
	LocalPath string `json:"localPath" yaml:"localPath"`
	LinkPath  string `json:"linkPath" yaml:"linkPath"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	Status    string `json:"status" yaml:"status"`

	// Detail describes what blocks the link path on a conflict.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// TargetMissing is set when the store no longer holds the target.
	TargetMissing bool `json:"targetMissing,omitempty" yaml:"targetMissing,omitempty"`
}

// Counts returns the number of entries per status.
func (r *Result) Counts() map[string]int {
	counts := make(map[string]int)
	for _, e := range r.Entries {
		counts[e.Status]++
	}
	return counts
}

// Summary renders the counts as "2 created, 1 unchanged", sorted by status.
func (r *Result) Summary() string {
	counts := r.Counts()
	if len(counts) == 0 {
		return "no links"
	}

	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
	}
	return strings.Join(parts, ", ")
}
