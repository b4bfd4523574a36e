package generator

import (
	"fmt"
	"strings"

	"github.com/layoutdev/layout/internal/scaffold"
)

// NodeKind classifies what a report entry refers to.
type NodeKind string

const (
	KindDirectory  NodeKind = "directory"
	KindFile       NodeKind = "file"
	KindRepository NodeKind = "repository"
	KindWorkspace  NodeKind = "workspace"
)

// Outcome is the result of materializing one node.
type Outcome struct {
	Path   string
	Kind   NodeKind
	Action scaffold.Action
	Err    error
}

// Report aggregates per-node outcomes for one generation run. Generation
// is best-effort: failures are recorded here instead of aborting the run.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(path string, kind NodeKind, action scaffold.Action, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Path: path, Kind: kind, Action: action, Err: err})
}

// Failed reports whether any node failed.
func (r *Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Action == scaffold.ActionFailed {
			return true
		}
	}

	return false
}

// Warned reports whether any node produced a warning.
func (r *Report) Warned() bool {
	for _, o := range r.Outcomes {
		if o.Action == scaffold.ActionWarned {
			return true
		}
	}

	return false
}

// Counts returns the number of outcomes per action.
func (r *Report) Counts() map[scaffold.Action]int {
	counts := make(map[scaffold.Action]int)
	for _, o := range r.Outcomes {
		counts[o.Action]++
	}

	return counts
}

// Err returns an aggregate error when any node failed, nil otherwise.
// Warnings alone do not produce an error.
func (r *Report) Err() error {
	var failed []string
	for _, o := range r.Outcomes {
		if o.Action == scaffold.ActionFailed {
			failed = append(failed, fmt.Sprintf("%s: %v", o.Path, o.Err))
		}
	}

	if len(failed) == 0 {
		return nil
	}

	return fmt.Errorf("generation failed for %d node(s):\n  %s", len(failed), strings.Join(failed, "\n  "))
}
