package scaffold

import (
	stderrors "errors"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/layoutdev/layout/internal/content"
	"github.com/layoutdev/layout/internal/errors"
	"github.com/layoutdev/layout/internal/language"
)

// Tier is the protection classification of a resolved file.
type Tier int

const (
	// TierCode: protected forever. Created once with boilerplate, never
	// touched again. Also the fallback for any unrecognized filename.
	TierCode Tier = 1
	// TierManagement: per-directory aggregator whose marker-delimited
	// region is refreshed on every run.
	TierManagement Tier = 2
	// TierConfig: project manifest created once with canonical content,
	// never touched again.
	TierConfig Tier = 3
)

// Action is the per-node outcome of a materialization.
type Action string

const (
	ActionCreated Action = "created"
	ActionSkipped Action = "skipped"
	ActionMerged  Action = "merged"
	ActionWarned  Action = "warned"
	ActionFailed  Action = "failed"
)

// Resolve maps a declared file name to its final on-disk name and
// protection tier. A name carrying an extension is used verbatim,
// otherwise the language default extension is appended. Exact-filename
// classes (management, config) win over the extension class; everything
// unrecognized is tier 1 so unknown user files are never overwritten.
func Resolve(name string, strat *language.Strategy) (string, Tier) {
	final := strat.FileName(name)

	switch {
	case strat.IsManagement(final):
		return final, TierManagement
	case strat.IsConfig(final):
		return final, TierConfig
	default:
		return final, TierCode
	}
}

// CreateFile materializes a tier-1 or tier-3 file: created with the given
// initial content when absent, skipped unconditionally when present.
func CreateFile(fs billy.Filesystem, path, initial string) (Action, error) {
	if _, err := fs.Stat(path); err == nil {
		return ActionSkipped, nil
	} else if !os.IsNotExist(err) {
		return ActionFailed, errors.NewIOError("file_stat", "failed to stat file", err).WithPath(path)
	}

	if err := util.WriteFile(fs, path, []byte(initial), 0o644); err != nil {
		return ActionFailed, errors.NewIOError("file_create", "failed to create file", err).WithPath(path)
	}

	return ActionCreated, nil
}

// UpdateManaged materializes a tier-2 file: the marker-delimited region
// is replaced with block, everything outside it is preserved. A missing
// file is created as seed, then the marker block, then tail; seed and
// tail become user-owned regions from that point on. Marker corruption
// leaves the file untouched.
func UpdateManaged(fs billy.Filesystem, path, seed, tail, block, startMarker, endMarker string) (Action, error) {
	existing := seed
	existed := false

	if data, err := util.ReadFile(fs, path); err == nil {
		existing = string(data)
		existed = true
	} else if !os.IsNotExist(err) {
		return ActionFailed, errors.NewIOError("file_read", "failed to read file", err).WithPath(path)
	}

	updated, err := content.Splice(existing, block, startMarker, endMarker)
	if err != nil {
		var le *errors.LayoutError
		if stderrors.As(err, &le) {
			le.WithPath(path)
		}
		return ActionFailed, err
	}

	if existed && updated == existing {
		return ActionSkipped, nil
	}

	if !existed {
		updated += tail
	}

	if err := util.WriteFile(fs, path, []byte(updated), 0o644); err != nil {
		return ActionFailed, errors.NewIOError("file_write", "failed to write file", err).WithPath(path)
	}

	if existed {
		return ActionMerged, nil
	}

	return ActionCreated, nil
}
