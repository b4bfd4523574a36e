// Package scaffold materializes single nodes of the specification tree on
// a filesystem: idempotent directory creation and tiered file creation.
// All access goes through billy.Filesystem so the same code runs against
// the real filesystem and the in-memory one used by plan mode and tests.
package scaffold

import (
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/layoutdev/layout/internal/errors"
)

// EnsureDir creates path and any missing ancestors. It is a no-op when
// path already exists as a directory and fails when it exists as
// anything else.
func EnsureDir(fs billy.Filesystem, path string) error {
	if fi, err := fs.Stat(path); err == nil {
		if fi.IsDir() {
			return nil
		}
		return errors.NewIOError("dir_collision", "path exists and is not a directory", nil).WithPath(path)
	} else if !os.IsNotExist(err) {
		return errors.NewIOError("dir_stat", "failed to stat directory", err).WithPath(path)
	}

	if err := fs.MkdirAll(path, 0o755); err != nil {
		return errors.NewIOError("dir_create", "failed to create directory", err).WithPath(path)
	}

	return nil
}
