// Package scan compares a working tree against the footprint a
// specification would generate and reports everything on disk that the
// specification does not account for.
package scan

import (
	"context"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"

	"github.com/layoutdev/layout/internal/generator"
	"github.com/layoutdev/layout/internal/logging"
	"github.com/layoutdev/layout/internal/spec"
)

// Scanner walks a filesystem and classifies entries against a
// specification's planned footprint.
type Scanner struct {
	fs     billy.Filesystem
	ignore []string
	logger logging.Logger
}

// New creates a scanner over fs. ignore holds doublestar patterns matched
// against slash-separated paths relative to the working root.
func New(fs billy.Filesystem, ignore []string, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Scanner{
		fs:     fs,
		ignore: ignore,
		logger: logger.WithComponent("scan"),
	}
}

// Unmanaged returns the paths present on the filesystem that cfg does not
// declare, sorted. Only the topmost unmanaged entry of a subtree is
// reported; its contents are implied. The contents of external repository
// nodes are never descended into.
func (s *Scanner) Unmanaged(ctx context.Context, cfg *spec.Config) ([]string, error) {
	report, err := generator.Plan(ctx, cfg, logging.NewNopLogger())
	if err != nil {
		return nil, err
	}

	managed := make(map[string]bool, len(report.Outcomes))
	opaque := make(map[string]bool)
	for _, o := range report.Outcomes {
		managed[o.Path] = true
		if o.Kind == generator.KindRepository {
			opaque[o.Path] = true
		}
	}

	var unmanaged []string
	if err := s.walk(".", managed, opaque, &unmanaged); err != nil {
		return nil, err
	}

	sort.Strings(unmanaged)
	s.logger.Debug(ctx, "scan complete", "unmanaged", len(unmanaged))

	return unmanaged, nil
}

func (s *Scanner) walk(dir string, managed, opaque map[string]bool, out *[]string) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		p := entry.Name()
		if dir != "." {
			p = dir + "/" + entry.Name()
		}

		if s.ignored(p) {
			continue
		}

		if !managed[p] {
			*out = append(*out, p)
			continue
		}

		if entry.IsDir() && !opaque[p] {
			if err := s.walk(p, managed, opaque, out); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Scanner) ignored(p string) bool {
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}

	return false
}
