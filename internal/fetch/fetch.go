// Package fetch mounts external repositories into the generated tree by
// cloning them. Failures are non-fatal by contract: the generator records
// a warning and continues with the remaining nodes.
package fetch

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/layoutdev/layout/internal/errors"
)

// Fetcher clones an external repository into a target path relative to
// the working root. The generator skips the call entirely when the target
// already exists.
type Fetcher interface {
	Fetch(ctx context.Context, url, target string) error
}

// GitFetcher clones with the git binary. Going through git itself means
// SSH and HTTPS remotes both work with the user's existing transport
// configuration.
type GitFetcher struct {
	// Root is the absolute working root the generator runs against.
	Root string
}

// NewGitFetcher returns a fetcher cloning under root.
func NewGitFetcher(root string) *GitFetcher {
	return &GitFetcher{Root: root}
}

// Fetch runs git clone url into target. The returned error carries the
// fetch-warning type so callers can degrade it to a warning outcome.
func (g *GitFetcher) Fetch(ctx context.Context, url, target string) error {
	dest := filepath.Join(g.Root, target)

	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = "git clone failed"
		}
		return errors.NewFetchWarning("clone_failed", msg, err).WithPath(target)
	}

	return nil
}
