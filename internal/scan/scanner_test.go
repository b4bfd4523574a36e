package scan

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layoutdev/layout/internal/generator"
	"github.com/layoutdev/layout/internal/spec"
)

func loadConfig(t *testing.T, yml string) *spec.Config {
	t.Helper()
	cfg, err := spec.Parse([]byte(yml))
	require.NoError(t, err)
	return cfg
}

func TestUnmanagedEmptyOnGeneratedTree(t *testing.T) {
	cfg := loadConfig(t, `
projects:
  - name: api
    lang: go
    tree:
      - name: pkg
        file:
          - name: client
`)
	fs := memfs.New()
	_, err := generator.New(fs, nil, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	unmanaged, err := New(fs, nil, nil).Unmanaged(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, unmanaged)
}

func TestUnmanagedReportsStrayFiles(t *testing.T) {
	cfg := loadConfig(t, `
projects:
  - name: api
    lang: go
    tree:
      - name: pkg
        file:
          - name: client
`)
	fs := memfs.New()
	_, err := generator.New(fs, nil, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(fs, "pkg/helper.go", []byte("package pkg\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "notes.txt", []byte("todo\n"), 0o644))

	unmanaged, err := New(fs, nil, nil).Unmanaged(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt", "pkg/helper.go"}, unmanaged)
}

func TestUnmanagedReportsOnlyTopmostEntry(t *testing.T) {
	cfg := loadConfig(t, `
projects:
  - name: api
    lang: go
`)
	fs := memfs.New()
	_, err := generator.New(fs, nil, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(fs, "scratch/deep/file.go", []byte("x"), 0o644))

	unmanaged, err := New(fs, nil, nil).Unmanaged(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"scratch"}, unmanaged)
}

func TestUnmanagedHonorsIgnorePatterns(t *testing.T) {
	cfg := loadConfig(t, `
projects:
  - name: api
    lang: go
`)
	fs := memfs.New()
	_, err := generator.New(fs, nil, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(fs, ".git/HEAD", []byte("ref\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "layout.yml", []byte("project: []\n"), 0o644))

	unmanaged, err := New(fs, []string{".git", ".git/**", "layout.yml"}, nil).Unmanaged(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, unmanaged)
}

func TestUnmanagedSkipsRepositoryContents(t *testing.T) {
	cfg := loadConfig(t, `
projects:
  - name: api
    lang: any
    tree:
      - from: git@github.com:acme/tools.git
`)
	fs := memfs.New()
	// Simulate a completed clone with arbitrary contents.
	require.NoError(t, util.WriteFile(fs, "tools/src/lib.rs", []byte("x"), 0o644))

	unmanaged, err := New(fs, nil, nil).Unmanaged(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, unmanaged)
}

func TestUnmanagedRejectsInvalidSpec(t *testing.T) {
	cfg := &spec.Config{}

	_, err := New(memfs.New(), nil, nil).Unmanaged(context.Background(), cfg)
	require.Error(t, err)
}
