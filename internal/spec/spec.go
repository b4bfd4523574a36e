// Package spec defines the declarative project specification consumed by
// the generator: an ordered list of projects, each owning a tree of
// directory and file nodes. The specification is loaded once per
// invocation and is immutable during generation.
package spec

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/layoutdev/layout/internal/errors"
)

// DefaultFileName is the specification file looked up when no explicit
// path is given.
const DefaultFileName = "layout.yml"

// Config is the root of a specification: an ordered list of projects.
type Config struct {
	Projects []Project `yaml:"projects"`
}

// Project is one project inside a specification. The root project is
// generated directly under the working root; every other project under a
// subdirectory named after it.
type Project struct {
	Name string     `yaml:"name"`
	Root bool       `yaml:"root,omitempty"`
	Lang string     `yaml:"lang"`
	Tree []*DirNode `yaml:"tree,omitempty"`
	File []FileNode `yaml:"file,omitempty"`
}

// DirNode is a directory entry. A node carries either a name or a git URL
// in From; From nodes are cloned instead of generated and carry no
// children.
type DirNode struct {
	Name string     `yaml:"name,omitempty"`
	From string     `yaml:"from,omitempty"`
	Pub  string     `yaml:"pub,omitempty"`
	Tree []*DirNode `yaml:"tree,omitempty"`
	File []FileNode `yaml:"file,omitempty"`
}

// FileNode is a file entry, named with or without an extension.
type FileNode struct {
	Name string `yaml:"name"`
	Pub  string `yaml:"pub,omitempty"`
}

// UnmarshalYAML accepts both the mapping form ({name: x}) and the common
// scalar shorthand (- x) for file entries.
func (f *FileNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Name = value.Value
		return nil
	}

	type plain FileNode
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = FileNode(p)

	return nil
}

// DirName resolves the on-disk name of a directory node. For clone nodes
// without an explicit name the repository basename is used.
func (d *DirNode) DirName() string {
	if d.Name != "" {
		return d.Name
	}
	if d.From != "" {
		return RepoName(d.From)
	}

	return ""
}

// IsClone reports whether the node mounts an external repository.
func (d *DirNode) IsClone() bool {
	return d.From != ""
}

// RepoName extracts the repository name from a git URL. Both HTTPS and
// SSH forms are supported.
func RepoName(url string) string {
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}

	return url
}

// RootProject returns the project generated at the working root. When no
// project is marked root the first listed project is the root.
func (c *Config) RootProject() *Project {
	for i := range c.Projects {
		if c.Projects[i].Root {
			return &c.Projects[i]
		}
	}
	if len(c.Projects) > 0 {
		return &c.Projects[0]
	}

	return nil
}

// IsRoot reports whether the project at index i is the root project,
// applying the first-listed default.
func (c *Config) IsRoot(i int) bool {
	return &c.Projects[i] == c.RootProject()
}

// Load reads and decodes a specification file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("spec_read", "failed to read specification", err).WithPath(path)
	}

	return Parse(data)
}

// Parse decodes a specification from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewValidationError("spec_parse", "invalid specification YAML: "+err.Error())
	}

	return &cfg, nil
}

// Marshal encodes a specification back to YAML, preserving declaration
// order.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
