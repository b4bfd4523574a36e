// Package language defines the closed set of language strategies the
// generator dispatches on. Each variant is a capability table: default
// extension, protected source extensions, management and config filename
// sets, aggregation-block syntax, and boilerplate templates. The set is
// fixed; there is no plugin lookup.
package language

import (
	"fmt"
	"sort"
	"strings"
)

// Variant names.
const (
	Rust       = "rust"
	Go         = "go"
	Python     = "python"
	TypeScript = "typescript"
	JavaScript = "javascript"
	Any        = "any"
)

// ManagementPolicy controls when a directory gets its aggregator file.
type ManagementPolicy int

const (
	// ManagementNever: the language has no per-directory aggregator.
	ManagementNever ManagementPolicy = iota
	// ManagementAlways: every generated directory gets the aggregator.
	ManagementAlways
	// ManagementExceptTopSrc: every directory except a project-top "src",
	// whose aggregator is the declared main/lib entry file instead.
	ManagementExceptTopSrc
	// ManagementWhenDeclared: only when the spec declares the aggregator
	// file explicitly.
	ManagementWhenDeclared
)

// Export is one child entry feeding an aggregation block.
type Export struct {
	Name string // base name, no extension
	Pub  string // rust visibility setting; empty elsewhere
}

// Strategy is the capability table for one language variant. The first
// entry of ManagementFiles is the directory aggregator; the rest are
// recognized management filenames handled by their own rules.
type Strategy struct {
	Name             string
	DefaultExt       string
	ProtectedExts    []string
	ManagementFiles  []string
	ManagementPolicy ManagementPolicy
	ConfigFiles      []string
	CommentToken     string
	WorkspaceCapable bool
	SupportsClone    bool
}

var variants = map[string]*Strategy{
	Rust: {
		Name:             Rust,
		DefaultExt:       ".rs",
		ProtectedExts:    []string{".rs"},
		ManagementFiles:  []string{"mod.rs", "main.rs", "lib.rs"},
		ManagementPolicy: ManagementExceptTopSrc,
		ConfigFiles:      []string{"Cargo.toml"},
		CommentToken:     "//",
		WorkspaceCapable: true,
	},
	Go: {
		Name:          Go,
		DefaultExt:    ".go",
		ProtectedExts: []string{".go"},
		ConfigFiles:   []string{"go.mod", "go.sum"},
		CommentToken:  "//",
	},
	Python: {
		Name:             Python,
		DefaultExt:       ".py",
		ProtectedExts:    []string{".py"},
		ManagementFiles:  []string{"__init__.py"},
		ManagementPolicy: ManagementAlways,
		ConfigFiles:      []string{"requirements.txt", "setup.py"},
		CommentToken:     "#",
	},
	TypeScript: {
		Name:             TypeScript,
		DefaultExt:       ".ts",
		ProtectedExts:    []string{".ts", ".tsx"},
		ManagementFiles:  []string{"index.ts"},
		ManagementPolicy: ManagementWhenDeclared,
		ConfigFiles:      []string{"package.json", "tsconfig.json"},
		CommentToken:     "//",
	},
	JavaScript: {
		Name:             JavaScript,
		DefaultExt:       ".js",
		ProtectedExts:    []string{".js", ".jsx", ".mjs"},
		ManagementFiles:  []string{"index.js"},
		ManagementPolicy: ManagementWhenDeclared,
		ConfigFiles:      []string{"package.json"},
		CommentToken:     "//",
	},
	Any: {
		Name:          Any,
		CommentToken:  "#",
		SupportsClone: true,
	},
}

// ForName returns the strategy for a language name.
func ForName(name string) (*Strategy, bool) {
	s, ok := variants[name]
	return s, ok
}

// MustForName returns the strategy for a language name and panics on an
// unknown one. Callers run after validation.
func MustForName(name string) *Strategy {
	s, ok := variants[name]
	if !ok {
		panic(fmt.Sprintf("language: unknown variant %q", name))
	}

	return s
}

// Supported reports whether name is a recognized language variant.
func Supported(name string) bool {
	_, ok := variants[name]
	return ok
}

// Names returns all variant names, sorted.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Markers returns the literal sentinel pair delimiting a generator-owned
// region for a given comment token. The text is stable across versions.
func Markers(commentToken string) (start, end string) {
	return commentToken + " start auto managed by layout.",
		commentToken + " end auto managed by layout."
}

// StartMarker returns the sentinel line opening a generator-owned region
// in this language's comment syntax.
func (s *Strategy) StartMarker() string {
	start, _ := Markers(s.CommentToken)
	return start
}

// EndMarker returns the closing sentinel line.
func (s *Strategy) EndMarker() string {
	_, end := Markers(s.CommentToken)
	return end
}

// FileName resolves a declared file name: a name that already carries an
// extension is used verbatim, otherwise the language default extension is
// appended. The any variant appends nothing.
func (s *Strategy) FileName(name string) string {
	if strings.Contains(name, ".") || s.DefaultExt == "" {
		return name
	}

	return name + s.DefaultExt
}

// IsProtected reports whether ext belongs to the protected source set.
func (s *Strategy) IsProtected(ext string) bool {
	for _, p := range s.ProtectedExts {
		if ext == p {
			return true
		}
	}

	return false
}

// IsManagement reports whether filename belongs to this language's
// management-filename set.
func (s *Strategy) IsManagement(filename string) bool {
	for _, m := range s.ManagementFiles {
		if filename == m {
			return true
		}
	}

	return false
}

// Aggregator returns the language's per-directory aggregator filename,
// empty when the language has none.
func (s *Strategy) Aggregator() string {
	if len(s.ManagementFiles) == 0 {
		return ""
	}

	return s.ManagementFiles[0]
}

// IsConfig reports whether filename belongs to the config/manifest set.
func (s *Strategy) IsConfig(filename string) bool {
	for _, c := range s.ConfigFiles {
		if filename == c {
			return true
		}
	}

	return false
}

// BaseName strips a recognized source extension from a declared name so
// it can feed an aggregation block.
func (s *Strategy) BaseName(name string) string {
	for _, ext := range s.ProtectedExts {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}

	return name
}

// AggregationBlock renders the generator-owned region of a management
// file from an ordered list of child base names. The target distinguishes
// rust's main/lib aggregators (private default) from mod.rs (public
// default); other variants ignore it.
func (s *Strategy) AggregationBlock(children []Export, target string) string {
	var lines []string
	for _, c := range children {
		switch s.Name {
		case Rust:
			lines = append(lines, rustVisibility(c.Pub, target)+"mod "+c.Name+";")
		case Python:
			lines = append(lines, "from ."+c.Name+" import *")
		case TypeScript, JavaScript:
			lines = append(lines, "export * from './"+c.Name+"';")
		}
	}

	return strings.Join(lines, "\n")
}

func rustVisibility(pub, target string) string {
	switch pub {
	case "yes":
		return "pub "
	case "no":
		return ""
	case "crate":
		return "pub(crate) "
	case "super":
		return "pub(super) "
	case "":
		if target == "main" {
			return ""
		}
		return "pub "
	default:
		return "pub "
	}
}
