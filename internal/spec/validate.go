package spec

import (
	"fmt"
	"strings"

	"github.com/layoutdev/layout/internal/errors"
	"github.com/layoutdev/layout/internal/language"
)

// Validate checks the structural invariants of a specification before any
// filesystem mutation. Validation is all-or-nothing: every violation is
// collected and a single error reports them all.
func Validate(cfg *Config) error {
	var problems []string

	if len(cfg.Projects) == 0 {
		problems = append(problems, "specification must contain at least one project")
	}

	roots := 0
	seen := make(map[string]bool)
	for i := range cfg.Projects {
		p := &cfg.Projects[i]
		path := fmt.Sprintf("projects[%d]", i)

		if p.Root {
			roots++
		}

		if p.Name == "" {
			problems = append(problems, path+".name: project name cannot be empty")
		} else if seen[p.Name] {
			problems = append(problems, fmt.Sprintf("%s.name: duplicate project name %q", path, p.Name))
		}
		seen[p.Name] = true

		if !language.Supported(p.Lang) {
			problems = append(problems, fmt.Sprintf("%s.lang: unsupported language %q", path, p.Lang))
		}

		for j, f := range p.File {
			if f.Name == "" {
				problems = append(problems, fmt.Sprintf("%s.file[%d].name: file name cannot be empty", path, j))
			}
		}

		for j, d := range p.Tree {
			problems = append(problems, validateDir(d, fmt.Sprintf("%s.tree[%d]", path, j), p.Lang)...)
		}
	}

	if roots > 1 {
		problems = append(problems, "at most one project may set root: true")
	}

	if len(problems) > 0 {
		return errors.NewValidationError("spec_invalid",
			"specification validation failed:\n  "+strings.Join(problems, "\n  "))
	}

	return nil
}

func validateDir(d *DirNode, path, lang string) []string {
	var problems []string

	if d.Name == "" && d.From == "" {
		problems = append(problems, path+": node must have either 'name' or 'from'")
	}

	if d.From != "" {
		if len(d.Tree) > 0 || len(d.File) > 0 {
			problems = append(problems, path+": 'from' is mutually exclusive with 'tree' and 'file'")
		}
		if lang != language.Any {
			problems = append(problems, fmt.Sprintf("%s: 'from' requires lang %q, project uses %q", path, language.Any, lang))
		}
	}

	if name := d.DirName(); strings.ContainsAny(name, `/\`) {
		problems = append(problems, fmt.Sprintf("%s.name: %q cannot contain path separators", path, name))
	}

	for j, f := range d.File {
		if f.Name == "" {
			problems = append(problems, fmt.Sprintf("%s.file[%d].name: file name cannot be empty", path, j))
		}
	}

	for j, sub := range d.Tree {
		problems = append(problems, validateDir(sub, fmt.Sprintf("%s.tree[%d]", path, j), lang)...)
	}

	return problems
}
