// Package generator walks a validated specification tree and materializes
// it on a filesystem: directories first, then file children, then
// subdirectories, strictly in declaration order. A final pass emits or
// merges the multi-project workspace manifest. The walk is single-threaded
// and every operation is idempotent or skip-on-exists, so an interrupted
// run resumes safely.
package generator

import (
	"context"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/layoutdev/layout/internal/fetch"
	"github.com/layoutdev/layout/internal/language"
	"github.com/layoutdev/layout/internal/logging"
	"github.com/layoutdev/layout/internal/scaffold"
	"github.com/layoutdev/layout/internal/spec"
)

// Generator materializes specification trees. The filesystem is the only
// shared resource; one generator process per working root.
type Generator struct {
	fs      billy.Filesystem
	fetcher fetch.Fetcher
	logger  logging.Logger
}

// New creates a generator running against fs. fetcher handles external
// repository nodes; it may be nil when the specification contains none.
func New(fs billy.Filesystem, fetcher fetch.Fetcher, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Generator{
		fs:      fs,
		fetcher: fetcher,
		logger:  logger.WithComponent("generator"),
	}
}

// nodeContext threads the traversal state through the walk instead of
// relying on ambient process state.
type nodeContext struct {
	project *spec.Project
	strat   *language.Strategy
	dir     string // current path relative to the working root
	top     bool   // direct child of the project base
	entry   string // declared src entry file (main.rs/lib.rs), if any
}

// Generate validates cfg and materializes every project. Validation
// failures abort before any mutation; generation-phase failures are
// recorded per node and the run continues wherever children remain
// reachable.
func (g *Generator) Generate(ctx context.Context, cfg *spec.Config) (*Report, error) {
	if err := spec.Validate(cfg); err != nil {
		return nil, err
	}

	report := &Report{}

	for i := range cfg.Projects {
		project := &cfg.Projects[i]

		base := "."
		if !cfg.IsRoot(i) {
			base = project.Name
		}

		g.logger.Info(ctx, "generating project", "name", project.Name, "lang", project.Lang, "base", base)
		g.generateProject(ctx, report, project, base)
	}

	g.emitWorkspace(ctx, report, cfg)

	return report, nil
}

// Plan runs the identical walk against an empty in-memory filesystem and
// reports what a real run would create, without touching disk. Clone
// nodes are reported but not fetched.
func Plan(ctx context.Context, cfg *spec.Config, logger logging.Logger) (*Report, error) {
	return New(memfs.New(), planFetcher{}, logger).Generate(ctx, cfg)
}

// planFetcher satisfies clone nodes during a dry run.
type planFetcher struct{}

func (planFetcher) Fetch(context.Context, string, string) error { return nil }

func (g *Generator) generateProject(ctx context.Context, report *Report, project *spec.Project, base string) {
	strat := language.MustForName(project.Lang)

	if base != "." {
		if !g.ensureDir(report, base) {
			return
		}
	}

	// Tier-3 project manifests, created once.
	for _, cf := range strat.ConfigFiles {
		p := join(base, cf)
		action, err := scaffold.CreateFile(g.fs, p, strat.ConfigFileContent(cf, project.Name))
		report.add(p, KindFile, action, err)
	}

	// Project-level file nodes live directly under the project base.
	nc := nodeContext{project: project, strat: strat, dir: base, top: true, entry: srcEntry(strat, project)}
	for _, f := range project.File {
		if strat.ManagementPolicy == language.ManagementExceptTopSrc {
			if final, tier := scaffold.Resolve(f.Name, strat); tier == scaffold.TierManagement && final != strat.Aggregator() {
				// main/lib declared at project level select the src entry
				// file; nothing is created at the project base.
				continue
			}
		}
		g.createFileNode(ctx, report, nc, f, "")
	}

	for _, node := range project.Tree {
		g.walkDir(ctx, report, nc, node)
	}
}

// walkDir materializes one directory node: the directory itself, its file
// children, its subdirectories, then the directory's management file.
func (g *Generator) walkDir(ctx context.Context, report *Report, parent nodeContext, node *spec.DirNode) {
	dirPath := join(parent.dir, node.DirName())

	if node.IsClone() {
		g.fetchRepo(ctx, report, node, dirPath)
		return
	}

	if !g.ensureDir(report, dirPath) {
		// Children have nowhere to be placed; the subtree is aborted.
		return
	}

	nc := nodeContext{project: parent.project, strat: parent.strat, dir: dirPath, top: false, entry: parent.entry}

	aggName, aggTarget, aggTail, emit := aggregatorFor(parent.strat, node, parent.top, parent.entry)

	for _, f := range node.File {
		g.createFileNode(ctx, report, nc, f, aggName)
	}

	for _, sub := range node.Tree {
		g.walkDir(ctx, report, nc, sub)
	}

	if emit {
		block := parent.strat.AggregationBlock(exportsOf(parent.strat, node, aggName), aggTarget)
		p := join(dirPath, aggName)
		action, err := scaffold.UpdateManaged(g.fs, p, "", aggTail, block, parent.strat.StartMarker(), parent.strat.EndMarker())
		if err != nil {
			g.logger.Error(ctx, err, "management file update failed", "path", p)
		}
		report.add(p, KindFile, action, err)
	}
}

// createFileNode materializes one declared file node according to its
// protection tier. A declared node resolving to the directory's active
// aggregator is left to the aggregation step.
func (g *Generator) createFileNode(ctx context.Context, report *Report, nc nodeContext, f spec.FileNode, aggName string) {
	final, tier := scaffold.Resolve(f.Name, nc.strat)
	p := join(nc.dir, final)

	var initial string
	switch tier {
	case scaffold.TierManagement:
		if final == aggName {
			return
		}
		// A declared management file that is not this directory's
		// aggregator is created empty and protected like code.
	case scaffold.TierConfig:
		initial = nc.strat.ConfigFileContent(final, nc.project.Name)
	default:
		initial = nc.strat.Boilerplate(final, path.Base(nc.dir))
	}

	action, err := scaffold.CreateFile(g.fs, p, initial)
	if err != nil {
		g.logger.Error(ctx, err, "file creation failed", "path", p)
	}
	report.add(p, KindFile, action, err)
}

// fetchRepo mounts an external repository node. An existing target means
// the node is already materialized; a clone failure degrades to a
// warning and the run continues.
func (g *Generator) fetchRepo(ctx context.Context, report *Report, node *spec.DirNode, dirPath string) {
	if _, err := g.fs.Stat(dirPath); err == nil {
		report.add(dirPath, KindRepository, scaffold.ActionSkipped, nil)
		return
	}

	if g.fetcher == nil {
		report.add(dirPath, KindRepository, scaffold.ActionWarned, nil)
		return
	}

	g.logger.Info(ctx, "cloning repository", "url", node.From, "path", dirPath)
	if err := g.fetcher.Fetch(ctx, node.From, dirPath); err != nil {
		g.logger.Warn(ctx, err, "clone failed, continuing", "path", dirPath)
		report.add(dirPath, KindRepository, scaffold.ActionWarned, err)
		return
	}

	report.add(dirPath, KindRepository, scaffold.ActionCreated, nil)
}

// emitWorkspace merges the workspace manifest when more than one project
// uses the workspace-capable language. Members follow declaration order;
// hand-added members outside the marker block survive.
func (g *Generator) emitWorkspace(ctx context.Context, report *Report, cfg *spec.Config) {
	var strat *language.Strategy
	var members []string
	count := 0

	for i := range cfg.Projects {
		p := &cfg.Projects[i]
		s := language.MustForName(p.Lang)
		if !s.WorkspaceCapable {
			continue
		}
		count++
		strat = s
		if !cfg.IsRoot(i) {
			members = append(members, p.Name)
		}
	}

	if count < 2 {
		return
	}

	start, end := language.WorkspaceMarkers()
	block := strat.WorkspaceBlock(members)

	action, err := scaffold.UpdateManaged(g.fs, language.WorkspaceManifestName,
		"", "", block, start, end)
	if err != nil {
		g.logger.Error(ctx, err, "workspace manifest update failed")
	}
	report.add(language.WorkspaceManifestName, KindWorkspace, action, err)
}

// ensureDir creates a directory node and records its outcome. Returns
// false when the directory could not be created.
func (g *Generator) ensureDir(report *Report, dirPath string) bool {
	existed := false
	if fi, err := g.fs.Stat(dirPath); err == nil && fi.IsDir() {
		existed = true
	}

	if err := scaffold.EnsureDir(g.fs, dirPath); err != nil {
		report.add(dirPath, KindDirectory, scaffold.ActionFailed, err)
		return false
	}

	if existed {
		report.add(dirPath, KindDirectory, scaffold.ActionSkipped, nil)
	} else {
		report.add(dirPath, KindDirectory, scaffold.ActionCreated, nil)
	}

	return true
}

// aggregatorFor decides which management file a directory gets, if any.
// entry is the project's declared src entry file.
func aggregatorFor(strat *language.Strategy, node *spec.DirNode, top bool, entry string) (name, target, tail string, emit bool) {
	switch strat.ManagementPolicy {
	case language.ManagementAlways:
		return strat.Aggregator(), "", "", true

	case language.ManagementExceptTopSrc:
		if node.DirName() == "src" {
			// src never gets a mod.rs at any depth; a project-top src
			// aggregates into its declared entry file instead.
			if !top {
				return "", "", "", false
			}
			switch entry {
			case "main.rs":
				return "main.rs", "main", "\nfn main() {\n    println!(\"Hello, world!\");\n}\n", true
			case "lib.rs":
				return "lib.rs", "lib", "", true
			default:
				return "", "", "", false
			}
		}
		return strat.Aggregator(), "mod", "", true

	case language.ManagementWhenDeclared:
		if declares(strat, node, strat.Aggregator()) {
			return strat.Aggregator(), "", "", true
		}
		return "", "", "", false

	default:
		return "", "", "", false
	}
}

// srcEntry resolves which entry file a project's top src directory
// aggregates into. A main or lib declaration at project level or inside
// the top src directory selects it; main takes precedence over lib.
func srcEntry(strat *language.Strategy, project *spec.Project) string {
	if strat.ManagementPolicy != language.ManagementExceptTopSrc {
		return ""
	}

	var src *spec.DirNode
	for _, node := range project.Tree {
		if !node.IsClone() && node.DirName() == "src" {
			src = node
			break
		}
	}

	for _, name := range []string{"main.rs", "lib.rs"} {
		if declaresIn(strat, project.File, name) {
			return name
		}
		if src != nil && declares(strat, src, name) {
			return name
		}
	}

	return ""
}

// declares reports whether a directory node declares a file resolving to
// filename.
func declares(strat *language.Strategy, node *spec.DirNode, filename string) bool {
	return declaresIn(strat, node.File, filename)
}

func declaresIn(strat *language.Strategy, files []spec.FileNode, filename string) bool {
	for _, f := range files {
		if strat.FileName(f.Name) == filename {
			return true
		}
	}

	return false
}

// exportsOf collects the ordered child base names feeding a directory's
// aggregation block: protected source files first, then subdirectories,
// both in declaration order. Management filenames never export
// themselves.
func exportsOf(strat *language.Strategy, node *spec.DirNode, aggName string) []language.Export {
	var exports []language.Export

	for _, f := range node.File {
		final := strat.FileName(f.Name)
		if strat.IsManagement(final) || !strat.IsProtected(path.Ext(final)) {
			continue
		}
		exports = append(exports, language.Export{Name: strat.BaseName(final), Pub: f.Pub})
	}

	for _, sub := range node.Tree {
		if sub.IsClone() {
			continue
		}
		exports = append(exports, language.Export{Name: sub.DirName(), Pub: sub.Pub})
	}

	return exports
}

func join(dir, name string) string {
	if dir == "." || dir == "" {
		return name
	}

	return path.Join(dir, name)
}
