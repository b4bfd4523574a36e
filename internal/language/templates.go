package language

import (
	"fmt"
	"strings"
)

// Boilerplate returns the initial content for a freshly created source
// file. filename is the resolved name, dirName the containing directory.
// Only go files carry boilerplate; the other variants start empty, so
// re-creation can never be confused with a content rewrite.
func (s *Strategy) Boilerplate(filename, dirName string) string {
	if s.Name != Go || !strings.HasSuffix(filename, ".go") {
		return ""
	}

	if strings.TrimSuffix(filename, ".go") == "main" {
		return "package main\n\nfunc main() {\n}\n"
	}

	return "package " + sanitizePackageName(dirName) + "\n"
}

// ConfigFileContent returns the canonical initial content for a tier-3
// config file. Existing files are never touched, so this content only
// ever lands in an absent file.
func (s *Strategy) ConfigFileContent(filename, projectName string) string {
	switch filename {
	case "Cargo.toml":
		return fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n", projectName)
	case "go.mod":
		return fmt.Sprintf("module %s\n\ngo 1.24\n", projectName)
	case "go.sum":
		return ""
	case "package.json":
		return fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"0.1.0\",\n  \"private\": true\n}\n", projectName)
	case "tsconfig.json":
		return "{\n  \"compilerOptions\": {\n    \"target\": \"es2022\",\n    \"module\": \"es2022\",\n    \"strict\": true,\n    \"outDir\": \"dist\"\n  },\n  \"include\": [\"**/*.ts\"]\n}\n"
	case "requirements.txt":
		return ""
	case "setup.py":
		return fmt.Sprintf("from setuptools import setup, find_packages\n\nsetup(\n    name=%q,\n    version=\"0.1.0\",\n    packages=find_packages(),\n)\n", projectName)
	default:
		return ""
	}
}

// WorkspaceManifestName is the manifest emitted at the working root when
// several projects share a workspace-capable language.
const WorkspaceManifestName = "Cargo.toml"

// WorkspaceBlock renders the marker-owned region of the workspace
// manifest: the [workspace] table with its member list. The table header
// lives inside the block so merging into an existing manifest (a root
// rust project's Cargo.toml) yields a real workspace table, not a stray
// members key under whatever table precedes it. Member order follows
// project declaration order.
func (s *Strategy) WorkspaceBlock(members []string) string {
	var b strings.Builder
	b.WriteString("[workspace]\nmembers = [\n")
	for _, m := range members {
		fmt.Fprintf(&b, "    %q,\n", m)
	}
	b.WriteString("]")

	return b.String()
}

// WorkspaceMarkers returns the sentinel pair for the workspace manifest,
// which is TOML and therefore uses # comments.
func WorkspaceMarkers() (start, end string) {
	return Markers("#")
}

func sanitizePackageName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	if name == "" {
		return "main"
	}

	return name
}
