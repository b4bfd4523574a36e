package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/fetch"
	"github.com/layoutdev/layout/internal/generator"
	"github.com/layoutdev/layout/internal/scaffold"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Generate the tree declared by the specification",
	Long: `Read the specification file and materialize every declared project:
directories, source files, module aggregators, config manifests, and the
workspace manifest when multiple workspace-capable projects are declared.

Existing source files are never touched. Aggregator files are merged
through their marker-delimited region; everything outside it is
preserved. Repeated runs are idempotent.

Examples:
  layout up                       # Generate from layout.yml
  layout up --spec infra.yml      # Generate from a different spec
  layout up --dir ./services      # Generate under another working root`,
	RunE: runUp,
}

var upDir string

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().StringVarP(&upDir, "dir", "d", ".", "Working root to generate into")
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	specCfg, err := loadSpec(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	fs := osfs.New(upDir)
	gen := generator.New(fs, fetch.NewGitFetcher(upDir), logger)

	report, err := gen.Generate(cmd.Context(), specCfg)
	if err != nil {
		return err
	}

	printSummary(report)

	return report.Err()
}

// printSummary writes the per-action counts and any warnings to the
// terminal. Warnings do not fail the run.
func printSummary(report *generator.Report) {
	counts := report.Counts()
	fmt.Printf("layout: %d created, %d merged, %d skipped\n",
		counts[scaffold.ActionCreated], counts[scaffold.ActionMerged], counts[scaffold.ActionSkipped])

	for _, o := range report.Outcomes {
		if o.Action != scaffold.ActionWarned {
			continue
		}
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", o.Path, o.Err)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s: skipped\n", o.Path)
		}
	}
}
