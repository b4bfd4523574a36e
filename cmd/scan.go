package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List files on disk that the specification does not declare",
	Long: `Compare the working tree against the specification's footprint and list
everything on disk the specification does not account for. Only the
topmost unmanaged entry of a subtree is shown.

VCS metadata and build output directories are always excluded; further
patterns come from scan.ignore in .layout.yml.

Examples:
  layout scan                     # Scan against layout.yml
  layout scan --dir ./services    # Scan another working root`,
	RunE: runScan,
}

var scanDir string

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", ".", "Working root to scan")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	specCfg, err := loadSpec(cfg)
	if err != nil {
		return err
	}

	// The spec and tool config files are expected at the working root.
	ignore := append(cfg.IgnorePatterns(), cfg.SpecFile, ".layout.yml")

	scanner := scan.New(osfs.New(scanDir), ignore, newLogger(cfg))
	unmanaged, err := scanner.Unmanaged(cmd.Context(), specCfg)
	if err != nil {
		return err
	}

	if len(unmanaged) == 0 {
		fmt.Println("layout: everything on disk is declared")
		return nil
	}

	for _, p := range unmanaged {
		fmt.Println(p)
	}

	return nil
}
