package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for layout.

Examples:
  layout version                  # Show version and commit
  layout version --short          # Show version only
  layout version --format json    # Output as JSON`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	switch versionFormat {
	case "text":
		if versionShort {
			fmt.Println(version.GetVersion())
			return nil
		}
		info := version.GetBuildInfo()
		fmt.Printf("layout %s\n", version.GetShortVersion())
		fmt.Printf("  go:       %s\n", info.GoVersion)
		fmt.Printf("  platform: %s\n", info.Platform)
		return nil

	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(version.GetBuildInfo())

	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}
