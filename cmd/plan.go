package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/generator"
	"github.com/layoutdev/layout/internal/scaffold"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview what generation would create, without touching disk",
	Long: `Run the full generation walk against an in-memory filesystem and list
every node a real run would materialize. External repositories are
reported but not cloned.

Examples:
  layout plan                     # Preview layout.yml
  layout plan --spec infra.yml    # Preview a different spec`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	specCfg, err := loadSpec(cfg)
	if err != nil {
		return err
	}

	report, err := generator.Plan(cmd.Context(), specCfg, newLogger(cfg))
	if err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		if o.Action == scaffold.ActionSkipped {
			continue
		}
		fmt.Printf("%-10s %-10s %s\n", o.Action, o.Kind, o.Path)
	}

	return report.Err()
}
