package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/scaffold"
	"github.com/layoutdev/layout/internal/spec"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Write a starter specification file",
	Long: `Create a starter specification in the current directory. An existing
specification file is never overwritten.

Examples:
  layout new                      # Write layout.yml for a project named after the spec
  layout new api                  # Write layout.yml for a project named api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	name := "app"
	if len(args) > 0 {
		name = args[0]
	}

	starter := &spec.Config{Projects: []spec.Project{{
		Name: name,
		Lang: "go",
		Tree: []*spec.DirNode{{
			Name: "pkg",
			File: []spec.FileNode{{Name: "main"}},
		}},
	}}}

	data, err := starter.Marshal()
	if err != nil {
		return err
	}

	action, err := scaffold.CreateFile(osfs.New("."), cfg.SpecFile, string(data))
	if err != nil {
		return err
	}

	if action == scaffold.ActionSkipped {
		return fmt.Errorf("%s already exists, not overwriting", cfg.SpecFile)
	}

	fmt.Printf("Wrote %s\n", cfg.SpecFile)

	return nil
}
