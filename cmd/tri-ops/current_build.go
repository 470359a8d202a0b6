package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/currentbuild"
)

var (
	currentBuildProject string
	currentBuildField   string
)

var currentBuildCmd = &cobra.Command{
	Use:   "current_build",
	Short: "Print a project's current-build pointer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		cb, found, err := newCurrentBuild(tree).Read(currentBuildProject)
		if err != nil {
			return err
		}
		if !found {
			return inputErrorf("no current-build pointer for project %q", currentBuildProject)
		}

		if currentBuildField == "" {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(cb)
		}

		value, ok := currentbuild.Field(cb, currentBuildField)
		if !ok {
			return inputErrorf("field %q not present in the record", currentBuildField)
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	currentBuildCmd.Flags().StringVar(&currentBuildProject, "project", "", "project name (required)")
	currentBuildCmd.Flags().StringVar(&currentBuildField, "field", "", "print a single field instead of the entire record")
	_ = currentBuildCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(currentBuildCmd)
}
