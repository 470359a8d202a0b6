package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/currentbuild"
)

var (
	writeCurrentProject     string
	writeCurrentPath        string
	writeCurrentExecutable  string
	writeCurrentBuildCommit string
	writeCurrentBuildID     string
	writeCurrentRequestID   string
	writeCurrentNotes       string
)

var writeCurrentCmd = &cobra.Command{
	Use:   "write_current",
	Short: "Fully replace a project's current-build pointer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		_, err = newCurrentBuild(tree).Write(currentbuild.WriteInput{
			Project:     writeCurrentProject,
			Path:        writeCurrentPath,
			Executable:  writeCurrentExecutable,
			BuildCommit: writeCurrentBuildCommit,
			BuildID:     writeCurrentBuildID,
			RequestID:   writeCurrentRequestID,
			Notes:       writeCurrentNotes,
		})
		return err
	},
}

func init() {
	writeCurrentCmd.Flags().StringVar(&writeCurrentProject, "project", "", "project name (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentPath, "path", "", "build output path (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentExecutable, "executable", "", "executable name (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentBuildCommit, "build-commit", "", "commit that was built (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentBuildID, "build-id", "", "build identifier (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentRequestID, "request-id", "", "originating request id (required)")
	writeCurrentCmd.Flags().StringVar(&writeCurrentNotes, "notes", "", "free-form notes")
	_ = writeCurrentCmd.MarkFlagRequired("project")
	_ = writeCurrentCmd.MarkFlagRequired("path")
	_ = writeCurrentCmd.MarkFlagRequired("executable")
	_ = writeCurrentCmd.MarkFlagRequired("build-commit")
	_ = writeCurrentCmd.MarkFlagRequired("build-id")
	_ = writeCurrentCmd.MarkFlagRequired("request-id")
	rootCmd.AddCommand(writeCurrentCmd)
}
