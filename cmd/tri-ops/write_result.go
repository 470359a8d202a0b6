package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/sink"
)

var (
	writeResultID                 string
	writeResultStatus             string
	writeResultPublishedBuildPath string
	writeResultBuildCommit        string
	writeResultLogs               []string
	writeResultError              string
)

var writeResultCmd = &cobra.Command{
	Use:   "write_result",
	Short: "Overwrite a request's outcome record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		_, err = newSink(tree).WriteResult(sink.ResultInput{
			ID:                 writeResultID,
			Status:             writeResultStatus,
			PublishedBuildPath: writeResultPublishedBuildPath,
			BuildCommit:        writeResultBuildCommit,
			Logs:               writeResultLogs,
			Error:              writeResultError,
		})
		return err
	},
}

func init() {
	writeResultCmd.Flags().StringVar(&writeResultID, "id", "", "request id (required)")
	writeResultCmd.Flags().StringVar(&writeResultStatus, "status", "", "outcome status (required)")
	writeResultCmd.Flags().StringVar(&writeResultPublishedBuildPath, "published-build-path", "", "path of the published artifact (required)")
	writeResultCmd.Flags().StringVar(&writeResultBuildCommit, "build-commit", "", "commit that was built (required)")
	writeResultCmd.Flags().StringArrayVar(&writeResultLogs, "log", nil, "log line (repeatable)")
	writeResultCmd.Flags().StringVar(&writeResultError, "error", "", "error message, if the build failed")
	_ = writeResultCmd.MarkFlagRequired("id")
	_ = writeResultCmd.MarkFlagRequired("status")
	_ = writeResultCmd.MarkFlagRequired("published-build-path")
	_ = writeResultCmd.MarkFlagRequired("build-commit")
	rootCmd.AddCommand(writeResultCmd)
}
