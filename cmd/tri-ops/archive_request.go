package main

import (
	"github.com/spf13/cobra"
)

var archiveRequestID string

var archiveRequestCmd = &cobra.Command{
	Use:   "archive_request",
	Short: "Move a request (and its claim, if any) into the archive tree",
	Long: `Moves ops/requests/<id>.json to ops/archive/requests/<id>.json, and
ops/claims/<id>.json alongside into ops/archive/claims/<id>.json if present.
A missing request is a no-op returning exit 0: the operation is idempotent.
It is never invoked implicitly by any other command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		_, err = newArchive(tree).ArchiveRequest(archiveRequestID)
		return err
	},
}

func init() {
	archiveRequestCmd.Flags().StringVar(&archiveRequestID, "id", "", "request id (required)")
	_ = archiveRequestCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(archiveRequestCmd)
}
