package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/lock"
)

var (
	unlockOwner     string
	unlockRequestID string
	unlockForce     bool
)

var unlockBuildCmd = &cobra.Command{
	Use:   "unlock_build",
	Short: "Release the build lock",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		return newLock(tree).Release(lock.ReleaseInput{
			Owner:     unlockOwner,
			RequestID: unlockRequestID,
			Force:     unlockForce,
		})
	},
}

func init() {
	unlockBuildCmd.Flags().StringVar(&unlockOwner, "owner", "", "lock owner (required)")
	unlockBuildCmd.Flags().StringVar(&unlockRequestID, "request-id", "", "associated request id")
	unlockBuildCmd.Flags().BoolVar(&unlockForce, "force", false, "release regardless of current owner")
	_ = unlockBuildCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(unlockBuildCmd)
}
