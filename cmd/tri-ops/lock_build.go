package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/lock"
)

var (
	lockOwner        string
	lockRequestID    string
	lockLeaseSeconds int
	lockForce        bool
)

func runLockAcquire(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tree, err := resolveTree(cfg)
	if err != nil {
		return err
	}

	leaseSeconds := lockLeaseSeconds
	if leaseSeconds == 0 {
		leaseSeconds = cfg.DefaultLeaseSeconds
	}

	_, err = newLock(tree).Acquire(lock.AcquireInput{
		Owner:        lockOwner,
		RequestID:    lockRequestID,
		LeaseSeconds: leaseSeconds,
		Force:        lockForce,
	})
	return err
}

// lockBuildCmd and renewLockCmd are the same operation under two names, per
// the spec's "lock_build / renew_lock" entry: acquiring a free lock and
// renewing one already held by the same owner are a single acquire-or-steal
// semantics.
var lockBuildCmd = &cobra.Command{
	Use:   "lock_build",
	Short: "Acquire the build lock",
	RunE:  runLockAcquire,
}

var renewLockCmd = &cobra.Command{
	Use:   "renew_lock",
	Short: "Renew the build lock (alias of lock_build)",
	RunE:  runLockAcquire,
}

func registerLockFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lockOwner, "owner", "", "lock owner (required)")
	cmd.Flags().StringVar(&lockRequestID, "request-id", "", "associated request id (required)")
	cmd.Flags().IntVar(&lockLeaseSeconds, "lease-seconds", 0, "lease duration (default: config default_lease_seconds)")
	cmd.Flags().BoolVar(&lockForce, "force", false, "steal the lock from another owner")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("request-id")
}

func init() {
	registerLockFlags(lockBuildCmd)
	registerLockFlags(renewLockCmd)
	rootCmd.AddCommand(lockBuildCmd)
	rootCmd.AddCommand(renewLockCmd)
}
