package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/claims"
)

var (
	renewClaimID           string
	renewClaimAgent        string
	renewClaimLeaseSeconds int
	renewClaimForce        bool
)

var renewClaimCmd = &cobra.Command{
	Use:   "renew_claim",
	Short: "Refresh or reclaim a request's lease",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		leaseSeconds := renewClaimLeaseSeconds
		if leaseSeconds == 0 {
			leaseSeconds = cfg.DefaultLeaseSeconds
		}

		_, err = newClaims(tree).Renew(claims.RenewInput{
			ID:           renewClaimID,
			Agent:        renewClaimAgent,
			LeaseSeconds: leaseSeconds,
			Force:        renewClaimForce,
		})
		return err
	},
}

func init() {
	renewClaimCmd.Flags().StringVar(&renewClaimID, "id", "", "request id (required)")
	renewClaimCmd.Flags().StringVar(&renewClaimAgent, "agent", "", "renewing agent (required)")
	renewClaimCmd.Flags().IntVar(&renewClaimLeaseSeconds, "lease-seconds", 0, "lease duration (default: config default_lease_seconds)")
	renewClaimCmd.Flags().BoolVar(&renewClaimForce, "force", false, "reclaim even if held by another agent")
	_ = renewClaimCmd.MarkFlagRequired("id")
	_ = renewClaimCmd.MarkFlagRequired("agent")
	rootCmd.AddCommand(renewClaimCmd)
}
