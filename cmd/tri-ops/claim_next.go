package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	claimNextAgent        string
	claimNextLeaseSeconds int
)

var claimNextCmd = &cobra.Command{
	Use:   "claim_next",
	Short: "Claim the highest-priority available request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		leaseSeconds := claimNextLeaseSeconds
		if leaseSeconds == 0 {
			leaseSeconds = cfg.DefaultLeaseSeconds
		}

		result, err := newQueue(tree).ClaimNext(claimNextAgent, leaseSeconds)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(struct {
				ID      string `json:"id"`
				Request any    `json:"request"`
			}{ID: result.ID, Request: result.Request})
		}
		fmt.Println(result.ID)
		return nil
	},
}

func init() {
	claimNextCmd.Flags().StringVar(&claimNextAgent, "agent", "", "claiming agent (required)")
	claimNextCmd.Flags().IntVar(&claimNextLeaseSeconds, "lease-seconds", 0, "lease duration (default: config default_lease_seconds)")
	_ = claimNextCmd.MarkFlagRequired("agent")
	rootCmd.AddCommand(claimNextCmd)
}
