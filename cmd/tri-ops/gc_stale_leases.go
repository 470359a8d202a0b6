package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var gcPruneClaims bool

var gcStaleLeasesCmd = &cobra.Command{
	Use:   "gc_stale_leases",
	Short: "Sweep the expired build lock and, optionally, expired claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		counts, err := newGC(tree).Sweep(gcPruneClaims)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(counts)
		}
		fmt.Printf("locks=%d claims=%d\n", counts.Locks, counts.Claims)
		return nil
	},
}

func init() {
	gcStaleLeasesCmd.Flags().BoolVar(&gcPruneClaims, "prune-claims", false, "also delete claim files whose lease has expired")
	rootCmd.AddCommand(gcStaleLeasesCmd)
}
