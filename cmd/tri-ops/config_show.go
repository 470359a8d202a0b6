package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/config"
)

var configShowCmd = &cobra.Command{
	Use:   "config_show",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(cfg)
		}

		dir, ok := config.ResolveStateDir(stateDirFlag, cfg)
		if !ok {
			dir = "(unset)"
		}
		fmt.Printf("state_dir=%s\n", dir)
		fmt.Printf("output=%s\n", cfg.Output)
		fmt.Printf("default_lease_seconds=%d\n", cfg.DefaultLeaseSeconds)
		fmt.Printf("log_level=%s\n", cfg.LogLevel)
		fmt.Printf("log_json=%t\n", cfg.LogJSON)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configShowCmd)
}
