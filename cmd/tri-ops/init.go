package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the state directory tree",
	Long:  `Creates every well-known subdirectory under the state directory, idempotently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}
		fmt.Println(tree.Root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
