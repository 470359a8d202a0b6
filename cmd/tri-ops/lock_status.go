package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errLockFree signals an unheld lock to Execute's exit-code mapping; it
// falls through exitCodeFor's default case to exit code 1.
var errLockFree = errors.New("build lock is free")

var lockStatusCmd = &cobra.Command{
	Use:   "lock_status",
	Short: "Report whether the build lock is currently held",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		lk, held, err := newLock(tree).Status()
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(lk); err != nil {
				return err
			}
		} else if held {
			fmt.Println(lk.Owner)
		} else {
			fmt.Println("free")
		}

		if !held {
			return errLockFree
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockStatusCmd)
}
