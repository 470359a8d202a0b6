package main

import (
	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/sink"
)

var (
	heartbeatAgent       string
	heartbeatPhase       string
	heartbeatCurrentTask string
	heartbeatCycle       int
	heartbeatVersion     string
	heartbeatHost        string
)

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Overwrite this agent's presence record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		_, err = newSink(tree).WriteHeartbeat(sink.HeartbeatInput{
			Agent:       heartbeatAgent,
			Host:        heartbeatHost,
			Cycle:       heartbeatCycle,
			Phase:       heartbeatPhase,
			CurrentTask: heartbeatCurrentTask,
			Version:     heartbeatVersion,
		})
		return err
	},
}

func init() {
	heartbeatCmd.Flags().StringVar(&heartbeatAgent, "agent", "", "agent name (required)")
	heartbeatCmd.Flags().StringVar(&heartbeatPhase, "phase", "", "current phase (required)")
	heartbeatCmd.Flags().StringVar(&heartbeatCurrentTask, "current-task", "", "description of the task in progress")
	heartbeatCmd.Flags().IntVar(&heartbeatCycle, "cycle", 0, "agent's own loop counter")
	heartbeatCmd.Flags().StringVar(&heartbeatVersion, "version", "1", "agent build version")
	heartbeatCmd.Flags().StringVar(&heartbeatHost, "host", "", "override hostname (default: local hostname)")
	_ = heartbeatCmd.MarkFlagRequired("agent")
	_ = heartbeatCmd.MarkFlagRequired("phase")
	rootCmd.AddCommand(heartbeatCmd)
}
