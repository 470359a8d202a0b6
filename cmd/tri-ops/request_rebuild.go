package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/queue"
)

var (
	requestRequestedBy string
	requestProjects    []string
	requestProjectsCSV string
	requestReason      string
	requestPriority    string
	requestBuildCommit string
	requestNotes       string
	requestType        string
	requestID          string
)

var requestRebuildCmd = &cobra.Command{
	Use:   "request_rebuild",
	Short: "Enqueue a rebuild request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tree, err := resolveTree(cfg)
		if err != nil {
			return err
		}

		projects := queue.NormalizeProjects(requestProjects, requestProjectsCSV)

		var priority any
		if requestPriority != "" {
			priority = requestPriority
		}

		req, err := newQueue(tree).Enqueue(queue.EnqueueInput{
			ID:                 requestID,
			Type:               requestType,
			Projects:           projects,
			Reason:             requestReason,
			RequestedBy:        requestRequestedBy,
			Priority:           priority,
			DesiredBuildCommit: requestBuildCommit,
			Notes:              requestNotes,
		})
		if err != nil {
			return err
		}

		fmt.Println(req.ID)
		return nil
	},
}

func init() {
	requestRebuildCmd.Flags().StringVar(&requestRequestedBy, "requested-by", "", "requesting agent (required)")
	requestRebuildCmd.Flags().StringArrayVar(&requestProjects, "project", nil, "project name (repeatable)")
	requestRebuildCmd.Flags().StringVar(&requestProjectsCSV, "projects", "", "comma-separated project names")
	requestRebuildCmd.Flags().StringVar(&requestReason, "reason", "", "human-readable justification")
	requestRebuildCmd.Flags().StringVar(&requestPriority, "priority", "normal", "integer, numeric string, or named tier")
	requestRebuildCmd.Flags().StringVar(&requestBuildCommit, "desired-build-commit", "", "pin to a specific commit")
	requestRebuildCmd.Flags().StringVar(&requestNotes, "notes", "", "free-form notes")
	requestRebuildCmd.Flags().StringVar(&requestType, "type", "rebuild", "request type")
	requestRebuildCmd.Flags().StringVar(&requestID, "id", "", "explicit request id (default: a new UUIDv4)")
	_ = requestRebuildCmd.MarkFlagRequired("requested-by")
	rootCmd.AddCommand(requestRebuildCmd)
}
