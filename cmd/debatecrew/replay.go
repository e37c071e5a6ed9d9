package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/lorenzotomasdiez/debatecrew/internal/output"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Resume a recorded run from a task checkpoint",
		RunE:  runReplay,
	}
	cmd.Flags().String("task-id", "", "Task ID to replay from (required)")
	cmd.MarkFlagRequired("task-id")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("task-id")
	// Checked before any wiring so a blank id never reaches the crew.
	if strings.TrimSpace(taskID) == "" {
		return crewerr.Usagef("task-id is required for replay")
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Replaying from task: %s\n\n", taskID)

	result, err := sess.crew.Replay(ctx, taskID)
	if err != nil {
		return crewerr.Wrap("replay", err)
	}

	output.PrintResult(result.Final)
	return nil
}
