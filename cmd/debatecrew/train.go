package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run the workflow repeatedly and save the collected results",
		RunE:  runTrain,
	}
	cmd.Flags().Int("iterations", 5, "Number of training iterations")
	cmd.Flags().String("filename", "training_results.json", "Output file for training results")
	return cmd
}

func runTrain(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")
	filename, _ := cmd.Flags().GetString("filename")

	inputs := gatherInputs(cmd)
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Training crew for %d iterations...\n", iterations)
	fmt.Printf("Motion: %s\n", inputs.Motion)
	fmt.Printf("Results will be saved to: %s\n\n", filename)

	results, err := sess.crew.Train(ctx, iterations, filename, inputs)
	if err != nil {
		return crewerr.Wrap("train", err)
	}

	fmt.Printf("\nTraining complete: %d iteration(s) saved to %s\n", len(results.Iterations), filename)
	return nil
}
