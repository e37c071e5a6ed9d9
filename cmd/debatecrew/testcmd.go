package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the workflow repeatedly and score it with an evaluation model",
		RunE:  runTest,
	}
	cmd.Flags().Int("iterations", 5, "Number of test iterations")
	cmd.Flags().String("eval-llm", "openai/gpt-4o-mini", "Model used to score each run")
	return cmd
}

func runTest(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")
	evalLLM, _ := cmd.Flags().GetString("eval-llm")

	inputs := gatherInputs(cmd)
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Testing crew for %d iterations...\n", iterations)
	fmt.Printf("Evaluation LLM: %s\n", evalLLM)
	fmt.Printf("Motion: %s\n\n", inputs.Motion)

	report, err := sess.crew.Test(ctx, iterations, evalLLM, inputs)
	if err != nil {
		return crewerr.Wrap("test", err)
	}

	fmt.Printf("\n%s\n", report.String())
	return nil
}
