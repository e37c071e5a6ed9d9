package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lorenzotomasdiez/debatecrew/internal/crew"
	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/lorenzotomasdiez/debatecrew/internal/output"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the debate workflow once",
		RunE:  runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	inputs := gatherInputs(cmd)
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	// Ctrl+C cancels the in-flight run
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	outDir, err := output.CreateOutputDir(sess.cfg.OutputDir, output.GenerateSlug(inputs.Motion))
	if err != nil {
		return crewerr.Wrap("run", err)
	}
	writer := output.NewWriter(outDir)
	sess.crew.OnTask = func(res crew.TaskResult) {
		output.PrintTask(res)
		writer.Log(fmt.Sprintf("[%s] %s (%s): %s", res.Task, res.Agent, res.Model, res.Output))
	}

	fmt.Printf("Starting debate on motion: %s\n", inputs.Motion)
	fmt.Printf("Current year: %s | Output: %s\n\n", inputs.CurrentYear, outDir)

	result, err := sess.crew.Kickoff(ctx, inputs)
	if err != nil {
		return crewerr.Wrap("run", err)
	}

	if err := writer.WriteJSON(result.Transcript); err != nil {
		return crewerr.Wrap("run", err)
	}
	if err := writer.WriteMarkdown(result.Transcript); err != nil {
		return crewerr.Wrap("run", err)
	}
	if err := writer.WriteLog(); err != nil {
		return crewerr.Wrap("run", err)
	}

	output.PrintResult(result.Final)
	fmt.Printf("\nDebate complete. Output saved to: %s\n", outDir)
	return nil
}
