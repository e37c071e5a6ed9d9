package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "debatecrew",
		Short:         "Run, train, replay, and test an LLM debate crew",
		Long:          "debatecrew orchestrates a structured debate between LLM agents: a debater argues both sides of a motion and a judge decides the winner. Runs can be repeated for training, replayed from a task checkpoint, and scored by an evaluation model.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("api-key", "", "OpenRouter API key (overrides OPENROUTER_API_KEY env var)")
	root.PersistentFlags().String("output-dir", "", "Output directory for run artifacts (default: output)")
	root.PersistentFlags().String("motion", "", "Debate motion (default: built-in motion)")
	root.PersistentFlags().String("model", "", "Model for the debater agent (default: a free model from the registry)")
	root.PersistentFlags().String("judge-model", "", "Model for the judge agent (default: a free model from the registry)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newTrainCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newTestCmd())
	return root
}

// dispatchArgs maps a bare invocation to a plain run with default inputs.
func dispatchArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"run"}
	}
	return args
}

func main() {
	_ = godotenv.Load()

	root := newRootCmd()
	root.SetArgs(dispatchArgs(os.Args[1:]))

	if err := root.Execute(); err != nil {
		switch crewerr.KindOf(err) {
		case crewerr.Canceled:
			fmt.Fprintln(os.Stderr, "Operation cancelled")
		default:
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
