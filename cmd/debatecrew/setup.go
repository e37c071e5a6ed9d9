package main

import (
	"fmt"
	"path/filepath"

	"github.com/lorenzotomasdiez/debatecrew/internal/checkpoint"
	"github.com/lorenzotomasdiez/debatecrew/internal/config"
	"github.com/lorenzotomasdiez/debatecrew/internal/crew"
	"github.com/lorenzotomasdiez/debatecrew/internal/crew/eval"
	"github.com/lorenzotomasdiez/debatecrew/internal/crewerr"
	"github.com/lorenzotomasdiez/debatecrew/internal/models"
	"github.com/lorenzotomasdiez/debatecrew/internal/openrouter"
	"github.com/lorenzotomasdiez/debatecrew/internal/output"
	"github.com/spf13/cobra"
)

// definitionDir is where user-supplied agents.yaml/tasks.yaml are looked up;
// the built-in debate definition applies when absent.
const definitionDir = "config"

// session is the wired-up crew plus the configuration it was built from.
type session struct {
	cfg  *config.Config
	crew *crew.Crew
}

// gatherInputs assembles the workflow inputs from flags, filling defaults.
func gatherInputs(cmd *cobra.Command) config.Inputs {
	motion, _ := cmd.Root().PersistentFlags().GetString("motion")
	return config.Inputs{Motion: motion}.Normalize()
}

// newSession merges flags over environment config and wires the crew:
// OpenRouter client, model registry, definitions, checkpoint store, and the
// evaluation judge factory.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.FromEnv()
	flags := cmd.Root().PersistentFlags()
	if v, _ := flags.GetString("api-key"); v != "" {
		cfg.APIKey = v
	}
	if v, _ := flags.GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := flags.GetString("model"); v != "" {
		cfg.Model = v
	}
	if v, _ := flags.GetString("judge-model"); v != "" {
		cfg.JudgeModel = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, crewerr.Usagef("%v", err)
	}

	client := openrouter.New(cfg.APIKey)

	// Fetch live models, fall back to the known free list.
	allModels, err := client.ListModels(cmd.Context())
	if err != nil {
		fmt.Printf("Warning: could not fetch models: %v. Using defaults.\n", err)
		allModels = models.DefaultFreeModels()
	}
	registry := models.NewRegistry(allModels)
	if len(registry.FreeModels()) == 0 {
		registry = models.NewRegistry(models.DefaultFreeModels())
	}

	def, err := crew.LoadDefinition(definitionDir)
	if err != nil {
		return nil, err
	}
	assign := map[string]string{}
	for i, name := range def.AgentNames() {
		override := ""
		switch name {
		case "debater":
			override = cfg.Model
		case "judge":
			override = cfg.JudgeModel
		}
		assign[name] = registry.Pick(override, i)
	}
	def.AssignModels(assign)

	store := checkpoint.NewStore(filepath.Join(cfg.OutputDir, "checkpoints"))
	c := crew.New(def, client, store)
	c.NewEvaluator = func(model string) crew.Evaluator {
		return eval.NewJudge(client, model)
	}
	c.OnTask = output.PrintTask

	return &session{cfg: cfg, crew: c}, nil
}
