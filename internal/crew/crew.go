// Package crew orchestrates a sequential multi-agent workflow: each task is
// handed to its agent's model with the outputs of prior tasks as context,
// and every completed task is checkpointed so a run can be replayed.
package crew

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lorenzotomasdiez/debatecrew/internal/checkpoint"
	"github.com/lorenzotomasdiez/debatecrew/internal/config"
	"github.com/lorenzotomasdiez/debatecrew/internal/openrouter"
)

// Crew runs a definition's task sequence against an LLM client.
type Crew struct {
	def   Definition
	llm   LLMClient
	store *checkpoint.Store

	// NewEvaluator builds the scoring judge for Test. Wired by the caller
	// so the eval package can depend on this one.
	NewEvaluator func(model string) Evaluator
	// OnTask fires after each completed task.
	OnTask func(TaskResult)
}

// New creates a Crew. store may be nil to disable checkpointing.
func New(def Definition, llm LLMClient, store *checkpoint.Store) *Crew {
	return &Crew{def: def, llm: llm, store: store}
}

// Kickoff executes the full task sequence once and returns the final task's
// output as the result.
func (c *Crew) Kickoff(ctx context.Context, inputs config.Inputs) (*Result, error) {
	inputs = inputs.Normalize()
	resolved := c.def.Interpolate(inputs)
	transcript := &Transcript{RunID: uuid.NewString(), Inputs: inputs}
	if err := c.runFrom(ctx, resolved, transcript, 0); err != nil {
		return nil, err
	}
	return &Result{Transcript: transcript, Final: transcript.Final()}, nil
}

// Replay resumes a recorded run from the task identified by taskID: earlier
// task outputs are reused from their checkpoints, the named task and
// everything after it execute fresh.
func (c *Crew) Replay(ctx context.Context, taskID string) (*Result, error) {
	if c.store == nil {
		return nil, fmt.Errorf("crew: no checkpoint store configured")
	}
	target, err := c.store.Find(taskID)
	if err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}
	recorded, err := c.store.Run(target.RunID)
	if err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}

	inputs := target.Inputs.Normalize()
	resolved := c.def.Interpolate(inputs)
	if target.Index >= len(resolved.Tasks) {
		return nil, fmt.Errorf("crew: checkpoint index %d out of range for %d tasks", target.Index, len(resolved.Tasks))
	}
	if got := resolved.Tasks[target.Index].Name; got != target.Task {
		return nil, fmt.Errorf("crew: checkpoint task %q does not match task %q at position %d of the current definition", target.Task, got, target.Index)
	}

	transcript := &Transcript{RunID: uuid.NewString(), Inputs: inputs}
	for _, rec := range recorded {
		if rec.Index >= target.Index {
			break
		}
		res := TaskResult{
			TaskID:   uuid.NewString(),
			Task:     rec.Task,
			Agent:    rec.Agent,
			Model:    rec.Model,
			Output:   rec.Output,
			Replayed: true,
		}
		transcript.Results = append(transcript.Results, res)
		// Re-save under the new run id so the replayed run is itself
		// replayable from any task.
		if err := c.checkpointResult(transcript, res, rec.Index); err != nil {
			return nil, err
		}
		if c.OnTask != nil {
			c.OnTask(res)
		}
	}
	if len(transcript.Results) != target.Index {
		return nil, fmt.Errorf("crew: run %q is missing checkpoints before task %q", target.RunID, taskID)
	}

	if err := c.runFrom(ctx, resolved, transcript, target.Index); err != nil {
		return nil, err
	}
	return &Result{Transcript: transcript, Final: transcript.Final()}, nil
}

func (c *Crew) runFrom(ctx context.Context, resolved Definition, transcript *Transcript, start int) error {
	for i := start; i < len(resolved.Tasks); i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("crew: %w", err)
		}
		task := resolved.Tasks[i]
		agent := resolved.Agents[task.Agent]

		msgs := taskMessages(agent, task, transcript)
		resp, err := c.llm.ChatCompletion(ctx, openrouter.ChatRequest{
			Model:    agent.Model,
			Messages: msgs,
		})
		if err != nil {
			return fmt.Errorf("crew: task %s: %w", task.Name, err)
		}

		res := TaskResult{
			TaskID: uuid.NewString(),
			Task:   task.Name,
			Agent:  task.Agent,
			Model:  agent.Model,
			Output: resp.Content(),
		}
		transcript.Results = append(transcript.Results, res)
		if err := c.checkpointResult(transcript, res, i); err != nil {
			return err
		}
		if c.OnTask != nil {
			c.OnTask(res)
		}
	}
	return nil
}

func (c *Crew) checkpointResult(transcript *Transcript, res TaskResult, index int) error {
	if c.store == nil {
		return nil
	}
	rec := checkpoint.Record{
		TaskID:    res.TaskID,
		RunID:     transcript.RunID,
		Index:     index,
		Task:      res.Task,
		Agent:     res.Agent,
		Model:     res.Model,
		Output:    res.Output,
		Inputs:    transcript.Inputs,
		CreatedAt: time.Now(),
	}
	if err := c.store.Save(rec); err != nil {
		return fmt.Errorf("crew: %w", err)
	}
	return nil
}
