package crew

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
)

// TrainingIteration is one full run collected during training.
type TrainingIteration struct {
	Iteration int          `json:"iteration"`
	RunID     string       `json:"run_id"`
	Tasks     []TaskResult `json:"tasks"`
	Final     string       `json:"final"`
}

// TrainingResults is the artifact written by Train.
type TrainingResults struct {
	Motion      string              `json:"motion"`
	CurrentYear string              `json:"current_year"`
	Iterations  []TrainingIteration `json:"iterations"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Train runs the workflow n times and writes the collected results to
// filename as JSON.
func (c *Crew) Train(ctx context.Context, n int, filename string, inputs config.Inputs) (*TrainingResults, error) {
	if n < 1 {
		return nil, fmt.Errorf("crew: training iterations must be >= 1, got %d", n)
	}
	if filename == "" {
		return nil, fmt.Errorf("crew: training filename must not be empty")
	}
	inputs = inputs.Normalize()

	results := &TrainingResults{
		Motion:      inputs.Motion,
		CurrentYear: inputs.CurrentYear,
		CreatedAt:   time.Now(),
	}
	for i := 1; i <= n; i++ {
		res, err := c.Kickoff(ctx, inputs)
		if err != nil {
			return nil, fmt.Errorf("crew: training iteration %d: %w", i, err)
		}
		results.Iterations = append(results.Iterations, TrainingIteration{
			Iteration: i,
			RunID:     res.Transcript.RunID,
			Tasks:     res.Transcript.Results,
			Final:     res.Final,
		})
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return nil, fmt.Errorf("crew: writing training results: %w", err)
	}
	return results, nil
}
