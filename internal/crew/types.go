package crew

import (
	"context"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
	"github.com/lorenzotomasdiez/debatecrew/internal/openrouter"
)

// LLMClient interface so the OpenRouter client can be mocked.
type LLMClient interface {
	ChatCompletion(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error)
}

// TaskResult is a single completed task within a run.
type TaskResult struct {
	TaskID   string `json:"task_id"`
	Task     string `json:"task"`
	Agent    string `json:"agent"`
	Model    string `json:"model"`
	Output   string `json:"output"`
	Replayed bool   `json:"replayed,omitempty"`
}

// Transcript holds the full state of one run.
type Transcript struct {
	RunID   string        `json:"run_id"`
	Inputs  config.Inputs `json:"inputs"`
	Results []TaskResult  `json:"results"`
}

// Final returns the output of the last completed task, or "".
func (t *Transcript) Final() string {
	if len(t.Results) == 0 {
		return ""
	}
	return t.Results[len(t.Results)-1].Output
}

// Result is the outcome of a kickoff or replay.
type Result struct {
	Transcript *Transcript
	Final      string
}

// RunEvaluation is the scoring contract the evaluation judge must return.
type RunEvaluation struct {
	TaskScores map[string]int `json:"task_scores"`
	Overall    int            `json:"overall_score"`
	Notes      string         `json:"notes"`
}

// Evaluator scores a completed run against the task definitions.
type Evaluator interface {
	Evaluate(ctx context.Context, transcript *Transcript, tasks []TaskSpec) (*RunEvaluation, error)
}
