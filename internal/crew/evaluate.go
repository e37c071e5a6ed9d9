package crew

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
)

// IterationScore holds the evaluator's verdict for one test run.
type IterationScore struct {
	Iteration  int            `json:"iteration"`
	RunID      string         `json:"run_id"`
	TaskScores map[string]int `json:"task_scores"`
	Overall    int            `json:"overall_score"`
	Notes      string         `json:"notes"`
}

// TestReport aggregates evaluator scores across test iterations.
type TestReport struct {
	EvalModel  string           `json:"eval_model"`
	Iterations []IterationScore `json:"iterations"`
}

// TaskAverages returns the mean score per task name.
func (r *TestReport) TaskAverages() map[string]float64 {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, it := range r.Iterations {
		for task, score := range it.TaskScores {
			sums[task] += score
			counts[task]++
		}
	}
	avgs := make(map[string]float64, len(sums))
	for task, sum := range sums {
		avgs[task] = float64(sum) / float64(counts[task])
	}
	return avgs
}

// OverallAverage returns the mean overall score across iterations.
func (r *TestReport) OverallAverage() float64 {
	if len(r.Iterations) == 0 {
		return 0
	}
	sum := 0
	for _, it := range r.Iterations {
		sum += it.Overall
	}
	return float64(sum) / float64(len(r.Iterations))
}

// String renders the report as a plain score table.
func (r *TestReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Evaluation (%s) over %d iteration(s)\n", r.EvalModel, len(r.Iterations))

	avgs := r.TaskAverages()
	tasks := make([]string, 0, len(avgs))
	for task := range avgs {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)
	for _, task := range tasks {
		fmt.Fprintf(&sb, "  %-12s %.1f/10\n", task, avgs[task])
	}
	fmt.Fprintf(&sb, "  %-12s %.1f/10", "overall", r.OverallAverage())
	return sb.String()
}

// Test runs the workflow n times, scoring each run with the evaluation
// model, and returns the aggregated report.
func (c *Crew) Test(ctx context.Context, n int, evalModel string, inputs config.Inputs) (*TestReport, error) {
	if n < 1 {
		return nil, fmt.Errorf("crew: test iterations must be >= 1, got %d", n)
	}
	if c.NewEvaluator == nil {
		return nil, fmt.Errorf("crew: no evaluator configured")
	}
	evaluator := c.NewEvaluator(evalModel)

	inputs = inputs.Normalize()
	resolved := c.def.Interpolate(inputs)

	report := &TestReport{EvalModel: evalModel}
	for i := 1; i <= n; i++ {
		res, err := c.Kickoff(ctx, inputs)
		if err != nil {
			return nil, fmt.Errorf("crew: test iteration %d: %w", i, err)
		}
		ev, err := evaluator.Evaluate(ctx, res.Transcript, resolved.Tasks)
		if err != nil {
			return nil, fmt.Errorf("crew: test iteration %d: %w", i, err)
		}
		report.Iterations = append(report.Iterations, IterationScore{
			Iteration:  i,
			RunID:      res.Transcript.RunID,
			TaskScores: ev.TaskScores,
			Overall:    ev.Overall,
			Notes:      ev.Notes,
		})
	}
	return report, nil
}
