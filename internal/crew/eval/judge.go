// Package eval scores completed runs with an LLM judge, implementing
// crew.Evaluator.
package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lorenzotomasdiez/debatecrew/internal/crew"
	"github.com/lorenzotomasdiez/debatecrew/internal/openrouter"
)

const maxJudgeRetries = 3

var codeBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// Judge scores run transcripts against their task definitions using an LLM.
type Judge struct {
	llm   crew.LLMClient
	model string
}

// NewJudge creates a Judge that scores with the given evaluation model.
func NewJudge(llm crew.LLMClient, model string) *Judge {
	return &Judge{llm: llm, model: model}
}

// Evaluate implements crew.Evaluator.
func (j *Judge) Evaluate(ctx context.Context, transcript *crew.Transcript, tasks []crew.TaskSpec) (*crew.RunEvaluation, error) {
	system := openrouter.Message{
		Role: "system",
		Content: `You are a quality evaluator for an AI workflow. Score each task's output from 1-10 against its expected output, plus an overall score. Return ONLY valid JSON in this exact format:
{"task_scores": {"<task name>": 1-10, ...}, "overall_score": 1-10, "notes": "..."}
Do NOT include any other text, explanation, or markdown formatting. Return ONLY the JSON object.`,
	}

	var sb strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&sb, "Task %q expected output: %s\n", task.Name, task.ExpectedOutput)
	}
	sb.WriteString("\n")
	for _, res := range transcript.Results {
		fmt.Fprintf(&sb, "Task %q output (%s):\n%s\n\n", res.Task, res.Agent, res.Output)
	}
	user := openrouter.Message{Role: "user", Content: sb.String()}

	temp := 0.0
	for attempt := 0; attempt < maxJudgeRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("eval: %w", err)
		}

		msgs := []openrouter.Message{system, user}
		if attempt > 0 {
			msgs = append(msgs, openrouter.Message{
				Role:    "user",
				Content: "Your previous response was not valid JSON. Return ONLY a JSON object, no markdown, no explanation.",
			})
		}

		resp, err := j.llm.ChatCompletion(ctx, openrouter.ChatRequest{
			Model:       j.model,
			Messages:    msgs,
			Temperature: &temp,
		})
		if err != nil {
			return nil, fmt.Errorf("eval: %w", err)
		}

		if result, ok := parseEvaluationJSON(resp.Content()); ok {
			return result, nil
		}
	}

	return nil, fmt.Errorf("eval: judge returned no valid JSON after %d attempts", maxJudgeRetries)
}

// parseEvaluationJSON tries to extract and parse a RunEvaluation from LLM output.
func parseEvaluationJSON(raw string) (*crew.RunEvaluation, bool) {
	// Try direct parse first
	var result crew.RunEvaluation
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err == nil {
		return &result, true
	}

	// Try extracting from markdown code block
	if matches := codeBlockRe.FindStringSubmatch(raw); len(matches) > 1 {
		if err := json.Unmarshal([]byte(strings.TrimSpace(matches[1])), &result); err == nil {
			return &result, true
		}
	}

	// Try finding JSON object in text (first { to last })
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err == nil {
			return &result, true
		}
	}

	return nil, false
}
