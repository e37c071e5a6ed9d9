package crew

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
)

func TestDefaultDefinition(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(def.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(def.Tasks))
	}
	wantOrder := []string{"propose", "oppose", "decide"}
	for i, task := range def.Tasks {
		if task.Name != wantOrder[i] {
			t.Errorf("Tasks[%d].Name = %q, want %q", i, task.Name, wantOrder[i])
		}
	}
	if _, ok := def.Agents["debater"]; !ok {
		t.Error("missing debater agent")
	}
	if _, ok := def.Agents["judge"]; !ok {
		t.Error("missing judge agent")
	}
	if def.Tasks[0].Agent != "debater" || def.Tasks[2].Agent != "judge" {
		t.Errorf("unexpected task->agent assignment: %+v", def.Tasks)
	}
}

func TestInterpolate(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	inputs := config.Inputs{Motion: "Cats make better pets than dogs", CurrentYear: "2026"}
	resolved := def.Interpolate(inputs)

	if !strings.Contains(resolved.Tasks[0].Description, "Cats make better pets than dogs") {
		t.Errorf("propose description not interpolated: %q", resolved.Tasks[0].Description)
	}
	if !strings.Contains(resolved.Tasks[2].Description, "2026") {
		t.Errorf("decide description not interpolated: %q", resolved.Tasks[2].Description)
	}
	if !strings.Contains(resolved.Agents["judge"].Backstory, "Cats make better pets than dogs") {
		t.Errorf("judge backstory not interpolated: %q", resolved.Agents["judge"].Backstory)
	}
	for _, task := range resolved.Tasks {
		if strings.Contains(task.Description, "{motion}") || strings.Contains(task.Description, "{current_year}") {
			t.Errorf("task %q still has placeholders: %q", task.Name, task.Description)
		}
	}

	// Original definition must be untouched
	if !strings.Contains(def.Tasks[0].Description, "{motion}") {
		t.Error("Interpolate mutated the source definition")
	}
}

func TestInterpolatePreservesModels(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	def.AssignModels(map[string]string{"debater": "model-a", "judge": "model-b"})
	resolved := def.Interpolate(config.DefaultInputs())
	if resolved.Agents["debater"].Model != "model-a" {
		t.Errorf("debater model = %q", resolved.Agents["debater"].Model)
	}
	if resolved.Agents["judge"].Model != "model-b" {
		t.Errorf("judge model = %q", resolved.Agents["judge"].Model)
	}
}

func TestAssignModelsIgnoresUnknownAndEmpty(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	def.AssignModels(map[string]string{"nobody": "model-x", "debater": ""})
	if def.Agents["debater"].Model != "" {
		t.Errorf("empty model should not overwrite, got %q", def.Agents["debater"].Model)
	}
}

func TestLoadDefinitionFromDir(t *testing.T) {
	dir := t.TempDir()
	agents := `
scientist:
  role: A researcher
  goal: "Research {motion}"
  backstory: Curious.
`
	tasks := `
investigate:
  description: "Investigate {motion} in {current_year}"
  expected_output: Findings.
  agent: scientist
summarize:
  description: Summarize the findings.
  expected_output: A summary.
  agent: scientist
`
	os.WriteFile(filepath.Join(dir, "agents.yaml"), []byte(agents), 0o644)
	os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte(tasks), 0o644)

	def, err := LoadDefinition(dir)
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	if len(def.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(def.Tasks))
	}
	if def.Tasks[0].Name != "investigate" || def.Tasks[1].Name != "summarize" {
		t.Errorf("task order not preserved: %+v", def.Tasks)
	}
	if def.Agents["scientist"].Role != "A researcher" {
		t.Errorf("agent not parsed: %+v", def.Agents["scientist"])
	}
}

func TestLoadDefinitionMissingFilesFallsBack(t *testing.T) {
	def, err := LoadDefinition(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDefinition() error = %v", err)
	}
	if len(def.Tasks) != 3 {
		t.Errorf("expected built-in definition, got %d tasks", len(def.Tasks))
	}
}

func TestLoadDefinitionUnknownAgent(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "agents.yaml"), []byte("a:\n  role: r\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte("t:\n  description: d\n  agent: ghost\n"), 0o644)

	_, err := LoadDefinition(dir)
	if err == nil {
		t.Fatal("expected error for task referencing unknown agent")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the unknown agent: %v", err)
	}
}

func TestLoadDefinitionNoTasks(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "agents.yaml"), []byte("a:\n  role: r\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte(""), 0o644)

	if _, err := LoadDefinition(dir); err == nil {
		t.Fatal("expected error for empty tasks file")
	}
}
