package crew

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed config/agents.yaml
var defaultAgentsYAML []byte

//go:embed config/tasks.yaml
var defaultTasksYAML []byte

// AgentSpec defines one agent of the crew. Model is assigned at wiring
// time, not in the YAML.
type AgentSpec struct {
	Name      string `yaml:"-"`
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
	Model     string `yaml:"-"`
}

// TaskSpec defines one task. Tasks execute sequentially in file order.
type TaskSpec struct {
	Name           string `yaml:"-"`
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
	Agent          string `yaml:"agent"`
}

// Definition is a full crew definition: its agents and the ordered task list.
type Definition struct {
	Agents map[string]AgentSpec
	Tasks  []TaskSpec
}

// Default returns the built-in debate definition (debater and judge agents,
// propose/oppose/decide tasks).
func Default() (Definition, error) {
	return parseDefinition(defaultAgentsYAML, defaultTasksYAML)
}

// LoadDefinition reads agents.yaml and tasks.yaml from dir, falling back to
// the built-in definition when dir is empty or the files are absent.
func LoadDefinition(dir string) (Definition, error) {
	if dir == "" {
		return Default()
	}
	agentsData, agentsErr := os.ReadFile(filepath.Join(dir, "agents.yaml"))
	tasksData, tasksErr := os.ReadFile(filepath.Join(dir, "tasks.yaml"))
	if os.IsNotExist(agentsErr) && os.IsNotExist(tasksErr) {
		return Default()
	}
	if agentsErr != nil {
		return Definition{}, fmt.Errorf("crew: reading agents.yaml: %w", agentsErr)
	}
	if tasksErr != nil {
		return Definition{}, fmt.Errorf("crew: reading tasks.yaml: %w", tasksErr)
	}
	return parseDefinition(agentsData, tasksData)
}

func parseDefinition(agentsData, tasksData []byte) (Definition, error) {
	agents, err := parseAgents(agentsData)
	if err != nil {
		return Definition{}, err
	}
	tasks, err := parseTasks(tasksData)
	if err != nil {
		return Definition{}, err
	}
	def := Definition{Agents: agents, Tasks: tasks}
	if err := def.validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func parseAgents(data []byte) (map[string]AgentSpec, error) {
	raw := map[string]AgentSpec{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("crew: parsing agents: %w", err)
	}
	agents := make(map[string]AgentSpec, len(raw))
	for name, spec := range raw {
		spec.Name = name
		agents[name] = spec
	}
	return agents, nil
}

// parseTasks decodes via yaml.Node because execution order follows document
// order, which a plain map would lose.
func parseTasks(data []byte) ([]TaskSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("crew: parsing tasks: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("crew: tasks.yaml must be a mapping of task names")
	}
	root := doc.Content[0]
	var tasks []TaskSpec
	for i := 0; i+1 < len(root.Content); i += 2 {
		var spec TaskSpec
		if err := root.Content[i+1].Decode(&spec); err != nil {
			return nil, fmt.Errorf("crew: parsing task %q: %w", root.Content[i].Value, err)
		}
		spec.Name = root.Content[i].Value
		tasks = append(tasks, spec)
	}
	return tasks, nil
}

func (d Definition) validate() error {
	if len(d.Tasks) == 0 {
		return fmt.Errorf("crew: definition has no tasks")
	}
	for _, task := range d.Tasks {
		if task.Agent == "" {
			return fmt.Errorf("crew: task %q has no agent", task.Name)
		}
		if _, ok := d.Agents[task.Agent]; !ok {
			return fmt.Errorf("crew: task %q references unknown agent %q", task.Name, task.Agent)
		}
	}
	return nil
}

// Interpolate returns a copy of the definition with {motion} and
// {current_year} placeholders resolved from inputs.
func (d Definition) Interpolate(inputs config.Inputs) Definition {
	fill := func(s string) string {
		s = strings.ReplaceAll(s, "{motion}", inputs.Motion)
		s = strings.ReplaceAll(s, "{current_year}", inputs.CurrentYear)
		return strings.TrimSpace(s)
	}

	agents := make(map[string]AgentSpec, len(d.Agents))
	for name, a := range d.Agents {
		a.Role = fill(a.Role)
		a.Goal = fill(a.Goal)
		a.Backstory = fill(a.Backstory)
		agents[name] = a
	}
	tasks := make([]TaskSpec, len(d.Tasks))
	for i, t := range d.Tasks {
		t.Description = fill(t.Description)
		t.ExpectedOutput = fill(t.ExpectedOutput)
		tasks[i] = t
	}
	return Definition{Agents: agents, Tasks: tasks}
}

// AgentNames returns the agent names in sorted order.
func (d Definition) AgentNames() []string {
	names := make([]string, 0, len(d.Agents))
	for name := range d.Agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssignModels sets the model for each named agent; names missing from the
// map are left unchanged.
func (d *Definition) AssignModels(byAgent map[string]string) {
	for name, model := range byAgent {
		if a, ok := d.Agents[name]; ok && model != "" {
			a.Model = model
			d.Agents[name] = a
		}
	}
}
