package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultMotion is the debate motion used when none is supplied.
const DefaultMotion = "AI LLMs will significantly improve human productivity"

// Inputs are the per-invocation workflow inputs. Fields are interpolated
// into agent and task definitions as {motion} and {current_year}.
type Inputs struct {
	Motion      string `json:"motion"`
	CurrentYear string `json:"current_year"`
}

// DefaultInputs returns the default motion and the current calendar year.
func DefaultInputs() Inputs {
	return Inputs{
		Motion:      DefaultMotion,
		CurrentYear: strconv.Itoa(time.Now().Year()),
	}
}

// Normalize fills empty fields from defaults and trims whitespace.
func (in Inputs) Normalize() Inputs {
	in.Motion = strings.TrimSpace(in.Motion)
	in.CurrentYear = strings.TrimSpace(in.CurrentYear)
	defaults := DefaultInputs()
	if in.Motion == "" {
		in.Motion = defaults.Motion
	}
	if in.CurrentYear == "" {
		in.CurrentYear = defaults.CurrentYear
	}
	return in
}

// Config holds environment-driven runtime configuration. Flags overlay
// these values before Validate is called.
type Config struct {
	APIKey     string
	OutputDir  string
	Model      string // debater model override; empty means pick from registry
	JudgeModel string // judge model override; empty means pick from registry
}

// FromEnv reads configuration from the environment without validating it,
// so command-line flags can still fill in missing values.
func FromEnv() *Config {
	outputDir := os.Getenv("DEBATECREW_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}
	return &Config{
		APIKey:     os.Getenv("OPENROUTER_API_KEY"),
		OutputDir:  outputDir,
		Model:      os.Getenv("DEBATECREW_MODEL"),
		JudgeModel: os.Getenv("DEBATECREW_JUDGE_MODEL"),
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config: API key required: set --api-key flag or OPENROUTER_API_KEY env var")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output directory must not be empty")
	}
	return nil
}
