package config

import (
	"os"
	"strconv"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENROUTER_API_KEY",
		"DEBATECREW_OUTPUT_DIR",
		"DEBATECREW_MODEL",
		"DEBATECREW_JUDGE_MODEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()
	if in.Motion != "AI LLMs will significantly improve human productivity" {
		t.Errorf("Motion = %q, want default motion", in.Motion)
	}
	wantYear := strconv.Itoa(time.Now().Year())
	if in.CurrentYear != wantYear {
		t.Errorf("CurrentYear = %q, want %q", in.CurrentYear, wantYear)
	}
}

func TestNormalize_FillsEmptyFields(t *testing.T) {
	in := Inputs{}.Normalize()
	defaults := DefaultInputs()
	if in.Motion != defaults.Motion {
		t.Errorf("Motion = %q, want %q", in.Motion, defaults.Motion)
	}
	if in.CurrentYear != defaults.CurrentYear {
		t.Errorf("CurrentYear = %q, want %q", in.CurrentYear, defaults.CurrentYear)
	}
}

func TestNormalize_KeepsSuppliedMotion(t *testing.T) {
	in := Inputs{Motion: "Remote work improves productivity"}.Normalize()
	if in.Motion != "Remote work improves productivity" {
		t.Errorf("Motion = %q, want supplied motion", in.Motion)
	}
	if in.CurrentYear != DefaultInputs().CurrentYear {
		t.Errorf("CurrentYear = %q, want default year", in.CurrentYear)
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	in := Inputs{Motion: "  spaced out  ", CurrentYear: " 1999 "}.Normalize()
	if in.Motion != "spaced out" {
		t.Errorf("Motion = %q, want trimmed", in.Motion)
	}
	if in.CurrentYear != "1999" {
		t.Errorf("CurrentYear = %q, want %q", in.CurrentYear, "1999")
	}
}

func TestNormalize_BlankMotionFallsBackToDefault(t *testing.T) {
	in := Inputs{Motion: "   "}.Normalize()
	if in.Motion != DefaultMotion {
		t.Errorf("Motion = %q, want default motion", in.Motion)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "output")
	}
	if cfg.Model != "" || cfg.JudgeModel != "" {
		t.Errorf("model overrides = %q/%q, want empty", cfg.Model, cfg.JudgeModel)
	}
}

func TestFromEnv_CustomEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "my-key")
	t.Setenv("DEBATECREW_OUTPUT_DIR", "results")
	t.Setenv("DEBATECREW_MODEL", "some/model")
	t.Setenv("DEBATECREW_JUDGE_MODEL", "other/model")

	cfg := FromEnv()
	if cfg.APIKey != "my-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "my-key")
	}
	if cfg.OutputDir != "results" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "results")
	}
	if cfg.Model != "some/model" {
		t.Errorf("Model = %q, want %q", cfg.Model, "some/model")
	}
	if cfg.JudgeModel != "other/model" {
		t.Errorf("JudgeModel = %q, want %q", cfg.JudgeModel, "other/model")
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{OutputDir: "output"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestValidate_MissingOutputDir(t *testing.T) {
	cfg := &Config{APIKey: "k"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when output dir is empty")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{APIKey: "k", OutputDir: "output"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
