package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/lorenzotomasdiez/debatecrew/internal/crew"
)

const maxSlugLen = 50

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug turns a motion into a filesystem-friendly slug, capped at 50
// characters.
func GenerateSlug(motion string) string {
	slug := strings.ToLower(motion)
	slug = nonSlugRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	return slug
}

// CreateOutputDir creates base/<slug>-<timestamp> and returns its path.
func CreateOutputDir(base, slug string) (string, error) {
	dir := filepath.Join(base, fmt.Sprintf("%s-%s", slug, time.Now().Format("20060102-150405")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("output: %w", err)
	}
	return dir, nil
}

// Writer collects log lines and writes run artifacts into a directory.
type Writer struct {
	dir   string
	lines []string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Log records a timestamped line for the run log.
func (w *Writer) Log(line string) {
	w.lines = append(w.lines, fmt.Sprintf("%s %s", time.Now().Format(time.RFC3339), line))
}

// WriteJSON writes the transcript as transcript.json.
func (w *Writer) WriteJSON(transcript *crew.Transcript) error {
	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return w.writeFile("transcript.json", data)
}

// WriteMarkdown writes a human-readable debate.md.
func (w *Writer) WriteMarkdown(transcript *crew.Transcript) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Debate: %s\n\n", transcript.Inputs.Motion)
	fmt.Fprintf(&sb, "Run `%s`, year %s.\n\n", transcript.RunID, transcript.Inputs.CurrentYear)
	for _, res := range transcript.Results {
		heading := res.Task
		if res.Replayed {
			heading += " (replayed)"
		}
		fmt.Fprintf(&sb, "## %s — %s (%s)\n\n%s\n\n", heading, res.Agent, res.Model, res.Output)
	}
	return w.writeFile("debate.md", []byte(sb.String()))
}

// WriteLog flushes collected log lines to run.log.
func (w *Writer) WriteLog() error {
	return w.writeFile("run.log", []byte(strings.Join(w.lines, "\n")+"\n"))
}

func (w *Writer) writeFile(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
