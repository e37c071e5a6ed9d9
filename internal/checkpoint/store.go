// Package checkpoint persists per-task execution records so a prior run
// can be replayed from any of its tasks.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lorenzotomasdiez/debatecrew/internal/config"
)

// Record is one completed task execution.
type Record struct {
	TaskID    string        `json:"task_id"`
	RunID     string        `json:"run_id"`
	Index     int           `json:"index"`
	Task      string        `json:"task"`
	Agent     string        `json:"agent"`
	Model     string        `json:"model"`
	Output    string        `json:"output"`
	Inputs    config.Inputs `json:"inputs"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store writes one JSON file per record under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes rec as <task_id>.json.
func (s *Store) Save(rec Record) error {
	if rec.TaskID == "" {
		return fmt.Errorf("checkpoint: record has no task id")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	if err := os.WriteFile(s.path(rec.TaskID), data, 0o644); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// Find loads the record for taskID.
func (s *Store) Find(taskID string) (Record, error) {
	data, err := os.ReadFile(s.path(taskID))
	if os.IsNotExist(err) {
		return Record{}, fmt.Errorf("checkpoint: no checkpoint for task id %q", taskID)
	}
	if err != nil {
		return Record{}, fmt.Errorf("checkpoint: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("checkpoint: reading %s: %w", s.path(taskID), err)
	}
	return rec, nil
}

// Run returns every record belonging to runID, ordered by task index.
func (s *Store) Run(runID string) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("checkpoint: no checkpoints recorded yet")
	}
	if err != nil {
		return nil, fmt.Errorf("checkpoint: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("checkpoint: %w", err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// Skip files that are not checkpoint records.
			continue
		}
		if rec.RunID == runID {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("checkpoint: no records for run %q", runID)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Index < records[j].Index })
	return records, nil
}

func (s *Store) path(taskID string) string {
	return filepath.Join(s.dir, taskID+".json")
}
