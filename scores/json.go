package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// record is the on-disk document.
type record struct {
	BestScore int       `json:"best_score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONStore keeps the best score in a small JSON file. A missing file reads
// as zero.
type JSONStore struct {
	path string
	now  func() time.Time
}

// NewJSONStore creates a store backed by the JSON file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path, now: time.Now}
}

func (s *JSONStore) Best(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return r.BestScore, nil
}

func (s *JSONStore) SaveBest(ctx context.Context, score int) error {
	data, err := json.MarshalIndent(record{BestScore: score, UpdatedAt: s.now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save best score: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
