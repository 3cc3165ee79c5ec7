// Package progress persists player progress as JSON files on disk,
// partitioned by dataset, filling the role the hosted backend's player
// storage plays in production.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

type FS struct{ dir string }

// NewFS builds a store rooted at dir.
func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, dataset domain.Dataset) string {
	sub := string(dataset)
	if sub == "" {
		sub = "unsorted"
	}
	return filepath.Join(s.dir, sub, strings.TrimSpace(id)+".json")
}

// Save writes a progress record, assigning a uuid and timestamp when absent.
func (s *FS) Save(ctx context.Context, p *domain.Progress) error {
	if p == nil || p.PuzzleID == "" {
		return errors.New("progress: missing puzzle id")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.UpdatedAt == 0 {
		p.UpdatedAt = time.Now().Unix()
	}
	target := s.pathFor(p.ID, p.Dataset)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load reads one progress record by id, checking every dataset partition.
func (s *FS) Load(ctx context.Context, id string) (*domain.Progress, error) {
	subs := make([]string, 0, 5)
	for _, d := range domain.Datasets() {
		subs = append(subs, string(d))
	}
	subs = append(subs, "unsorted")
	for _, sub := range subs {
		data, err := os.ReadFile(filepath.Join(s.dir, sub, id+".json"))
		if err != nil {
			continue
		}
		var out domain.Progress
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List scans all partitions and returns lightweight metadata entries.
func (s *FS) List(ctx context.Context) ([]domain.ProgressMeta, error) {
	var out []domain.ProgressMeta
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, sub := range ents {
		if !sub.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(s.dir, sub.Name()))
		if err != nil {
			continue
		}
		for _, e := range files {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, sub.Name(), e.Name()))
			if err != nil {
				continue
			}
			var p domain.Progress
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.ProgressMeta{
				ID:        p.ID,
				PuzzleID:  p.PuzzleID,
				Name:      p.Name,
				Solved:    p.Solved,
				UpdatedAt: p.UpdatedAt,
			})
		}
	}
	return out, nil
}
