// Package content reads canonical puzzle content from static JSON files laid
// out as {dir}/{dataset}/{bareId}.json. This is the source of full train and
// test grids once an id has been located via search.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/puzzleid"
)

type Store struct{ dir string }

// NewStore builds a Store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

type contentFile struct {
	Train []domain.GridPair `json:"train"`
	Test  []domain.GridPair `json:"test"`
}

// Puzzle loads the content for a bare id. Grids are validated during JSON
// decoding, so a returned record always holds the grid invariants.
// Returns puzzleid.ErrBareID for malformed ids and os.ErrNotExist (wrapped)
// for unknown ones.
func (s *Store) Puzzle(ctx context.Context, dataset domain.Dataset, bareID string) (*domain.PuzzleRecord, error) {
	if !puzzleid.IsValidBareID(bareID) {
		return nil, puzzleid.ErrBareID
	}
	path := filepath.Join(s.dir, string(dataset), bareID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: %s/%s: %w", dataset, bareID, err)
	}
	var file contentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("content: %s/%s: %w", dataset, bareID, err)
	}
	return &domain.PuzzleRecord{
		ID:      bareID,
		Dataset: dataset,
		Train:   file.Train,
		Test:    file.Test,
	}, nil
}
