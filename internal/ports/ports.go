package ports

import (
	"context"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// AnalyticsAPI queries the external model-performance service.
type AnalyticsAPI interface {
	// TaskPerformance returns the performance metadata for a bare puzzle id,
	// or (nil, nil) when the service holds no record for it.
	TaskPerformance(ctx context.Context, bareID string) (*domain.PerformanceData, error)
	// WorstPerforming lists the puzzles AI models struggle with most.
	WorstPerforming(ctx context.Context, limit int, sortBy string) ([]domain.PuzzleRecord, error)
}

// TitleData reads puzzle record batches from remote key/value storage.
type TitleData interface {
	// Batch returns the records stored under the given dataset and batch
	// number, or an empty slice when the key is absent.
	Batch(ctx context.Context, dataset domain.Dataset, n int) ([]domain.PuzzleRecord, error)
}

// ContentStore reads canonical puzzle content (train/test grids) by id.
type ContentStore interface {
	Puzzle(ctx context.Context, dataset domain.Dataset, bareID string) (*domain.PuzzleRecord, error)
}

// ProgressStore persists and retrieves player progress as JSON.
type ProgressStore interface {
	Save(ctx context.Context, p *domain.Progress) error
	Load(ctx context.Context, id string) (*domain.Progress, error)
	List(ctx context.Context) ([]domain.ProgressMeta, error)
}
