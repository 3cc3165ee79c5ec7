// Package search implements the search-by-id workflow: the analytics
// metadata service is queried first (the lighter-weight source), and only on
// a miss does the scan fall through to remote batch storage. Network faults
// at either stage degrade to absence; puzzle metadata is supplementary, not
// load-bearing, so the user sees "not found" rather than a crash.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/cache"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/difficulty"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/ports"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/puzzleid"
)

// State names a step of the search workflow. Found and NotFound are terminal.
type State string

const (
	StateIdle             State = "idle"
	StateQueryingMetadata State = "querying_metadata_api"
	StateQueryingStorage  State = "querying_storage_api"
	StateFound            State = "found"
	StateNotFound         State = "not_found"
)

// Source names where a found record came from.
type Source string

const (
	SourceMetadata Source = "metadata"
	SourceStorage  Source = "storage"
)

// Result is the terminal outcome of one search.
type Result struct {
	State  State                `json:"state"`
	Source Source               `json:"source,omitempty"`
	Record *domain.PuzzleRecord `json:"record,omitempty"`
	// Band is set only when the record carries performance data.
	Band    difficulty.Band `json:"difficulty,omitempty"`
	HasBand bool            `json:"hasDifficulty"`
}

// Searcher runs searches against injected collaborators. Construct once at
// application start and share; it holds no per-search state.
type Searcher struct {
	analytics ports.AnalyticsAPI
	titles    ports.TitleData
	batches   *cache.Cache
	counts    map[domain.Dataset]int
	log       *zap.Logger
}

// New builds a Searcher. counts gives the number of storage batches per
// dataset; datasets absent from counts are skipped by the storage scan.
func New(analytics ports.AnalyticsAPI, titles ports.TitleData, batches *cache.Cache, counts map[domain.Dataset]int, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{analytics: analytics, titles: titles, batches: batches, counts: counts, log: logger}
}

// ByID locates a puzzle by bare or namespaced id. No retries are attempted
// on network failure; the caller re-invokes if desired.
func (s *Searcher) ByID(ctx context.Context, id string) Result {
	bare := puzzleid.ToBare(id)

	if r, ok := s.fromMetadata(ctx, bare); ok {
		return r
	}
	if r, ok := s.fromStorage(ctx, bare); ok {
		return r
	}
	return Result{State: StateNotFound}
}

// fromMetadata synthesizes a minimal record from analytics metadata alone.
func (s *Searcher) fromMetadata(ctx context.Context, bareID string) (Result, bool) {
	perf, err := s.analytics.TaskPerformance(ctx, bareID)
	if err != nil {
		s.log.Warn("metadata query failed, falling back to storage",
			zap.String("id", bareID), zap.Error(err))
		return Result{}, false
	}
	if perf == nil {
		return Result{}, false
	}
	rec := &domain.PuzzleRecord{ID: bareID, Performance: perf}
	res := Result{State: StateFound, Source: SourceMetadata, Record: rec}
	if band, err := difficulty.Classify(perf.AvgAccuracy); err == nil {
		res.Band = band
		res.HasBand = true
	}
	return res, true
}

// fromStorage scans every dataset in fixed order, batch by batch, through
// the lookup cache. First match wins and halts the scan.
func (s *Searcher) fromStorage(ctx context.Context, bareID string) (Result, bool) {
	for _, dataset := range domain.Datasets() {
		for n := 1; n <= s.counts[dataset]; n++ {
			key := fmt.Sprintf("%s-batch%d", dataset, n)
			records, err := s.batches.GetOrFetch(ctx, key, func(ctx context.Context) ([]domain.PuzzleRecord, error) {
				return s.titles.Batch(ctx, dataset, n)
			})
			if err != nil {
				s.log.Warn("batch fetch failed, skipping",
					zap.String("key", key), zap.Error(err))
				continue
			}
			for i := range records {
				if puzzleid.ToBare(records[i].ID) != bareID {
					continue
				}
				rec := records[i]
				rec.ID = bareID
				if rec.Dataset == "" {
					rec.Dataset = dataset
				}
				res := Result{State: StateFound, Source: SourceStorage, Record: &rec}
				if rec.Performance != nil {
					if band, err := difficulty.Classify(rec.Performance.AvgAccuracy); err == nil {
						res.Band = band
						res.HasBand = true
					}
				}
				return res, true
			}
		}
	}
	return Result{}, false
}
