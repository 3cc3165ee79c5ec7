package usecase

import (
	"context"
	"errors"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/difficulty"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/display"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/ports"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/search"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/symbols"
)

// Service is the application facade the HTTP adapter and CLI call into.
// All collaborators are injected; none are ambient globals.
type Service struct {
	Resolver  *display.Resolver
	Symbols   *symbols.Registry
	Searcher  *search.Searcher
	Analytics ports.AnalyticsAPI
	Content   ports.ContentStore
	Progress  ports.ProgressStore
}

func NewService(r *display.Resolver, sym *symbols.Registry, s *search.Searcher, a ports.AnalyticsAPI, c ports.ContentStore, p ports.ProgressStore) *Service {
	return &Service{Resolver: r, Symbols: sym, Searcher: s, Analytics: a, Content: c, Progress: p}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Resolve returns the renderable appearance for one cell.
func (u *Service) Resolve(value int, mode domain.DisplayMode, setID string) (display.Appearance, error) {
	if u.Resolver == nil {
		return display.Appearance{}, errNotConfigured
	}
	return u.Resolver.Resolve(value, mode, setID)
}

// ResolveGrid resolves every cell of a grid.
func (u *Service) ResolveGrid(g domain.Grid, mode domain.DisplayMode, setID string) ([][]display.Appearance, error) {
	if u.Resolver == nil {
		return nil, errNotConfigured
	}
	return u.Resolver.ResolveGrid(g, mode, setID)
}

// SymbolSets lists the registered symbol sets for UI population.
func (u *Service) SymbolSets() []symbols.Info {
	if u.Symbols == nil {
		return nil
	}
	return u.Symbols.List()
}

// Classify bands an accuracy ratio.
func (u *Service) Classify(accuracy float64) (difficulty.Band, error) {
	return difficulty.Classify(accuracy)
}

// Search locates a puzzle by bare or namespaced id.
func (u *Service) Search(ctx context.Context, id string) (search.Result, error) {
	if u.Searcher == nil {
		return search.Result{}, errNotConfigured
	}
	return u.Searcher.ByID(ctx, id), nil
}

// WorstPerforming lists the puzzles AI models struggle with most, with
// difficulty bands attached where accuracy data exists.
func (u *Service) WorstPerforming(ctx context.Context, limit int, sortBy string) ([]domain.PuzzleRecord, error) {
	if u.Analytics == nil {
		return nil, errNotConfigured
	}
	return u.Analytics.WorstPerforming(ctx, limit, sortBy)
}

// LoadPuzzle reads canonical puzzle content by id.
func (u *Service) LoadPuzzle(ctx context.Context, dataset domain.Dataset, bareID string) (*domain.PuzzleRecord, error) {
	if u.Content == nil {
		return nil, errNotConfigured
	}
	return u.Content.Puzzle(ctx, dataset, bareID)
}

// Persistence

func (u *Service) SaveProgress(ctx context.Context, p *domain.Progress) error {
	if u.Progress == nil {
		return errNotConfigured
	}
	return u.Progress.Save(ctx, p)
}

func (u *Service) LoadProgress(ctx context.Context, id string) (*domain.Progress, error) {
	if u.Progress == nil {
		return nil, errNotConfigured
	}
	return u.Progress.Load(ctx, id)
}

func (u *Service) ListProgress(ctx context.Context) ([]domain.ProgressMeta, error) {
	if u.Progress == nil {
		return nil, errNotConfigured
	}
	return u.Progress.List(ctx)
}
