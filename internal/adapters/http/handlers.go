package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/difficulty"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/display"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/search"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/grid/new", h.handleGridNew)
	mux.HandleFunc("/api/grid/cycle", h.handleGridCycle)
	mux.HandleFunc("/api/grid/fill", h.handleGridFill)
	mux.HandleFunc("/api/resolve", h.handleResolve)
	mux.HandleFunc("/api/symbols", h.handleSymbols)
	mux.HandleFunc("/api/classify", h.handleClassify)
	mux.HandleFunc("/api/search", h.handleSearch)
	mux.HandleFunc("/api/puzzle/load", h.handlePuzzleLoad)
	mux.HandleFunc("/api/puzzle/worst-performing", h.handleWorstPerforming)
	mux.HandleFunc("/api/progress/save", h.handleProgressSave)
	mux.HandleFunc("/api/progress/load", h.handleProgressLoad)
	mux.HandleFunc("/api/progress/list", h.handleProgressList)
}

// writeJSON sets the content type and encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
}

type errResp struct {
	Error string `json:"error"`
}

// statusForGridErr distinguishes caller mistakes from server faults.
func statusForGridErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrDimension),
		errors.Is(err, domain.ErrNonRectangular),
		errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrCellValue),
		errors.Is(err, display.ErrCellValue),
		errors.Is(err, difficulty.ErrAccuracyRange),
		errors.Is(err, domain.ErrUnknownDataset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---- Grid ----

type gridNewReq struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type gridResp struct {
	Grid  domain.Grid `json:"grid"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleGridNew(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req gridNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, gridResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := domain.NewEmptyGrid(req.Width, req.Height)
	if err != nil {
		writeJSON(w, statusForGridErr(err), gridResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gridResp{Grid: g})
}

type gridCycleReq struct {
	Grid domain.Grid `json:"grid"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
}

func (h *Handler) handleGridCycle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req gridCycleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, gridResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := req.Grid.CycleCell(req.Row, req.Col)
	if err != nil {
		writeJSON(w, statusForGridErr(err), gridResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gridResp{Grid: g})
}

type gridFillReq struct {
	Grid  domain.Grid `json:"grid"`
	Value int         `json:"value"`
}

func (h *Handler) handleGridFill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req gridFillReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, gridResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := req.Grid.Fill(req.Value)
	if err != nil {
		writeJSON(w, statusForGridErr(err), gridResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gridResp{Grid: g})
}

// ---- Display ----

type resolveReq struct {
	Value     int         `json:"value"`
	Mode      string      `json:"mode"`
	SymbolSet string      `json:"symbolSet"`
	Grid      domain.Grid `json:"grid"`
	WholeGrid bool        `json:"wholeGrid,omitempty"`
}

type resolveResp struct {
	Cell  *display.Appearance    `json:"cell,omitempty"`
	Cells [][]display.Appearance `json:"cells,omitempty"`
	Error string                 `json:"error,omitempty"`
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req resolveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	mode := domain.ParseDisplayMode(req.Mode)
	if req.WholeGrid {
		cells, err := h.UC.ResolveGrid(req.Grid, mode, req.SymbolSet)
		if err != nil {
			writeJSON(w, statusForGridErr(err), resolveResp{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, resolveResp{Cells: cells})
		return
	}
	cell, err := h.UC.Resolve(req.Value, mode, req.SymbolSet)
	if err != nil {
		writeJSON(w, statusForGridErr(err), resolveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resolveResp{Cell: &cell})
}

func (h *Handler) handleSymbols(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sets": h.UC.SymbolSets()})
}

// ---- Difficulty ----

type classifyReq struct {
	Accuracy float64 `json:"accuracy"`
}

type classifyResp struct {
	Band       difficulty.Band `json:"difficulty,omitempty"`
	Struggling bool            `json:"struggling"`
	Error      string          `json:"error,omitempty"`
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req classifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, classifyResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	band, err := h.UC.Classify(req.Accuracy)
	if err != nil {
		writeJSON(w, statusForGridErr(err), classifyResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, classifyResp{Band: band, Struggling: difficulty.IsStruggling(req.Accuracy)})
}

// ---- Search ----

type searchReq struct {
	ID string `json:"id"`
}

type searchResp struct {
	search.Result
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req searchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, searchResp{Error: "invalid JSON or missing id"})
		return
	}
	res, err := h.UC.Search(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, searchResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, searchResp{Result: res})
}

// ---- Puzzle content ----

type puzzleLoadReq struct {
	Dataset string `json:"dataset"`
	ID      string `json:"id"`
}

type puzzleLoadResp struct {
	Puzzle *domain.PuzzleRecord `json:"puzzle,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func (h *Handler) handlePuzzleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req puzzleLoadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, puzzleLoadResp{Error: "invalid JSON or missing id"})
		return
	}
	dataset, err := domain.ParseDataset(req.Dataset)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, puzzleLoadResp{Error: err.Error()})
		return
	}
	p, err := h.UC.LoadPuzzle(r.Context(), dataset, req.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, puzzleLoadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, puzzleLoadResp{Puzzle: p})
}

type worstResp struct {
	Puzzles []worstEntry `json:"puzzles"`
	Error   string       `json:"error,omitempty"`
}

type worstEntry struct {
	domain.PuzzleRecord
	Band difficulty.Band `json:"difficulty,omitempty"`
}

func (h *Handler) handleWorstPerforming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	records, err := h.UC.WorstPerforming(r.Context(), limit, r.URL.Query().Get("sortBy"))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, worstResp{Error: err.Error()})
		return
	}
	entries := make([]worstEntry, 0, len(records))
	for _, rec := range records {
		e := worstEntry{PuzzleRecord: rec}
		if rec.Performance != nil {
			if band, err := difficulty.Classify(rec.Performance.AvgAccuracy); err == nil {
				e.Band = band
			}
		}
		entries = append(entries, e)
	}
	writeJSON(w, http.StatusOK, worstResp{Puzzles: entries})
}

// ---- Progress ----

type progressSaveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleProgressSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var p domain.Progress
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, progressSaveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.SaveProgress(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, progressSaveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progressSaveResp{ID: p.ID})
}

type progressLoadReq struct {
	ID string `json:"id"`
}

type progressLoadResp struct {
	Progress *domain.Progress `json:"progress,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func (h *Handler) handleProgressLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req progressLoadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, progressLoadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.LoadProgress(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, progressLoadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progressLoadResp{Progress: p})
}

type progressListResp struct {
	Saves []domain.ProgressMeta `json:"saves"`
	Error string                `json:"error,omitempty"`
}

func (h *Handler) handleProgressList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	saves, err := h.UC.ListProgress(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, progressListResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, progressListResp{Saves: saves})
}
