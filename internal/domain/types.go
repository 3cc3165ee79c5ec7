package domain

// GridPair is one input/output example from a puzzle.
type GridPair struct {
	Input  Grid `json:"input"`
	Output Grid `json:"output"`
}

// PerformanceData summarizes how AI models fared on a puzzle, as reported by
// the analytics API. AvgAccuracy is clamped into [0,1] at the parse boundary.
type PerformanceData struct {
	AvgAccuracy       float64 `json:"avgAccuracy"`
	AvgConfidence     float64 `json:"avgConfidence,omitempty"`
	TotalExplanations int     `json:"totalExplanations,omitempty"`
	WrongCount        int     `json:"wrongCount,omitempty"`
	TotalFeedback     int     `json:"totalFeedback,omitempty"`
	NegativeFeedback  int     `json:"negativeFeedback,omitempty"`
	CompositeScore    float64 `json:"compositeScore,omitempty"`
}

// PuzzleRecord is one puzzle as stored remotely or synthesized from analytics
// metadata. ID may be bare or namespaced depending on the source; storage
// batches carry namespaced ids. Records are read-only once cached.
type PuzzleRecord struct {
	ID          string           `json:"id"`
	Dataset     Dataset          `json:"dataset,omitempty"`
	Train       []GridPair       `json:"train,omitempty"`
	Test        []GridPair       `json:"test,omitempty"`
	Performance *PerformanceData `json:"performanceData,omitempty"`
}

// Progress is a player's saved attempt at a puzzle.
type Progress struct {
	ID        string  `json:"id,omitempty"`
	PuzzleID  string  `json:"puzzleId"`
	Dataset   Dataset `json:"dataset,omitempty"`
	Attempt   Grid    `json:"attempt"`
	Solved    bool    `json:"solved,omitempty"`
	UpdatedAt int64   `json:"updatedAt,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// ProgressMeta is a lightweight listing entry for saved progress.
type ProgressMeta struct {
	ID        string `json:"id"`
	PuzzleID  string `json:"puzzleId"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	UpdatedAt int64  `json:"updatedAt"`
}
