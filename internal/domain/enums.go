package domain

import "strings"

// Dataset tags the content partition a puzzle belongs to. Values are the
// wire/storage spellings used in batch keys and API payloads.
type Dataset string

const (
	DatasetTraining    Dataset = "training"
	DatasetTraining2   Dataset = "training2"
	DatasetEvaluation  Dataset = "evaluation"
	DatasetEvaluation2 Dataset = "evaluation2"
)

// Datasets returns all dataset tags in the fixed scan order used by the
// storage search. Callers must not mutate the returned slice.
func Datasets() []Dataset {
	return []Dataset{DatasetTraining, DatasetTraining2, DatasetEvaluation, DatasetEvaluation2}
}

// ParseDataset maps a user-supplied string to a Dataset tag.
func ParseDataset(s string) (Dataset, error) {
	switch Dataset(strings.ToLower(strings.TrimSpace(s))) {
	case DatasetTraining:
		return DatasetTraining, nil
	case DatasetTraining2:
		return DatasetTraining2, nil
	case DatasetEvaluation:
		return DatasetEvaluation, nil
	case DatasetEvaluation2:
		return DatasetEvaluation2, nil
	}
	return "", ErrUnknownDataset
}

// DisplayMode selects how a cell value is rendered. Purely a rendering
// parameter; nothing couples it to the underlying grid.
type DisplayMode string

const (
	// ModeNumeric renders the raw integer over the category palette.
	ModeNumeric DisplayMode = "numeric"
	// ModeSymbolic renders a symbol-set glyph over the interaction palette.
	ModeSymbolic DisplayMode = "symbolic"
	// ModeHybrid renders the symbolic glyph over the numeric colors.
	ModeHybrid DisplayMode = "hybrid"
)

// ParseDisplayMode maps a user-supplied string to a DisplayMode,
// defaulting to numeric.
func ParseDisplayMode(s string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symbolic":
		return ModeSymbolic
	case "hybrid":
		return ModeHybrid
	default:
		return ModeNumeric
	}
}

// DisplayModes returns all declared display modes.
func DisplayModes() []DisplayMode {
	return []DisplayMode{ModeNumeric, ModeSymbolic, ModeHybrid}
}
