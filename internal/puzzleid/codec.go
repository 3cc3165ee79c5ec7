// Package puzzleid converts between bare puzzle content ids and namespaced
// ids carrying a dataset prefix, e.g. "007bbfb7" ↔ "ARC-TR-007bbfb7".
package puzzleid

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// ErrBareID indicates an id that does not match the bare-id shape
// (8 lowercase hex characters).
var ErrBareID = errors.New("puzzleid: bare id must be 8 lowercase hex characters")

// bareIDPattern is the observed bare content id convention.
var bareIDPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// datasetPrefixes maps each dataset tag to its fixed namespaced-id prefix.
var datasetPrefixes = map[domain.Dataset]string{
	domain.DatasetTraining:    "ARC-TR",
	domain.DatasetTraining2:   "ARC-T2",
	domain.DatasetEvaluation:  "ARC-EV",
	domain.DatasetEvaluation2: "ARC-E2",
}

// IsValidBareID reports whether s matches the bare-id shape.
func IsValidBareID(s string) bool { return bareIDPattern.MatchString(s) }

// ToNamespaced prefixes a bare id with its dataset code.
// Fails with ErrBareID on malformed bare ids and domain.ErrUnknownDataset on
// unrecognized dataset tags.
func ToNamespaced(bareID string, dataset domain.Dataset) (string, error) {
	if !IsValidBareID(bareID) {
		return "", ErrBareID
	}
	prefix, ok := datasetPrefixes[dataset]
	if !ok {
		return "", domain.ErrUnknownDataset
	}
	return prefix + "-" + bareID, nil
}

// ToBare strips a recognized dataset prefix if present and returns the input
// unchanged otherwise. Idempotent on already-bare ids, so callers never need
// to pre-check format.
func ToBare(id string) string {
	for _, prefix := range datasetPrefixes {
		if rest, ok := strings.CutPrefix(id, prefix+"-"); ok {
			return rest
		}
	}
	return id
}

// Format describes the recognized shape of an id.
type Format string

const (
	FormatBare       Format = "bare"
	FormatNamespaced Format = "namespaced"
	FormatUnknown    Format = "unknown"
)

// Classification is the result of Classify: whether the id is usable, which
// shape it has, and its decomposition when namespaced.
type Classification struct {
	Valid   bool           `json:"isValid"`
	Format  Format         `json:"format"`
	Dataset domain.Dataset `json:"dataset,omitempty"`
	BareID  string         `json:"bareId,omitempty"`
}

// Classify accepts either id shape from a user and reports what it is.
// Total over all strings; never fails.
func Classify(id string) Classification {
	if IsValidBareID(id) {
		return Classification{Valid: true, Format: FormatBare, BareID: id}
	}
	for dataset, prefix := range datasetPrefixes {
		rest, ok := strings.CutPrefix(id, prefix+"-")
		if !ok {
			continue
		}
		if IsValidBareID(rest) {
			return Classification{Valid: true, Format: FormatNamespaced, Dataset: dataset, BareID: rest}
		}
	}
	return Classification{Valid: false, Format: FormatUnknown}
}
