// Package difficulty derives coarse human-readable bands from an AI model's
// average accuracy on a puzzle. Bands are recomputed on demand, never stored,
// so they cannot go stale relative to the accuracy they summarize.
package difficulty

import "errors"

// ErrAccuracyRange indicates an accuracy outside [0,1]. Classification fails
// rather than clamping; the analytics parse boundary clamps network floats
// once, so in-process callers always hold valid values and an out-of-range
// input here is a programmer error.
var ErrAccuracyRange = errors.New("difficulty: accuracy must be in [0,1]")

// Band is an ordered difficulty category.
type Band string

const (
	Impossible    Band = "impossible"
	ExtremelyHard Band = "extremely_hard"
	VeryHard      Band = "very_hard"
	Challenging   Band = "challenging"
)

// Band boundaries. Each band claims the upper edge of its range: a puzzle at
// exactly 0.25 accuracy is extremely_hard, not very_hard.
const (
	extremelyHardMax = 0.25
	veryHardMax      = 0.50
)

// StrugglingBelow is the threshold for the related but distinct "struggling"
// bucket used by listing filters. It deliberately does not coincide with the
// extremely_hard band edge; the two thresholds serve different features.
const StrugglingBelow = 0.30

// Classify maps an accuracy ratio to its band. Total over [0,1]; returns
// ErrAccuracyRange outside that domain.
func Classify(accuracy float64) (Band, error) {
	if accuracy < 0 || accuracy > 1 {
		return "", ErrAccuracyRange
	}
	switch {
	case accuracy == 0:
		return Impossible, nil
	case accuracy <= extremelyHardMax:
		return ExtremelyHard, nil
	case accuracy <= veryHardMax:
		return VeryHard, nil
	default:
		return Challenging, nil
	}
}

// IsStruggling reports whether accuracy falls in the struggling bucket.
func IsStruggling(accuracy float64) bool {
	return accuracy < StrugglingBelow
}

// Clamp forces a raw network float into [0,1]. Applied once where analytics
// payloads are parsed.
func Clamp(accuracy float64) float64 {
	if accuracy < 0 {
		return 0
	}
	if accuracy > 1 {
		return 1
	}
	return accuracy
}
