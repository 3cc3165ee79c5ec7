package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     Band
	}{
		{0, Impossible},
		{0.001, ExtremelyHard},
		{0.15, ExtremelyHard},
		{0.25, ExtremelyHard}, // upper edge belongs to the band below it
		{0.250001, VeryHard},
		{0.4, VeryHard},
		{0.50, VeryHard},
		{0.500001, Challenging},
		{0.9, Challenging},
		{1.0, Challenging},
	}
	for _, tc := range cases {
		band, err := Classify(tc.accuracy)
		require.NoError(t, err, "accuracy %v", tc.accuracy)
		assert.Equal(t, tc.want, band, "accuracy %v", tc.accuracy)
	}
}

func TestClassifyRejectsOutOfRange(t *testing.T) {
	for _, acc := range []float64{-0.01, 1.01, 2, -1} {
		_, err := Classify(acc)
		assert.ErrorIs(t, err, ErrAccuracyRange, "accuracy %v", acc)
	}
}

func TestStrugglingThresholdIsDistinctFromBandEdge(t *testing.T) {
	// 0.27 is past the extremely_hard edge but still struggling.
	band, err := Classify(0.27)
	require.NoError(t, err)
	assert.Equal(t, VeryHard, band)
	assert.True(t, IsStruggling(0.27))

	assert.False(t, IsStruggling(0.30))
	assert.True(t, IsStruggling(0.2999))
	assert.True(t, IsStruggling(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3))
	assert.Equal(t, 1.0, Clamp(42))
	assert.Equal(t, 0.5, Clamp(0.5))
}
