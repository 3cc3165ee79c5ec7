package puzzleid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

func TestRoundTripAllDatasets(t *testing.T) {
	bareIDs := []string{"007bbfb7", "11852cab", "deadbeef", "00000000", "ffffffff"}
	for _, dataset := range domain.Datasets() {
		for _, bare := range bareIDs {
			namespaced, err := ToNamespaced(bare, dataset)
			require.NoError(t, err)
			assert.Equal(t, bare, ToBare(namespaced), "dataset %s", dataset)
		}
	}
}

func TestToNamespacedPrefixes(t *testing.T) {
	cases := map[domain.Dataset]string{
		domain.DatasetTraining:    "ARC-TR-007bbfb7",
		domain.DatasetTraining2:   "ARC-T2-007bbfb7",
		domain.DatasetEvaluation:  "ARC-EV-007bbfb7",
		domain.DatasetEvaluation2: "ARC-E2-007bbfb7",
	}
	for dataset, want := range cases {
		got, err := ToNamespaced("007bbfb7", dataset)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestToNamespacedRejectsMalformedIDs(t *testing.T) {
	for _, id := range []string{"", "007BBFB7", "007bbfb", "007bbfb77", "zzzzzzzz", "ARC-TR-007bbfb7"} {
		_, err := ToNamespaced(id, domain.DatasetTraining)
		assert.ErrorIs(t, err, ErrBareID, "id %q", id)
	}
}

func TestToNamespacedRejectsUnknownDataset(t *testing.T) {
	_, err := ToNamespaced("007bbfb7", domain.Dataset("bogus"))
	assert.ErrorIs(t, err, domain.ErrUnknownDataset)
}

func TestToBareIdempotent(t *testing.T) {
	inputs := []string{"007bbfb7", "ARC-T2-11852cab", "not-an-id", "", "XYZ-99-007bbfb7"}
	for _, in := range inputs {
		once := ToBare(in)
		assert.Equal(t, once, ToBare(once), "input %q", in)
	}
}

func TestToBarePassesUnrecognizedThrough(t *testing.T) {
	assert.Equal(t, "not-an-id", ToBare("not-an-id"))
	assert.Equal(t, "XYZ-99-007bbfb7", ToBare("XYZ-99-007bbfb7"))
}

func TestClassify(t *testing.T) {
	c := Classify("007bbfb7")
	assert.True(t, c.Valid)
	assert.Equal(t, FormatBare, c.Format)
	assert.Equal(t, "007bbfb7", c.BareID)

	c = Classify("ARC-T2-11852cab")
	assert.True(t, c.Valid)
	assert.Equal(t, FormatNamespaced, c.Format)
	assert.Equal(t, domain.DatasetTraining2, c.Dataset)
	assert.Equal(t, "11852cab", c.BareID)

	for _, id := range []string{"", "zzzzzzzz", "ARC-TR-zzzzzzzz", "007BBFB7"} {
		c = Classify(id)
		assert.False(t, c.Valid, "id %q", id)
		assert.Equal(t, FormatUnknown, c.Format, "id %q", id)
	}
}
