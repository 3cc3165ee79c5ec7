package progress

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

func attempt(t *testing.T) domain.Grid {
	t.Helper()
	g, err := domain.NewGrid([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	return g
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	s := NewFS(t.TempDir())
	p := &domain.Progress{
		PuzzleID: "007bbfb7",
		Dataset:  domain.DatasetTraining,
		Attempt:  attempt(t),
	}
	require.NoError(t, s.Save(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	assert.NotZero(t, p.UpdatedAt)
}

func TestSaveRequiresPuzzleID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Progress{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	p := &domain.Progress{
		PuzzleID: "11852cab",
		Dataset:  domain.DatasetTraining2,
		Attempt:  attempt(t),
		Solved:   true,
		Name:     "second attempt",
	}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.PuzzleID, got.PuzzleID)
	assert.Equal(t, p.Dataset, got.Dataset)
	assert.True(t, got.Solved)
	assert.True(t, p.Attempt.Equal(got.Attempt))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossDatasets(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	for _, ds := range []domain.Dataset{domain.DatasetTraining, domain.DatasetEvaluation} {
		p := &domain.Progress{PuzzleID: "007bbfb7", Dataset: ds, Attempt: attempt(t)}
		require.NoError(t, s.Save(ctx, p))
	}

	metas, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 2)
	for _, m := range metas {
		assert.Equal(t, "007bbfb7", m.PuzzleID)
		assert.NotEmpty(t, m.ID)
	}
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
