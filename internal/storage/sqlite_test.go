package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pystats/internal/report"
)

func TestRunStore_SaveAndList(t *testing.T) {
	store, err := NewRunStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	first := &report.Report{
		Annotations: map[string]int{"return_count": 1, "annotated_return_count": 0},
		Fixmes:      map[string]int{"7": 2},
	}
	second := &report.Report{
		Annotations: map[string]int{"return_count": 3, "annotated_return_count": 3},
		Fixmes:      map[string]int{},
	}
	require.NoError(t, store.SaveRun(ctx, "/repo", first))
	require.NoError(t, store.SaveRun(ctx, "/repo/sub", second))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, "/repo/sub", runs[0].Root)
	assert.Equal(t, 3, runs[0].Report.Annotations["return_count"])
	assert.False(t, runs[0].CreatedAt.IsZero())

	assert.Equal(t, "/repo", runs[1].Root)
	assert.Equal(t, map[string]int{"7": 2}, runs[1].Report.Fixmes)
}

func TestRunStore_ListLimit(t *testing.T) {
	store, err := NewRunStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveRun(ctx, "/repo", &report.Report{
			Annotations: map[string]int{"globals_count": i},
			Fixmes:      map[string]int{},
		}))
	}

	runs, err := store.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].Report.Annotations["globals_count"])
}

func TestRunStore_EmptyHistory(t *testing.T) {
	store, err := NewRunStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
