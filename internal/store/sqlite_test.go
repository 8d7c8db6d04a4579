package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestBeginAndFinishRun(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.BeginRun(ctx, "daily", "2025-08-13")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, StatusRunning, run.Status)

	require.NoError(t, s.FinishRun(ctx, run.ID, StatusComplete, 15, 0))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "daily", runs[0].Mode)
	assert.Equal(t, "2025-08-13", runs[0].GameDate)
	assert.Equal(t, StatusComplete, runs[0].Status)
	assert.Equal(t, 15, runs[0].Processed)
}

func TestFinishUnknownRun(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	err := s.FinishRun(context.Background(), "no-such-run", StatusComplete, 0, 0)
	assert.Error(t, err)
}

func TestRecordAndListUpserts(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	run, err := s.BeginRun(ctx, "odds", "2025-08-13")
	require.NoError(t, err)

	require.NoError(t, s.RecordUpsert(ctx, run.ID, "2025-08-13|NYY|BOS", "created", "page-1"))
	require.NoError(t, s.RecordUpsert(ctx, run.ID, "2025-08-13|SEA|TEX", "updated", "page-2"))

	ups, err := s.ListUpserts(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, ups, 2)
	assert.Equal(t, "2025-08-13|NYY|BOS", ups[0].GameKey)
	assert.Equal(t, "created", ups[0].Action)
	assert.Equal(t, "updated", ups[1].Action)
	assert.Equal(t, "page-2", ups[1].PageID)
}

func TestListUpsertsEmpty(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ups, err := s.ListUpserts(context.Background(), "absent")
	require.NoError(t, err)
	assert.Empty(t, ups)
}

func TestListRunsOrderAndLimit(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.BeginRun(ctx, "daily", "2025-08-13")
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
