package iocache

import (
	"testing"
	"time"

	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	store, err := NewRunStore(schema.SQLiteBackend, t.TempDir()+"/runs.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func TestRunStoreLifecycle(t *testing.T) {
	store := newSQLiteStore(t)

	startTime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	runID, err := store.BeginRun(startTime, map[string]any{"interval": 7})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	endTime := startTime.Add(2 * time.Minute)
	require.NoError(t, store.EndRun(runID, endTime, 42, 9000, 350))

	rows := []schema.FreqRow{
		{Word: "corpus", Total: 12.4, Mean: 2.5, Stddev: 0.5, SeriesRel: []float64{2.0, 3.0}},
		{Word: "token", Total: 3.1, Mean: 0.8, Stddev: 0.2},
	}
	require.NoError(t, store.RecordWordStats(runID, rows))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.True(t, runs[0].StartTime.Equal(startTime))
	require.NotNil(t, runs[0].EndTime)
	assert.True(t, runs[0].EndTime.Equal(endTime))
	assert.Equal(t, 42, runs[0].Documents)
	assert.Equal(t, 9000, runs[0].Tokens)
	assert.Equal(t, 350, runs[0].VocabSize)
	assert.Contains(t, runs[0].ConfigParams, `"interval":7`)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, 2, status.TableSizes[wordStatsTable])
}

func TestRunStoreListOrder(t *testing.T) {
	store := newSQLiteStore(t)

	first, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now().UTC(), nil)
	require.NoError(t, err)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, first, runs[1].RunID)

	limited, err := store.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second, limited[0].RunID)
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.EndRun(runID, time.Now(), 0, 0, 0))
	assert.NoError(t, store.RecordWordStats(runID, nil))

	runs, err := store.ListRuns(5)
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Equal(t, 0, status.TotalRuns)
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestClearRunsSQLite(t *testing.T) {
	dbPath := t.TempDir() + "/runs.db"
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	assert.NoFileExists(t, dbPath)

	// Clearing a missing file is not an error
	assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`shoten_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"shoten_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"shoten_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}
