package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "builds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Close() })
	return rec
}

func TestSQLiteRecorder_RecordAndRecent(t *testing.T) {
	rec := newTestRecorder(t)

	first := &BuildEvent{
		Kind:     KindCandlestick,
		Source:   "file",
		Records:  120,
		Windows:  []int{5, 10, 20, 30},
		Duration: 42 * time.Millisecond,
	}
	require.NoError(t, rec.RecordBuild(first))
	assert.NotEmpty(t, first.ID)

	second := &BuildEvent{
		ID:     "fixed-id",
		Kind:   KindGenerated,
		Source: "synthetic",
		Err:    "generator: count must not be negative",
	}
	require.NoError(t, rec.RecordBuild(second))

	events, err := rec.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "fixed-id", events[0].ID)
	assert.Equal(t, KindGenerated, events[0].Kind)
	assert.Equal(t, "generator: count must not be negative", events[0].Err)
	assert.Nil(t, events[0].Windows)

	assert.Equal(t, first.ID, events[1].ID)
	assert.Equal(t, "file", events[1].Source)
	assert.Equal(t, 120, events[1].Records)
	assert.Equal(t, []int{5, 10, 20, 30}, events[1].Windows)
	assert.Equal(t, 42*time.Millisecond, events[1].Duration)
	assert.Empty(t, events[1].Err)
}

func TestSQLiteRecorder_RecentLimit(t *testing.T) {
	rec := newTestRecorder(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, rec.RecordBuild(&BuildEvent{Kind: KindCandlestick, Records: i}))
	}

	events, err := rec.Recent(3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 4, events[0].Records)
	assert.Equal(t, 2, events[2].Records)
}

func TestSQLiteRecorder_DuplicateID(t *testing.T) {
	rec := newTestRecorder(t)
	require.NoError(t, rec.RecordBuild(&BuildEvent{ID: "dup", Kind: KindGenerated}))
	assert.Error(t, rec.RecordBuild(&BuildEvent{ID: "dup", Kind: KindGenerated}))
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.db")
	rec, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, rec.RecordBuild(&BuildEvent{Kind: KindCandlestick, Records: 7}))
	require.NoError(t, rec.Close())

	rec, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer rec.Close()
	events, err := rec.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 7, events[0].Records)
}

func TestWindowsColumn(t *testing.T) {
	assert.Equal(t, "", joinWindows(nil))
	assert.Equal(t, "5,10", joinWindows([]int{5, 10}))
	assert.Nil(t, splitWindows(""))
	assert.Equal(t, []int{5, 10}, splitWindows("5,10"))
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	assert.NoError(t, rec.RecordBuild(&BuildEvent{Kind: KindGenerated}))
	assert.NoError(t, rec.Close())
}
