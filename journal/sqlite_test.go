package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openTestDB(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSQLiteSignalRoundtrip(t *testing.T) {
	j := openTestDB(t)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	// Insert out of time order to exercise the ORDER BY.
	assert.NoError(t, j.RecordSignal(SignalRecord{
		RunID: "run-1", Symbol: "AAPL", Time: base.AddDate(0, 0, 1),
		Decision: "Sell", ShortMA: 99, LongMA: 100,
	}))
	assert.NoError(t, j.RecordSignal(SignalRecord{
		RunID: "run-1", Symbol: "AAPL", Time: base,
		Decision: "Buy", ShortMA: 101.5, LongMA: 100.25,
	}))
	assert.NoError(t, j.RecordSignal(SignalRecord{
		RunID: "run-2", Symbol: "MSFT", Time: base,
		Decision: "Hold", ShortMA: 50, LongMA: 50,
	}))

	got, err := j.ListSignalsByRun("run-1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Buy", got[0].Decision)
	assert.True(t, got[0].Time.Equal(base))
	assert.Equal(t, "Sell", got[1].Decision)
	assert.Equal(t, 101.5, got[0].ShortMA)
}

func TestSQLitePatternRoundtrip(t *testing.T) {
	j := openTestDB(t)

	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, j.RecordPattern(PatternRecord{
		RunID: "run-1", Symbol: "AAPL", Time: ts,
		Pattern: "doji", Direction: "neutral",
	}))

	got, err := j.ListPatternsByRun("run-1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "doji", got[0].Pattern)
	assert.Equal(t, "neutral", got[0].Direction)
}

func TestSQLiteUnknownRunIsEmpty(t *testing.T) {
	j := openTestDB(t)

	got, err := j.ListSignalsByRun("nope")
	assert.NoError(t, err)
	assert.Empty(t, got)
}
