package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordSignal(s SignalRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO signals
		(run_id, symbol, time, decision, short_ma, long_ma)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.RunID, s.Symbol, s.Time, s.Decision, s.ShortMA, s.LongMA,
	)
	return err
}

func (j *SQLiteJournal) RecordPattern(p PatternRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO patterns
		(run_id, symbol, time, pattern, direction)
		VALUES (?, ?, ?, ?, ?)`,
		p.RunID, p.Symbol, p.Time, p.Pattern, p.Direction,
	)
	return err
}

// ListSignalsByRun returns all signals recorded under one run ID in time
// order.
func (j *SQLiteJournal) ListSignalsByRun(runID string) ([]SignalRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, symbol, time, decision, short_ma, long_ma
		FROM signals WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SignalRecord
	for rows.Next() {
		var s SignalRecord
		var ts time.Time
		if err := rows.Scan(&s.RunID, &s.Symbol, &ts, &s.Decision, &s.ShortMA, &s.LongMA); err != nil {
			return nil, err
		}
		s.Time = ts
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListPatternsByRun returns all pattern records under one run ID in time
// order.
func (j *SQLiteJournal) ListPatternsByRun(runID string) ([]PatternRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, symbol, time, pattern, direction
		FROM patterns WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PatternRecord
	for rows.Next() {
		var p PatternRecord
		var ts time.Time
		if err := rows.Scan(&p.RunID, &p.Symbol, &ts, &p.Pattern, &p.Direction); err != nil {
			return nil, err
		}
		p.Time = ts
		out = append(out, p)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
