package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	signals  *csv.Writer
	patterns *csv.Writer
	sf, pf   *os.File
}

func NewCSV(signalsPath, patternsPath string) (*CSVJournal, error) {
	sf, err := os.Create(signalsPath)
	if err != nil {
		return nil, err
	}
	pf, err := os.Create(patternsPath)
	if err != nil {
		return nil, err
	}

	sw := csv.NewWriter(sf)
	pw := csv.NewWriter(pf)

	if err := sw.Write([]string{"run_id", "symbol", "time", "decision", "short_ma", "long_ma"}); err != nil {
		return nil, err
	}
	if err := pw.Write([]string{"run_id", "symbol", "time", "pattern", "direction"}); err != nil {
		return nil, err
	}

	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}
	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{sw, pw, sf, pf}, nil
}

func (j *CSVJournal) RecordSignal(s SignalRecord) error {
	err := j.signals.Write([]string{
		s.RunID,
		s.Symbol,
		s.Time.Format(time.RFC3339),
		s.Decision,
		f(s.ShortMA),
		f(s.LongMA),
	})
	if err != nil {
		return err
	}
	j.signals.Flush()
	return j.signals.Error()
}

func (j *CSVJournal) RecordPattern(p PatternRecord) error {
	err := j.patterns.Write([]string{
		p.RunID,
		p.Symbol,
		p.Time.Format(time.RFC3339),
		p.Pattern,
		p.Direction,
	})
	if err != nil {
		return err
	}
	j.patterns.Flush()
	return j.patterns.Error()
}

func (j *CSVJournal) Close() error {
	j.signals.Flush()
	if err := j.signals.Error(); err != nil {
		return err
	}
	j.patterns.Flush()
	if err := j.patterns.Error(); err != nil {
		return err
	}

	if err := j.sf.Close(); err != nil {
		return err
	}
	return j.pf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
