// Package journal records analysis results (composite signals and
// recognized candlestick patterns) keyed by a ULID run identifier.
package journal

import "time"

// SignalRecord is one composite decision at one timestamp.
type SignalRecord struct {
	RunID    string
	Symbol   string
	Time     time.Time
	Decision string
	ShortMA  float64
	LongMA   float64
}

// PatternRecord is one recognized candlestick pattern occurrence.
type PatternRecord struct {
	RunID     string
	Symbol    string
	Time      time.Time
	Pattern   string
	Direction string
}

type Journal interface {
	RecordSignal(SignalRecord) error
	RecordPattern(PatternRecord) error
	Close() error
}
