// Package series holds the immutable OHLCV time-series representation the
// rest of the analysis core reads. A Series is constructed once, validated
// once, and never mutated; indicators and recognizers only ever produce
// fresh derived sequences aligned to its timestamps.
package series

import (
	"fmt"
	"time"
)

// Series is an ordered sequence of Bars, strictly ascending by timestamp
// with no duplicates. The zero value is not usable; construct with New.
type Series struct {
	bars []Bar
}

// New validates bars and returns an immutable Series over a private copy.
// Bars must be sorted strictly ascending by timestamp.
func New(bars []Bar) (*Series, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: series needs at least one bar", ErrInsufficientData)
	}
	for i, b := range bars {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return nil, fmt.Errorf("%w: bar %d timestamp %s not after %s",
				ErrInvalidParameter, i, b.Time.Format(time.RFC3339), bars[i-1].Time.Format(time.RFC3339))
		}
	}
	cp := make([]Bar, len(bars))
	copy(cp, bars)
	return &Series{bars: cp}, nil
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.bars) }

// Bar returns the bar at index i.
func (s *Series) Bar(i int) Bar { return s.bars[i] }

// Last returns the most recent bar.
func (s *Series) Last() Bar { return s.bars[len(s.bars)-1] }

// Times returns a fresh slice of all bar timestamps.
func (s *Series) Times() []time.Time {
	ts := make([]time.Time, len(s.bars))
	for i, b := range s.bars {
		ts[i] = b.Time
	}
	return ts
}

// Column returns a fresh slice of the selected column's values.
func (s *Series) Column(col Column) []float64 {
	vs := make([]float64, len(s.bars))
	for i, b := range s.bars {
		vs[i] = b.Value(col)
	}
	return vs
}

// ColumnDerived lifts a raw column into a fully defined Derived, so raw
// inputs like volume can flow through the same alignment checks as
// computed indicators.
func (s *Series) ColumnDerived(col Column) *Derived {
	d := NewDerived(string(col), s.Times())
	for i, b := range s.bars {
		d.Set(i, b.Value(col))
	}
	return d
}

// Slice returns a view of the bars in [from, to). The returned slice must
// not be mutated by the caller.
func (s *Series) Slice(from, to int) []Bar { return s.bars[from:to] }
