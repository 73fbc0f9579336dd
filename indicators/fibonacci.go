package indicators

import (
	"fmt"
	"time"

	"stockana/series"
)

// FibLevels holds the standard retracement levels between a swing high and
// a swing low. Level0 equals the high and Level100 the low; the levels in
// between descend monotonically.
type FibLevels struct {
	High     float64
	Low      float64
	Level0   float64
	Level236 float64
	Level382 float64
	Level500 float64
	Level618 float64
	Level764 float64
	Level100 float64
}

// Ordered returns the levels from 0% down to 100%.
func (f FibLevels) Ordered() []float64 {
	return []float64{f.Level0, f.Level236, f.Level382, f.Level500, f.Level618, f.Level764, f.Level100}
}

// FibonacciLevels computes retracement levels from an explicit swing high
// and low. Fails with ErrInvalidRange when high < low.
func FibonacciLevels(high, low float64) (FibLevels, error) {
	if high < low {
		return FibLevels{}, fmt.Errorf("%w: high %v below low %v", series.ErrInvalidRange, high, low)
	}
	diff := high - low
	return FibLevels{
		High:     high,
		Low:      low,
		Level0:   high,
		Level236: high - diff*0.236,
		Level382: high - diff*0.382,
		Level500: high - diff*0.5,
		Level618: high - diff*0.618,
		Level764: high - diff*0.764,
		Level100: low,
	}, nil
}

// FibonacciRetracement finds the maximum high and minimum low over the bars
// in [from, to] and computes the retracement levels between them. Fails
// with ErrInvalidRange when no bars fall inside the range.
func FibonacciRetracement(s *series.Series, from, to time.Time) (FibLevels, error) {
	var high, low float64
	found := false
	for i := 0; i < s.Len(); i++ {
		b := s.Bar(i)
		if b.Time.Before(from) || b.Time.After(to) {
			continue
		}
		if !found || b.High > high {
			high = b.High
		}
		if !found || b.Low < low {
			low = b.Low
		}
		found = true
	}
	if !found {
		return FibLevels{}, fmt.Errorf("%w: no bars between %s and %s",
			series.ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return FibonacciLevels(high, low)
}
