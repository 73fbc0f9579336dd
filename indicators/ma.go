package indicators

import (
	"fmt"
	"math"

	"stockana/series"
)

// SMA computes the simple moving average of col over a rolling window.
// The first window-1 positions remain undefined.
func SMA(s *series.Series, window int, col series.Column) (*series.Derived, error) {
	if err := checkWindow("window", window, s.Len()); err != nil {
		return nil, err
	}

	d := series.NewDerived(fmt.Sprintf("SMA(%d)", window), s.Times())
	ma := NewSMA(window, col)
	for i := 0; i < s.Len(); i++ {
		ma.Update(s.Bar(i))
		if ma.Ready() {
			d.Set(i, ma.Value())
		}
	}
	return d, nil
}

// EMA computes the exponential moving average of col with smoothing factor
// 2/(window+1), seeded with the SMA of the first window points. Positions
// before the seed remain undefined.
func EMA(s *series.Series, window int, col series.Column) (*series.Derived, error) {
	if err := checkWindow("window", window, s.Len()); err != nil {
		return nil, err
	}

	d := series.NewDerived(fmt.Sprintf("EMA(%d)", window), s.Times())
	ema := NewEMA(window, col)
	for i := 0; i < s.Len(); i++ {
		ema.Update(s.Bar(i))
		if ema.Ready() {
			d.Set(i, ema.Value())
		}
	}
	return d, nil
}

// rollingStd computes the rolling sample standard deviation of col,
// aligned with SMA(window). A window of 1 yields zero deviation.
func rollingStd(s *series.Series, window int, col series.Column) *series.Derived {
	d := series.NewDerived(fmt.Sprintf("Std(%d)", window), s.Times())
	vals := s.Column(col)
	for i := window - 1; i < len(vals); i++ {
		if window == 1 {
			d.Set(i, 0)
			continue
		}
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += vals[j]
		}
		mean /= float64(window)

		ss := 0.0
		for j := i - window + 1; j <= i; j++ {
			dev := vals[j] - mean
			ss += dev * dev
		}
		d.Set(i, math.Sqrt(ss/float64(window-1)))
	}
	return d
}
