package indicators

import (
	"fmt"
	"time"

	"stockana/series"
)

// MACDSeries bundles the MACD line, its signal line, and the histogram
// (line minus signal), all aligned to the source series.
type MACDSeries struct {
	Line      *series.Derived
	Signal    *series.Derived
	Histogram *series.Derived
}

// MACD computes Moving Average Convergence Divergence: the difference of a
// short and a long EMA of col, plus a signal line that is an EMA of the
// MACD line itself.
func MACD(s *series.Series, shortWindow, longWindow, signalWindow int, col series.Column) (*MACDSeries, error) {
	if longWindow <= shortWindow {
		return nil, fmt.Errorf("%w: long_window %d must exceed short_window %d",
			series.ErrInvalidParameter, longWindow, shortWindow)
	}
	if signalWindow <= 0 {
		return nil, fmt.Errorf("%w: signal_window must be positive, got %d",
			series.ErrInvalidParameter, signalWindow)
	}

	fast, err := EMA(s, shortWindow, col)
	if err != nil {
		return nil, err
	}
	slow, err := EMA(s, longWindow, col)
	if err != nil {
		return nil, err
	}

	line := series.NewDerived(fmt.Sprintf("MACD(%d,%d)", shortWindow, longWindow), s.Times())
	for i := 0; i < s.Len(); i++ {
		f, fok := fast.At(i)
		sl, sok := slow.At(i)
		if fok && sok {
			line.Set(i, f-sl)
		}
	}

	signal, err := emaOfDerived(line, signalWindow, fmt.Sprintf("Signal(%d)", signalWindow))
	if err != nil {
		return nil, err
	}

	hist := series.NewDerived("Histogram", s.Times())
	for i := 0; i < s.Len(); i++ {
		l, lok := line.At(i)
		sg, sok := signal.At(i)
		if lok && sok {
			hist.Set(i, l-sg)
		}
	}

	return &MACDSeries{Line: line, Signal: signal, Histogram: hist}, nil
}

// emaOfDerived smooths the defined suffix of d the same way EMA smooths a
// raw column: SMA seed over the first window defined values, then the
// exponential recurrence.
func emaOfDerived(d *series.Derived, window int, name string) (*series.Derived, error) {
	first := d.FirstDefined()
	if first < 0 || d.Len()-first < window {
		return nil, fmt.Errorf("%w: need %d defined values for %s, got %d",
			series.ErrInsufficientData, window, name, d.DefinedCount())
	}

	out := series.NewDerived(name, timesOf(d))
	ema := &ExponentialMA{period: window, multiplier: 2.0 / float64(window+1)}
	for i := first; i < d.Len(); i++ {
		v, _ := d.At(i)
		ema.update(v)
		if ema.Ready() {
			out.Set(i, ema.Value())
		}
	}
	return out, nil
}

func timesOf(d *series.Derived) []time.Time {
	ts := make([]time.Time, d.Len())
	for i := range ts {
		ts[i] = d.Time(i)
	}
	return ts
}
