// Package strategy composes indicator outputs into a single Buy/Sell/Hold
// decision per timestamp. Decisions never look ahead: the signal at t
// depends only on data up to and including t.
package strategy

import (
	"time"

	"stockana/indicators"
	"stockana/series"
)

// Decision is the composite signal for one timestamp.
type Decision string

const (
	Buy  Decision = "Buy"
	Sell Decision = "Sell"
	Hold Decision = "Hold"
)

// Signal pairs a timestamp with its decision. The composer emits one
// signal per input bar; timestamps where any contributing series is
// undefined resolve to Hold.
type Signal struct {
	Time     time.Time
	Decision Decision
}

// ApplyStrategy runs the moving-average crossover strategy with volume
// confirmation: Buy when the short average crosses above the long average
// on above-average volume, Sell on the inverse crossover, Hold otherwise.
// Exact equality of the averages is a tie and resolves to Hold.
func ApplyStrategy(s *series.Series, cfg Config) ([]Signal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ma := indicators.SMA
	if cfg.UseEMA {
		ma = indicators.EMA
	}
	short, err := ma(s, cfg.ShortWindow, series.Close)
	if err != nil {
		return nil, err
	}
	long, err := ma(s, cfg.LongWindow, series.Close)
	if err != nil {
		return nil, err
	}
	volAvg, err := indicators.SMA(s, cfg.VolumeWindow, series.Volume)
	if err != nil {
		return nil, err
	}

	return Compose(short, long, volAvg, s.ColumnDerived(series.Volume))
}

// Compose detects crossovers between pre-computed short and long averages,
// confirming buys against volume above its rolling average. All four
// inputs must share one timestamp index; mismatches fail with
// ErrAlignment. Callers normally use ApplyStrategy; Compose exists so
// averages computed elsewhere can feed the same decision rule.
func Compose(short, long, volAvg, volume *series.Derived) ([]Signal, error) {
	if err := series.Align(short, long, volAvg, volume); err != nil {
		return nil, err
	}

	out := make([]Signal, short.Len())
	for i := 0; i < short.Len(); i++ {
		out[i] = Signal{Time: short.Time(i), Decision: Hold}
		if i == 0 {
			continue
		}

		sNow, ok1 := short.At(i)
		lNow, ok2 := long.At(i)
		sPrev, ok3 := short.At(i - 1)
		lPrev, ok4 := long.At(i - 1)
		va, ok5 := volAvg.At(i)
		v, ok6 := volume.At(i)
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
			continue
		}

		diff := sNow - lNow
		prevDiff := sPrev - lPrev

		// Cross logic, ties (diff == 0) stay Hold:
		// - Bull cross: diff goes from <=0 to >0
		// - Bear cross: diff goes from >=0 to <0
		switch {
		case diff > 0 && prevDiff <= 0 && v > va:
			out[i].Decision = Buy
		case diff < 0 && prevDiff >= 0:
			out[i].Decision = Sell
		}
	}
	return out, nil
}
