package indicators

import (
	"fmt"

	"stockana/series"
)

// RSI computes the Relative Strength Index of col using Wilder's smoothing:
// the average gain and average loss are seeded with simple means over the
// first window price changes, then smoothed with
// avg = (avg*(window-1) + change)/window. A zero average loss maps to
// RSI = 100. Defined from index window onward (a change needs two bars).
func RSI(s *series.Series, window int, col series.Column) (*series.Derived, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", series.ErrInvalidParameter, window)
	}
	if s.Len() < window+1 {
		return nil, fmt.Errorf("%w: need %d bars for RSI(%d), got %d",
			series.ErrInsufficientData, window+1, window, s.Len())
	}

	d := series.NewDerived(fmt.Sprintf("RSI(%d)", window), s.Times())
	vals := s.Column(col)

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		delta := vals[i] - vals[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	d.Set(window, rsiValue(avgGain, avgLoss))

	for i := window + 1; i < len(vals); i++ {
		delta := vals[i] - vals[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		d.Set(i, rsiValue(avgGain, avgLoss))
	}
	return d, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
