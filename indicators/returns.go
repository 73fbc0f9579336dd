package indicators

import (
	"fmt"

	"stockana/series"
)

// DailyReturns computes the percent change of col between consecutive
// bars. The first position is defined as 0 since it has no predecessor; a
// zero previous value also yields 0 rather than a division blow-up.
func DailyReturns(s *series.Series, col series.Column) *series.Derived {
	d := series.NewDerived("DailyReturn", s.Times())
	vals := s.Column(col)
	d.Set(0, 0)
	for i := 1; i < len(vals); i++ {
		if vals[i-1] == 0 {
			d.Set(i, 0)
			continue
		}
		d.Set(i, (vals[i]-vals[i-1])/vals[i-1])
	}
	return d
}

// RollingReturn computes the cumulative return over a trailing window as
// the rolling sum of daily returns. Defined from index window onward: the
// first percent change only exists at index 1.
func RollingReturn(s *series.Series, window int, col series.Column) (*series.Derived, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", series.ErrInvalidParameter, window)
	}
	if s.Len() < window+1 {
		return nil, fmt.Errorf("%w: need %d bars for rolling return over %d, got %d",
			series.ErrInsufficientData, window+1, window, s.Len())
	}

	returns := DailyReturns(s, col)
	d := series.NewDerived(fmt.Sprintf("RollingReturn(%d)", window), s.Times())
	for i := window; i < s.Len(); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			v, _ := returns.At(j)
			sum += v
		}
		d.Set(i, sum)
	}
	return d, nil
}
