package indicators

import (
	"fmt"

	"stockana/series"
)

// Bands bundles the three Bollinger bands, aligned to the source series.
type Bands struct {
	Upper  *series.Derived
	Middle *series.Derived
	Lower  *series.Derived
}

// BollingerBands computes a middle band (SMA of col) with upper and lower
// bands numStd rolling standard deviations away. At every defined position
// Upper >= Middle >= Lower.
func BollingerBands(s *series.Series, window int, numStd float64, col series.Column) (*Bands, error) {
	if numStd <= 0 {
		return nil, fmt.Errorf("%w: num_std must be positive, got %v", series.ErrInvalidParameter, numStd)
	}
	mid, err := SMA(s, window, col)
	if err != nil {
		return nil, err
	}
	std := rollingStd(s, window, col)

	upper := series.NewDerived(fmt.Sprintf("BollingerUpper(%d)", window), s.Times())
	lower := series.NewDerived(fmt.Sprintf("BollingerLower(%d)", window), s.Times())
	for i := 0; i < s.Len(); i++ {
		m, mok := mid.At(i)
		sd, sok := std.At(i)
		if mok && sok {
			upper.Set(i, m+numStd*sd)
			lower.Set(i, m-numStd*sd)
		}
	}
	return &Bands{Upper: upper, Middle: mid, Lower: lower}, nil
}
