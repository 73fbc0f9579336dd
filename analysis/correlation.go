// Package analysis computes cross-asset statistics over multiple series.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"stockana/indicators"
	"stockana/series"
)

// Matrix is a symmetric correlation matrix over the named symbols.
// Coef[i][j] is the Pearson correlation of the daily returns of
// Symbols[i] and Symbols[j]; the diagonal is 1.
type Matrix struct {
	Symbols []string
	Coef    [][]float64
}

// At returns the coefficient for a pair of symbols.
func (m *Matrix) At(a, b string) (float64, bool) {
	ia, ib := -1, -1
	for i, s := range m.Symbols {
		if s == a {
			ia = i
		}
		if s == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Coef[ia][ib], true
}

// Correlate computes pairwise Pearson correlations between the daily
// close returns of the given series. All series must share one timestamp
// index; mismatches fail with ErrAlignment. Symbols come back sorted so
// the matrix layout is deterministic.
func Correlate(bySymbol map[string]*series.Series) (*Matrix, error) {
	if len(bySymbol) < 2 {
		return nil, fmt.Errorf("%w: correlation needs at least two series, got %d",
			series.ErrInsufficientData, len(bySymbol))
	}

	symbols := make([]string, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	returns := make([]*series.Derived, len(symbols))
	for i, sym := range symbols {
		returns[i] = indicators.DailyReturns(bySymbol[sym], series.Close)
	}
	if err := series.Align(returns...); err != nil {
		return nil, err
	}
	if returns[0].Len() < 3 {
		return nil, fmt.Errorf("%w: correlation needs at least two return observations",
			series.ErrInsufficientData)
	}

	m := &Matrix{Symbols: symbols, Coef: make([][]float64, len(symbols))}
	for i := range symbols {
		m.Coef[i] = make([]float64, len(symbols))
		m.Coef[i][i] = 1
	}
	for i := 0; i < len(symbols); i++ {
		for j := i + 1; j < len(symbols); j++ {
			c := pearson(returnValues(returns[i]), returnValues(returns[j]))
			m.Coef[i][j] = c
			m.Coef[j][i] = c
		}
	}
	return m, nil
}

// returnValues drops the synthetic first observation (always 0, it has no
// predecessor) so it cannot bias the correlation.
func returnValues(d *series.Derived) []float64 {
	out := make([]float64, 0, d.Len()-1)
	for i := 1; i < d.Len(); i++ {
		v, _ := d.At(i)
		out = append(out, v)
	}
	return out
}

// pearson returns NaN when either side has zero variance, matching the
// convention of statistical tooling.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
