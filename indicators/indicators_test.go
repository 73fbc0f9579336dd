package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockana/series"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// closeSeries builds a series whose close prices are the given values,
// with enough high/low headroom to stay structurally valid.
func closeSeries(t *testing.T, closes ...float64) *series.Series {
	t.Helper()
	bars := make([]series.Bar, len(closes))
	for i, c := range closes {
		bars[i] = series.Bar{
			Time:   day(i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	s, err := series.New(bars)
	assert.NoError(t, err)
	return s
}

func TestSMAConcrete(t *testing.T) {
	s := closeSeries(t, 10, 11, 9, 12, 13)

	d, err := SMA(s, 3, series.Close)
	assert.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	assert.False(t, d.Defined(0))
	assert.False(t, d.Defined(1))

	want := []float64{10.0, 10.666667, 11.333333}
	for i, w := range want {
		v, ok := d.At(i + 2)
		assert.True(t, ok)
		assert.InDelta(t, w, v, 0.001)
	}
}

func TestSMAMatchesNaiveMean(t *testing.T) {
	closes := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	s := closeSeries(t, closes...)
	window := 4

	d, err := SMA(s, window, series.Close)
	assert.NoError(t, err)
	assert.Equal(t, len(closes)-window+1, d.DefinedCount())

	for i := window - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		v, ok := d.At(i)
		assert.True(t, ok)
		assert.InDelta(t, sum/float64(window), v, 1e-9)
	}
}

func TestSMAInvalidWindow(t *testing.T) {
	s := closeSeries(t, 10, 11, 12)

	_, err := SMA(s, 0, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)

	_, err = SMA(s, -3, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)

	_, err = SMA(s, 4, series.Close)
	assert.ErrorIs(t, err, series.ErrInsufficientData)
}

func TestEMASeedAndRecurrence(t *testing.T) {
	s := closeSeries(t, 10, 11, 9, 12, 13)

	d, err := EMA(s, 3, series.Close)
	assert.NoError(t, err)

	assert.False(t, d.Defined(0))
	assert.False(t, d.Defined(1))

	// Seed = SMA(10,11,9) = 10; alpha = 2/(3+1) = 0.5.
	v, ok := d.At(2)
	assert.True(t, ok)
	assert.InDelta(t, 10.0, v, 1e-9)

	v, _ = d.At(3)
	assert.InDelta(t, 0.5*12+0.5*10, v, 1e-9)

	v, _ = d.At(4)
	assert.InDelta(t, 0.5*13+0.5*11, v, 1e-9)
}

func TestEMAPurity(t *testing.T) {
	s := closeSeries(t, 5, 8, 2, 9, 4, 7, 6, 1, 3, 8)

	a, err := EMA(s, 4, series.Close)
	assert.NoError(t, err)
	b, err := EMA(s, 4, series.Close)
	assert.NoError(t, err)

	for i := 0; i < a.Len(); i++ {
		av, aok := a.At(i)
		bv, bok := b.At(i)
		assert.Equal(t, aok, bok)
		assert.Equal(t, av, bv)
	}
}

func TestMACDWindowOrdering(t *testing.T) {
	s := closeSeries(t, 10, 11, 12, 13, 14, 15)

	_, err := MACD(s, 26, 12, 9, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)

	_, err = MACD(s, 12, 12, 9, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)

	_, err = MACD(s, 2, 4, 0, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)
}

func TestMACDAlignmentAndHistogram(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%7) + float64(i)/3
	}
	s := closeSeries(t, closes...)

	m, err := MACD(s, 3, 6, 4, series.Close)
	assert.NoError(t, err)

	assert.Equal(t, s.Len(), m.Line.Len())
	assert.Equal(t, s.Len(), m.Signal.Len())
	assert.Equal(t, s.Len(), m.Histogram.Len())

	// Line defined once the long EMA is; signal needs 4 more line values.
	assert.Equal(t, 5, m.Line.FirstDefined())
	assert.Equal(t, 8, m.Signal.FirstDefined())

	for i := 0; i < s.Len(); i++ {
		h, hok := m.Histogram.At(i)
		l, lok := m.Line.At(i)
		sg, sok := m.Signal.At(i)
		assert.Equal(t, lok && sok, hok)
		if hok {
			assert.InDelta(t, l-sg, h, 1e-9)
		}
	}
}

func TestRSIBounds(t *testing.T) {
	closes := []float64{44, 47, 45, 50, 43, 48, 52, 41, 46, 49, 44, 51, 47, 45, 53, 42, 48}
	s := closeSeries(t, closes...)

	d, err := RSI(s, 5, series.Close)
	assert.NoError(t, err)

	assert.Equal(t, 5, d.FirstDefined())
	for i := 0; i < d.Len(); i++ {
		if v, ok := d.At(i); ok {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestRSIAllGains(t *testing.T) {
	s := closeSeries(t, 10, 11, 12, 13, 14, 15)

	d, err := RSI(s, 3, series.Close)
	assert.NoError(t, err)

	for i := 3; i < d.Len(); i++ {
		v, ok := d.At(i)
		assert.True(t, ok)
		assert.Equal(t, 100.0, v)
	}
}

func TestRSIInsufficientData(t *testing.T) {
	s := closeSeries(t, 10, 11, 12)
	_, err := RSI(s, 3, series.Close)
	assert.ErrorIs(t, err, series.ErrInsufficientData)
}

func TestBollingerOrdering(t *testing.T) {
	closes := []float64{20, 22, 19, 25, 21, 24, 18, 26, 23, 20, 27, 22}
	s := closeSeries(t, closes...)

	b, err := BollingerBands(s, 4, 2.0, series.Close)
	assert.NoError(t, err)

	defined := 0
	for i := 0; i < s.Len(); i++ {
		u, uok := b.Upper.At(i)
		m, mok := b.Middle.At(i)
		l, lok := b.Lower.At(i)
		assert.Equal(t, uok, mok)
		assert.Equal(t, mok, lok)
		if uok {
			defined++
			assert.GreaterOrEqual(t, u, m)
			assert.GreaterOrEqual(t, m, l)
		}
	}
	assert.Equal(t, len(closes)-3, defined)
}

func TestBollingerBadMultiplier(t *testing.T) {
	s := closeSeries(t, 10, 11, 12, 13)
	_, err := BollingerBands(s, 2, 0, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)
	_, err = BollingerBands(s, 2, -1.5, series.Close)
	assert.ErrorIs(t, err, series.ErrInvalidParameter)
}

func TestFibonacciLevels(t *testing.T) {
	f, err := FibonacciLevels(2, 1)
	assert.NoError(t, err)

	assert.Equal(t, 2.0, f.Level0)
	assert.Equal(t, 1.0, f.Level100)
	assert.InDelta(t, 1.764, f.Level236, 1e-9)
	assert.InDelta(t, 1.618, f.Level382, 1e-9)
	assert.InDelta(t, 1.5, f.Level500, 1e-9)
	assert.InDelta(t, 1.382, f.Level618, 1e-9)
	assert.InDelta(t, 1.236, f.Level764, 1e-9)

	ordered := f.Ordered()
	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, ordered[i-1], ordered[i])
	}
}

func TestFibonacciInvalidRange(t *testing.T) {
	_, err := FibonacciLevels(1, 2)
	assert.ErrorIs(t, err, series.ErrInvalidRange)
}

func TestFibonacciRetracementOverSeries(t *testing.T) {
	s := closeSeries(t, 10, 14, 12, 8, 11)

	// Highs are close+1, lows close-1; full range spans [7, 15].
	f, err := FibonacciRetracement(s, day(0), day(4))
	assert.NoError(t, err)
	assert.Equal(t, 15.0, f.High)
	assert.Equal(t, 7.0, f.Low)

	// Restricting the range excludes the extremes.
	f, err = FibonacciRetracement(s, day(2), day(4))
	assert.NoError(t, err)
	assert.Equal(t, 13.0, f.High)
	assert.Equal(t, 7.0, f.Low)

	_, err = FibonacciRetracement(s, day(10), day(20))
	assert.ErrorIs(t, err, series.ErrInvalidRange)
}

func TestDailyReturns(t *testing.T) {
	s := closeSeries(t, 100, 101, 102, 101, 100)

	d := DailyReturns(s, series.Close)
	assert.Equal(t, d.Len(), d.DefinedCount())

	want := []float64{0, 0.01, 0.00990099, -0.00980392, -0.00990099}
	for i, w := range want {
		v, ok := d.At(i)
		assert.True(t, ok)
		assert.InDelta(t, w, v, 1e-7)
	}
}

func TestRollingReturnWarmup(t *testing.T) {
	s := closeSeries(t, 100, 110, 99, 105, 115)

	d, err := RollingReturn(s, 2, series.Close)
	assert.NoError(t, err)

	assert.Equal(t, 2, d.FirstDefined())
	v, ok := d.At(2)
	assert.True(t, ok)
	assert.InDelta(t, 0.1+(99.0-110.0)/110.0, v, 1e-9)
}
