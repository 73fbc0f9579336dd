package indicators

import (
	"fmt"

	"stockana/series"
)

// SimpleMA is a streaming Simple Moving Average over one bar column.
type SimpleMA struct {
	period int
	column series.Column
	window []float64
}

// NewSMA creates a streaming SMA with the given period over col.
func NewSMA(period int, col series.Column) *SimpleMA {
	return &SimpleMA{
		period: period,
		column: col,
		window: make([]float64, 0, period),
	}
}

func (m *SimpleMA) Name() string {
	return fmt.Sprintf("SMA(%d)", m.period)
}

func (m *SimpleMA) Warmup() int {
	return m.period
}

func (m *SimpleMA) Reset() {
	m.window = m.window[:0]
}

func (m *SimpleMA) Update(b series.Bar) {
	m.window = append(m.window, b.Value(m.column))
	// Keep only the last 'period' values
	if len(m.window) > m.period {
		m.window = m.window[1:]
	}
}

func (m *SimpleMA) Ready() bool {
	return len(m.window) >= m.period
}

func (m *SimpleMA) Value() float64 {
	if !m.Ready() {
		return 0
	}
	sum := 0.0
	for _, v := range m.window {
		sum += v
	}
	return sum / float64(len(m.window))
}

// ExponentialMA is a streaming Exponential Moving Average over one bar
// column. The smoothing factor is 2/(period+1) and the seed value is the
// SMA of the first period points.
type ExponentialMA struct {
	period     int
	column     series.Column
	multiplier float64
	ema        float64
	count      int
	warmupSum  float64
}

// NewEMA creates a streaming EMA with the given period over col.
func NewEMA(period int, col series.Column) *ExponentialMA {
	return &ExponentialMA{
		period:     period,
		column:     col,
		multiplier: 2.0 / float64(period+1),
	}
}

func (e *ExponentialMA) Name() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *ExponentialMA) Warmup() int {
	return e.period
}

func (e *ExponentialMA) Reset() {
	e.ema = 0
	e.count = 0
	e.warmupSum = 0
}

func (e *ExponentialMA) Update(b series.Bar) {
	e.update(b.Value(e.column))
}

// update threads the recurrence over a raw value; MACD reuses it to smooth
// an already-derived line.
func (e *ExponentialMA) update(v float64) {
	if e.count < e.period {
		// During warmup, accumulate sum for the initial SMA seed
		e.warmupSum += v
		e.count++
		if e.count == e.period {
			e.ema = e.warmupSum / float64(e.period)
		}
	} else {
		e.ema = (v-e.ema)*e.multiplier + e.ema
	}
}

func (e *ExponentialMA) Ready() bool {
	return e.count >= e.period
}

func (e *ExponentialMA) Value() float64 {
	if !e.Ready() {
		return 0
	}
	return e.ema
}
