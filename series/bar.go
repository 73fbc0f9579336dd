package series

import (
	"fmt"
	"time"
)

// Bar represents one OHLCV record at a single timestamp.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Column selects one of the Bar fields for column-oriented computations.
type Column string

const (
	Open   Column = "open"
	High   Column = "high"
	Low    Column = "low"
	Close  Column = "close"
	Volume Column = "volume"
)

// Value returns the bar field selected by col.
func (b Bar) Value(col Column) float64 {
	switch col {
	case Open:
		return b.Open
	case High:
		return b.High
	case Low:
		return b.Low
	case Close:
		return b.Close
	case Volume:
		return b.Volume
	}
	return b.Close
}

// Validate checks the structural invariants of a single bar.
func (b Bar) Validate() error {
	if b.Time.IsZero() {
		return fmt.Errorf("%w: bar has zero timestamp", ErrInvalidParameter)
	}
	if b.High < b.Open || b.High < b.Close || b.High < b.Low {
		return fmt.Errorf("%w: high %v below open/close/low", ErrInvalidParameter, b.High)
	}
	if b.Low > b.Open || b.Low > b.Close {
		return fmt.Errorf("%w: low %v above open/close", ErrInvalidParameter, b.Low)
	}
	if b.Volume < 0 {
		return fmt.Errorf("%w: negative volume %v", ErrInvalidParameter, b.Volume)
	}
	return nil
}

// Bullish reports whether the bar closed above its open.
func (b Bar) Bullish() bool { return b.Close > b.Open }

// Bearish reports whether the bar closed below its open.
func (b Bar) Bearish() bool { return b.Close < b.Open }

// Body returns the absolute size of the candle body.
func (b Bar) Body() float64 {
	body := b.Close - b.Open
	if body < 0 {
		return -body
	}
	return body
}

// UpperShadow returns the wick above the body.
func (b Bar) UpperShadow() float64 {
	if b.Open > b.Close {
		return b.High - b.Open
	}
	return b.High - b.Close
}

// LowerShadow returns the wick below the body.
func (b Bar) LowerShadow() float64 {
	if b.Open < b.Close {
		return b.Open - b.Low
	}
	return b.Close - b.Low
}

// Range returns the full high-low extent of the bar.
func (b Bar) Range() float64 { return b.High - b.Low }
