// Package indicators provides technical analysis indicators over immutable
// OHLCV series. Every function is pure: given the same series and
// parameters it returns the same full-length derived series, with leading
// undefined positions for the warm-up period.
package indicators

import (
	"fmt"

	"stockana/series"
)

// Indicator computes a single streaming value from bars.
// It is deterministic and carries only the minimal recurrence state.
type Indicator interface {
	// Name returns a stable identifier like "EMA(20)" or "SMA(50)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next bar and updates internal state.
	Update(b series.Bar)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current indicator value. If !Ready() it returns 0;
	// callers should always check Ready().
	Value() float64
}

// checkWindow validates a window parameter against the series length.
func checkWindow(name string, window, length int) error {
	if window <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", series.ErrInvalidParameter, name, window)
	}
	if length < window {
		return fmt.Errorf("%w: need %d bars for %s, got %d", series.ErrInsufficientData, window, name, length)
	}
	return nil
}
