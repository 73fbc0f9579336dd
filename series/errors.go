package series

import "errors"

// Every failure in the analysis core is a rejected input. The sentinel
// errors below are wrapped with fmt.Errorf("%w: ...") so callers can test
// the kind with errors.Is while still seeing the offending value.
var (
	// ErrInvalidParameter marks a window, threshold, or multiplier outside
	// its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData marks a series shorter than a required window.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidRange marks a structurally impossible boundary, such as a
	// retracement high below its low.
	ErrInvalidRange = errors.New("invalid range")

	// ErrAlignment marks derived series that do not share a common
	// timestamp index.
	ErrAlignment = errors.New("series not aligned")
)
