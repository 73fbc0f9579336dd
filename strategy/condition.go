package strategy

import (
	"time"

	"stockana/indicators"
	"stockana/series"
)

// Condition labels the market regime implied by the rolling return.
type Condition string

const (
	SevereBear   Condition = "Severe Bear Market"
	ModerateBear Condition = "Moderate Bear Market"
	MildBear     Condition = "Mild Bear Market"
	NeutralCond  Condition = "Neutral"
	MildBull     Condition = "Mild Bull Market"
	ModerateBull Condition = "Moderate Bull Market"
	StrongBull   Condition = "Strong Bull Market"
)

// ConditionLabel is the regime at one timestamp. Defined is false during
// the rolling-return warm-up.
type ConditionLabel struct {
	Time      time.Time
	Condition Condition
	Defined   bool
}

// LabelMarket classifies every timestamp by the cumulative close-price
// return over a trailing window, bucketed at ±10% and ±20%.
func LabelMarket(s *series.Series, window int) ([]ConditionLabel, error) {
	rr, err := indicators.RollingReturn(s, window, series.Close)
	if err != nil {
		return nil, err
	}

	out := make([]ConditionLabel, s.Len())
	for i := 0; i < s.Len(); i++ {
		out[i] = ConditionLabel{Time: s.Bar(i).Time}
		v, ok := rr.At(i)
		if !ok {
			continue
		}
		out[i].Condition = labelReturn(v)
		out[i].Defined = true
	}
	return out, nil
}

func labelReturn(r float64) Condition {
	switch {
	case r <= -0.20:
		return SevereBear
	case r <= -0.10:
		return ModerateBear
	case r < 0:
		return MildBear
	case r == 0:
		return NeutralCond
	case r < 0.10:
		return MildBull
	case r < 0.20:
		return ModerateBull
	default:
		return StrongBull
	}
}
