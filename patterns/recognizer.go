package patterns

import (
	"time"

	"stockana/series"
)

// Label is one recognized pattern occurrence. Multi-candle patterns are
// labeled at the timestamp of their most recent bar.
type Label struct {
	Time    time.Time
	Pattern ID
	Dir     Direction
}

// Recognize applies every known pattern across the series and returns the
// matches in time order. Patterns needing n bars are not evaluated for the
// first n-1 positions. eps controls doji detection; pass DefaultEpsilon
// for the standard threshold.
func Recognize(s *series.Series, eps float64) ([]Label, error) {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	var out []Label
	for i := 0; i < s.Len(); i++ {
		for _, p := range All {
			if i < p.Window-1 {
				continue
			}
			ok, err := p.Match(s.Slice(i-p.Window+1, i+1), eps)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, Label{Time: s.Bar(i).Time, Pattern: p.ID, Dir: p.Dir})
			}
		}
	}
	return out, nil
}
