package strategy

import (
	"stockana/indicators"
	"stockana/series"
)

// Combined runs the multi-indicator strategy: MACD momentum gated by
// Bollinger position, RSI bounds, and volume confirmation.
//
//	Buy:  MACD above its signal line, close above the lower band,
//	      RSI below the overbought level, volume above its rolling mean.
//	Sell: MACD below its signal line, close below the upper band,
//	      RSI above the oversold level.
//
// Timestamps where any input is undefined, or where both rules fire,
// resolve to Hold.
func Combined(s *series.Series, cfg Config) ([]Signal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	macd, err := indicators.MACD(s, cfg.ShortWindow, cfg.LongWindow, cfg.SignalWindow, series.Close)
	if err != nil {
		return nil, err
	}
	bands, err := indicators.BollingerBands(s, cfg.BollingerWindow, cfg.BollingerStd, series.Close)
	if err != nil {
		return nil, err
	}
	rsi, err := indicators.RSI(s, cfg.RSIWindow, series.Close)
	if err != nil {
		return nil, err
	}
	volAvg, err := indicators.SMA(s, cfg.VolumeWindow, series.Volume)
	if err != nil {
		return nil, err
	}

	if err := series.Align(macd.Line, macd.Signal, bands.Upper, bands.Lower, rsi, volAvg); err != nil {
		return nil, err
	}

	out := make([]Signal, s.Len())
	for i := 0; i < s.Len(); i++ {
		out[i] = Signal{Time: s.Bar(i).Time, Decision: Hold}

		line, ok1 := macd.Line.At(i)
		sig, ok2 := macd.Signal.At(i)
		upper, ok3 := bands.Upper.At(i)
		lower, ok4 := bands.Lower.At(i)
		r, ok5 := rsi.At(i)
		va, ok6 := volAvg.At(i)
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
			continue
		}
		b := s.Bar(i)

		buy := line > sig && b.Close > lower && r < cfg.RSIOverbought && b.Volume > va
		sell := line < sig && b.Close < upper && r > cfg.RSIOversold
		switch {
		case buy && sell:
			// Conflicting evidence stays Hold.
		case buy:
			out[i].Decision = Buy
		case sell:
			out[i].Decision = Sell
		}
	}
	return out, nil
}
