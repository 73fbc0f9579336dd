package strategy

import (
	"fmt"

	"stockana/patterns"
	"stockana/series"
)

// Config enumerates every recognized strategy parameter with its default.
// It is validated once at construction and passed by value; nothing in the
// composer ever mutates it.
type Config struct {
	ShortWindow  int `json:"short_window" yaml:"short_window"`
	LongWindow   int `json:"long_window" yaml:"long_window"`
	SignalWindow int `json:"signal_window" yaml:"signal_window"`
	VolumeWindow int `json:"volume_window" yaml:"volume_window"`

	// UseEMA switches the crossover averages from SMA to EMA.
	UseEMA bool `json:"use_ema" yaml:"use_ema"`

	BollingerWindow int     `json:"bollinger_window" yaml:"bollinger_window"`
	BollingerStd    float64 `json:"bollinger_std" yaml:"bollinger_std"`

	RSIWindow     int     `json:"rsi_window" yaml:"rsi_window"`
	RSIOverbought float64 `json:"rsi_overbought" yaml:"rsi_overbought"`
	RSIOversold   float64 `json:"rsi_oversold" yaml:"rsi_oversold"`

	DojiEpsilon float64 `json:"doji_epsilon" yaml:"doji_epsilon"`
}

// Default returns the documented defaults for every parameter.
func Default() Config {
	return Config{
		ShortWindow:     12,
		LongWindow:      26,
		SignalWindow:    9,
		VolumeWindow:    20,
		UseEMA:          false,
		BollingerWindow: 20,
		BollingerStd:    2.0,
		RSIWindow:       14,
		RSIOverbought:   70,
		RSIOversold:     30,
		DojiEpsilon:     patterns.DefaultEpsilon,
	}
}

// Validate checks every parameter against its domain.
func (c Config) Validate() error {
	if c.ShortWindow <= 0 {
		return fmt.Errorf("%w: short_window must be positive, got %d", series.ErrInvalidParameter, c.ShortWindow)
	}
	if c.LongWindow <= c.ShortWindow {
		return fmt.Errorf("%w: long_window %d must exceed short_window %d",
			series.ErrInvalidParameter, c.LongWindow, c.ShortWindow)
	}
	if c.SignalWindow <= 0 {
		return fmt.Errorf("%w: signal_window must be positive, got %d", series.ErrInvalidParameter, c.SignalWindow)
	}
	if c.VolumeWindow <= 0 {
		return fmt.Errorf("%w: volume_window must be positive, got %d", series.ErrInvalidParameter, c.VolumeWindow)
	}
	if c.BollingerWindow <= 0 {
		return fmt.Errorf("%w: bollinger_window must be positive, got %d", series.ErrInvalidParameter, c.BollingerWindow)
	}
	if c.BollingerStd <= 0 {
		return fmt.Errorf("%w: bollinger_std must be positive, got %v", series.ErrInvalidParameter, c.BollingerStd)
	}
	if c.RSIWindow <= 0 {
		return fmt.Errorf("%w: rsi_window must be positive, got %d", series.ErrInvalidParameter, c.RSIWindow)
	}
	if c.RSIOversold <= 0 || c.RSIOverbought >= 100 || c.RSIOversold >= c.RSIOverbought {
		return fmt.Errorf("%w: rsi thresholds must satisfy 0 < oversold < overbought < 100, got %v/%v",
			series.ErrInvalidParameter, c.RSIOversold, c.RSIOverbought)
	}
	if c.DojiEpsilon <= 0 {
		return fmt.Errorf("%w: doji_epsilon must be positive, got %v", series.ErrInvalidParameter, c.DojiEpsilon)
	}
	return nil
}
