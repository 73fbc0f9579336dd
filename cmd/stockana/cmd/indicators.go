package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stockana/indicators"
	"stockana/series"
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Compute a technical indicator over a bar CSV",
	Long: `Compute one indicator over an OHLCV CSV and print the defined values.

Supported indicators:
  - sma: simple moving average
  - ema: exponential moving average
  - rsi: relative strength index
  - macd: MACD line, signal line, and histogram
  - bollinger: Bollinger bands

Example:
  stockana indicators --bars data/aapl.csv --indicator sma --window 20`,
	RunE: runIndicators,
}

var (
	inBarsPath  string
	inIndicator string
	inColumn    string
	inWindow    int
	inShort     int
	inLong      int
	inSignal    int
	inStd       float64
)

func init() {
	rootCmd.AddCommand(indicatorsCmd)

	indicatorsCmd.Flags().StringVarP(&inBarsPath, "bars", "b", "", "path to OHLCV CSV (time,open,high,low,close,volume) (required)")
	indicatorsCmd.Flags().StringVarP(&inIndicator, "indicator", "i", "sma", "indicator name (sma, ema, rsi, macd, bollinger)")
	indicatorsCmd.Flags().StringVarP(&inColumn, "column", "c", "close", "bar column (open, high, low, close, volume)")
	indicatorsCmd.Flags().IntVarP(&inWindow, "window", "w", 20, "rolling window size")
	indicatorsCmd.Flags().IntVar(&inShort, "short", 12, "macd: short EMA window")
	indicatorsCmd.Flags().IntVar(&inLong, "long", 26, "macd: long EMA window")
	indicatorsCmd.Flags().IntVar(&inSignal, "signal", 9, "macd: signal EMA window")
	indicatorsCmd.Flags().Float64Var(&inStd, "std", 2.0, "bollinger: standard deviation multiplier")

	indicatorsCmd.MarkFlagRequired("bars")
}

func runIndicators(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(inBarsPath)
	if err != nil {
		return err
	}
	col := series.Column(inColumn)

	switch inIndicator {
	case "sma":
		d, err := indicators.SMA(s, inWindow, col)
		if err != nil {
			return err
		}
		printDerived(d)

	case "ema":
		d, err := indicators.EMA(s, inWindow, col)
		if err != nil {
			return err
		}
		printDerived(d)

	case "rsi":
		d, err := indicators.RSI(s, inWindow, col)
		if err != nil {
			return err
		}
		printDerived(d)

	case "macd":
		m, err := indicators.MACD(s, inShort, inLong, inSignal, col)
		if err != nil {
			return err
		}
		for i := 0; i < m.Line.Len(); i++ {
			l, lok := m.Line.At(i)
			sg, sok := m.Signal.At(i)
			h, hok := m.Histogram.At(i)
			if lok && sok && hok {
				fmt.Printf("%s line=%.6f signal=%.6f hist=%.6f\n",
					m.Line.Time(i).Format(time.RFC3339), l, sg, h)
			}
		}

	case "bollinger":
		b, err := indicators.BollingerBands(s, inWindow, inStd, col)
		if err != nil {
			return err
		}
		for i := 0; i < b.Middle.Len(); i++ {
			u, uok := b.Upper.At(i)
			m, mok := b.Middle.At(i)
			l, lok := b.Lower.At(i)
			if uok && mok && lok {
				fmt.Printf("%s upper=%.6f middle=%.6f lower=%.6f\n",
					b.Middle.Time(i).Format(time.RFC3339), u, m, l)
			}
		}

	default:
		return fmt.Errorf("unknown indicator %q (supported: sma, ema, rsi, macd, bollinger)", inIndicator)
	}
	return nil
}

func printDerived(d *series.Derived) {
	for i := 0; i < d.Len(); i++ {
		if v, ok := d.At(i); ok {
			fmt.Printf("%s %s=%.6f\n", d.Time(i).Format(time.RFC3339), d.Name(), v)
		}
	}
}
