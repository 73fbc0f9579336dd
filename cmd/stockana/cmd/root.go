package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockana",
	Short: "Technical indicators, candlestick patterns, and strategy signals over OHLCV data",
	Long: `Stockana analyzes historical stock price series.

It provides tools for:
  - Computing technical indicators (SMA, EMA, MACD, RSI, Bollinger Bands,
    Fibonacci retracement levels)
  - Recognizing candlestick patterns (engulfing, doji, hammer, stars, ...)
  - Composing indicator outputs into Buy/Sell/Hold signals
  - Journaling results to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
