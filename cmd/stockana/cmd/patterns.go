package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stockana/journal"
	"stockana/patterns"
	"stockana/pkg/id"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Recognize candlestick patterns over a bar CSV",
	Long: `Scan an OHLCV CSV for candlestick patterns and print each match.
With --db the matches are also journaled to SQLite under a fresh run ID.

Example:
  stockana patterns --bars data/aapl.csv --symbol AAPL --epsilon 0.1`,
	RunE: runPatterns,
}

var (
	patBarsPath string
	patSymbol   string
	patEpsilon  float64
	patDBPath   string
)

func init() {
	rootCmd.AddCommand(patternsCmd)

	patternsCmd.Flags().StringVarP(&patBarsPath, "bars", "b", "", "path to OHLCV CSV (required)")
	patternsCmd.Flags().StringVarP(&patSymbol, "symbol", "s", "UNKNOWN", "symbol recorded with each match")
	patternsCmd.Flags().Float64VarP(&patEpsilon, "epsilon", "e", patterns.DefaultEpsilon, "doji body-to-range threshold")
	patternsCmd.Flags().StringVarP(&patDBPath, "db", "d", "", "optional SQLite journal path")

	patternsCmd.MarkFlagRequired("bars")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(patBarsPath)
	if err != nil {
		return err
	}

	labels, err := patterns.Recognize(s, patEpsilon)
	if err != nil {
		return err
	}

	var j journal.Journal
	runID := id.New()
	if patDBPath != "" {
		j, err = journal.NewSQLite(patDBPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer j.Close()
	}

	for _, l := range labels {
		fmt.Printf("%s %s (%s)\n", l.Time.Format(time.RFC3339), l.Pattern, l.Dir)
		if j != nil {
			err := j.RecordPattern(journal.PatternRecord{
				RunID:     runID,
				Symbol:    patSymbol,
				Time:      l.Time,
				Pattern:   string(l.Pattern),
				Direction: string(l.Dir),
			})
			if err != nil {
				return err
			}
		}
	}
	fmt.Printf("%d patterns over %d bars\n", len(labels), s.Len())
	if j != nil {
		fmt.Printf("journaled under run %s\n", runID)
	}
	return nil
}
