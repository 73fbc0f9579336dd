package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stockana/config"
	"stockana/journal"
	"stockana/pkg/id"
	"stockana/strategy"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Apply a trading strategy and journal the composite signals",
	Long: `Run a strategy over the bar CSV named in the config file and record
one Buy/Sell/Hold signal per timestamp.

Supported modes:
  - crossover: short/long moving-average crossover with volume confirmation
  - combined:  MACD + Bollinger + RSI + volume rule

Example:
  stockana strategy --config stockana.yaml --mode crossover`,
	RunE: runStrategy,
}

var (
	stConfigPath string
	stMode       string
)

func init() {
	rootCmd.AddCommand(strategyCmd)

	strategyCmd.Flags().StringVarP(&stConfigPath, "config", "c", "", "path to YAML/JSON config (required)")
	strategyCmd.Flags().StringVarP(&stMode, "mode", "m", "crossover", "strategy mode (crossover, combined)")

	strategyCmd.MarkFlagRequired("config")
}

func runStrategy(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(stConfigPath)
	if err != nil {
		return err
	}

	s, err := loadSeries(cfg.Data.Bars)
	if err != nil {
		return err
	}

	var signals []strategy.Signal
	switch stMode {
	case "crossover":
		signals, err = strategy.ApplyStrategy(s, cfg.Strategy)
	case "combined":
		signals, err = strategy.Combined(s, cfg.Strategy)
	default:
		return fmt.Errorf("unknown mode %q (supported: crossover, combined)", stMode)
	}
	if err != nil {
		return err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	defer j.Close()

	runID := id.New()
	counts := map[strategy.Decision]int{}
	for _, sig := range signals {
		counts[sig.Decision]++
		err := j.RecordSignal(journal.SignalRecord{
			RunID:    runID,
			Symbol:   cfg.Data.Symbol,
			Time:     sig.Time,
			Decision: string(sig.Decision),
		})
		if err != nil {
			return err
		}
		if sig.Decision != strategy.Hold {
			fmt.Printf("%s %s %s\n", sig.Time.Format(time.RFC3339), cfg.Data.Symbol, sig.Decision)
		}
	}

	fmt.Printf("run %s: %d bars, %d buy, %d sell, %d hold\n",
		runID, s.Len(), counts[strategy.Buy], counts[strategy.Sell], counts[strategy.Hold])
	return nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return journal.NewCSV(jc.SignalsFile, jc.PatternsFile)
	}
}
