// Package analyze implements the personal-analysis command: ingest a
// batch of statement files and print the derived insights and smart
// score.
package analyze

import (
	"fmt"
	"os"

	"finsight/ledger-insights/cmd/root"
	"finsight/ledger-insights/internal/analyzer"
	"finsight/ledger-insights/internal/export"
	"finsight/ledger-insights/internal/score"
	"finsight/ledger-insights/internal/store"
	"finsight/ledger-insights/internal/suspicion"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze statement files into spending insights and a smart score",
	Args:  cobra.MinimumNArgs(1),
	RunE:  analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.OutputFile, "output", "o", "", "Write the categorized transactions to a CSV file")
}

// ReadSources reads each file path into an analyzer source. Reading the
// bytes is the only input I/O in the pipeline; from here on everything is
// pure computation.
func ReadSources(paths []string) ([]analyzer.Source, error) {
	sources := make([]analyzer.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		sources = append(sources, analyzer.Source{Filename: path, Data: data})
	}
	return sources, nil
}

// BuildAnalyzer assembles the pipeline from the loaded configuration and
// the optional history flag.
func BuildAnalyzer() (*analyzer.Analyzer, error) {
	cfg := root.Cfg

	rules, err := store.NewCategoryStore(cfg.Categories.RulesFile, root.Log).LoadRules()
	if err != nil {
		return nil, err
	}

	opts := []analyzer.Option{
		analyzer.WithHeaderScanRows(cfg.Ingest.HeaderScanRows),
		analyzer.WithScoring(score.Config{
			IdealShares:        cfg.Scoring.IdealShares,
			SeverityWeight:     cfg.Scoring.SeverityWeight,
			OverspendTolerance: cfg.Scoring.OverspendTolerance,
			MaxRecommendations: cfg.Scoring.MaxRecommendations,
		}),
		analyzer.WithSuspicion(suspicion.Config{
			AmountWeight:    cfg.Suspicion.AmountWeight,
			TextWeight:      cfg.Suspicion.TextWeight,
			HighThreshold:   cfg.Suspicion.HighThreshold,
			MediumThreshold: cfg.Suspicion.MediumThreshold,
		}),
	}
	// The --history flag wins over the configured history.file; with both
	// empty, analyses are not persisted.
	historyPath := root.HistoryFile
	if historyPath == "" {
		historyPath = cfg.History.File
	}
	if historyPath != "" {
		opts = append(opts, analyzer.WithHistory(store.NewHistoryStore(historyPath, root.Log)))
	}

	return analyzer.New(rules, root.Log, opts...), nil
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	sources, err := ReadSources(args)
	if err != nil {
		return err
	}

	a, err := BuildAnalyzer()
	if err != nil {
		return err
	}

	result, err := a.Analyze(sources, root.UserID, root.AccountType)
	if err != nil {
		return err
	}

	printResult(result)

	if root.OutputFile != "" {
		if err := export.WriteTransactionsCSV(result.Transactions, root.OutputFile, root.Log); err != nil {
			return err
		}
	}

	return nil
}

func printResult(result *analyzer.Result) {
	for _, f := range result.Files {
		for _, e := range f.Errors {
			root.Log.WithField("file", f.Filename).Error(e)
		}
		for _, w := range f.Warnings {
			root.Log.WithField("file", f.Filename).Warn(w)
		}
	}

	ins := result.Insights
	fmt.Printf("Transactions: %d\n", ins.TransactionCount)
	fmt.Printf("Total spent:  %s\n", ins.TotalSpent.StringFixed(2))
	if ins.DateRange != nil {
		fmt.Printf("Date range:   %s to %s\n",
			ins.DateRange.Start.Format("2006-01-02"), ins.DateRange.End.Format("2006-01-02"))
	}

	fmt.Println("\nCategory breakdown:")
	for _, c := range ins.CategoryBreakdown {
		fmt.Printf("  %-15s %12s  %6.2f%%\n", c.Name, c.Amount.StringFixed(2), c.Percentage)
	}

	s := result.SmartScore
	fmt.Printf("\nSmart score: %.1f/10 (%s)\n", s.Score, s.SpenderRating)
	fmt.Println(s.Interpretation)
	for _, rec := range s.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}

	if result.RecordID != "" {
		root.Log.WithField("id", result.RecordID).Info("Analysis saved to history")
	}
}
