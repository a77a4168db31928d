// Package score implements the standalone scoring command: re-score a
// previously exported insights breakdown without re-ingesting the
// statements it came from.
package score

import (
	"fmt"
	"os"

	"finsight/ledger-insights/cmd/root"
	"finsight/ledger-insights/internal/models"
	"finsight/ledger-insights/internal/score"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var breakdownFile string

// Cmd represents the score command.
var Cmd = &cobra.Command{
	Use:   "score",
	Short: "Score a saved insights breakdown YAML file",
	RunE:  scoreFunc,
}

func init() {
	Cmd.Flags().StringVarP(&breakdownFile, "breakdown", "b", "", "Insights breakdown YAML file to score")
	_ = Cmd.MarkFlagRequired("breakdown")
}

func scoreFunc(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(breakdownFile)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", breakdownFile, err)
	}

	var ins models.Insights
	if err := yaml.Unmarshal(data, &ins); err != nil {
		return fmt.Errorf("error parsing %s: %w", breakdownFile, err)
	}

	cfg := root.Cfg
	calc := score.NewCalculator(score.Config{
		IdealShares:        cfg.Scoring.IdealShares,
		SeverityWeight:     cfg.Scoring.SeverityWeight,
		OverspendTolerance: cfg.Scoring.OverspendTolerance,
		MaxRecommendations: cfg.Scoring.MaxRecommendations,
	})
	s := calc.Score(ins)

	fmt.Printf("Smart score: %.1f/10 (%s)\n", s.Score, s.SpenderRating)
	fmt.Println(s.Interpretation)
	for _, rec := range s.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	return nil
}
