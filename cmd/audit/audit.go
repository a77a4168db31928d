// Package audit implements the audit command: rank a batch's transactions
// by suspicion index for the audit-report assembler.
package audit

import (
	"fmt"

	"finsight/ledger-insights/cmd/analyze"
	"finsight/ledger-insights/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the audit command.
var Cmd = &cobra.Command{
	Use:   "audit [files...]",
	Short: "Rank a batch's transactions by anomaly for audit review",
	Args:  cobra.MinimumNArgs(1),
	RunE:  auditFunc,
}

// top caps the printed ranking; the full list still drives the counts.
var top int

func init() {
	Cmd.Flags().IntVar(&top, "top", 10, "Number of ranked transactions to print")
}

func auditFunc(cmd *cobra.Command, args []string) error {
	sources, err := analyze.ReadSources(args)
	if err != nil {
		return err
	}

	a, err := analyze.BuildAnalyzer()
	if err != nil {
		return err
	}

	result, err := a.Audit(sources)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		for _, e := range f.Errors {
			root.Log.WithField("file", f.Filename).Error(e)
		}
	}

	fmt.Printf("Risk summary: %d high, %d medium, %d normal\n\n",
		result.HighCount, result.MediumCount, result.NormalCount)

	limit := top
	if limit > len(result.Suspicious) {
		limit = len(result.Suspicious)
	}
	for _, s := range result.Suspicious[:limit] {
		fmt.Printf("%-6s  index=%.4f  amount=%.4f  text=%.4f  %s  %s\n",
			s.RiskLevel, s.SuspicionIndex, s.AmountScore, s.TextScore,
			s.Transaction.Amount.StringFixed(2), s.Transaction.Description)
	}

	return nil
}
