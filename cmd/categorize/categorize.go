// Package categorize handles the description categorization command.
package categorize

import (
	"fmt"
	"strings"

	"finsight/ledger-insights/cmd/root"
	"finsight/ledger-insights/internal/categorize"
	"finsight/ledger-insights/internal/store"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Categorize a transaction description using the keyword rules",
	RunE:  categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	desc := description
	if desc == "" {
		desc = strings.Join(args, " ")
	}
	if desc == "" {
		return fmt.Errorf("a description is required, either as an argument or via --description")
	}

	rules, err := store.NewCategoryStore(root.Cfg.Categories.RulesFile, root.Log).LoadRules()
	if err != nil {
		return err
	}

	classifier := categorize.NewClassifier(rules, root.Log)
	fmt.Println(classifier.Categorize(desc))
	return nil
}
