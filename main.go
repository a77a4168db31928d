package main

import (
	"fmt"
	"os"

	"finsight/ledger-insights/cmd/analyze"
	"finsight/ledger-insights/cmd/audit"
	"finsight/ledger-insights/cmd/categorize"
	"finsight/ledger-insights/cmd/root"
	"finsight/ledger-insights/cmd/score"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(audit.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(score.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
