// Package root contains the root command for the application.
package root

import (
	"os"

	"finsight/ledger-insights/internal/config"
	"finsight/ledger-insights/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "ledger-insights",
		Short: "Analyze financial statements into a canonical ledger, spending insights and anomaly flags.",
		Long: `ledger-insights ingests heterogeneous financial statement exports,
normalizes them into a canonical transaction ledger, and derives category
breakdowns, a smart spending score and per-transaction suspicion rankings.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledger-insights!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	// Flags shared by the analysis commands.
	UserID      string
	AccountType string
	HistoryFile string
	OutputFile  string
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&UserID, "user", "u", "", "User identifier recorded on saved analyses")
	Cmd.PersistentFlags().StringVar(&AccountType, "account-type", "personal", "Account type: personal or company")
	Cmd.PersistentFlags().StringVar(&HistoryFile, "history", "", "History file path (overrides history.file from config)")
}

// loadEnv loads a .env file when one exists, silently.
func loadEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}
