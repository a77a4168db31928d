// Package export writes categorized transactions to the canonical CSV
// layout consumed by the report assembler.
package export

import (
	"fmt"
	"os"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"

	"github.com/gocarina/gocsv"
)

// transactionRow is the CSV projection of a transaction.
type transactionRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	SourceRow   int    `csv:"SourceRow"`
}

// WriteTransactionsCSV writes transactions to csvFile with a header row.
func WriteTransactionsCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	rows := make([]transactionRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = transactionRow{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
			SourceRow:   tx.SourceRow,
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)},
	).Info("Wrote transactions to CSV file")
	return nil
}
