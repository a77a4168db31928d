// Package models provides the data structures shared by the ingestion and
// analysis pipeline.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single debit-side ledger entry. Amount is always a
// positive magnitude: credit-side movements are excluded during ingestion
// and never appear here as negative values.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date" csv:"Date"`
	Description string          `json:"description" yaml:"description" csv:"Description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
	Category    string          `json:"category" yaml:"category" csv:"Category"`
	SourceRow   int             `json:"source_row" yaml:"source_row" csv:"SourceRow"`
}

// DedupKey identifies a transaction for duplicate collapsing. Two rows with
// the same date, description and amount are the same transaction.
func (t Transaction) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", t.Date.Format("2006-01-02"), t.Description, t.Amount.String())
}

// String returns a short human-readable form used in logs.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s", t.Date.Format("2006-01-02"), t.Description, t.Amount.StringFixed(2))
}
