// Package ingest turns mapped statement rows into validated Transactions.
// Every row that does not survive normalization leaves a trace: dropped
// rows land in missing_values, duplicates and credit-side exclusions are
// counted in warnings, and an unusable file carries a file-level error.
// The caller always receives a structured result, never an error.
package ingest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"finsight/ledger-insights/internal/currencyutils"
	"finsight/ledger-insights/internal/dateutils"
	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"
	"finsight/ledger-insights/internal/parsererror"
	"finsight/ledger-insights/internal/tabular"

	"github.com/shopspring/decimal"
)

// Normalizer converts one file's raw bytes into a FileIngestResult.
type Normalizer struct {
	detector *tabular.Detector
	logger   logging.Logger
}

// NewNormalizer creates a Normalizer. headerScanRows <= 0 uses the
// detector default.
func NewNormalizer(headerScanRows int, logger logging.Logger) *Normalizer {
	return &Normalizer{
		detector: tabular.NewDetector(headerScanRows, logger),
		logger:   logger,
	}
}

// ProcessFile ingests a single file. Format problems become file-level
// errors on the result; row problems become missing-value entries and
// warnings. Sibling files in a batch are unaffected either way.
func (n *Normalizer) ProcessFile(filename string, data []byte) *models.FileIngestResult {
	tbl, cols, err := n.detector.Detect(filename, data)
	if err != nil {
		var formatErr *parsererror.FormatError
		reason := err.Error()
		if errors.As(err, &formatErr) {
			reason = formatErr.Reason
		}
		n.logger.WithField("file", filename).WithError(err).Warn("File yielded no usable table")
		return &models.FileIngestResult{
			Filename: filename,
			Errors:   []string{reason},
		}
	}

	return n.normalizeTable(tbl, cols)
}

// missingTracker accumulates per-column missing-value bookkeeping while
// rows are processed.
type missingTracker struct {
	filename string
	header   []string
	byColumn map[int][]int
}

func (m *missingTracker) add(col, row int) {
	if m.byColumn == nil {
		m.byColumn = make(map[int][]int)
	}
	m.byColumn[col] = append(m.byColumn[col], row)
}

func (m *missingTracker) collect() []models.MissingValue {
	cols := make([]int, 0, len(m.byColumn))
	for c := range m.byColumn {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	var out []models.MissingValue
	for _, c := range cols {
		name := ""
		if c < len(m.header) {
			name = m.header[c]
		}
		rows := m.byColumn[c]
		out = append(out, models.MissingValue{
			Filename:     m.filename,
			ColumnNumber: c + 1,
			ColumnName:   name,
			MissingRows:  rows,
			MissingCount: len(rows),
		})
	}
	return out
}

func (n *Normalizer) normalizeTable(tbl *tabular.Table, cols tabular.ColumnMap) *models.FileIngestResult {
	var (
		transactions []models.Transaction
		warnings     []string
		missing      = missingTracker{filename: tbl.Filename, header: tbl.Header}
		seen         = map[string]struct{}{}
		duplicates   = 0
		creditRows   = tbl.CreditLines
	)

	for i, row := range tbl.Rows {
		rowNum := i + 1 // 1-based within the data rows, matching user view

		if blankRow(row) {
			continue
		}

		amount, isCredit, amountCol, ok := n.extractAmount(row, cols)
		if isCredit {
			creditRows++
			continue
		}
		if !ok {
			n.reportDroppedCell(tbl, cols, row, rowNum, amountCol)
			missing.add(amountCol, rowNum)
			continue
		}

		date, ok := n.extractDate(row, cols)
		if !ok {
			n.reportDroppedCell(tbl, cols, row, rowNum, cols.Date)
			missing.add(cols.Date, rowNum)
			continue
		}

		tx := models.Transaction{
			Date:        date,
			Description: n.extractDescription(row, cols, rowNum),
			Amount:      amount,
			SourceRow:   rowNum,
		}

		if _, dup := seen[tx.DedupKey()]; dup {
			duplicates++
			continue
		}
		seen[tx.DedupKey()] = struct{}{}

		transactions = append(transactions, tx)
	}

	if duplicates > 0 {
		warnings = append(warnings, fmt.Sprintf("Found %d duplicate rows; removed", duplicates))
	}
	if creditRows > 0 {
		warnings = append(warnings, fmt.Sprintf("Excluded %d credit-side rows from spending analysis", creditRows))
	}
	if tbl.SkippedLines > 0 {
		warnings = append(warnings, fmt.Sprintf("Skipped %d statement lines without a parseable amount", tbl.SkippedLines))
	}

	missingValues := missing.collect()
	for _, mv := range missingValues {
		warnings = append(warnings, fmt.Sprintf(
			"Missing value detected in %s: Column %d (%s) has %d missing value(s)",
			mv.Filename, mv.ColumnNumber, mv.ColumnName, mv.MissingCount))
	}

	n.logger.WithFields(
		logging.Field{Key: "file", Value: tbl.Filename},
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "duplicates", Value: duplicates},
		logging.Field{Key: "credit_rows", Value: creditRows},
	).Info("Normalized file rows")

	return &models.FileIngestResult{
		Filename:      tbl.Filename,
		Transactions:  transactions,
		Warnings:      warnings,
		MissingValues: missingValues,
	}
}

// extractAmount resolves the row's spend magnitude. With a debit/credit
// pair, a placeholder debit cell marks a credit-side row which is excluded
// outright; it never becomes a negative transaction. The returned column
// index says which column to charge a missing value against.
func (n *Normalizer) extractAmount(row []string, cols tabular.ColumnMap) (decimal.Decimal, bool, int, bool) {
	if cols.HasDebitCredit() {
		debitCell := cell(row, cols.Debit)
		if currencyutils.IsPlaceholder(debitCell) {
			return decimal.Zero, true, cols.Debit, false
		}

		amount, err := currencyutils.ParseAmount(debitCell)
		if err == nil && amount.IsPositive() {
			return amount, false, cols.Debit, true
		}

		// The debit side is unreadable; if the credit side carries the
		// value this is a credit-side row, otherwise the amount is
		// genuinely missing.
		if cols.Credit >= 0 && !currencyutils.IsPlaceholder(cell(row, cols.Credit)) {
			return decimal.Zero, true, cols.Debit, false
		}
		return decimal.Zero, false, cols.Debit, false
	}

	amountCell := cell(row, cols.Amount)
	if currencyutils.IsPlaceholder(amountCell) {
		return decimal.Zero, false, cols.Amount, false
	}

	amount, err := currencyutils.ParseAmount(amountCell)
	if err != nil || amount.IsZero() {
		return decimal.Zero, false, cols.Amount, false
	}

	// A signed single column carries spend as magnitude.
	return amount.Abs(), false, cols.Amount, true
}

// reportDroppedCell logs the typed row error for a cell that carried a
// value but failed to parse. Empty and placeholder cells are plain
// missing values and carry no parse error.
func (n *Normalizer) reportDroppedCell(tbl *tabular.Table, cols tabular.ColumnMap, row []string, rowNum, col int) {
	raw := cell(row, col)
	if currencyutils.IsPlaceholder(raw) {
		return
	}

	var parseErr error
	if col == cols.Date {
		_, _, parseErr = dateutils.ParseDate(raw)
	} else {
		_, parseErr = currencyutils.ParseAmount(raw)
	}
	if parseErr == nil {
		return
	}

	name := ""
	if col >= 0 && col < len(tbl.Header) {
		name = tbl.Header[col]
	}
	n.logger.WithError(&parsererror.RowError{
		Filename: tbl.Filename,
		Row:      rowNum,
		Field:    name,
		Value:    raw,
		Err:      parseErr,
	}).Debug("Dropped row cell that failed to parse")
}

func (n *Normalizer) extractDate(row []string, cols tabular.ColumnMap) (time.Time, bool) {
	raw := cell(row, cols.Date)
	if currencyutils.IsPlaceholder(raw) {
		return time.Time{}, false
	}

	t, _, err := dateutils.ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (n *Normalizer) extractDescription(row []string, cols tabular.ColumnMap, rowNum int) string {
	if cols.Description >= 0 {
		if d := strings.TrimSpace(cell(row, cols.Description)); d != "" {
			return d
		}
	}

	// No description column: stitch one together from the cells that are
	// not already claimed by another role, like raw statement dumps do.
	var parts []string
	for i, c := range row {
		if i == cols.Date || i == cols.Debit || i == cols.Credit || i == cols.Amount {
			continue
		}
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " | ")
	}

	return fmt.Sprintf("Transaction %d", rowNum)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
