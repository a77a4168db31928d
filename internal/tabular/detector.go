// Package tabular turns raw uploaded bytes into header-labeled rows and
// maps ambiguous column headings onto the canonical transaction fields.
// Detection never raises: a file with no usable table yields a typed
// FormatError that the caller records on the ingest result, and the rest
// of the batch keeps going.
package tabular

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"regexp"
	"strings"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/parsererror"
)

// DefaultHeaderScanRows is how deep into a file the header row is searched
// for before the file is declared unusable.
const DefaultHeaderScanRows = 10

// ErrMissingColumns is the file-level reason used when no date plus
// amount-bearing column pair can be identified.
const ErrMissingColumns = "Missing required columns"

// Table is a parsed file: one header row plus the data rows after it.
// The line counters are populated only on the headerless-text path, where
// exclusions happen during extraction instead of during normalization;
// they let the caller report those exclusions the same way as mapped rows.
type Table struct {
	Filename string
	Header   []string
	Rows     [][]string

	// CreditLines counts dated lines excluded by the credit hint.
	CreditLines int
	// SkippedLines counts dated lines dropped for lacking a parseable
	// amount.
	SkippedLines int
}

// ColumnMap holds the index of each canonical field in the header, or -1
// when the field has no column.
type ColumnMap struct {
	Date        int
	Description int
	Debit       int
	Credit      int
	Amount      int
}

// HasDebitCredit reports whether the file uses an explicit debit/credit
// column pair. When it does, the pair takes priority over any single
// signed amount column.
func (m ColumnMap) HasDebitCredit() bool {
	return m.Debit >= 0
}

// AmountBearing reports whether any column can supply an amount.
func (m ColumnMap) AmountBearing() bool {
	return m.Debit >= 0 || m.Amount >= 0
}

// usable is the header-detection criterion: a date column and an
// amount-bearing column.
func (m ColumnMap) usable() bool {
	return m.Date >= 0 && m.AmountBearing()
}

// Synonym sets for header matching. Matching is case-insensitive and
// substring-based, except for two-letter codes like "dr"/"cr" which must
// match the whole heading to avoid hitting words that merely contain them.
var (
	dateSynonyms   = []string{"date", "txn date", "value date", "transaction date", "posting date", "datetime", "timestamp"}
	debitSynonyms  = []string{"debit", "withdrawal", "dr"}
	creditSynonyms = []string{"credit", "deposit", "cr"}
	amountSynonyms = []string{"amount", "amt", "transaction amount", "value"}
	descSynonyms   = []string{"description", "details", "narration", "particulars", "memo", "note", "remarks", "info"}
)

// Detector classifies raw tabular input.
type Detector struct {
	headerScanRows int
	logger         logging.Logger
}

// NewDetector creates a Detector. headerScanRows <= 0 uses the default.
func NewDetector(headerScanRows int, logger logging.Logger) *Detector {
	if headerScanRows <= 0 {
		headerScanRows = DefaultHeaderScanRows
	}
	return &Detector{headerScanRows: headerScanRows, logger: logger}
}

// Detect parses the raw bytes for the declared filename and returns the
// table plus its column mapping. The error, when non-nil, is always a
// *parsererror.FormatError.
func (d *Detector) Detect(filename string, data []byte) (*Table, ColumnMap, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "csv", "tsv", "txt":
	default:
		return nil, ColumnMap{}, &parsererror.FormatError{
			Filename: filename,
			Reason:   "unsupported file type ." + ext + "; convert through the document extraction service first",
		}
	}

	records, err := d.readDelimited(data, ext)
	if err == nil {
		if tbl, cols, ok := d.locateHeader(filename, records); ok {
			return tbl, cols, nil
		}
	}

	// Plain-text statements often carry no header row at all, just
	// "date description amount" lines.
	if ext == "txt" {
		if tbl, cols, ok := d.extractLines(filename, data); ok {
			return tbl, cols, nil
		}
	}

	d.logger.WithField("file", filename).Warn("No usable table found in file")
	return nil, ColumnMap{}, &parsererror.FormatError{Filename: filename, Reason: ErrMissingColumns}
}

// readDelimited parses the bytes as delimiter-separated records, sniffing
// the delimiter from the first non-blank line. Bank exports use commas,
// semicolons or tabs depending on locale.
func (d *Detector) readDelimited(data []byte, ext string) ([][]string, error) {
	delim := sniffDelimiter(data, ext)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	return r.ReadAll()
}

// locateHeader scans the first headerScanRows records for a row that maps
// to a date column and an amount-bearing column.
func (d *Detector) locateHeader(filename string, records [][]string) (*Table, ColumnMap, bool) {
	limit := d.headerScanRows
	if limit > len(records) {
		limit = len(records)
	}

	for i := 0; i < limit; i++ {
		cols := MapColumns(records[i])
		if !cols.usable() {
			continue
		}

		d.logger.WithFields(
			logging.Field{Key: "file", Value: filename},
			logging.Field{Key: "header_row", Value: i + 1},
			logging.Field{Key: "debit_credit", Value: cols.HasDebitCredit()},
		).Debug("Located header row")

		return &Table{
			Filename: filename,
			Header:   trimAll(records[i]),
			Rows:     records[i+1:],
		}, cols, true
	}

	return nil, ColumnMap{}, false
}

// MapColumns maps a header row onto canonical fields. Roles are resolved
// in priority order so a "Debit Amount" heading is claimed as Debit, not
// as the signed Amount column.
func MapColumns(header []string) ColumnMap {
	cols := ColumnMap{Date: -1, Description: -1, Debit: -1, Credit: -1, Amount: -1}
	claimed := make([]bool, len(header))

	assign := func(target *int, synonyms []string) {
		for i, cell := range header {
			if claimed[i] {
				continue
			}
			if matchesAny(cell, synonyms) {
				*target = i
				claimed[i] = true
				return
			}
		}
	}

	assign(&cols.Date, dateSynonyms)
	assign(&cols.Debit, debitSynonyms)
	assign(&cols.Credit, creditSynonyms)
	assign(&cols.Amount, amountSynonyms)
	assign(&cols.Description, descSynonyms)

	return cols
}

func matchesAny(cell string, synonyms []string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	if cell == "" {
		return false
	}
	for _, syn := range synonyms {
		if len(syn) <= 2 {
			if cell == syn {
				return true
			}
			continue
		}
		if strings.Contains(cell, syn) {
			return true
		}
	}
	return false
}

func sniffDelimiter(data []byte, ext string) rune {
	if ext == "tsv" {
		return '\t'
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		best, bestCount := ',', strings.Count(line, ",")
		for _, cand := range []rune{';', '\t'} {
			if n := strings.Count(line, string(cand)); n > bestCount {
				best, bestCount = cand, n
			}
		}
		return best
	}
	return ','
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// Line-pattern extraction for headerless plain-text statements, e.g.
// "31 OCT 2025 TRANSFER TO VISHWAS 2,000.00". Credit lines are excluded
// the same way a placeholder debit cell would be, and counted so the
// normalizer can warn about them.
var (
	lineDateRe   = regexp.MustCompile(`(?i)^(\d{1,2}\s+(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\s+\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`)
	lineAmountRe = regexp.MustCompile(`[\d,]+\.\d{2}`)
	creditHintRe = regexp.MustCompile(`(?i)TRANSFER FROM|\bCR\b|\bDEPOSIT\b`)
)

func (d *Detector) extractLines(filename string, data []byte) (*Table, ColumnMap, bool) {
	var rows [][]string
	creditLines := 0
	skippedLines := 0

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 10 {
			continue
		}

		dateMatch := lineDateRe.FindStringIndex(line)
		if dateMatch == nil {
			continue
		}
		if creditHintRe.MatchString(line) {
			creditLines++
			continue
		}

		rest := line[dateMatch[1]:]
		amountMatch := lineAmountRe.FindStringIndex(rest)
		if amountMatch == nil {
			skippedLines++
			continue
		}

		date := line[dateMatch[0]:dateMatch[1]]
		desc := strings.TrimSpace(rest[:amountMatch[0]])
		amount := rest[amountMatch[0]:amountMatch[1]]

		rows = append(rows, []string{date, desc, amount})
	}

	if len(rows) == 0 {
		return nil, ColumnMap{}, false
	}

	d.logger.WithFields(
		logging.Field{Key: "file", Value: filename},
		logging.Field{Key: "rows", Value: len(rows)},
	).Debug("Recovered rows from headerless text statement")

	return &Table{
			Filename:     filename,
			Header:       []string{"Date", "Description", "Amount"},
			Rows:         rows,
			CreditLines:  creditLines,
			SkippedLines: skippedLines,
		}, ColumnMap{
			Date:        0,
			Description: 1,
			Amount:      2,
			Debit:       -1,
			Credit:      -1,
		}, true
}
