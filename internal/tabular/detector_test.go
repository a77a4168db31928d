package tabular

import (
	"testing"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected ColumnMap
	}{
		{
			name:     "Debit credit statement",
			header:   []string{"Txn Date", "Description", "Debit", "Credit"},
			expected: ColumnMap{Date: 0, Description: 1, Debit: 2, Credit: 3, Amount: -1},
		},
		{
			name:     "Single amount column",
			header:   []string{"Date", "Narration", "Amount"},
			expected: ColumnMap{Date: 0, Description: 1, Debit: -1, Credit: -1, Amount: 2},
		},
		{
			name:     "Short codes need exact match",
			header:   []string{"Value Date", "Particulars", "DR", "CR"},
			expected: ColumnMap{Date: 0, Description: 1, Debit: 2, Credit: 3, Amount: -1},
		},
		{
			name:     "Description containing cr is not a credit column",
			header:   []string{"Date", "Description", "Amount"},
			expected: ColumnMap{Date: 0, Description: 1, Debit: -1, Credit: -1, Amount: 2},
		},
		{
			name:     "Debit amount claimed as debit not amount",
			header:   []string{"Posting Date", "Details", "Debit Amount", "Credit Amount"},
			expected: ColumnMap{Date: 0, Description: 1, Debit: 2, Credit: 3, Amount: -1},
		},
		{
			name:     "Nothing recognizable",
			header:   []string{"foo", "bar", "baz"},
			expected: ColumnMap{Date: -1, Description: -1, Debit: -1, Credit: -1, Amount: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapColumns(tc.header))
		})
	}
}

func TestDetectCSVWithHeader(t *testing.T) {
	data := []byte("Txn Date,Description,Debit,Credit\n" +
		"31 OCT 2025,UPI PAYMENT TO VISHWAS,\"2,000.00\",-\n" +
		"30 OCT 2025,SALARY CREDIT,-,\"50,000.00\"\n")

	d := NewDetector(0, &logging.MockLogger{})
	tbl, cols, err := d.Detect("statement.csv", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Txn Date", "Description", "Debit", "Credit"}, tbl.Header)
	assert.Len(t, tbl.Rows, 2)
	assert.True(t, cols.HasDebitCredit())
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 2, cols.Debit)
}

func TestDetectHeaderBelowPreamble(t *testing.T) {
	data := []byte("Account Statement\n" +
		"Customer: A Sharma\n" +
		"\n" +
		"Date,Particulars,Amount\n" +
		"2025-10-31,ELECTRICITY BILL,100.00\n")

	d := NewDetector(0, &logging.MockLogger{})
	tbl, cols, err := d.Detect("statement.csv", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Particulars", "Amount"}, tbl.Header)
	assert.Len(t, tbl.Rows, 1)
	assert.Equal(t, 2, cols.Amount)
	assert.False(t, cols.HasDebitCredit())
}

func TestDetectSemicolonDelimited(t *testing.T) {
	data := []byte("Date;Description;Amount\n31.10.2025;COOP PRONTO;12.50\n")

	d := NewDetector(0, &logging.MockLogger{})
	tbl, cols, err := d.Detect("export.csv", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, tbl.Header)
	assert.Equal(t, []string{"31.10.2025", "COOP PRONTO", "12.50"}, tbl.Rows[0])
	assert.Equal(t, 2, cols.Amount)
}

func TestDetectMissingColumns(t *testing.T) {
	data := []byte("foo,bar\n1,2\n3,4\n")

	d := NewDetector(0, &logging.MockLogger{})
	_, _, err := d.Detect("junk.csv", data)

	var formatErr *parsererror.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "junk.csv", formatErr.Filename)
	assert.Equal(t, ErrMissingColumns, formatErr.Reason)
}

func TestDetectUnsupportedExtension(t *testing.T) {
	d := NewDetector(0, &logging.MockLogger{})
	_, _, err := d.Detect("scan.pdf", []byte("%PDF-1.4"))

	var formatErr *parsererror.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "unsupported file type")
}

func TestDetectHeaderlessText(t *testing.T) {
	data := []byte("STATEMENT OF ACCOUNT\n" +
		"31 OCT 2025 UPI PAYMENT TO VISHWAS 2,000.00\n" +
		"30 OCT 2025 TRANSFER FROM EMPLOYER 50,000.00\n" +
		"29 OCT 2025 AIRTEL MOBILE RECHARGE 360.80\n")

	d := NewDetector(0, &logging.MockLogger{})
	tbl, cols, err := d.Detect("statement.txt", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, tbl.Header)
	// Credit-hint lines are dropped at extraction time, and counted.
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 1, tbl.CreditLines)
	assert.Equal(t, 0, tbl.SkippedLines)
	assert.Equal(t, []string{"31 OCT 2025", "UPI PAYMENT TO VISHWAS", "2,000.00"}, tbl.Rows[0])
	assert.Equal(t, []string{"29 OCT 2025", "AIRTEL MOBILE RECHARGE", "360.80"}, tbl.Rows[1])
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 2, cols.Amount)
	assert.False(t, cols.HasDebitCredit())
}

func TestDetectHeaderlessTextCountsSkippedLines(t *testing.T) {
	data := []byte("31 OCT 2025 UPI PAYMENT TO VISHWAS 2,000.00\n" +
		"30 OCT 2025 PENDING AUTHORIZATION HOLD\n" +
		"29 OCT 2025 AIRTEL MOBILE RECHARGE 360.80\n")

	d := NewDetector(0, &logging.MockLogger{})
	tbl, _, err := d.Detect("statement.txt", data)

	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 1, tbl.SkippedLines)
	assert.Equal(t, 0, tbl.CreditLines)
}

func TestDetectScanDepthLimit(t *testing.T) {
	data := []byte("noise,noise\nnoise,noise\nnoise,noise\n" +
		"Date,Description,Amount\n2025-10-31,WATER BILL,2.00\n")

	d := NewDetector(2, &logging.MockLogger{})
	_, _, err := d.Detect("deep.csv", data)

	var formatErr *parsererror.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ErrMissingColumns, formatErr.Reason)
}
