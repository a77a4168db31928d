package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransactionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	transactions := []models.Transaction{
		{
			Date:        time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
			Description: "UPI PAYMENT TO VISHWAS",
			Amount:      decimal.NewFromInt(2000),
			Category:    models.CategoryPayments,
			SourceRow:   1,
		},
		{
			Date:        time.Date(2025, time.October, 29, 0, 0, 0, 0, time.UTC),
			Description: "ELECTRICITY BILL PAYMENT",
			Amount:      decimal.NewFromInt(100),
			Category:    models.CategoryUtilities,
			SourceRow:   3,
		},
	}

	require.NoError(t, WriteTransactionsCSV(transactions, path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Amount,Category,SourceRow", lines[0])
	assert.Equal(t, "2025-10-31,UPI PAYMENT TO VISHWAS,2000.00,Payments,1", lines[1])
	assert.Equal(t, "2025-10-29,ELECTRICITY BILL PAYMENT,100.00,Utilities,3", lines[2])
}

func TestWriteTransactionsCSVNil(t *testing.T) {
	err := WriteTransactionsCSV(nil, filepath.Join(t.TempDir(), "out.csv"), &logging.MockLogger{})
	assert.Error(t, err)
}

func TestWriteTransactionsCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteTransactionsCSV([]models.Transaction{}, path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Description,Amount,Category,SourceRow",
		strings.TrimSpace(string(data)))
}
