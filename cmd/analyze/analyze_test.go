package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"finsight/ledger-insights/cmd/root"
	"finsight/ledger-insights/internal/analyzer"
	"finsight/ledger-insights/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statementCSV = []byte("Date,Description,Amount\n" +
	"2025-10-31,UPI PAYMENT TO VISHWAS,2000.00\n" +
	"2025-10-30,ELECTRICITY BILL,100.00\n")

// withRootState swaps the shared root config and history flag for the
// test and restores them afterwards.
func withRootState(t *testing.T, cfg *config.Config, historyFlag string) {
	t.Helper()
	origCfg, origFlag := root.Cfg, root.HistoryFile
	t.Cleanup(func() {
		root.Cfg, root.HistoryFile = origCfg, origFlag
	})
	root.Cfg = cfg
	root.HistoryFile = historyFlag
}

func TestBuildAnalyzerUsesConfiguredHistoryFile(t *testing.T) {
	histPath := filepath.Join(t.TempDir(), "history.yaml")

	cfg := &config.Config{}
	cfg.History.File = histPath
	withRootState(t, cfg, "")

	a, err := BuildAnalyzer()
	require.NoError(t, err)

	result, err := a.Analyze([]analyzer.Source{{Filename: "statement.csv", Data: statementCSV}}, "alice", "personal")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RecordID)
	_, statErr := os.Stat(histPath)
	assert.NoError(t, statErr, "configured history file should receive the record")
}

func TestBuildAnalyzerFlagOverridesConfiguredHistory(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag-history.yaml")
	cfgPath := filepath.Join(dir, "cfg-history.yaml")

	cfg := &config.Config{}
	cfg.History.File = cfgPath
	withRootState(t, cfg, flagPath)

	a, err := BuildAnalyzer()
	require.NoError(t, err)

	result, err := a.Analyze([]analyzer.Source{{Filename: "statement.csv", Data: statementCSV}}, "alice", "personal")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RecordID)
	_, statErr := os.Stat(flagPath)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(cfgPath)
	assert.True(t, os.IsNotExist(statErr), "flag path should win over the configured file")
}

func TestBuildAnalyzerWithoutHistorySkipsPersistence(t *testing.T) {
	withRootState(t, &config.Config{}, "")

	a, err := BuildAnalyzer()
	require.NoError(t, err)

	result, err := a.Analyze([]analyzer.Source{{Filename: "statement.csv", Data: statementCSV}}, "alice", "personal")
	require.NoError(t, err)

	assert.Empty(t, result.RecordID)
}
