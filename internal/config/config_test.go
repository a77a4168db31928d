package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Ingest.HeaderScanRows)
	assert.Equal(t, "categories.yaml", cfg.Categories.RulesFile)
	assert.Equal(t, 1.0, cfg.Scoring.SeverityWeight)
	assert.Equal(t, 5.0, cfg.Scoring.OverspendTolerance)
	assert.Equal(t, 3, cfg.Scoring.MaxRecommendations)
	assert.Equal(t, 0.6, cfg.Suspicion.AmountWeight)
	assert.Equal(t, 0.4, cfg.Suspicion.TextWeight)
	assert.Equal(t, 0.8, cfg.Suspicion.HighThreshold)
	assert.Equal(t, 0.6, cfg.Suspicion.MediumThreshold)
	assert.Equal(t, "", cfg.History.File)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_LOG_FORMAT", "json")
	t.Setenv("LEDGER_INGEST_HEADER_SCAN_ROWS", "25")
	t.Setenv("LEDGER_HISTORY_FILE", "analyses.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 25, cfg.Ingest.HeaderScanRows)
	assert.Equal(t, "analyses.yaml", cfg.History.File)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown log level", "LEDGER_LOG_LEVEL", "verbose"},
		{"unknown log format", "LEDGER_LOG_FORMAT", "xml"},
		{"non-positive scan rows", "LEDGER_INGEST_HEADER_SCAN_ROWS", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateThresholdOrdering(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Suspicion.HighThreshold = 0.5
	cfg.Suspicion.MediumThreshold = 0.6
	assert.Error(t, validate(cfg))
}

func TestValidateIdealShares(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Scoring.IdealShares = map[string]float64{"Food": 120}
	assert.Error(t, validate(cfg))

	cfg.Scoring.IdealShares = map[string]float64{"Food": 15}
	assert.NoError(t, validate(cfg))
}
