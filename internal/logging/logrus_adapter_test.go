package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{"debug level with text format", "debug", "text", logrus.DebugLevel},
		{"info level with json format", "info", "json", logrus.InfoLevel},
		{"warn level with text format", "warn", "text", logrus.WarnLevel},
		{"error level with json format", "error", "json", logrus.ErrorLevel},
		{"invalid level defaults to info", "invalid", "text", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existing := logrus.New()
		existing.SetLevel(logrus.DebugLevel)

		logger := NewLogrusAdapterFromLogger(existing)
		require.NotNil(t, logger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existing, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		logger := NewLogrusAdapterFromLogger(nil)
		require.NotNil(t, logger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("first message", Field{Key: "file", Value: "statement.csv"})
	mock.Warn("second message")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "first message", mock.Entries[0].Message)
	assert.Equal(t, "file", mock.Entries[0].Fields[0].Key)
	assert.True(t, mock.HasMessage("second message"))
	assert.False(t, mock.HasMessage("never logged"))
}
