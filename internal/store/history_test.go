package store

import (
	"path/filepath"
	"testing"
	"time"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	return NewHistoryStore(filepath.Join(t.TempDir(), "data", "history.yaml"), &logging.MockLogger{})
}

func record(userID, accountType string, createdAt time.Time) models.AnalysisRecord {
	return models.AnalysisRecord{
		UserID:            userID,
		AccountType:       accountType,
		CreatedAt:         createdAt,
		TotalTransactions: 6,
		TotalAmount:       decimal.NewFromFloat(3762.80),
		SmartScore:        models.SmartScore{Score: 7.5, SpenderRating: models.RatingGood},
	}
}

func TestHistorySaveAssignsID(t *testing.T) {
	s := newTestHistory(t)

	id, err := s.Save(record("alice", "personal", time.Now().UTC()))

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, found, err := s.GetByID(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, 6, got.TotalTransactions)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(3762.80)))
}

func TestHistorySaveKeepsExplicitID(t *testing.T) {
	s := newTestHistory(t)

	rec := record("alice", "personal", time.Now().UTC())
	rec.ID = "fixed-id"

	id, err := s.Save(rec)

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestHistoryListByUser(t *testing.T) {
	s := newTestHistory(t)
	base := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Save(record("alice", "personal", base))
	require.NoError(t, err)
	_, err = s.Save(record("alice", "company", base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = s.Save(record("alice", "personal", base.Add(2*time.Hour)))
	require.NoError(t, err)
	_, err = s.Save(record("bob", "personal", base))
	require.NoError(t, err)

	all, err := s.ListByUser("alice", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, base.Add(2*time.Hour), all[0].CreatedAt)
	assert.Equal(t, base, all[2].CreatedAt)

	personal, err := s.ListByUser("alice", "personal")
	require.NoError(t, err)
	assert.Len(t, personal, 2)

	none, err := s.ListByUser("carol", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHistoryGetByIDMissing(t *testing.T) {
	s := newTestHistory(t)

	_, found, err := s.GetByID("absent")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestHistoryDelete(t *testing.T) {
	s := newTestHistory(t)

	id, err := s.Save(record("alice", "personal", time.Now().UTC()))
	require.NoError(t, err)

	// Wrong owner: nothing removed.
	removed, err := s.Delete("bob", id)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.Delete("alice", id)
	require.NoError(t, err)
	assert.True(t, removed)

	_, found, err := s.GetByID(id)
	require.NoError(t, err)
	assert.False(t, found)
}
