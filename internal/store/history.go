package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// HistoryStore is an append-only file of analysis records. It is the one
// piece of shared mutable state in the engine, so appends are serialized
// behind a mutex; everything upstream is a pure function of its input.
type HistoryStore struct {
	Path   string
	logger logging.Logger
	mu     sync.Mutex
}

// historyFile is the on-disk shape.
type historyFile struct {
	Analyses []models.AnalysisRecord `yaml:"analyses"`
}

// NewHistoryStore creates a store persisting to path.
func NewHistoryStore(path string, logger logging.Logger) *HistoryStore {
	if path == "" {
		path = "history.yaml"
	}
	return &HistoryStore{Path: path, logger: logger}
}

// Save appends a record and returns its id, assigning one if empty.
func (s *HistoryStore) Save(record models.AnalysisRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	file, err := s.load()
	if err != nil {
		return "", err
	}

	file.Analyses = append(file.Analyses, record)
	if err := s.save(file); err != nil {
		return "", err
	}

	s.logger.WithFields(
		logging.Field{Key: "id", Value: record.ID},
		logging.Field{Key: "user", Value: record.UserID},
	).Info("Saved analysis record")
	return record.ID, nil
}

// ListByUser returns a user's records, newest first. accountType narrows
// the result when non-empty.
func (s *HistoryStore) ListByUser(userID, accountType string) ([]models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []models.AnalysisRecord
	for _, rec := range file.Analyses {
		if rec.UserID != userID {
			continue
		}
		if accountType != "" && rec.AccountType != accountType {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns the record with the given id, or false when absent.
func (s *HistoryStore) GetByID(id string) (models.AnalysisRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return models.AnalysisRecord{}, false, err
	}

	for _, rec := range file.Analyses {
		if rec.ID == id {
			return rec, true, nil
		}
	}
	return models.AnalysisRecord{}, false, nil
}

// Delete removes a record, but only when it belongs to the user.
func (s *HistoryStore) Delete(userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return false, err
	}

	kept := file.Analyses[:0]
	removed := false
	for _, rec := range file.Analyses {
		if rec.ID == id && rec.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}

	if !removed {
		return false, nil
	}

	file.Analyses = kept
	if err := s.save(file); err != nil {
		return false, err
	}
	return true, nil
}

func (s *HistoryStore) load() (*historyFile, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &historyFile{}, nil
		}
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	var file historyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing history file %s: %w", s.Path, err)
	}
	return &file, nil
}

func (s *HistoryStore) save(file *historyFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling history: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating history directory: %w", err)
		}
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("error writing history file: %w", err)
	}
	return nil
}
