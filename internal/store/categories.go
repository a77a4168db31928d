// Package store handles the on-disk data the engine reads and writes: the
// category rule table and the append-only analysis history.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads and saves the ordered category rule table. Rules
// are kept as a YAML list so their priority order survives round-trips.
type CategoryStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewCategoryStore creates a store reading from rulesFile, which may be a
// bare filename resolved through FindConfigFile.
func NewCategoryStore(rulesFile string, logger logging.Logger) *CategoryStore {
	if rulesFile == "" {
		rulesFile = "categories.yaml"
	}
	return &CategoryStore{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in the standard
// locations: the path itself, ./config/, and $HOME/.ledger-insights/.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".ledger-insights", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules reads the rule table. A missing file is not an error: it
// returns an empty slice and the caller falls back to the built-in table.
func (s *CategoryStore) LoadRules() ([]models.CategoryRule, error) {
	path, err := FindConfigFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.RulesFile).Debug("Category rules file not found, using built-in table")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving category rules file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	var file models.CategoryRulesFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: "file", Value: path},
			logging.Field{Key: "count", Value: len(file.Categories)},
		).Debug("Loaded category rules")
		return file.Categories, nil
	}

	// Also accept a bare list without the top-level key.
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing category rules file %s: %w", path, err)
	}
	return rules, nil
}

// SaveRules writes the rule table back in the canonical shape.
func (s *CategoryStore) SaveRules(rules []models.CategoryRule) error {
	data, err := yaml.Marshal(models.CategoryRulesFile{Categories: rules})
	if err != nil {
		return fmt.Errorf("error marshaling category rules: %w", err)
	}

	if err := os.WriteFile(s.RulesFile, data, 0o644); err != nil {
		return fmt.Errorf("error writing category rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: s.RulesFile},
		logging.Field{Key: "count", Value: len(rules)},
	).Debug("Saved category rules")
	return nil
}
