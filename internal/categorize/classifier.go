// Package categorize assigns spend categories to transactions using an
// ordered keyword rule table. Matching is deterministic: rules are
// evaluated top to bottom, the first keyword hit wins, and a description
// with no hit falls back to Other.
package categorize

import (
	"strings"

	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"
)

// Classifier categorizes transaction descriptions.
type Classifier struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// NewClassifier creates a Classifier over the given ordered rules. Nil or
// empty rules fall back to the default table.
func NewClassifier(rules []models.CategoryRule, logger logging.Logger) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules, logger: logger}
}

// Categorize returns the category for a description. Same description,
// same category, always.
func (c *Classifier) Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: rule.Name},
				).Debug("Description matched keyword rule")
				return rule.Name
			}
		}
	}

	return models.CategoryOther
}

// Apply annotates every transaction with its category, preserving order.
func (c *Classifier) Apply(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		tx.Category = c.Categorize(tx.Description)
		out[i] = tx
	}
	return out
}

// Rules exposes the active rule table, in evaluation order.
func (c *Classifier) Rules() []models.CategoryRule {
	return c.rules
}
