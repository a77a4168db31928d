// Package score converts aggregated insights into a bounded 0-10 spending
// health score. Only overspending relative to the ideal share is
// penalized: sitting at or under the ideal, especially for Savings, never
// costs points.
package score

import (
	"fmt"
	"math"
	"sort"

	"finsight/ledger-insights/internal/models"
)

// Config holds the scoring knobs. The ideal shares and weights are plain
// data so tests and deployments can substitute their own tables.
type Config struct {
	// IdealShares maps category name to its ideal percentage of total
	// spend. Categories absent from the map are not penalized.
	IdealShares map[string]float64

	// SeverityWeight scales each category's relative overspend penalty.
	SeverityWeight float64

	// OverspendTolerance is the percentage-point excess above ideal a
	// category may carry before it earns a recommendation.
	OverspendTolerance float64

	// MaxRecommendations caps the recommendation list.
	MaxRecommendations int
}

// DefaultConfig returns the stock scoring configuration.
func DefaultConfig() Config {
	return Config{
		IdealShares: map[string]float64{
			models.CategoryFood:          15,
			models.CategoryEntertainment: 10,
			models.CategoryTravel:        5,
			models.CategoryUtilities:     10,
			models.CategoryEducation:     10,
			models.CategoryHealthcare:    5,
			models.CategoryShopping:      10,
			models.CategorySavings:       25,
			models.CategorySubscriptions: 5,
			models.CategoryTransport:     5,
			models.CategoryPayments:      10,
		},
		SeverityWeight:     1.0,
		OverspendTolerance: 5,
		MaxRecommendations: 3,
	}
}

// Calculator computes SmartScores from Insights.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator; zero-value config fields fall back
// to defaults.
func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if len(cfg.IdealShares) == 0 {
		cfg.IdealShares = def.IdealShares
	}
	if cfg.SeverityWeight <= 0 {
		cfg.SeverityWeight = def.SeverityWeight
	}
	if cfg.OverspendTolerance <= 0 {
		cfg.OverspendTolerance = def.OverspendTolerance
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = def.MaxRecommendations
	}
	return &Calculator{cfg: cfg}
}

// overspend is one category's excess above its ideal share.
type overspend struct {
	category string
	actual   float64
	ideal    float64
	excess   float64 // percentage points above ideal
	severity float64 // excess relative to ideal
}

// Score converts insights into a SmartScore. Zero transactions is a valid
// terminal state: it yields a neutral mid-range score, never an error.
func (c *Calculator) Score(ins models.Insights) models.SmartScore {
	if ins.TransactionCount == 0 {
		return models.SmartScore{
			Score:          5.0,
			SpenderRating:  ratingFor(5.0),
			Interpretation: "No transactions to analyze yet. Upload a statement to see how your spending compares to the ideal distribution.",
		}
	}

	var overs []overspend
	penalty := 0.0
	for _, entry := range ins.CategoryBreakdown {
		ideal, ok := c.cfg.IdealShares[entry.Name]
		if !ok || ideal <= 0 {
			continue
		}
		excess := entry.Percentage - ideal
		if excess <= 0 {
			continue
		}
		severity := excess / ideal
		penalty += severity * c.cfg.SeverityWeight
		overs = append(overs, overspend{
			category: entry.Name,
			actual:   entry.Percentage,
			ideal:    ideal,
			excess:   excess,
			severity: severity,
		})
	}

	score := clamp(10-penalty, 0, 10)
	score = math.Round(score*10) / 10
	rating := ratingFor(score)

	return models.SmartScore{
		Score:           score,
		SpenderRating:   rating,
		Interpretation:  interpretationFor(rating),
		Recommendations: c.recommendations(overs),
	}
}

// recommendations lists the categories whose overspend exceeds the
// tolerance, most severe first, capped at MaxRecommendations.
func (c *Calculator) recommendations(overs []overspend) []string {
	var flagged []overspend
	for _, o := range overs {
		if o.excess > c.cfg.OverspendTolerance {
			flagged = append(flagged, o)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].severity != flagged[j].severity {
			return flagged[i].severity > flagged[j].severity
		}
		return flagged[i].category < flagged[j].category
	})

	if len(flagged) > c.cfg.MaxRecommendations {
		flagged = flagged[:c.cfg.MaxRecommendations]
	}

	recs := make([]string, 0, len(flagged))
	for _, o := range flagged {
		recs = append(recs, fmt.Sprintf(
			"Reduce spending on %s: %.1f%% of total against an ideal of %.1f%%.",
			o.category, o.actual, o.ideal))
	}
	return recs
}

func ratingFor(score float64) models.SpenderRating {
	switch {
	case score >= 8.5:
		return models.RatingExcellent
	case score >= 7.0:
		return models.RatingGood
	case score >= 5.5:
		return models.RatingModerate
	default:
		return models.RatingPoor
	}
}

func interpretationFor(rating models.SpenderRating) string {
	switch rating {
	case models.RatingExcellent:
		return "Wise spender. Your expenses closely follow a balanced distribution across categories."
	case models.RatingGood:
		return "Your spending habits are mostly on track, with room for minor improvements."
	case models.RatingModerate:
		return "Your spending patterns could be optimized. Review the categories running above their ideal share."
	default:
		return "Significant overspending detected. Restructuring your category spending would improve your financial health."
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
