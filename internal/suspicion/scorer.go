// Package suspicion computes per-transaction anomaly signals for the
// audit workflow. The scorer is a pure function of the transaction set:
// no randomness, no external calls, so identical input always produces an
// identical ranking for reproducible audit reports. It is a heuristic
// triage signal, not a fraud-detection guarantee.
package suspicion

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"finsight/ledger-insights/internal/models"
)

// Config holds the weighting and threshold knobs.
type Config struct {
	AmountWeight    float64
	TextWeight      float64
	HighThreshold   float64
	MediumThreshold float64

	// Keywords are description terms that raise the text score.
	Keywords []string
}

// DefaultConfig returns the stock suspicion configuration: amount-driven
// anomalies dominate, text heuristics refine.
func DefaultConfig() Config {
	return Config{
		AmountWeight:    0.6,
		TextWeight:      0.4,
		HighThreshold:   0.8,
		MediumThreshold: 0.6,
		Keywords: []string{
			"urgent", "gift", "lottery", "refund", "crypto", "bonus",
			"adjustment", "misc", "test", "unknown", "cash advance", "reversal",
		},
	}
}

// Scorer ranks transactions by anomaly.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer; zero-value config fields fall back to
// defaults.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.AmountWeight <= 0 && cfg.TextWeight <= 0 {
		cfg.AmountWeight = def.AmountWeight
		cfg.TextWeight = def.TextWeight
	}
	if cfg.HighThreshold <= 0 {
		cfg.HighThreshold = def.HighThreshold
	}
	if cfg.MediumThreshold <= 0 {
		cfg.MediumThreshold = def.MediumThreshold
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = def.Keywords
	}
	return &Scorer{cfg: cfg}
}

// Rank scores every transaction and returns them sorted by descending
// suspicion index. Ties keep original input order, so repeated runs over
// the same list produce the same ranking.
func (s *Scorer) Rank(transactions []models.Transaction) []models.SuspiciousTransaction {
	if len(transactions) == 0 {
		return nil
	}

	amountScores := s.amountScores(transactions)
	repeated := repeatedWithDifferingAmounts(transactions)

	out := make([]models.SuspiciousTransaction, len(transactions))
	for i, tx := range transactions {
		textScore := s.textScore(tx.Description, repeated[strings.ToLower(tx.Description)])
		index := s.cfg.AmountWeight*amountScores[i] + s.cfg.TextWeight*textScore

		out[i] = models.SuspiciousTransaction{
			Transaction:    tx,
			SuspicionIndex: round4(index),
			AmountScore:    round4(amountScores[i]),
			TextScore:      round4(textScore),
			RiskLevel:      s.riskLevel(index),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SuspicionIndex > out[j].SuspicionIndex
	})

	return out
}

// amountScores measures each amount's distance from the population mean in
// standard deviations, normalized by the largest distance so scores land
// in [0, 1]. A population of identical amounts scores all zeros.
func (s *Scorer) amountScores(transactions []models.Transaction) []float64 {
	n := len(transactions)
	amounts := make([]float64, n)
	mean := 0.0
	for i, tx := range transactions {
		amounts[i], _ = tx.Amount.Float64()
		mean += amounts[i]
	}
	mean /= float64(n)

	variance := 0.0
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}
	std := math.Sqrt(variance / float64(n))

	scores := make([]float64, n)
	if std == 0 {
		return scores
	}

	maxAbsZ := 0.0
	for i, a := range amounts {
		scores[i] = math.Abs(a-mean) / std
		if scores[i] > maxAbsZ {
			maxAbsZ = scores[i]
		}
	}
	if maxAbsZ == 0 {
		return scores
	}
	for i := range scores {
		scores[i] = scores[i] / maxAbsZ
	}
	return scores
}

// textScore combines the description heuristics, taking the strongest
// signal rather than stacking them.
func (s *Scorer) textScore(description string, repeatedDiffering bool) float64 {
	desc := strings.ToLower(strings.TrimSpace(description))

	score := 0.0
	for _, kw := range s.cfg.Keywords {
		if strings.Contains(desc, kw) {
			score = 0.9
			break
		}
	}

	if len(desc) < 4 {
		score = math.Max(score, 0.7)
	} else if garbledRatio(desc) > 0.6 {
		score = math.Max(score, 0.6)
	}

	if repeatedDiffering {
		score = math.Max(score, 0.5)
	}

	return score
}

func (s *Scorer) riskLevel(index float64) models.RiskLevel {
	switch {
	case index > s.cfg.HighThreshold:
		return models.RiskHigh
	case index > s.cfg.MediumThreshold:
		return models.RiskMedium
	default:
		return models.RiskNormal
	}
}

// repeatedWithDifferingAmounts flags descriptions that show up more than
// once with different amounts, a common shape for padded or split entries.
func repeatedWithDifferingAmounts(transactions []models.Transaction) map[string]bool {
	amountsByDesc := map[string]map[string]struct{}{}
	for _, tx := range transactions {
		desc := strings.ToLower(tx.Description)
		if amountsByDesc[desc] == nil {
			amountsByDesc[desc] = map[string]struct{}{}
		}
		amountsByDesc[desc][tx.Amount.String()] = struct{}{}
	}

	flagged := map[string]bool{}
	for desc, amounts := range amountsByDesc {
		flagged[desc] = len(amounts) > 1
	}
	return flagged
}

// garbledRatio is the fraction of non-letter, non-space characters in the
// description.
func garbledRatio(desc string) float64 {
	if desc == "" {
		return 1
	}
	nonLetter := 0
	total := 0
	for _, r := range desc {
		total++
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			nonLetter++
		}
	}
	return float64(nonLetter) / float64(total)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
