// Package insights computes the aggregate spending view over a batch of
// categorized transactions.
package insights

import (
	"math"

	"finsight/ledger-insights/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes totals, the per-category breakdown, the top category
// and the covered date range. Categories appear in first-encountered
// order, which is also the tie-break for the top category. With no
// transactions every percentage is zero and the date range is absent.
func Aggregate(transactions []models.Transaction) models.Insights {
	total := decimal.Zero
	var order []string
	sums := map[string]decimal.Decimal{}

	var dateRange *models.DateRange
	for _, tx := range transactions {
		cat := tx.Category
		if cat == "" {
			cat = models.CategoryOther
		}
		if _, ok := sums[cat]; !ok {
			order = append(order, cat)
		}
		sums[cat] = sums[cat].Add(tx.Amount)
		total = total.Add(tx.Amount)

		if dateRange == nil {
			dateRange = &models.DateRange{Start: tx.Date, End: tx.Date}
		} else {
			merged := dateRange.Merge(models.DateRange{Start: tx.Date, End: tx.Date})
			dateRange = &merged
		}
	}

	breakdown := make([]models.CategoryAmount, 0, len(order))
	top := models.CategoryAmount{}
	for _, cat := range order {
		amount := sums[cat]
		pct := 0.0
		if total.IsPositive() {
			pct = roundPct(amount.Div(total).Mul(hundred))
		}
		entry := models.CategoryAmount{Name: cat, Amount: amount, Percentage: pct}
		breakdown = append(breakdown, entry)

		// Strictly-greater keeps the first-encountered category on ties.
		if amount.GreaterThan(top.Amount) {
			top = entry
		}
	}

	return models.Insights{
		TotalSpent:        total,
		TransactionCount:  len(transactions),
		TopCategory:       top,
		CategoryBreakdown: breakdown,
		DateRange:         dateRange,
	}
}

// roundPct rounds a percentage to two places for presentation.
func roundPct(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return math.Round(f*100) / 100
}
