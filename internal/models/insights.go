package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount is a single category's share of total spend.
type CategoryAmount struct {
	Name       string          `json:"name" yaml:"name"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	Percentage float64         `json:"percentage" yaml:"percentage"`
}

// DateRange is the inclusive span covered by a set of transactions.
type DateRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Merge combines this range with another, returning the overall span.
// Zero boundaries are treated as absent.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// String returns the range as "YYYY-MM-DD_YYYY-MM-DD", or "" when unset.
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return dr.Start.Format("2006-01-02") + "_" + dr.End.Format("2006-01-02")
}

// Insights is the aggregate view over one batch of categorized transactions.
// CategoryBreakdown preserves first-encountered category order so that
// top-category ties resolve deterministically. DateRange is nil when the
// batch has no transactions.
type Insights struct {
	TotalSpent        decimal.Decimal  `json:"total_spent" yaml:"total_spent"`
	TransactionCount  int              `json:"transaction_count" yaml:"transaction_count"`
	TopCategory       CategoryAmount   `json:"top_category" yaml:"top_category"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown" yaml:"category_breakdown"`
	DateRange         *DateRange       `json:"date_range,omitempty" yaml:"date_range,omitempty"`
}

// Category looks up a breakdown entry by name.
func (i Insights) Category(name string) (CategoryAmount, bool) {
	for _, c := range i.CategoryBreakdown {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryAmount{}, false
}
