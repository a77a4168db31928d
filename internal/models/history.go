package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightsSummary is the compact slice of Insights kept in history records.
// Full transaction lists are never persisted.
type InsightsSummary struct {
	TopCategory   CategoryAmount `json:"top_category" yaml:"top_category"`
	CategoryCount int            `json:"category_count" yaml:"category_count"`
}

// AnalysisRecord is the durable summary of one ingest-and-analyze request.
// This is the only shape handed to the history store.
type AnalysisRecord struct {
	ID                string          `json:"id" yaml:"id"`
	UserID            string          `json:"user_id" yaml:"user_id"`
	AccountType       string          `json:"account_type" yaml:"account_type"`
	CreatedAt         time.Time       `json:"created_at" yaml:"created_at"`
	TotalTransactions int             `json:"total_transactions" yaml:"total_transactions"`
	TotalAmount       decimal.Decimal `json:"total_amount" yaml:"total_amount"`
	DateRange         *DateRange      `json:"date_range,omitempty" yaml:"date_range,omitempty"`
	SmartScore        SmartScore      `json:"smart_score" yaml:"smart_score"`
	InsightsSummary   InsightsSummary `json:"insights_summary" yaml:"insights_summary"`
	FileErrors        []FileIssue     `json:"file_errors" yaml:"file_errors"`
	FileWarnings      []FileIssue     `json:"file_warnings" yaml:"file_warnings"`
}
