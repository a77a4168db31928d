// Package analyzer orchestrates one ingest-and-analyze request: every
// file in the batch is ingested independently, the surviving transactions
// are categorized and aggregated, and a compact record of the outcome is
// appended to the history store. Each request is self-contained; no state
// is shared between requests, so concurrent requests need no
// coordination beyond the history append.
package analyzer

import (
	"time"

	"finsight/ledger-insights/internal/categorize"
	"finsight/ledger-insights/internal/ingest"
	"finsight/ledger-insights/internal/insights"
	"finsight/ledger-insights/internal/logging"
	"finsight/ledger-insights/internal/models"
	"finsight/ledger-insights/internal/score"
	"finsight/ledger-insights/internal/suspicion"
)

// Source is one uploaded file: its declared name and raw bytes.
type Source struct {
	Filename string
	Data     []byte
}

// History is the persistence contract: it accepts a compact analysis
// record and answers with an identifier. The analyzer makes no assumption
// about how or where records are stored.
type History interface {
	Save(record models.AnalysisRecord) (string, error)
}

// Result is the full outcome of an analyze request.
type Result struct {
	Files        []*models.FileIngestResult
	Transactions []models.Transaction
	Insights     models.Insights
	SmartScore   models.SmartScore
	RecordID     string
}

// AuditResult is the outcome of an audit request.
type AuditResult struct {
	Files       []*models.FileIngestResult
	Suspicious  []models.SuspiciousTransaction
	HighCount   int
	MediumCount int
	NormalCount int
}

// Analyzer wires the pipeline stages together.
type Analyzer struct {
	normalizer *ingest.Normalizer
	classifier *categorize.Classifier
	calculator *score.Calculator
	scorer     *suspicion.Scorer
	history    History
	logger     logging.Logger
	now        func() time.Time
}

// Option adjusts an Analyzer at construction.
type Option func(*Analyzer)

// WithHistory attaches a history store; without one, analyses are not
// persisted.
func WithHistory(h History) Option {
	return func(a *Analyzer) { a.history = h }
}

// WithClock overrides the record timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithHeaderScanRows adjusts how deep the detector searches for a header.
func WithHeaderScanRows(rows int) Option {
	return func(a *Analyzer) {
		a.normalizer = ingest.NewNormalizer(rows, a.logger)
	}
}

// WithScoring replaces the smart score configuration.
func WithScoring(cfg score.Config) Option {
	return func(a *Analyzer) { a.calculator = score.NewCalculator(cfg) }
}

// WithSuspicion replaces the suspicion configuration.
func WithSuspicion(cfg suspicion.Config) Option {
	return func(a *Analyzer) { a.scorer = suspicion.NewScorer(cfg) }
}

// New creates an Analyzer using the given category rules (nil means the
// built-in table) and options.
func New(rules []models.CategoryRule, logger logging.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		normalizer: ingest.NewNormalizer(0, logger),
		classifier: categorize.NewClassifier(rules, logger),
		calculator: score.NewCalculator(score.Config{}),
		scorer:     suspicion.NewScorer(suspicion.Config{}),
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full personal-analysis pipeline over a batch of files.
// File-level failures never abort the batch: every source yields a
// FileIngestResult and contributes whatever transactions it could. The
// returned error is only non-nil when persisting the record fails.
func (a *Analyzer) Analyze(sources []Source, userID, accountType string) (*Result, error) {
	files, transactions := a.ingestBatch(sources)
	transactions = a.classifier.Apply(transactions)

	ins := insights.Aggregate(transactions)
	smartScore := a.calculator.Score(ins)

	result := &Result{
		Files:        files,
		Transactions: transactions,
		Insights:     ins,
		SmartScore:   smartScore,
	}

	if a.history != nil {
		id, err := a.history.Save(a.buildRecord(userID, accountType, result))
		if err != nil {
			return result, err
		}
		result.RecordID = id
	}

	a.logger.WithFields(
		logging.Field{Key: "files", Value: len(files)},
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "score", Value: smartScore.Score},
	).Info("Completed analysis request")

	return result, nil
}

// Audit runs the suspicion ranking over a batch of files. The ranking is
// consumed verbatim by the audit-report assembler.
func (a *Analyzer) Audit(sources []Source) (*AuditResult, error) {
	files, transactions := a.ingestBatch(sources)
	transactions = a.classifier.Apply(transactions)

	ranked := a.scorer.Rank(transactions)

	result := &AuditResult{Files: files, Suspicious: ranked}
	for _, s := range ranked {
		switch s.RiskLevel {
		case models.RiskHigh:
			result.HighCount++
		case models.RiskMedium:
			result.MediumCount++
		default:
			result.NormalCount++
		}
	}

	a.logger.WithFields(
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "high_risk", Value: result.HighCount},
		logging.Field{Key: "medium_risk", Value: result.MediumCount},
	).Info("Completed audit request")

	return result, nil
}

func (a *Analyzer) ingestBatch(sources []Source) ([]*models.FileIngestResult, []models.Transaction) {
	files := make([]*models.FileIngestResult, 0, len(sources))
	var transactions []models.Transaction

	for _, src := range sources {
		res := a.normalizer.ProcessFile(src.Filename, src.Data)
		files = append(files, res)
		transactions = append(transactions, res.Transactions...)
	}

	return files, transactions
}

func (a *Analyzer) buildRecord(userID, accountType string, r *Result) models.AnalysisRecord {
	record := models.AnalysisRecord{
		UserID:            userID,
		AccountType:       accountType,
		CreatedAt:         a.now(),
		TotalTransactions: r.Insights.TransactionCount,
		TotalAmount:       r.Insights.TotalSpent,
		DateRange:         r.Insights.DateRange,
		SmartScore:        r.SmartScore,
		InsightsSummary: models.InsightsSummary{
			TopCategory:   r.Insights.TopCategory,
			CategoryCount: len(r.Insights.CategoryBreakdown),
		},
	}

	for _, f := range r.Files {
		if len(f.Errors) > 0 {
			record.FileErrors = append(record.FileErrors, models.FileIssue{
				Filename: f.Filename,
				Messages: f.Errors,
			})
		}
		if len(f.Warnings) > 0 {
			record.FileWarnings = append(record.FileWarnings, models.FileIssue{
				Filename: f.Filename,
				Messages: f.Warnings,
			})
		}
	}

	return record
}
