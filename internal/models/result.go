package models

// MissingValue records the rows of one column that could not be used,
// either because the cell was empty or because it failed to parse.
// Row and column numbers are 1-based for display.
type MissingValue struct {
	Filename     string `json:"filename" yaml:"filename"`
	ColumnNumber int    `json:"column_number" yaml:"column_number"`
	ColumnName   string `json:"column_name" yaml:"column_name"`
	MissingRows  []int  `json:"missing_rows" yaml:"missing_rows"`
	MissingCount int    `json:"missing_count" yaml:"missing_count"`
}

// FileIssue groups diagnostic messages for a single file.
type FileIssue struct {
	Filename string   `json:"filename" yaml:"filename"`
	Messages []string `json:"messages" yaml:"messages"`
}

// FileIngestResult is the complete outcome of ingesting one file.
// It is constructed once per file and not mutated afterwards. A file that
// yields no transactions is still a valid result; the errors and warnings
// explain what was dropped and why.
type FileIngestResult struct {
	Filename      string         `json:"filename" yaml:"filename"`
	Transactions  []Transaction  `json:"transactions" yaml:"transactions"`
	Errors        []string       `json:"errors" yaml:"errors"`
	Warnings      []string       `json:"warnings" yaml:"warnings"`
	MissingValues []MissingValue `json:"missing_values" yaml:"missing_values"`
}

// HasUsableData reports whether the file produced at least one transaction.
func (r *FileIngestResult) HasUsableData() bool {
	return len(r.Transactions) > 0
}
