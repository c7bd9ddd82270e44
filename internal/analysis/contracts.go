// Package analysis wraps the external document-layout analysis service:
// submit a document (or a page range of one), get back text content,
// key/value fields and tables with confidence scores.
package analysis

import "context"

// AnalyzeRequest describes one submission unit. Content and SourceURL are
// mutually exclusive; Pages limits analysis to a 1-based inclusive range
// ("3-12") and may be empty for the whole document.
type AnalyzeRequest struct {
	ModelID   string
	Content   []byte
	SourceURL string
	Pages     string
}

type Field struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type Cell struct {
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Content string `json:"content"`
}

type Table struct {
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	Cells       []Cell `json:"cells"`
	PageNumber  int    `json:"page_number"`
	// Unit is set when results from split submissions are merged.
	Unit int `json:"unit,omitempty"`
}

type AnalysisResult struct {
	Content    string           `json:"content"`
	Fields     map[string]Field `json:"fields"`
	Tables     []Table          `json:"tables"`
	StartPage  int              `json:"start_page"`
	EndPage    int              `json:"end_page"`
	Confidence float64          `json:"confidence"`
}

// DocumentAnalyzer is the interface the pipeline depends on.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error)
}
