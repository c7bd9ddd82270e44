package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/internal/analysis"
	"github.com/fisheries-data/regs-tracker/internal/chunking"
	"github.com/fisheries-data/regs-tracker/internal/docsplit"
	"github.com/fisheries-data/regs-tracker/internal/entity"
)

// TextStage turns a registered document's bytes into plain text. PDF content
// goes through the splitter and layout-analysis collaborator; text content
// is used as-is.
type TextStage struct {
	Analyzer analysis.DocumentAnalyzer
	Splitter *docsplit.Splitter
	ModelID  string
	Logger   *slog.Logger

	// chunking thresholds for the acquired-text quality report
	MaxChunkSize int
	ChunkOverlap int
}

func NewTextStage(analyzer analysis.DocumentAnalyzer, splitter *docsplit.Splitter, modelID string, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{
		Analyzer:     analyzer,
		Splitter:     splitter,
		ModelID:      modelID,
		Logger:       logger,
		MaxChunkSize: 8000,
		ChunkOverlap: 200,
	}
}

// Run acquires document text and reports its chunking quality.
func (t *TextStage) Run(ctx context.Context, doc *entity.RegulationDocument, data []byte) (string, error) {
	var text string
	switch constants.MapExtToFormat(doc.DocumentType) {
	case "TXT":
		text = string(data)
	case "PDF":
		if t.Analyzer == nil {
			return "", fmt.Errorf("no analyzer configured for pdf document %s", doc.Filename)
		}
		res, err := t.Splitter.Submit(ctx, t.Analyzer, data, t.ModelID)
		if err != nil {
			return "", fmt.Errorf("analyze %s: %w", doc.Filename, err)
		}
		text = res.Content
	default:
		return "", fmt.Errorf("unsupported document type %q", doc.DocumentType)
	}

	if len(text) == 0 {
		return "", fmt.Errorf("document %s produced no text", doc.Filename)
	}

	chunks := chunking.ChunkText(text, t.MaxChunkSize, t.ChunkOverlap)
	report := chunking.ValidateChunking(text, chunks)
	t.Logger.Info("pipeline.text.ok",
		"document_id", doc.ID,
		"text_len", len(text),
		"chunks", len(chunks),
		"coverage", report.CoveragePercent,
		"regulation_ratio", report.RegulationPercent,
		"quality", report.QualityScore,
	)
	for _, w := range report.Warnings {
		t.Logger.Warn("pipeline.text.chunk_warning", "document_id", doc.ID, "warning", w)
	}
	return text, nil
}
