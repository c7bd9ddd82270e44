package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
)

// ExtractStage segments the special-regulations section and runs per-entry
// structured extraction. A missing section is a structural failure.
type ExtractStage struct {
	Segmenter    *segmenter.Segmenter
	Orchestrator *extraction.Orchestrator
	Logger       *slog.Logger
}

func NewExtractStage(seg *segmenter.Segmenter, orch *extraction.Orchestrator, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Segmenter: seg, Orchestrator: orch, Logger: logger}
}

func (e *ExtractStage) Run(ctx context.Context, text, stateCode string, year int) (extraction.BatchResult, error) {
	entries, err := e.Segmenter.Segment(text)
	if err != nil {
		return extraction.BatchResult{}, fmt.Errorf("segment document: %w", err)
	}
	e.Logger.Info("pipeline.segment.ok", "entries", len(entries), "state", stateCode, "year", year)

	return e.Orchestrator.ExtractBatch(ctx, extraction.BatchRequest{
		StateCode:      stateCode,
		RegulationYear: year,
		Entries:        entries,
	})
}
