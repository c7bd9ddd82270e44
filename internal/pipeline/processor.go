// Package processor coordinates the document pipeline: text acquisition,
// entry segmentation, structured extraction, and database population, with
// document status transitions around the whole run.
package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/internal/population"
	"github.com/fisheries-data/regs-tracker/internal/repository"
)

type Processor struct {
	Logger   *slog.Logger
	Docs     repository.DocumentRepository
	Text     *TextStage
	Extract  *ExtractStage
	Populate *population.Service
}

func NewProcessor(logger *slog.Logger, docs repository.DocumentRepository, text *TextStage, extract *ExtractStage, populate *population.Service) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Docs: docs, Text: text, Extract: extract, Populate: populate}
}

// ProcessDocument runs the whole pipeline for one registered document.
// Structural failures mark the document failed and return a result with
// IsSuccess=false and no rows written. Entry-level failures are carried in
// the result's warnings/errors with the document still marked accordingly.
func (p *Processor) ProcessDocument(ctx context.Context, docID uuid.UUID, data []byte) (*population.BatchResult, error) {
	start := time.Now()

	doc, err := p.Docs.GetByID(ctx, docID)
	if err != nil {
		p.Logger.Error("processor.lookup.failed", "document_id", docID, "err", err)
		return structuralFailure(start, err), err
	}
	if err := p.Docs.MarkProcessing(ctx, docID); err != nil {
		return structuralFailure(start, err), err
	}

	text, err := p.Text.Run(ctx, doc, data)
	if err != nil {
		p.Logger.Error("processor.text.failed", "document_id", docID, "err", err)
		_ = p.Docs.MarkFailed(ctx, docID, err.Error())
		return structuralFailure(start, err), err
	}

	batch, err := p.Extract.Run(ctx, text, doc.StateCode, doc.RegulationYear)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "document_id", docID, "err", err)
		_ = p.Docs.MarkFailed(ctx, docID, err.Error())
		return structuralFailure(start, err), err
	}

	res := p.Populate.Populate(ctx, population.PopulateRequest{
		StateCode:      doc.StateCode,
		RegulationYear: doc.RegulationYear,
		DocumentID:     &doc.ID,
		Records:        batch.Records,
	})
	// carry extraction-entry warnings into the batch result
	for _, w := range batch.Warnings {
		res.ProcessingWarnings = append(res.ProcessingWarnings, "extraction: "+w)
	}
	res.ProcessingTime = time.Since(start)

	if res.IsSuccess {
		if err := p.Docs.MarkCompleted(ctx, docID); err != nil {
			return res, err
		}
	} else {
		_ = p.Docs.MarkFailed(ctx, docID, res.ErrorMessage)
	}

	p.Logger.Info("processor.document.done",
		"document_id", docID,
		"success", res.IsSuccess,
		"lakes", res.TotalLakesProcessed,
		"regulations", res.TotalRegulationsExtracted,
		"elapsed_ms", res.ProcessingTime.Milliseconds(),
	)
	return res, nil
}

func structuralFailure(start time.Time, err error) *population.BatchResult {
	return &population.BatchResult{
		IsSuccess:      false,
		ErrorMessage:   err.Error(),
		ProcessingTime: time.Since(start),
	}
}
