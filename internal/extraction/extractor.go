package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fisheries-data/regs-tracker/internal/llm"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
)

// Record pairs one water-body entry with the structured fields extracted
// from it, plus the raw model JSON for auditing.
type Record struct {
	Entry   segmenter.LakeEntry
	Fields  llm.RegulationFields
	RawJSON []byte
}

// BatchResult summarizes one extraction run over a document's entries.
type BatchResult struct {
	Records      []Record
	TotalEntries int
	Extracted    int
	Failed       int
	Warnings     []string
	Elapsed      time.Duration
	Success      bool
}

// BatchRequest carries the document-level context shared by every entry.
type BatchRequest struct {
	StateCode      string
	RegulationYear int
	Entries        []segmenter.LakeEntry
}

type Config struct {
	PaceDelay time.Duration // delay between entries, 0 disables pacing
}

// Orchestrator drives per-entry extraction through a FieldExtractor.
type Orchestrator struct {
	extractor llm.FieldExtractor
	cfg       Config
	log       *slog.Logger
}

func NewOrchestrator(extractor llm.FieldExtractor, cfg Config, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{extractor: extractor, cfg: cfg, log: logger}
}

// ExtractBatch runs extraction over every entry in order. Entry failures are
// tolerated and reported as warnings; only context cancellation aborts the
// batch, returning the partial result alongside the context error.
func (o *Orchestrator) ExtractBatch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	start := time.Now()
	res := BatchResult{TotalEntries: len(req.Entries), Success: true}

	o.log.Info("extraction.batch.start",
		"state", req.StateCode,
		"year", req.RegulationYear,
		"entries", len(req.Entries),
	)

	for i, entry := range req.Entries {
		if i > 0 && o.cfg.PaceDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(o.cfg.PaceDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			res.Success = false
			res.Elapsed = time.Since(start)
			o.log.Warn("extraction.batch.cancelled",
				"processed", i, "total", len(req.Entries),
				"elapsed_ms", res.Elapsed.Milliseconds(),
			)
			return res, err
		}

		fields, raw, err := o.extractor.ExtractRegulation(ctx, llm.ExtractRequest{
			WaterBodyName:  entry.Name,
			County:         entry.County,
			StateCode:      req.StateCode,
			RegulationYear: req.RegulationYear,
			EntryText:      entry.RegulationText,
		})
		if err != nil {
			res.Failed++
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s (%s): %v", entry.Name, entry.County, err))
			o.log.Warn("extraction.entry.failed",
				"water_body", entry.Name, "county", entry.County, "error", err,
			)
			continue
		}
		res.Extracted++
		res.Records = append(res.Records, Record{Entry: entry, Fields: fields, RawJSON: raw})
	}

	res.Elapsed = time.Since(start)
	o.log.Info("extraction.batch.ok",
		"extracted", res.Extracted,
		"failed", res.Failed,
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res, nil
}
