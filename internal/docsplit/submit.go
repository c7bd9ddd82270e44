package docsplit

import (
	"context"
	"fmt"
	"time"

	"github.com/fisheries-data/regs-tracker/internal/analysis"
)

// Submit analyzes the document unit by unit with a pacing delay between
// submissions. Individual unit failures are logged and excluded; if no unit
// succeeds, the whole document is submitted once as a fallback. Results from
// multiple units are merged into a single envelope.
func (s *Splitter) Submit(ctx context.Context, analyzer analysis.DocumentAnalyzer, doc []byte, modelID string) (*analysis.AnalysisResult, error) {
	units := s.Plan(doc)

	if len(units) == 1 && units[0].Whole {
		return analyzer.Analyze(ctx, analysis.AnalyzeRequest{ModelID: modelID, Content: doc})
	}

	results := make(map[int]*analysis.AnalysisResult, len(units))
	for i, u := range units {
		if i > 0 {
			// sustained bursts get the service rejecting requests, so the
			// delay is policy, not an optimization
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.PaceDelay):
			}
		}

		start := time.Now()
		res, err := analyzer.Analyze(ctx, analysis.AnalyzeRequest{
			ModelID: modelID,
			Content: doc,
			Pages:   u.Pages(),
		})
		if err != nil {
			s.logger.Warn("docsplit.unit_failed",
				"unit", u.Number, "pages", u.Pages(), "error", err,
				"elapsed_ms", time.Since(start).Milliseconds())
			continue
		}
		if res.StartPage == 0 {
			res.StartPage = u.StartPage
			res.EndPage = u.EndPage
		}
		results[u.Number] = res
	}

	if len(results) == 0 {
		s.logger.Warn("docsplit.all_units_failed",
			"units", len(units), "hint", "falling back to whole-document submission")
		res, err := analyzer.Analyze(ctx, analysis.AnalyzeRequest{ModelID: modelID, Content: doc})
		if err != nil {
			return nil, fmt.Errorf("all %d units and whole-document fallback failed: %w", len(units), err)
		}
		return res, nil
	}

	s.logger.Info("docsplit.merged",
		"units_submitted", len(units), "units_succeeded", len(results))
	return analysis.MergeResults(results), nil
}
