package chunking

import "fmt"

// Report summarizes how well a chunking run covered the source text.
type Report struct {
	ChunkCount        int
	CoveragePercent   float64 // total chunk chars / original chars
	RegulationPercent float64 // share of chunks flagged as regulation content
	QualityScore      float64 // 0.7*coverage + 0.3*regulation, each capped at 1.0
	Warnings          []string
}

const (
	minCoverage   = 0.95
	minRegulation = 0.10
)

// ValidateChunking computes coverage and content metrics for a chunking run.
// Overlap prefixes inflate coverage slightly above 1.0 on purpose; the score
// caps each factor so overlap cannot mask missing content.
func ValidateChunking(original string, chunks []Chunk) Report {
	rep := Report{ChunkCount: len(chunks)}
	if len(original) == 0 || len(chunks) == 0 {
		rep.Warnings = append(rep.Warnings, "no chunks produced")
		return rep
	}

	total := 0
	flagged := 0
	for _, c := range chunks {
		total += len(c.Content)
		if c.ContainsRegulationData {
			flagged++
		}
	}

	rep.CoveragePercent = float64(total) / float64(len(original))
	rep.RegulationPercent = float64(flagged) / float64(len(chunks))

	coverage := rep.CoveragePercent
	if coverage > 1.0 {
		coverage = 1.0
	}
	regulation := rep.RegulationPercent
	if regulation > 1.0 {
		regulation = 1.0
	}
	rep.QualityScore = 0.7*coverage + 0.3*regulation

	if rep.CoveragePercent < minCoverage {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("chunk coverage %.1f%% below %.0f%%", rep.CoveragePercent*100, minCoverage*100))
	}
	if rep.RegulationPercent < minRegulation {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("regulation content %.1f%% below %.0f%%", rep.RegulationPercent*100, minRegulation*100))
	}
	return rep
}
