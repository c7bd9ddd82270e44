package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// MergeResults folds per-unit analysis results into one envelope. Key/value
// fields are namespaced "u<unit>.<key>" so two units cannot clobber each
// other, tables carry their unit number, and page ranges are reconciled to
// the overall min/max.
func MergeResults(results map[int]*AnalysisResult) *AnalysisResult {
	if len(results) == 0 {
		return &AnalysisResult{Fields: map[string]Field{}}
	}

	units := make([]int, 0, len(results))
	for u := range results {
		units = append(units, u)
	}
	sort.Ints(units)

	merged := &AnalysisResult{Fields: map[string]Field{}}
	var parts []string
	var confSum float64

	for _, u := range units {
		r := results[u]
		if r == nil {
			continue
		}
		if r.Content != "" {
			parts = append(parts, r.Content)
		}
		for k, f := range r.Fields {
			merged.Fields[fmt.Sprintf("u%d.%s", u, k)] = f
		}
		for _, t := range r.Tables {
			t.Unit = u
			merged.Tables = append(merged.Tables, t)
		}
		if merged.StartPage == 0 || (r.StartPage > 0 && r.StartPage < merged.StartPage) {
			merged.StartPage = r.StartPage
		}
		if r.EndPage > merged.EndPage {
			merged.EndPage = r.EndPage
		}
		confSum += r.Confidence
	}

	merged.Content = strings.Join(parts, "\n\n")
	merged.Confidence = confSum / float64(len(units))
	return merged
}
