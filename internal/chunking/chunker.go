// Package chunking splits long regulation text into bounded segments at
// natural boundaries so downstream extraction never sees an oversized input.
package chunking

import (
	"regexp"
	"strings"
)

// Chunk is one bounded segment of the source text.
type Chunk struct {
	Sequence int // 1-based
	Content  string
	// Estimated page span, assuming ~charsPerPage characters per page.
	StartPage int
	EndPage   int
	// ContainsRegulationData is a keyword heuristic: true when the segment
	// looks like fishing-regulation content rather than boilerplate.
	ContainsRegulationData bool
}

const (
	// minChunkRatio bounds how far back a boundary search may reach before
	// we give up and hard-cut at the limit.
	minChunkRatio = 4
	charsPerPage  = 3000
)

var reSentenceEnd = regexp.MustCompile(`[.!?]\s`)

// ChunkText splits text into chunks of at most maxChunkSize characters.
// Cuts prefer, in order: a blank-line paragraph break, a sentence end
// followed by whitespace, a line break, a word break. Each chunk after the
// first is prefixed with the last overlap characters of the previous span to
// preserve cross-boundary context.
func ChunkText(text string, maxChunkSize, overlap int) []Chunk {
	if maxChunkSize <= 0 {
		maxChunkSize = 8000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 10
	}

	if len(text) <= maxChunkSize {
		return []Chunk{makeChunk(1, text, 0, len(text))}
	}

	minChunk := maxChunkSize / minChunkRatio
	var chunks []Chunk
	start := 0
	seq := 1

	for start < len(text) {
		end := start + maxChunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			cut := findBoundary(text[start:end], minChunk)
			end = start + cut
		}

		content := text[start:end]
		if seq > 1 && overlap > 0 {
			from := start - overlap
			if from < 0 {
				from = 0
			}
			content = text[from:start] + content
		}
		chunks = append(chunks, makeChunk(seq, content, start, end))

		start = end
		seq++
	}
	return chunks
}

// findBoundary returns the cut position within window, preferring the
// furthest-back natural boundary not before minChunk. Falls back to the hard
// limit when the window has no usable boundary.
func findBoundary(window string, minChunk int) int {
	if i := strings.LastIndex(window, "\n\n"); i >= minChunk {
		return i + 2
	}
	if locs := reSentenceEnd.FindAllStringIndex(window, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		if last[1] >= minChunk {
			return last[1]
		}
	}
	if i := strings.LastIndex(window, "\n"); i >= minChunk {
		return i + 1
	}
	if i := strings.LastIndex(window, " "); i >= minChunk {
		return i + 1
	}
	return len(window)
}

func makeChunk(seq int, content string, start, end int) Chunk {
	return Chunk{
		Sequence:               seq,
		Content:                content,
		StartPage:              start/charsPerPage + 1,
		EndPage:                (end-1)/charsPerPage + 1,
		ContainsRegulationData: looksLikeRegulationText(content),
	}
}

// FilterRegulationChunks keeps only chunks flagged as regulation content and
// renumbers them contiguously.
func FilterRegulationChunks(chunks []Chunk) []Chunk {
	var out []Chunk
	for _, c := range chunks {
		if !c.ContainsRegulationData {
			continue
		}
		c.Sequence = len(out) + 1
		out = append(out, c)
	}
	return out
}

var (
	speciesKeywords = []string{
		"walleye", "northern pike", "muskellunge", "muskie", "bass",
		"trout", "crappie", "bluegill", "sunfish", "perch", "catfish",
		"sturgeon", "panfish",
	}
	regulationKeywords = []string{
		"limit", "possession", "season", "minimum", "maximum", "inches",
		"catch", "release", "protected", "slot", "regulation", "harvest",
		"closed", "bag",
	}
	geoKeywords = []string{
		"lake", "river", "stream", "creek", "reservoir", "county",
		"flowage", "pond",
	}
)

// looksLikeRegulationText wants at least one regulation-vocabulary hit plus
// one species or geographic hit; either alone is too weak a signal.
func looksLikeRegulationText(content string) bool {
	lower := strings.ToLower(content)
	if !containsAny(lower, regulationKeywords) {
		return false
	}
	return containsAny(lower, speciesKeywords) || containsAny(lower, geoKeywords)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
