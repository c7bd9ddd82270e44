package chunking

import (
	"strings"
	"testing"
)

func TestChunkTextShortInputSingleChunk(t *testing.T) {
	text := "Walleye daily limit 6, possession limit 12 on Lake Mille Lacs."
	chunks := ChunkText(text, 1000, 100)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != text {
		t.Errorf("single chunk should equal input, got %q", chunks[0].Content)
	}
	if chunks[0].Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", chunks[0].Sequence)
	}
}

func TestChunkTextPrefersParagraphBreak(t *testing.T) {
	para1 := strings.Repeat("walleye limit six inches on the lake. ", 10)
	para2 := strings.Repeat("northern pike season closed in the county. ", 10)
	text := para1 + "\n\n" + para2

	chunks := ChunkText(text, len(para1)+100, 0)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if !strings.HasSuffix(chunks[0].Content, "\n\n") {
		t.Errorf("first chunk should end at paragraph break, ends with %q",
			chunks[0].Content[len(chunks[0].Content)-10:])
	}
}

func TestChunkTextCoverage(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		max     int
		overlap int
	}{
		{"no_boundaries", strings.Repeat("x", 5000), 1000, 0},
		{"sentences", strings.Repeat("Daily limit is six fish. ", 400), 1200, 100},
		{"lines", strings.Repeat("walleye limit 6 on the lake\n", 300), 800, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := ChunkText(tc.text, tc.max, tc.overlap)

			total := 0
			for i, c := range chunks {
				if c.Sequence != i+1 {
					t.Errorf("chunk %d has sequence %d", i, c.Sequence)
				}
				if len(c.Content) > tc.max+tc.overlap {
					t.Errorf("chunk %d exceeds max+overlap: %d", i, len(c.Content))
				}
				total += len(c.Content)
			}
			// Reconstructing >=95% of the original is the contract; overlap
			// makes the sum exceed the original length, never fall short.
			if float64(total) < 0.95*float64(len(tc.text)) {
				t.Errorf("coverage too low: %d of %d chars", total, len(tc.text))
			}
		})
	}
}

func TestChunkTextOverlapPrefix(t *testing.T) {
	text := strings.Repeat("northern pike possession limit statement here. ", 200)
	overlap := 60
	chunks := ChunkText(text, 1500, overlap)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Each chunk after the first starts with the tail of the prior source span.
	for i := 1; i < len(chunks); i++ {
		prefix := chunks[i].Content[:overlap]
		if !strings.Contains(chunks[i-1].Content, prefix) {
			t.Errorf("chunk %d overlap prefix not found in previous chunk", i+1)
		}
	}
}

func TestFilterRegulationChunks(t *testing.T) {
	chunks := []Chunk{
		{Sequence: 1, Content: "a", ContainsRegulationData: false},
		{Sequence: 2, Content: "b", ContainsRegulationData: true},
		{Sequence: 3, Content: "c", ContainsRegulationData: false},
		{Sequence: 4, Content: "d", ContainsRegulationData: true},
	}
	got := FilterRegulationChunks(chunks)
	if len(got) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(got))
	}
	if got[0].Sequence != 1 || got[1].Sequence != 2 {
		t.Errorf("filtered chunks should be renumbered contiguously: %d, %d",
			got[0].Sequence, got[1].Sequence)
	}
	if got[0].Content != "b" || got[1].Content != "d" {
		t.Errorf("wrong chunks kept: %q, %q", got[0].Content, got[1].Content)
	}
}

func TestLooksLikeRegulationText(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"species_and_limit", "Walleye daily limit 6", true},
		{"geo_and_season", "Season closed on the river in March", true},
		{"regulation_word_only", "The possession limit applies broadly", false},
		{"boilerplate", "Table of contents and license fees", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := looksLikeRegulationText(tc.text); got != tc.want {
				t.Errorf("looksLikeRegulationText(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestValidateChunking(t *testing.T) {
	text := strings.Repeat("Walleye limit 6 on the lake. ", 100)
	chunks := ChunkText(text, 500, 50)
	rep := ValidateChunking(text, chunks)

	if rep.CoveragePercent < 0.95 {
		t.Errorf("expected coverage >= 95%%, got %.2f", rep.CoveragePercent)
	}
	if rep.RegulationPercent < 0.99 {
		t.Errorf("all chunks are regulation content, got %.2f", rep.RegulationPercent)
	}
	if rep.QualityScore < 0.9 || rep.QualityScore > 1.0 {
		t.Errorf("quality score out of range: %.2f", rep.QualityScore)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
}

func TestValidateChunkingWarnsOnLowCoverage(t *testing.T) {
	text := strings.Repeat("x", 1000)
	chunks := []Chunk{{Sequence: 1, Content: text[:500]}}
	rep := ValidateChunking(text, chunks)
	if len(rep.Warnings) == 0 {
		t.Fatal("expected warnings for 50% coverage")
	}
}
