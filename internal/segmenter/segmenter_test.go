package segmenter

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func section(entries ...string) string {
	return "SPECIAL REGULATIONS\n\n" + strings.Join(entries, "\n") + "\n\nGENERAL FISHING REGULATIONS\n"
}

func TestSegmentMissingSectionFails(t *testing.T) {
	s := NewSegmenter(slog.Default())
	_, err := s.Segment("Licensing fees and boating rules, nothing else.")
	if err == nil {
		t.Fatal("expected error for document without special regulations section")
	}
	if !strings.Contains(err.Error(), "special regulations section not found") {
		t.Errorf("error should be descriptive, got %q", err)
	}
}

func TestSegmentWellFormedEntries(t *testing.T) {
	// fallbackThreshold entries so the primary parse stands on its own
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf(
			"Test Lake %c (Mock County) Walleye daily limit 6, possession limit 12.", 'A'+i))
	}
	s := NewSegmenter(slog.Default())

	entries, err := s.Segment(section(lines...))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}
	if entries[0].Name != "Test Lake A" {
		t.Errorf("entry 0 name = %q", entries[0].Name)
	}
	if entries[0].County != "Mock" {
		t.Errorf("entry 0 county = %q", entries[0].County)
	}
	if !strings.Contains(entries[0].RegulationText, "daily limit 6") {
		t.Errorf("entry 0 body = %q", entries[0].RegulationText)
	}
}

func TestSegmentMultiLineBodies(t *testing.T) {
	text := section(
		"Lake Alpha (Itasca County) Walleye: protected slot 17-26 inches,",
		"one over 26 inches allowed in possession.",
		"Lake Beta (Cass County) Muskellunge minimum size 54 inches.",
		"Lake Gamma (Cook County) Catch and release only for lake trout,",
		"season closed October through December.",
		"Lake Delta (Lake County) Northern pike daily limit 3.",
		"Lake Epsilon (Pine County) Sunfish daily limit 5.",
		"Lake Zeta (Polk County) All trout minimum 12 inches.",
		"Lake Eta (Todd County) Bass catch and release May-June.",
		"Lake Theta (Clay County) Crappie daily limit 10.",
		"Lake Iota (Rice County) Walleye daily limit 2.",
		"Lake Kappa (Wright County) Possession limit 6 for panfish.",
	)
	s := NewSegmenter(slog.Default())

	entries, err := s.Segment(text)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if len(entries) != 11 {
		t.Fatalf("expected 11 entries, got %d", len(entries))
	}

	byName := map[string]LakeEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	alpha := byName["Lake Alpha"]
	if !strings.Contains(alpha.RegulationText, "one over 26 inches") {
		t.Errorf("continuation line lost from Lake Alpha body: %q", alpha.RegulationText)
	}
	gamma := byName["Lake Gamma"]
	if !strings.Contains(gamma.RegulationText, "October through December") {
		t.Errorf("continuation line lost from Lake Gamma body: %q", gamma.RegulationText)
	}
}

func TestSegmentDiscardsNonEntryHeaders(t *testing.T) {
	var lines []string
	for i := 0; i < 11; i++ {
		lines = append(lines, fmt.Sprintf("Real Lake %c (Mock County) Daily limit 6 walleye.", 'A'+i))
	}
	lines = append(lines,
		"Note (see page Forty) General seasons apply unless stated.",
		"See (map inset) for boundary details on these waters.",
	)
	s := NewSegmenter(slog.Default())

	entries, err := s.Segment(section(lines...))
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name, "Note") || strings.HasPrefix(e.Name, "See") {
			t.Errorf("non-entry header kept: %q", e.Name)
		}
	}
	if len(entries) != 11 {
		t.Errorf("expected 11 real entries, got %d", len(entries))
	}
}

func TestSegmentSectionEndsAtNextMarker(t *testing.T) {
	text := section(
		"Lake One (Aitkin County) Walleye daily limit 4 possession 8.",
	) + "\nLake After (Some County) should never be parsed, it is outside the section.\n"
	s := NewSegmenter(slog.Default())

	entries, err := s.Segment(text)
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	for _, e := range entries {
		if e.Name == "Lake After" {
			t.Error("entry parsed from beyond the section end marker")
		}
	}
}

func TestSegmentFallbackLineScan(t *testing.T) {
	// headers glued to bodies in a way that still matches line-by-line
	var b strings.Builder
	b.WriteString("EXPERIMENTAL AND SPECIAL REGULATIONS\n")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, "Fallback Lake %c (Mock County) daily limit two fish\ncontinued body text for the lake\n", 'A'+i)
	}
	s := NewSegmenter(slog.Default())

	entries, err := s.Segment(b.String())
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries from fallback, got %d", len(entries))
	}
	if !strings.Contains(entries[0].RegulationText, "continued body text") {
		t.Errorf("fallback should accumulate continuation lines, got %q", entries[0].RegulationText)
	}
}

func TestSegmentTolerantSectionHeading(t *testing.T) {
	text := "intro\nExperimental  and\nSpecial   Regulations\n" +
		strings.Repeat("Lake X (Mock County) walleye limit six fish daily.\n", 1)
	s := NewSegmenter(slog.Default())
	if _, err := s.Segment(text); err != nil {
		t.Fatalf("heading with internal line break should match: %v", err)
	}
}
