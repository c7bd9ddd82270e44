// Package segmenter locates the special-regulations section of a regulation
// document and parses it into per-water-body entries. Section location is
// the single most failure-prone step of the whole pipeline, so a missing
// section surfaces as a descriptive error instead of zero entries.
package segmenter

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// LakeEntry is one water body's raw regulation text, prior to extraction.
type LakeEntry struct {
	Name           string
	County         string
	RegulationText string
}

// reSectionStart tolerates internal whitespace and line breaks; scanned PDFs
// routinely break headings mid-phrase.
var reSectionStart = regexp.MustCompile(`(?i)(experimental\s+(and|&)\s+)?special\s+regulations`)

// sectionEndMarkers are headings of the sections that follow the special
// regulations in known document layouts. First match wins; no match means
// the section runs to end of document.
var sectionEndMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)general\s+fishing\s+regulations`),
	regexp.MustCompile(`(?i)statewide\s+regulations`),
	regexp.MustCompile(`(?i)border\s+waters`),
	regexp.MustCompile(`(?i)fish\s+consumption`),
	regexp.MustCompile(`(?i)definitions\s*\n`),
}

// reEntryHeader is the primary pattern: NAME (AREA) at the start of a line.
var reEntryHeader = regexp.MustCompile(`(?m)^([A-Z][A-Za-z'.\- ]{2,60}?)\s*\(([A-Za-z'.\- ]{3,40}?)(?:\s+(?:County|Co\.))?\)\s*[:\-]?\s*`)

// nonEntryHeaders are line-leading words that match the header shape but
// never name a water body.
var nonEntryHeaders = map[string]struct{}{
	"note":      {},
	"important": {},
	"see":       {},
	"new":       {},
	"exception": {},
	"page":      {},
}

// fallbackThreshold: below this many primary-pattern entries we assume the
// layout defeated the pattern and re-parse line by line.
const fallbackThreshold = 10

const (
	minNameLen = 3
	minBodyLen = 10
)

type Segmenter struct {
	logger *slog.Logger
}

func NewSegmenter(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{logger: logger}
}

// Segment extracts per-water-body entries from the document text.
func (s *Segmenter) Segment(text string) ([]LakeEntry, error) {
	section, err := s.locateSection(text)
	if err != nil {
		return nil, err
	}

	entries := s.parseEntries(section)
	if len(entries) < fallbackThreshold {
		s.logger.Warn("segmenter.primary_pattern_weak",
			"entries", len(entries), "threshold", fallbackThreshold,
			"hint", "re-parsing line by line")
		if fallback := s.parseEntriesByLine(section); len(fallback) > len(entries) {
			entries = fallback
		}
	}

	s.logger.Info("segmenter.done", "entries", len(entries), "section_chars", len(section))
	return entries, nil
}

func (s *Segmenter) locateSection(text string) (string, error) {
	loc := reSectionStart.FindStringIndex(text)
	if loc == nil {
		return "", fmt.Errorf("special regulations section not found in document text (%d chars scanned)", len(text))
	}
	body := text[loc[1]:]

	end := len(body)
	for _, marker := range sectionEndMarkers {
		if m := marker.FindStringIndex(body); m != nil && m[0] < end {
			end = m[0]
		}
	}
	return body[:end], nil
}

// parseEntries applies the primary multi-line pattern: each NAME (AREA)
// header opens an entry whose body runs to the next header or section end.
func (s *Segmenter) parseEntries(section string) []LakeEntry {
	matches := reEntryHeader.FindAllStringSubmatchIndex(section, -1)
	var entries []LakeEntry

	for i, m := range matches {
		name := strings.TrimSpace(section[m[2]:m[3]])
		county := strings.TrimSpace(section[m[4]:m[5]])

		bodyStart := m[1]
		bodyEnd := len(section)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := strings.TrimSpace(section[bodyStart:bodyEnd])

		if entry, ok := buildEntry(name, county, body); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseEntriesByLine is the fallback: any line matching NAME (AREA) starts a
// new entry; other lines accumulate into the current entry's body.
func (s *Segmenter) parseEntriesByLine(section string) []LakeEntry {
	var entries []LakeEntry
	var current *LakeEntry
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		if entry, ok := buildEntry(current.Name, current.County, strings.TrimSpace(body.String())); ok {
			entries = append(entries, entry)
		}
		current = nil
		body.Reset()
	}

	for _, line := range strings.Split(section, "\n") {
		m := reEntryHeader.FindStringSubmatchIndex(line)
		if m != nil && m[0] == 0 {
			flush()
			current = &LakeEntry{
				Name:   strings.TrimSpace(line[m[2]:m[3]]),
				County: strings.TrimSpace(line[m[4]:m[5]]),
			}
			body.WriteString(strings.TrimSpace(line[m[1]:]))
			continue
		}
		if current != nil {
			if body.Len() > 0 {
				body.WriteString(" ")
			}
			body.WriteString(strings.TrimSpace(line))
		}
	}
	flush()
	return entries
}

func buildEntry(name, county, body string) (LakeEntry, bool) {
	if len(name) < minNameLen || len(body) < minBodyLen {
		return LakeEntry{}, false
	}
	first := strings.ToLower(strings.Fields(name)[0])
	if _, bad := nonEntryHeaders[first]; bad {
		return LakeEntry{}, false
	}
	return LakeEntry{Name: name, County: county, RegulationText: body}, true
}
