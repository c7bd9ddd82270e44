// Package docsplit plans and submits page-range units of oversized PDF
// documents so each submission stays under the analysis service's request
// ceiling.
package docsplit

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledongthuc/pdf"
)

// Unit is one submission unit: a 1-based inclusive page range of the source
// document, or the whole document when splitting was impossible or unneeded.
type Unit struct {
	Number    int
	StartPage int
	EndPage   int
	Whole     bool
}

// Pages renders the range in the analysis service's "start-end" form, empty
// for whole-document units.
func (u Unit) Pages() string {
	if u.Whole {
		return ""
	}
	return fmt.Sprintf("%d-%d", u.StartPage, u.EndPage)
}

type Config struct {
	MaxChunkKB int           // request size ceiling, default 4096
	GroupSize  int           // initial pages per unit, default 10
	PaceDelay  time.Duration // delay between unit submissions, default 2s
}

type Splitter struct {
	cfg    Config
	logger *slog.Logger

	// countPages is swappable for tests; production uses the PDF parser.
	countPages func(doc []byte) (int, error)
}

func NewSplitter(cfg Config, logger *slog.Logger) *Splitter {
	if cfg.MaxChunkKB <= 0 {
		cfg.MaxChunkKB = 4096
	}
	if cfg.GroupSize <= 0 {
		cfg.GroupSize = 10
	}
	if cfg.PaceDelay <= 0 {
		cfg.PaceDelay = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{cfg: cfg, logger: logger, countPages: pdfPageCount}
}

// Plan decides how to submit the document. Under the ceiling the whole
// document goes as one unit. Otherwise pages are grouped, halving the group
// size (down to 1 page) while the estimated group size still exceeds the
// ceiling. Unparseable documents (protected, corrupt) degrade to a single
// opaque unit instead of failing.
func (s *Splitter) Plan(doc []byte) []Unit {
	limit := s.cfg.MaxChunkKB * 1024
	if len(doc) <= limit {
		return []Unit{{Number: 1, Whole: true}}
	}

	pages, err := s.countPages(doc)
	if err != nil || pages <= 0 {
		s.logger.Warn("docsplit.unsplittable",
			"size_bytes", len(doc), "error", err,
			"hint", "submitting whole document as one unit")
		return []Unit{{Number: 1, Whole: true}}
	}

	bytesPerPage := len(doc) / pages
	group := s.cfg.GroupSize
	for group > 1 && group*bytesPerPage > limit {
		group /= 2
	}

	var units []Unit
	for start := 1; start <= pages; start += group {
		end := start + group - 1
		if end > pages {
			end = pages
		}
		units = append(units, Unit{
			Number:    len(units) + 1,
			StartPage: start,
			EndPage:   end,
		})
	}

	s.logger.Info("docsplit.planned",
		"size_bytes", len(doc), "pages", pages,
		"group_size", group, "units", len(units))
	return units
}

func pdfPageCount(doc []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}
