package docsplit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/fisheries-data/regs-tracker/internal/analysis"
)

func testSplitter(maxKB, pages int, countErr error) *Splitter {
	s := NewSplitter(Config{MaxChunkKB: maxKB, PaceDelay: time.Millisecond}, slog.Default())
	s.countPages = func([]byte) (int, error) { return pages, countErr }
	return s
}

func TestPlanSmallDocumentSingleUnit(t *testing.T) {
	s := testSplitter(100, 50, nil)
	units := s.Plan(make([]byte, 50*1024))
	if len(units) != 1 || !units[0].Whole {
		t.Fatalf("expected one whole-document unit, got %+v", units)
	}
	if units[0].Pages() != "" {
		t.Errorf("whole unit should have empty page range, got %q", units[0].Pages())
	}
}

func TestPlanGroupsPages(t *testing.T) {
	// 100 pages at ~10KB/page, 50KB ceiling: the default group of 10 pages
	// (~100KB) exceeds the ceiling and halves to 5 (~50KB).
	s := testSplitter(50, 100, nil)
	units := s.Plan(make([]byte, 1000*1024))

	if len(units) != 20 {
		t.Fatalf("expected 20 units of 5 pages, got %d", len(units))
	}
	if units[0].StartPage != 1 || units[0].EndPage != 5 {
		t.Errorf("unit 1 covers %d-%d, want 1-5", units[0].StartPage, units[0].EndPage)
	}
	last := units[len(units)-1]
	if last.EndPage != 100 {
		t.Errorf("last unit ends at page %d, want 100", last.EndPage)
	}
	for i, u := range units {
		if u.Number != i+1 {
			t.Errorf("unit %d numbered %d", i, u.Number)
		}
	}
}

func TestPlanHalvesDownToSinglePage(t *testing.T) {
	// one page is still over the ceiling; group size bottoms out at 1
	s := testSplitter(10, 20, nil)
	units := s.Plan(make([]byte, 20*100*1024))
	if len(units) != 20 {
		t.Fatalf("expected 20 single-page units, got %d", len(units))
	}
	if units[3].Pages() != "4-4" {
		t.Errorf("unit 4 pages = %q, want 4-4", units[3].Pages())
	}
}

func TestPlanUnparseableDegradesToWholeUnit(t *testing.T) {
	s := testSplitter(100, 0, errors.New("encrypted"))
	units := s.Plan(make([]byte, 500*1024))
	if len(units) != 1 || !units[0].Whole {
		t.Fatalf("protected document should become one opaque unit, got %+v", units)
	}
}

type fakeAnalyzer struct {
	calls    []analysis.AnalyzeRequest
	failures map[string]error // keyed by page range; "" = whole document
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req analysis.AnalyzeRequest) (*analysis.AnalysisResult, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.failures[req.Pages]; ok {
		return nil, err
	}
	return &analysis.AnalysisResult{
		Content:    fmt.Sprintf("content[%s]", req.Pages),
		Fields:     map[string]analysis.Field{"title": {Value: "regs", Confidence: 0.9}},
		Confidence: 0.9,
	}, nil
}

func TestSubmitMergesUnits(t *testing.T) {
	s := testSplitter(50, 20, nil)
	fake := &fakeAnalyzer{}
	doc := make([]byte, 200*1024) // 20 pages, ~10KB each, groups of 5

	res, err := s.Submit(context.Background(), fake, doc, "prebuilt-layout")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(fake.calls) != 4 {
		t.Fatalf("expected 4 unit submissions, got %d", len(fake.calls))
	}
	// fields namespaced by unit number
	if _, ok := res.Fields["u1.title"]; !ok {
		t.Errorf("merged fields missing u1.title: %v", res.Fields)
	}
	if _, ok := res.Fields["u4.title"]; !ok {
		t.Errorf("merged fields missing u4.title: %v", res.Fields)
	}
	if res.StartPage != 1 || res.EndPage != 20 {
		t.Errorf("merged page range %d-%d, want 1-20", res.StartPage, res.EndPage)
	}
}

func TestSubmitSkipsFailedUnits(t *testing.T) {
	s := testSplitter(50, 20, nil)
	fake := &fakeAnalyzer{failures: map[string]error{"6-10": errors.New("rate limited")}}
	doc := make([]byte, 200*1024)

	res, err := s.Submit(context.Background(), fake, doc, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, ok := res.Fields["u2.title"]; ok {
		t.Error("failed unit 2 should be excluded from the merge")
	}
	if _, ok := res.Fields["u1.title"]; !ok {
		t.Error("surviving unit 1 missing from merge")
	}
}

func TestSubmitFallsBackToWholeDocument(t *testing.T) {
	s := testSplitter(50, 20, nil)
	fake := &fakeAnalyzer{failures: map[string]error{
		"1-5":   errors.New("unavailable"),
		"6-10":  errors.New("unavailable"),
		"11-15": errors.New("unavailable"),
		"16-20": errors.New("unavailable"),
	}}
	doc := make([]byte, 200*1024)

	res, err := s.Submit(context.Background(), fake, doc, "")
	if err != nil {
		t.Fatalf("fallback should succeed: %v", err)
	}
	if res.Content != "content[]" {
		t.Errorf("expected whole-document fallback result, got %q", res.Content)
	}
	// 4 unit attempts + 1 whole-document fallback
	if len(fake.calls) != 5 {
		t.Errorf("expected 5 calls, got %d", len(fake.calls))
	}
}

func TestSubmitHonorsCancellation(t *testing.T) {
	s := NewSplitter(Config{MaxChunkKB: 50, PaceDelay: time.Minute}, slog.Default())
	s.countPages = func([]byte) (int, error) { return 20, nil }
	fake := &fakeAnalyzer{}
	doc := make([]byte, 200*1024)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.Submit(ctx, fake, doc, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled during pacing wait, got %v", err)
	}
}
