package extraction

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fisheries-data/regs-tracker/internal/llm"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
)

type fakeExtractor struct {
	calls   int
	failOn  map[int]bool // 0-based call index -> fail
	perCall func(req llm.ExtractRequest) llm.RegulationFields
}

func (f *fakeExtractor) ExtractRegulation(_ context.Context, req llm.ExtractRequest) (llm.RegulationFields, []byte, error) {
	idx := f.calls
	f.calls++
	if f.failOn[idx] {
		return llm.RegulationFields{}, nil, errors.New("model refused")
	}
	if f.perCall != nil {
		return f.perCall(req), []byte(`{}`), nil
	}
	return llm.RegulationFields{Species: "Walleye", RegulationType: "daily_limit"}, []byte(`{}`), nil
}

func entries(n int) []segmenter.LakeEntry {
	out := make([]segmenter.LakeEntry, n)
	for i := range out {
		out[i] = segmenter.LakeEntry{
			Name:           fmt.Sprintf("Lake %d", i),
			County:         "Itasca",
			RegulationText: "Walleye: daily limit 4.",
		}
	}
	return out
}

func TestExtractBatchAllSucceed(t *testing.T) {
	fe := &fakeExtractor{}
	o := NewOrchestrator(fe, Config{}, nil)

	res, err := o.ExtractBatch(context.Background(), BatchRequest{
		StateCode: "MN", RegulationYear: 2024, Entries: entries(3),
	})
	if err != nil {
		t.Fatalf("ExtractBatch: %v", err)
	}
	if !res.Success || res.Extracted != 3 || res.Failed != 0 {
		t.Fatalf("got success=%v extracted=%d failed=%d", res.Success, res.Extracted, res.Failed)
	}
	if len(res.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(res.Records))
	}
	if res.Records[0].Entry.Name != "Lake 0" {
		t.Fatalf("first record entry = %q", res.Records[0].Entry.Name)
	}
}

func TestExtractBatchToleratesEntryFailures(t *testing.T) {
	fe := &fakeExtractor{failOn: map[int]bool{1: true}}
	o := NewOrchestrator(fe, Config{}, nil)

	res, err := o.ExtractBatch(context.Background(), BatchRequest{
		StateCode: "MN", RegulationYear: 2024, Entries: entries(3),
	})
	if err != nil {
		t.Fatalf("ExtractBatch: %v", err)
	}
	if !res.Success {
		t.Fatal("entry failures should not fail the batch")
	}
	if res.Extracted != 2 || res.Failed != 1 {
		t.Fatalf("extracted=%d failed=%d", res.Extracted, res.Failed)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestExtractBatchPassesEntryContext(t *testing.T) {
	var seen []llm.ExtractRequest
	fe := &fakeExtractor{perCall: func(req llm.ExtractRequest) llm.RegulationFields {
		seen = append(seen, req)
		return llm.RegulationFields{Species: "Walleye", RegulationType: "combined"}
	}}
	o := NewOrchestrator(fe, Config{}, nil)

	in := []segmenter.LakeEntry{{Name: "Red Lake", County: "Beltrami", RegulationText: "Walleye: 3 fish."}}
	if _, err := o.ExtractBatch(context.Background(), BatchRequest{
		StateCode: "MN", RegulationYear: 2025, Entries: in,
	}); err != nil {
		t.Fatalf("ExtractBatch: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("calls = %d", len(seen))
	}
	got := seen[0]
	if got.WaterBodyName != "Red Lake" || got.County != "Beltrami" ||
		got.StateCode != "MN" || got.RegulationYear != 2025 {
		t.Fatalf("request context = %+v", got)
	}
}

func TestExtractBatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fe := &fakeExtractor{perCall: func(llm.ExtractRequest) llm.RegulationFields {
		cancel()
		return llm.RegulationFields{Species: "Walleye", RegulationType: "daily_limit"}
	}}
	o := NewOrchestrator(fe, Config{PaceDelay: time.Millisecond}, nil)

	res, err := o.ExtractBatch(ctx, BatchRequest{
		StateCode: "MN", RegulationYear: 2024, Entries: entries(5),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Success {
		t.Fatal("cancelled batch should not report success")
	}
	if res.Extracted != 1 {
		t.Fatalf("extracted = %d, want 1 before cancellation", res.Extracted)
	}
}
