package processor

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/llm"
	"github.com/fisheries-data/regs-tracker/internal/population"
	"github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type fakeDocs struct {
	doc       *entity.RegulationDocument
	statuses  []string
	lastError string
}

func (f *fakeDocs) Register(context.Context, *repository.RegisterDocumentRequest) (*entity.RegulationDocument, error) {
	return nil, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.RegulationDocument, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, &ent.NotFoundError{}
	}
	return f.doc, nil
}

func (f *fakeDocs) ListByStatus(context.Context, constants.ProcessingStatus) ([]*entity.RegulationDocument, error) {
	return nil, nil
}

func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error {
	f.statuses = append(f.statuses, "processing")
	return nil
}

func (f *fakeDocs) MarkCompleted(context.Context, uuid.UUID) error {
	f.statuses = append(f.statuses, "completed")
	return nil
}

func (f *fakeDocs) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	f.statuses = append(f.statuses, "failed")
	f.lastError = msg
	return nil
}

type fakeFieldExtractor struct{}

func (fakeFieldExtractor) ExtractRegulation(context.Context, llm.ExtractRequest) (llm.RegulationFields, []byte, error) {
	six, twelve := 6, 12
	return llm.RegulationFields{
		Species:         "Walleye",
		RegulationType:  "daily_limit",
		DailyLimit:      &six,
		PossessionLimit: &twelve,
	}, []byte(`{}`), nil
}

type fakeWaterBodies struct {
	rows map[string]*entity.WaterBody
}

func (f *fakeWaterBodies) GetByID(context.Context, uuid.UUID) (*entity.WaterBody, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) FindByName(_ context.Context, name, state string) (*entity.WaterBody, error) {
	if wb, ok := f.rows[utils.NormalizeName(name)+"|"+state]; ok {
		return wb, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) SearchByName(context.Context, string, string) ([]*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) Create(_ context.Context, name, wbType, state string, county *string) (*entity.WaterBody, error) {
	wb := &entity.WaterBody{ID: uuid.New(), Name: name, NormalizedName: utils.NormalizeName(name), WaterBodyType: wbType, StateCode: state, County: county, IsActive: true}
	f.rows[wb.NormalizedName+"|"+state] = wb
	return wb, nil
}

func (f *fakeWaterBodies) ListByState(context.Context, string) ([]*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) UpdateCounty(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeWaterBodies) CountByState(context.Context, string) (int, error) { return 0, nil }

type fakeSpecies struct {
	rows map[string]*entity.FishSpecies
}

func (f *fakeSpecies) GetByID(context.Context, uuid.UUID) (*entity.FishSpecies, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeSpecies) FindByCommonName(_ context.Context, name string) (*entity.FishSpecies, error) {
	if sp, ok := f.rows[name]; ok {
		return sp, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeSpecies) Create(_ context.Context, name string) (*entity.FishSpecies, error) {
	sp := &entity.FishSpecies{ID: uuid.New(), CommonName: name, IsActive: true}
	f.rows[name] = sp
	return sp, nil
}

func (f *fakeSpecies) List(context.Context) ([]*entity.FishSpecies, error) { return nil, nil }

type fakeRegulations struct {
	rows []*entity.FishingRegulation
}

func (f *fakeRegulations) FindActive(_ context.Context, wbID, spID uuid.UUID, year int) (*entity.FishingRegulation, error) {
	for _, r := range f.rows {
		if r.WaterBodyID == wbID && r.SpeciesID == spID && r.RegulationYear == year {
			return r, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeRegulations) Create(_ context.Context, rec *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	cp := *rec
	cp.ID = uuid.New()
	f.rows = append(f.rows, &cp)
	return &cp, nil
}

func (f *fakeRegulations) Update(_ context.Context, id uuid.UUID, rec *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	cp := *rec
	cp.ID = id
	return &cp, nil
}

func (f *fakeRegulations) ListByWaterBody(context.Context, uuid.UUID, int) ([]*entity.FishingRegulation, error) {
	return f.rows, nil
}

func (f *fakeRegulations) CountByYear(context.Context, int) (int, error) { return len(f.rows), nil }

const specialSection = `General information about fishing licenses.

SPECIAL REGULATIONS

Test Lake Alpha (Mock County): Walleye daily limit 6, possession limit 12.
Minimum size 15 inches.

GENERAL FISHING REGULATIONS
Statewide limits apply elsewhere.`

func newTestProcessor(docs *fakeDocs) (*Processor, *fakeRegulations) {
	wb := &fakeWaterBodies{rows: make(map[string]*entity.WaterBody)}
	sp := &fakeSpecies{rows: make(map[string]*entity.FishSpecies)}
	rg := &fakeRegulations{}

	text := NewTextStage(nil, nil, "", nil)
	extract := NewExtractStage(
		segmenter.NewSegmenter(nil),
		extraction.NewOrchestrator(fakeFieldExtractor{}, extraction.Config{}, nil),
		nil,
	)
	populate := population.NewService(wb, sp, rg, nil)
	return NewProcessor(nil, docs, text, extract, populate), rg
}

func txtDoc() *entity.RegulationDocument {
	return &entity.RegulationDocument{
		ID:             uuid.New(),
		Filename:       "mn_2024.txt",
		DocumentType:   "TXT",
		StateCode:      "MN",
		RegulationYear: 2024,
	}
}

func TestProcessDocumentEndToEnd(t *testing.T) {
	docs := &fakeDocs{doc: txtDoc()}
	p, rg := newTestProcessor(docs)

	res, err := p.ProcessDocument(context.Background(), docs.doc.ID, []byte(specialSection))
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if !res.IsSuccess {
		t.Fatalf("errors = %v", res.ProcessingErrors)
	}
	if res.RegulationsCreated != 1 || len(rg.rows) != 1 {
		t.Fatalf("regulations created = %d rows = %d", res.RegulationsCreated, len(rg.rows))
	}
	row := rg.rows[0]
	if row.DocumentID == nil || *row.DocumentID != docs.doc.ID {
		t.Fatalf("document id = %v, want %v", row.DocumentID, docs.doc.ID)
	}
	if row.DailyLimit == nil || *row.DailyLimit != 6 || row.PossessionLimit == nil || *row.PossessionLimit != 12 {
		t.Fatalf("limits = %v/%v", row.DailyLimit, row.PossessionLimit)
	}
	want := []string{"processing", "completed"}
	if len(docs.statuses) != 2 || docs.statuses[0] != want[0] || docs.statuses[1] != want[1] {
		t.Fatalf("statuses = %v, want %v", docs.statuses, want)
	}
}

func TestProcessDocumentMissingSectionFails(t *testing.T) {
	docs := &fakeDocs{doc: txtDoc()}
	p, rg := newTestProcessor(docs)

	res, err := p.ProcessDocument(context.Background(), docs.doc.ID,
		[]byte("General license information only. No regulated lakes here."))
	if err == nil {
		t.Fatal("expected a structural error")
	}
	if res.IsSuccess {
		t.Fatal("structural failure must not report success")
	}
	if res.ErrorMessage == "" {
		t.Fatal("expected a non-empty error message")
	}
	if len(rg.rows) != 0 {
		t.Fatalf("rows = %d, want zero writes", len(rg.rows))
	}
	if docs.statuses[len(docs.statuses)-1] != "failed" {
		t.Fatalf("statuses = %v, want failed last", docs.statuses)
	}
}

func TestProcessDocumentUnknownID(t *testing.T) {
	docs := &fakeDocs{doc: txtDoc()}
	p, _ := newTestProcessor(docs)

	res, err := p.ProcessDocument(context.Background(), uuid.New(), nil)
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if res.IsSuccess {
		t.Fatal("lookup failure must not report success")
	}
	if len(docs.statuses) != 0 {
		t.Fatalf("statuses = %v, want none", docs.statuses)
	}
}
