package population

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/llm"
	"github.com/fisheries-data/regs-tracker/internal/segmenter"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type fakeWaterBodies struct {
	rows map[string]*entity.WaterBody // normalized name|state
}

func newFakeWaterBodies() *fakeWaterBodies {
	return &fakeWaterBodies{rows: make(map[string]*entity.WaterBody)}
}

func (f *fakeWaterBodies) key(name, state string) string {
	return utils.NormalizeName(name) + "|" + state
}

func (f *fakeWaterBodies) GetByID(context.Context, uuid.UUID) (*entity.WaterBody, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) FindByName(_ context.Context, name, state string) (*entity.WaterBody, error) {
	if wb, ok := f.rows[f.key(name, state)]; ok {
		return wb, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) SearchByName(context.Context, string, string) ([]*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) ListByState(context.Context, string) ([]*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) Create(_ context.Context, name, wbType, state string, county *string) (*entity.WaterBody, error) {
	wb := &entity.WaterBody{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: utils.NormalizeName(name),
		WaterBodyType:  wbType,
		StateCode:      state,
		County:         county,
		IsActive:       true,
	}
	f.rows[f.key(name, state)] = wb
	return wb, nil
}

func (f *fakeWaterBodies) UpdateCounty(_ context.Context, id uuid.UUID, county string) error {
	for _, wb := range f.rows {
		if wb.ID == id {
			c := county
			wb.County = &c
		}
	}
	return nil
}

func (f *fakeWaterBodies) CountByState(context.Context, string) (int, error) {
	return len(f.rows), nil
}

type fakeSpecies struct {
	rows map[string]*entity.FishSpecies
}

func newFakeSpecies() *fakeSpecies {
	return &fakeSpecies{rows: make(map[string]*entity.FishSpecies)}
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

func (f *fakeSpecies) List(context.Context) ([]*entity.FishSpecies, error) {
	return nil, nil
}

type fakeRegulations struct {
	rows []*entity.FishingRegulation
}

func (f *fakeRegulations) FindActive(_ context.Context, wbID, spID uuid.UUID, year int) (*entity.FishingRegulation, error) {
	for _, r := range f.rows {
		if r.WaterBodyID == wbID && r.SpeciesID == spID && r.RegulationYear == year && r.IsActive {
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
	for i, r := range f.rows {
		if r.ID == id {
			cp := *rec
			cp.ID = id
			f.rows[i] = &cp
			return &cp, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeRegulations) ListByWaterBody(context.Context, uuid.UUID, int) ([]*entity.FishingRegulation, error) {
	return f.rows, nil
}

func (f *fakeRegulations) CountByYear(context.Context, int) (int, error) {
	return len(f.rows), nil
}

func intp(n int) *int { return &n }

func walleyeRecord() extraction.Record {
	return extraction.Record{
		Entry: segmenter.LakeEntry{
			Name:           "Test Lake Alpha",
			County:         "Mock",
			RegulationText: "Walleye: daily limit 6, possession limit 12.",
		},
		Fields: llm.RegulationFields{
			Species:         "Walleye",
			RegulationType:  "daily_limit",
			DailyLimit:      intp(6),
			PossessionLimit: intp(12),
		},
	}
}

func newTestService() (*Service, *fakeWaterBodies, *fakeSpecies, *fakeRegulations) {
	wb := newFakeWaterBodies()
	sp := newFakeSpecies()
	rg := &fakeRegulations{}
	return NewService(wb, sp, rg, nil), wb, sp, rg
}

func TestPopulateCreatesReferenceRows(t *testing.T) {
	svc, wb, sp, rg := newTestService()

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode:      "MN",
		RegulationYear: 2024,
		Records:        []extraction.Record{walleyeRecord()},
	})

	if !res.IsSuccess {
		t.Fatalf("errors = %v", res.ProcessingErrors)
	}
	if res.WaterBodiesCreated != 1 || res.FishSpeciesCreated != 1 || res.RegulationsCreated != 1 {
		t.Fatalf("created wb=%d sp=%d reg=%d", res.WaterBodiesCreated, res.FishSpeciesCreated, res.RegulationsCreated)
	}
	if len(wb.rows) != 1 || len(sp.rows) != 1 || len(rg.rows) != 1 {
		t.Fatalf("rows wb=%d sp=%d reg=%d", len(wb.rows), len(sp.rows), len(rg.rows))
	}
	got := rg.rows[0]
	if got.DailyLimit == nil || *got.DailyLimit != 6 || got.PossessionLimit == nil || *got.PossessionLimit != 12 {
		t.Fatalf("limits = %v/%v", got.DailyLimit, got.PossessionLimit)
	}
	if _, ok := sp.rows["Walleye"]; !ok {
		t.Fatalf("species rows = %v", sp.rows)
	}
}

func TestPopulateIsIdempotent(t *testing.T) {
	svc, _, _, rg := newTestService()
	req := PopulateRequest{
		StateCode:      "MN",
		RegulationYear: 2024,
		Records:        []extraction.Record{walleyeRecord()},
	}

	first := svc.Populate(context.Background(), req)
	second := svc.Populate(context.Background(), req)

	if first.RegulationsCreated != 1 {
		t.Fatalf("first run created = %d", first.RegulationsCreated)
	}
	if second.RegulationsCreated != 0 || second.WaterBodiesCreated != 0 || second.FishSpeciesCreated != 0 {
		t.Fatalf("second run created wb=%d sp=%d reg=%d, want all zero",
			second.WaterBodiesCreated, second.FishSpeciesCreated, second.RegulationsCreated)
	}
	if second.RegulationsUpdated != 1 {
		t.Fatalf("second run updated = %d, want 1", second.RegulationsUpdated)
	}
	if len(rg.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rg.rows))
	}
}

func TestPopulateWarningStillPersists(t *testing.T) {
	svc, _, _, rg := newTestService()
	rec := walleyeRecord()
	rec.Fields.DailyLimit = intp(6)
	rec.Fields.PossessionLimit = intp(3) // daily exceeds possession

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode: "MN", RegulationYear: 2024,
		Records: []extraction.Record{rec},
	})

	if !res.IsSuccess {
		t.Fatalf("warnings must not fail the batch: %v", res.ProcessingErrors)
	}
	if len(res.ProcessingWarnings) == 0 {
		t.Fatal("expected a warning for daily > possession")
	}
	if len(rg.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rg.rows))
	}
	if !rg.rows[0].NeedsReview {
		t.Fatal("flagged record should be marked for review")
	}
}

func TestPopulateMissingSpeciesIsError(t *testing.T) {
	svc, _, _, rg := newTestService()
	rec := walleyeRecord()
	rec.Fields.Species = ""

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode: "MN", RegulationYear: 2024,
		Records: []extraction.Record{rec},
	})

	if res.IsSuccess {
		t.Fatal("missing species must fail the batch")
	}
	if len(res.ProcessingErrors) != 1 {
		t.Fatalf("errors = %v", res.ProcessingErrors)
	}
	if res.ErrorMessage == "" {
		t.Fatal("expected a non-empty error message")
	}
	if len(rg.rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rg.rows))
	}
}

func TestPopulateContinuesPastEntryError(t *testing.T) {
	svc, _, _, rg := newTestService()
	bad := walleyeRecord()
	bad.Entry.Name = "Broken Lake"
	bad.Fields.Species = ""
	good := walleyeRecord()

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode: "MN", RegulationYear: 2024,
		Records: []extraction.Record{bad, good},
	})

	if res.IsSuccess {
		t.Fatal("batch with an entry error must not report success")
	}
	if res.RegulationsCreated != 1 || len(rg.rows) != 1 {
		t.Fatalf("created = %d rows = %d, want good entry persisted", res.RegulationsCreated, len(rg.rows))
	}
	if res.TotalLakesProcessed != 2 {
		t.Fatalf("lakes = %d, want 2", res.TotalLakesProcessed)
	}
}

func TestPopulateBackfillsCounty(t *testing.T) {
	svc, wb, _, _ := newTestService()
	if _, err := wb.Create(context.Background(), "Test Lake Alpha", "lake", "MN", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode: "MN", RegulationYear: 2024,
		Records: []extraction.Record{walleyeRecord()},
	})

	if res.WaterBodiesCreated != 0 || res.WaterBodiesUpdated != 1 {
		t.Fatalf("wb created=%d updated=%d", res.WaterBodiesCreated, res.WaterBodiesUpdated)
	}
	row := wb.rows[wb.key("Test Lake Alpha", "MN")]
	if row.County == nil || *row.County != "Mock" {
		t.Fatalf("county = %v, want Mock", row.County)
	}
}

func TestPopulateCanonicalizesSpecies(t *testing.T) {
	svc, _, sp, _ := newTestService()
	rec := walleyeRecord()
	rec.Fields.Species = "northern" // synonym

	res := svc.Populate(context.Background(), PopulateRequest{
		StateCode: "MN", RegulationYear: 2024,
		Records: []extraction.Record{rec},
	})

	if !res.IsSuccess {
		t.Fatalf("errors = %v", res.ProcessingErrors)
	}
	if _, ok := sp.rows["Northern Pike"]; !ok {
		t.Fatalf("species rows = %v, want canonical Northern Pike", sp.rows)
	}
}
