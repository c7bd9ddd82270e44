package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/entity"
)

type fakeWaterBodies struct {
	lakes []*entity.WaterBody
}

func (f *fakeWaterBodies) GetByID(context.Context, uuid.UUID) (*entity.WaterBody, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) FindByName(context.Context, string, string) (*entity.WaterBody, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeWaterBodies) SearchByName(context.Context, string, string) ([]*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) ListByState(context.Context, string) ([]*entity.WaterBody, error) {
	return f.lakes, nil
}

func (f *fakeWaterBodies) Create(context.Context, string, string, string, *string) (*entity.WaterBody, error) {
	return nil, nil
}

func (f *fakeWaterBodies) UpdateCounty(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeWaterBodies) CountByState(context.Context, string) (int, error) {
	return len(f.lakes), nil
}

type fakeSpecies struct {
	byID map[uuid.UUID]*entity.FishSpecies
}

func (f *fakeSpecies) GetByID(_ context.Context, id uuid.UUID) (*entity.FishSpecies, error) {
	if sp, ok := f.byID[id]; ok {
		return sp, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeSpecies) FindByCommonName(context.Context, string) (*entity.FishSpecies, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeSpecies) Create(context.Context, string) (*entity.FishSpecies, error) {
	return nil, nil
}

func (f *fakeSpecies) List(context.Context) ([]*entity.FishSpecies, error) { return nil, nil }

type fakeRegulations struct {
	byLake map[uuid.UUID][]*entity.FishingRegulation
}

func (f *fakeRegulations) FindActive(context.Context, uuid.UUID, uuid.UUID, int) (*entity.FishingRegulation, error) {
	return nil, &ent.NotFoundError{}
}

func (f *fakeRegulations) Create(context.Context, *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	return nil, nil
}

func (f *fakeRegulations) Update(context.Context, uuid.UUID, *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	return nil, nil
}

func (f *fakeRegulations) ListByWaterBody(_ context.Context, id uuid.UUID, _ int) ([]*entity.FishingRegulation, error) {
	return f.byLake[id], nil
}

func (f *fakeRegulations) CountByYear(context.Context, int) (int, error) { return 0, nil }

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestExportRegulationsXLSX(t *testing.T) {
	lakeID := uuid.New()
	spID := uuid.New()
	county := "Itasca"

	wb := &fakeWaterBodies{lakes: []*entity.WaterBody{{
		ID: lakeID, Name: "Deer Lake", County: &county, StateCode: "MN",
	}}}
	sp := &fakeSpecies{byID: map[uuid.UUID]*entity.FishSpecies{
		spID: {ID: spID, CommonName: "Walleye"},
	}}
	rg := &fakeRegulations{byLake: map[uuid.UUID][]*entity.FishingRegulation{
		lakeID: {{
			ID: uuid.New(), WaterBodyID: lakeID, SpeciesID: spID,
			RegulationYear:          2024,
			RegulationType:          "protected_slot",
			DailyLimit:              ip(4),
			ProtectedSlotMin:        fp(28),
			ProtectedSlotMax:        fp(36),
			ProtectedSlotExceptions: 1,
			YearRound:               true,
			IsActive:                true,
		}},
	}}

	svc := NewService(wb, sp, rg, nil)
	out, err := svc.ExportRegulationsXLSX(context.Background(), "MN", 2024)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		v, _ := f.GetCellValue("Regulations", cell)
		return v
	}
	if get("A1") != "Water Body" {
		t.Fatalf("A1 = %q", get("A1"))
	}
	if get("A2") != "Deer Lake" || get("B2") != "Itasca" || get("C2") != "Walleye" {
		t.Fatalf("row = %q %q %q", get("A2"), get("B2"), get("C2"))
	}
	if get("E2") != "protected_slot" || get("F2") != "4" {
		t.Fatalf("type/limit = %q %q", get("E2"), get("F2"))
	}
	if get("J2") != "28-36 in (1 allowed)" {
		t.Fatalf("slot = %q", get("J2"))
	}
	if get("K2") != "year-round" {
		t.Fatalf("season = %q", get("K2"))
	}
}

func TestExportEmptyState(t *testing.T) {
	svc := NewService(&fakeWaterBodies{}, &fakeSpecies{}, &fakeRegulations{}, nil)
	out, err := svc.ExportRegulationsXLSX(context.Background(), "WI", 0)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty workbook bytes")
	}
}
