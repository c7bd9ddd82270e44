package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type RegulationRepository interface {
	// FindActive returns the active regulation for (water body, species, year),
	// or ent.NotFoundError when none exists.
	FindActive(ctx context.Context, waterBodyID, speciesID uuid.UUID, year int) (*entity.FishingRegulation, error)
	Create(ctx context.Context, rec *entity.FishingRegulation) (*entity.FishingRegulation, error)
	// Update overwrites the mutable fields of an existing row in place.
	Update(ctx context.Context, id uuid.UUID, rec *entity.FishingRegulation) (*entity.FishingRegulation, error)
	ListByWaterBody(ctx context.Context, waterBodyID uuid.UUID, year int) ([]*entity.FishingRegulation, error)
	CountByYear(ctx context.Context, year int) (int, error)
}

type regulationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRegulationRepository(client *ent.Client, logger *slog.Logger) RegulationRepository {
	return &regulationRepository{client: client, logger: logger}
}

func (r *regulationRepository) FindActive(ctx context.Context, waterBodyID, speciesID uuid.UUID, year int) (*entity.FishingRegulation, error) {
	reg, err := r.client.FishingRegulation.Query().
		Where(
			fishingregulation.WaterBodyID(waterBodyID),
			fishingregulation.SpeciesID(speciesID),
			fishingregulation.RegulationYear(year),
			fishingregulation.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToRegulation(reg), nil
}

func (r *regulationRepository) Create(ctx context.Context, rec *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	builder := r.client.FishingRegulation.Create().
		SetWaterBodyID(rec.WaterBodyID).
		SetSpeciesID(rec.SpeciesID).
		SetNillableDocumentID(rec.DocumentID).
		SetRegulationYear(rec.RegulationYear).
		SetRegulationType(rec.RegulationType).
		SetNillableEffectiveDate(rec.EffectiveDate).
		SetNillableExpirationDate(rec.ExpirationDate).
		SetNillableDailyLimit(rec.DailyLimit).
		SetNillablePossessionLimit(rec.PossessionLimit).
		SetNillableMinimumSize(rec.MinimumSize).
		SetNillableMaximumSize(rec.MaximumSize).
		SetNillableProtectedSlotMin(rec.ProtectedSlotMin).
		SetNillableProtectedSlotMax(rec.ProtectedSlotMax).
		SetProtectedSlotExceptions(rec.ProtectedSlotExceptions).
		SetNillableSeasonOpen(rec.SeasonOpen).
		SetNillableSeasonClose(rec.SeasonClose).
		SetYearRound(rec.YearRound).
		SetCatchAndRelease(rec.CatchAndRelease).
		SetNillableSpecialNotes(rec.SpecialNotes).
		SetNeedsReview(rec.NeedsReview)

	saved, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("regulation create failed",
			"water_body_id", rec.WaterBodyID, "species_id", rec.SpeciesID,
			"year", rec.RegulationYear, "error", err)
		return nil, err
	}
	return utils.ToRegulation(saved), nil
}

func (r *regulationRepository) Update(ctx context.Context, id uuid.UUID, rec *entity.FishingRegulation) (*entity.FishingRegulation, error) {
	builder := r.client.FishingRegulation.UpdateOneID(id).
		SetRegulationType(rec.RegulationType).
		SetNillableDocumentID(rec.DocumentID).
		SetNillableEffectiveDate(rec.EffectiveDate).
		SetNillableExpirationDate(rec.ExpirationDate).
		SetNillableDailyLimit(rec.DailyLimit).
		SetNillablePossessionLimit(rec.PossessionLimit).
		SetNillableMinimumSize(rec.MinimumSize).
		SetNillableMaximumSize(rec.MaximumSize).
		SetNillableProtectedSlotMin(rec.ProtectedSlotMin).
		SetNillableProtectedSlotMax(rec.ProtectedSlotMax).
		SetProtectedSlotExceptions(rec.ProtectedSlotExceptions).
		SetNillableSeasonOpen(rec.SeasonOpen).
		SetNillableSeasonClose(rec.SeasonClose).
		SetYearRound(rec.YearRound).
		SetCatchAndRelease(rec.CatchAndRelease).
		SetNillableSpecialNotes(rec.SpecialNotes).
		SetNeedsReview(rec.NeedsReview)

	saved, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("regulation update failed", "regulation_id", id, "error", err)
		return nil, err
	}
	return utils.ToRegulation(saved), nil
}

func (r *regulationRepository) ListByWaterBody(ctx context.Context, waterBodyID uuid.UUID, year int) ([]*entity.FishingRegulation, error) {
	q := r.client.FishingRegulation.Query().
		Where(
			fishingregulation.WaterBodyID(waterBodyID),
			fishingregulation.IsActive(true),
		)
	if year > 0 {
		q = q.Where(fishingregulation.RegulationYear(year))
	}
	rows, err := q.Order(fishingregulation.ByRegulationYear()).All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.FishingRegulation, len(rows))
	for i, reg := range rows {
		result[i] = utils.ToRegulation(reg)
	}
	return result, nil
}

func (r *regulationRepository) CountByYear(ctx context.Context, year int) (int, error) {
	return r.client.FishingRegulation.Query().
		Where(
			fishingregulation.RegulationYear(year),
			fishingregulation.IsActive(true),
		).
		Count(ctx)
}
