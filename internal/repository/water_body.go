package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type WaterBodyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WaterBody, error)
	// FindByName resolves by (normalized name, state); returns ent.NotFoundError when absent.
	FindByName(ctx context.Context, name, stateCode string) (*entity.WaterBody, error)
	SearchByName(ctx context.Context, query, stateCode string) ([]*entity.WaterBody, error)
	ListByState(ctx context.Context, stateCode string) ([]*entity.WaterBody, error)
	Create(ctx context.Context, name, waterBodyType, stateCode string, county *string) (*entity.WaterBody, error)
	UpdateCounty(ctx context.Context, id uuid.UUID, county string) error
	CountByState(ctx context.Context, stateCode string) (int, error)
}

type waterBodyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWaterBodyRepository(client *ent.Client, logger *slog.Logger) WaterBodyRepository {
	return &waterBodyRepository{client: client, logger: logger}
}

func (r *waterBodyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WaterBody, error) {
	wb, err := r.client.WaterBody.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToWaterBody(wb), nil
}

func (r *waterBodyRepository) FindByName(ctx context.Context, name, stateCode string) (*entity.WaterBody, error) {
	wb, err := r.client.WaterBody.Query().
		Where(
			waterbody.NormalizedName(utils.NormalizeName(name)),
			waterbody.StateCode(stateCode),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToWaterBody(wb), nil
}

func (r *waterBodyRepository) SearchByName(ctx context.Context, query, stateCode string) ([]*entity.WaterBody, error) {
	q := r.client.WaterBody.Query().
		Where(waterbody.NormalizedNameContains(utils.NormalizeName(query))).
		Order(waterbody.ByName())
	if stateCode != "" {
		q = q.Where(waterbody.StateCode(stateCode))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.WaterBody, len(rows))
	for i, wb := range rows {
		result[i] = utils.ToWaterBody(wb)
	}
	return result, nil
}

func (r *waterBodyRepository) ListByState(ctx context.Context, stateCode string) ([]*entity.WaterBody, error) {
	rows, err := r.client.WaterBody.Query().
		Where(waterbody.StateCode(stateCode), waterbody.IsActive(true)).
		Order(waterbody.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.WaterBody, len(rows))
	for i, wb := range rows {
		result[i] = utils.ToWaterBody(wb)
	}
	return result, nil
}

func (r *waterBodyRepository) Create(ctx context.Context, name, waterBodyType, stateCode string, county *string) (*entity.WaterBody, error) {
	if waterBodyType == "" {
		waterBodyType = constants.DefaultWaterBodyType
	}
	builder := r.client.WaterBody.Create().
		SetName(name).
		SetNormalizedName(utils.NormalizeName(name)).
		SetWaterBodyType(waterBodyType).
		SetStateCode(stateCode).
		SetNillableCounty(county)

	wb, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("water body create failed", "name", name, "state", stateCode, "error", err)
		return nil, err
	}
	return utils.ToWaterBody(wb), nil
}

func (r *waterBodyRepository) UpdateCounty(ctx context.Context, id uuid.UUID, county string) error {
	_, err := r.client.WaterBody.UpdateOneID(id).SetCounty(county).Save(ctx)
	return err
}

func (r *waterBodyRepository) CountByState(ctx context.Context, stateCode string) (int, error) {
	return r.client.WaterBody.Query().
		Where(waterbody.StateCode(stateCode), waterbody.IsActive(true)).
		Count(ctx)
}
