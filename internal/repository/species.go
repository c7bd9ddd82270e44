package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type SpeciesRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FishSpecies, error)
	FindByCommonName(ctx context.Context, commonName string) (*entity.FishSpecies, error)
	Create(ctx context.Context, commonName string) (*entity.FishSpecies, error)
	List(ctx context.Context) ([]*entity.FishSpecies, error)
}

type speciesRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSpeciesRepository(client *ent.Client, logger *slog.Logger) SpeciesRepository {
	return &speciesRepository{client: client, logger: logger}
}

func (r *speciesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FishSpecies, error) {
	sp, err := r.client.FishSpecies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToFishSpecies(sp), nil
}

func (r *speciesRepository) FindByCommonName(ctx context.Context, commonName string) (*entity.FishSpecies, error) {
	sp, err := r.client.FishSpecies.Query().
		Where(fishspecies.CommonName(commonName)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToFishSpecies(sp), nil
}

func (r *speciesRepository) Create(ctx context.Context, commonName string) (*entity.FishSpecies, error) {
	sp, err := r.client.FishSpecies.Create().
		SetCommonName(commonName).
		Save(ctx)
	if err != nil {
		r.logger.Error("species create failed", "common_name", commonName, "error", err)
		return nil, err
	}
	r.logger.Info("species created", "common_name", commonName, "species_id", sp.ID)
	return utils.ToFishSpecies(sp), nil
}

func (r *speciesRepository) List(ctx context.Context) ([]*entity.FishSpecies, error) {
	rows, err := r.client.FishSpecies.Query().
		Order(fishspecies.ByCommonName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.FishSpecies, len(rows))
	for i, sp := range rows {
		result[i] = utils.ToFishSpecies(sp)
	}
	return result, nil
}
