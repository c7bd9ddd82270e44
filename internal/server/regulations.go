package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	regspb "github.com/fisheries-data/regs-tracker/gen/proto/regs/v1"
	"github.com/fisheries-data/regs-tracker/internal/common"
	"github.com/fisheries-data/regs-tracker/internal/export"
	"github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/utils"
)

type RegulationsService struct {
	regspb.UnimplementedRegulationsServiceServer
	waterBodies repository.WaterBodyRepository
	species     repository.SpeciesRepository
	regulations repository.RegulationRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewRegulationsService(
	waterBodies repository.WaterBodyRepository,
	species repository.SpeciesRepository,
	regulations repository.RegulationRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *RegulationsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegulationsService{
		waterBodies: waterBodies,
		species:     species,
		regulations: regulations,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *RegulationsService) ListWaterBodies(ctx context.Context, req *regspb.ListWaterBodiesRequest) (*regspb.ListWaterBodiesResponse, error) {
	state := strings.TrimSpace(req.GetStateCode())
	v := common.NewValidator().
		Field("state_code", state, common.Required, common.StateCode)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	if q := strings.TrimSpace(req.GetQuery()); q != "" {
		found, err := s.waterBodies.SearchByName(ctx, q, state)
		if err != nil {
			s.logger.Error("water body search failed", "state", state, "query", q, "error", err)
			return nil, common.InternalErrorf("search water bodies: %v", err)
		}
		out := make([]*regspb.WaterBody, 0, len(found))
		for _, wb := range found {
			out = append(out, utils.ToPBWaterBody(wb))
		}
		return &regspb.ListWaterBodiesResponse{WaterBodies: out}, nil
	}

	found, err := s.waterBodies.ListByState(ctx, state)
	if err != nil {
		s.logger.Error("water body list failed", "state", state, "error", err)
		return nil, common.InternalErrorf("list water bodies: %v", err)
	}
	out := make([]*regspb.WaterBody, 0, len(found))
	for _, wb := range found {
		out = append(out, utils.ToPBWaterBody(wb))
	}
	return &regspb.ListWaterBodiesResponse{WaterBodies: out}, nil
}

func (s *RegulationsService) ListRegulations(ctx context.Context, req *regspb.ListRegulationsRequest) (*regspb.ListRegulationsResponse, error) {
	wbID, err := uuid.Parse(strings.TrimSpace(req.GetWaterBodyId()))
	if err != nil {
		return nil, common.InvalidArgumentError("water_body_id must be a UUID")
	}

	regs, err := s.regulations.ListByWaterBody(ctx, wbID, int(req.GetYear()))
	if err != nil {
		s.logger.Error("regulation list failed", "water_body_id", wbID, "error", err)
		return nil, common.InternalErrorf("list regulations: %v", err)
	}

	names := make(map[uuid.UUID]string)
	out := make([]*regspb.Regulation, 0, len(regs))
	for _, reg := range regs {
		name, ok := names[reg.SpeciesID]
		if !ok {
			if sp, err := s.species.GetByID(ctx, reg.SpeciesID); err == nil {
				name = sp.CommonName
			}
			names[reg.SpeciesID] = name
		}
		out = append(out, utils.ToPBRegulation(reg, name))
	}
	return &regspb.ListRegulationsResponse{Regulations: out}, nil
}

func (s *RegulationsService) ExportRegulations(ctx context.Context, req *regspb.ExportRegulationsRequest) (*regspb.ExportRegulationsResponse, error) {
	state := strings.TrimSpace(req.GetStateCode())
	v := common.NewValidator().
		Field("state_code", state, common.Required, common.StateCode)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportRegulationsXLSX(ctx, state, int(req.GetYear()))
	if err != nil {
		s.logger.Error("regulation export failed", "state", state, "error", err)
		return nil, common.InternalErrorf("export regulations: %v", err)
	}
	return &regspb.ExportRegulationsResponse{Xlsx: xlsx}, nil
}
