// Package population persists extracted regulation records through the
// repository layer, resolving or creating reference rows so that re-running
// the same input never duplicates data.
package population

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/extraction"
	"github.com/fisheries-data/regs-tracker/internal/repository"
	"github.com/fisheries-data/regs-tracker/internal/validate"
)

// PopulateRequest carries one document's extracted records plus the context
// every row shares.
type PopulateRequest struct {
	StateCode      string
	RegulationYear int
	DocumentID     *uuid.UUID
	Records        []extraction.Record
}

type Service struct {
	waterBodies repository.WaterBodyRepository
	species     repository.SpeciesRepository
	regulations repository.RegulationRepository
	log         *slog.Logger
}

func NewService(
	waterBodies repository.WaterBodyRepository,
	species repository.SpeciesRepository,
	regulations repository.RegulationRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		waterBodies: waterBodies,
		species:     species,
		regulations: regulations,
		log:         logger,
	}
}

// Populate upserts every record. Entry failures are recorded and the batch
// continues; prior successful entries are never rolled back. IsSuccess is
// false only when at least one entry-level error occurred.
func (s *Service) Populate(ctx context.Context, req PopulateRequest) *BatchResult {
	start := time.Now()
	res := &BatchResult{}
	seenLakes := make(map[string]struct{})

	s.log.Info("population.batch.start",
		"state", req.StateCode,
		"year", req.RegulationYear,
		"records", len(req.Records),
	)

	for _, rec := range req.Records {
		entryName := rec.Entry.Name
		lakeKey := entryName + "|" + rec.Entry.County
		if _, ok := seenLakes[lakeKey]; !ok {
			seenLakes[lakeKey] = struct{}{}
			res.TotalLakesProcessed++
		}

		clean, errs, warns := validate.ValidateRegulation(rec.Fields)
		for _, w := range warns {
			res.warn(fmt.Sprintf("%s: %s", entryName, w))
		}
		if len(errs) > 0 {
			for _, e := range errs {
				res.fail(fmt.Sprintf("%s: %s", entryName, e))
			}
			continue
		}
		res.TotalRegulationsExtracted++

		wb, err := s.resolveWaterBody(ctx, rec.Entry.Name, rec.Entry.County, req.StateCode, res)
		if err != nil {
			res.fail(fmt.Sprintf("%s: water body: %v", entryName, err))
			continue
		}

		sp, err := s.resolveSpecies(ctx, clean.SpeciesName, res)
		if err != nil {
			res.fail(fmt.Sprintf("%s: species %q: %v", entryName, clean.SpeciesName, err))
			continue
		}

		row := buildRegulation(clean, wb.ID, sp.ID, req.DocumentID, req.RegulationYear, len(warns) > 0)
		if err := s.upsertRegulation(ctx, row, res); err != nil {
			res.fail(fmt.Sprintf("%s: regulation: %v", entryName, err))
			continue
		}
	}

	res.ProcessingTime = time.Since(start)
	res.IsSuccess = len(res.ProcessingErrors) == 0
	if !res.IsSuccess {
		res.ErrorMessage = fmt.Sprintf("%d of %d records failed", len(res.ProcessingErrors), len(req.Records))
	}

	s.log.Info("population.batch.ok",
		"lakes", res.TotalLakesProcessed,
		"regulations", res.TotalRegulationsExtracted,
		"reg_created", res.RegulationsCreated,
		"reg_updated", res.RegulationsUpdated,
		"wb_created", res.WaterBodiesCreated,
		"species_created", res.FishSpeciesCreated,
		"warnings", len(res.ProcessingWarnings),
		"errors", len(res.ProcessingErrors),
		"elapsed_ms", res.ProcessingTime.Milliseconds(),
	)
	return res
}

func (s *Service) resolveWaterBody(ctx context.Context, name, county, stateCode string, res *BatchResult) (*entity.WaterBody, error) {
	wb, err := s.waterBodies.FindByName(ctx, name, stateCode)
	switch {
	case err == nil:
		// backfill county when the existing row has none
		if county != "" && (wb.County == nil || *wb.County == "") {
			if uErr := s.waterBodies.UpdateCounty(ctx, wb.ID, county); uErr != nil {
				return nil, uErr
			}
			wb.County = &county
			res.WaterBodiesUpdated++
		}
		return wb, nil
	case ent.IsNotFound(err):
		var countyPtr *string
		if county != "" {
			countyPtr = &county
		}
		created, cErr := s.waterBodies.Create(ctx, name, "", stateCode, countyPtr)
		if cErr != nil {
			return nil, cErr
		}
		res.WaterBodiesCreated++
		return created, nil
	default:
		return nil, err
	}
}

func (s *Service) resolveSpecies(ctx context.Context, commonName string, res *BatchResult) (*entity.FishSpecies, error) {
	sp, err := s.species.FindByCommonName(ctx, commonName)
	switch {
	case err == nil:
		return sp, nil
	case ent.IsNotFound(err):
		created, cErr := s.species.Create(ctx, commonName)
		if cErr != nil {
			return nil, cErr
		}
		res.FishSpeciesCreated++
		return created, nil
	default:
		return nil, err
	}
}

func (s *Service) upsertRegulation(ctx context.Context, row *entity.FishingRegulation, res *BatchResult) error {
	existing, err := s.regulations.FindActive(ctx, row.WaterBodyID, row.SpeciesID, row.RegulationYear)
	switch {
	case err == nil:
		if _, uErr := s.regulations.Update(ctx, existing.ID, row); uErr != nil {
			return uErr
		}
		res.RegulationsUpdated++
		return nil
	case ent.IsNotFound(err):
		if _, cErr := s.regulations.Create(ctx, row); cErr != nil {
			return cErr
		}
		res.RegulationsCreated++
		return nil
	default:
		return err
	}
}

func buildRegulation(clean validate.CleanRegulation, waterBodyID, speciesID uuid.UUID, documentID *uuid.UUID, year int, needsReview bool) *entity.FishingRegulation {
	var notes *string
	if clean.Notes != "" {
		n := clean.Notes
		notes = &n
	}
	return &entity.FishingRegulation{
		WaterBodyID:             waterBodyID,
		SpeciesID:               speciesID,
		DocumentID:              documentID,
		RegulationYear:          year,
		RegulationType:          clean.RegulationType,
		DailyLimit:              clean.DailyLimit,
		PossessionLimit:         clean.PossessionLimit,
		MinimumSize:             clean.MinimumSize,
		MaximumSize:             clean.MaximumSize,
		ProtectedSlotMin:        clean.ProtectedSlotMin,
		ProtectedSlotMax:        clean.ProtectedSlotMax,
		ProtectedSlotExceptions: clean.ProtectedSlotExceptions,
		SeasonOpen:              clean.SeasonOpen,
		SeasonClose:             clean.SeasonClose,
		YearRound:               clean.YearRound,
		CatchAndRelease:         clean.CatchAndRelease,
		SpecialNotes:            notes,
		IsActive:                true,
		NeedsReview:             needsReview,
	}
}
