package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fisheries-data/regs-tracker/internal/entity"
	"github.com/fisheries-data/regs-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	waterBodies repository.WaterBodyRepository
	species     repository.SpeciesRepository
	regulations repository.RegulationRepository
	logger      *slog.Logger
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
		logger:      logger,
	}
}

// ExportRegulationsXLSX returns an XLSX workbook (as bytes) listing every
// active regulation for the given state. Year 0 means all years.
func (s *Service) ExportRegulationsXLSX(ctx context.Context, stateCode string, year int) ([]byte, error) {
	start := time.Now()

	lakes, err := s.waterBodies.ListByState(ctx, stateCode)
	if err != nil {
		return nil, fmt.Errorf("query water bodies: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Regulations"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Water Body",
		"County",
		"Species",
		"Year",
		"Type",
		"Daily Limit",
		"Possession Limit",
		"Min Size (in)",
		"Max Size (in)",
		"Protected Slot",
		"Season",
		"Catch & Release",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	speciesNames := make(map[uuid.UUID]string)
	row := 2
	total := 0
	for _, lake := range lakes {
		regs, err := s.regulations.ListByWaterBody(ctx, lake.ID, year)
		if err != nil {
			return nil, fmt.Errorf("query regulations for %s: %w", lake.Name, err)
		}
		for _, reg := range regs {
			name, ok := speciesNames[reg.SpeciesID]
			if !ok {
				sp, err := s.species.GetByID(ctx, reg.SpeciesID)
				if err == nil {
					name = sp.CommonName
				}
				speciesNames[reg.SpeciesID] = name
			}

			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, lake.Name)
			if lake.County != nil {
				write(2, *lake.County)
			}
			write(3, name)
			write(4, reg.RegulationYear)
			write(5, reg.RegulationType)
			if reg.DailyLimit != nil {
				write(6, *reg.DailyLimit)
			}
			if reg.PossessionLimit != nil {
				write(7, *reg.PossessionLimit)
			}
			if reg.MinimumSize != nil {
				write(8, *reg.MinimumSize)
			}
			if reg.MaximumSize != nil {
				write(9, *reg.MaximumSize)
			}
			write(10, slotText(reg))
			write(11, seasonText(reg))
			if reg.CatchAndRelease {
				write(12, "yes")
			}
			if reg.SpecialNotes != nil {
				write(13, truncate(*reg.SpecialNotes, 140))
			}

			row++
			total++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // water body
	_ = f.SetColWidth(sheet, "B", "C", 18) // county, species
	_ = f.SetColWidth(sheet, "D", "G", 12) // year, type, limits
	_ = f.SetColWidth(sheet, "H", "K", 16) // sizes, slot, season
	_ = f.SetColWidth(sheet, "M", "M", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"state", stateCode,
		"year", year,
		"rows", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func slotText(reg *entity.FishingRegulation) string {
	if reg.ProtectedSlotMin == nil || reg.ProtectedSlotMax == nil {
		return ""
	}
	s := fmt.Sprintf("%.0f-%.0f in", *reg.ProtectedSlotMin, *reg.ProtectedSlotMax)
	if reg.ProtectedSlotExceptions > 0 {
		s += fmt.Sprintf(" (%d allowed)", reg.ProtectedSlotExceptions)
	}
	return s
}

func seasonText(reg *entity.FishingRegulation) string {
	if reg.YearRound {
		return "year-round"
	}
	var open, closed string
	if reg.SeasonOpen != nil {
		open = *reg.SeasonOpen
	}
	if reg.SeasonClose != nil {
		closed = *reg.SeasonClose
	}
	if open == "" && closed == "" {
		return ""
	}
	return open + " - " + closed
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
