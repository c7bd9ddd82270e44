package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/fisheries-data/regs-tracker/gen/ent"
	"github.com/fisheries-data/regs-tracker/internal/entity"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeName lowercases and collapses whitespace; this is the form the
// water_bodies unique index is built on.
func NormalizeName(name string) string {
	return reSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// ParseYMD parses a YYYY-MM-DD string at midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToDocument(e *ent.RegulationDocument) *entity.RegulationDocument {
	return &entity.RegulationDocument{
		ID:               e.ID,
		Filename:         e.Filename,
		DocumentType:     e.DocumentType,
		FileSize:         e.FileSize,
		ProcessingStatus: e.ProcessingStatus,
		StateCode:        e.StateCode,
		RegulationYear:   e.RegulationYear,
		ExtractionError:  e.ExtractionError,
		StorageURL:       e.StorageURL,
		UploadedAt:       e.UploadedAt,
		ProcessedAt:      e.ProcessedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToWaterBody(e *ent.WaterBody) *entity.WaterBody {
	return &entity.WaterBody{
		ID:             e.ID,
		Name:           e.Name,
		NormalizedName: e.NormalizedName,
		WaterBodyType:  e.WaterBodyType,
		StateCode:      e.StateCode,
		County:         e.County,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToFishSpecies(e *ent.FishSpecies) *entity.FishSpecies {
	return &entity.FishSpecies{
		ID:             e.ID,
		CommonName:     e.CommonName,
		ScientificName: e.ScientificName,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
	}
}

func ToRegulation(e *ent.FishingRegulation) *entity.FishingRegulation {
	return &entity.FishingRegulation{
		ID:                      e.ID,
		WaterBodyID:             e.WaterBodyID,
		SpeciesID:               e.SpeciesID,
		DocumentID:              e.DocumentID,
		RegulationYear:          e.RegulationYear,
		RegulationType:          e.RegulationType,
		EffectiveDate:           e.EffectiveDate,
		ExpirationDate:          e.ExpirationDate,
		DailyLimit:              e.DailyLimit,
		PossessionLimit:         e.PossessionLimit,
		MinimumSize:             e.MinimumSize,
		MaximumSize:             e.MaximumSize,
		ProtectedSlotMin:        e.ProtectedSlotMin,
		ProtectedSlotMax:        e.ProtectedSlotMax,
		ProtectedSlotExceptions: e.ProtectedSlotExceptions,
		SeasonOpen:              e.SeasonOpen,
		SeasonClose:             e.SeasonClose,
		YearRound:               e.YearRound,
		CatchAndRelease:         e.CatchAndRelease,
		SpecialNotes:            e.SpecialNotes,
		IsActive:                e.IsActive,
		NeedsReview:             e.NeedsReview,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}
