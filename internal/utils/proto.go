package utils

import (
	"time"

	regspb "github.com/fisheries-data/regs-tracker/gen/proto/regs/v1"
	"github.com/fisheries-data/regs-tracker/internal/entity"
)

// ToPBDocument converts an entity document to its wire representation.
func ToPBDocument(d *entity.RegulationDocument) *regspb.Document {
	out := &regspb.Document{
		Id:               d.ID.String(),
		Filename:         d.Filename,
		DocumentType:     d.DocumentType,
		ProcessingStatus: d.ProcessingStatus,
		StateCode:        d.StateCode,
		RegulationYear:   int32(d.RegulationYear),
		UploadedAt:       d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.ExtractionError != nil {
		out.ExtractionError = *d.ExtractionError
	}
	if d.StorageURL != nil {
		out.StorageUrl = *d.StorageURL
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ToPBWaterBody(wb *entity.WaterBody) *regspb.WaterBody {
	out := &regspb.WaterBody{
		Id:            wb.ID.String(),
		Name:          wb.Name,
		WaterBodyType: wb.WaterBodyType,
		StateCode:     wb.StateCode,
	}
	if wb.County != nil {
		out.County = *wb.County
	}
	return out
}

func ToPBRegulation(r *entity.FishingRegulation, speciesName string) *regspb.Regulation {
	out := &regspb.Regulation{
		Id:                      r.ID.String(),
		WaterBodyId:             r.WaterBodyID.String(),
		SpeciesId:               r.SpeciesID.String(),
		SpeciesName:             speciesName,
		RegulationYear:          int32(r.RegulationYear),
		RegulationType:          r.RegulationType,
		ProtectedSlotExceptions: int32(r.ProtectedSlotExceptions),
		YearRound:               r.YearRound,
		CatchAndRelease:         r.CatchAndRelease,
		NeedsReview:             r.NeedsReview,
	}
	if r.DailyLimit != nil {
		v := int32(*r.DailyLimit)
		out.DailyLimit = &v
	}
	if r.PossessionLimit != nil {
		v := int32(*r.PossessionLimit)
		out.PossessionLimit = &v
	}
	if r.MinimumSize != nil {
		out.MinimumSize = r.MinimumSize
	}
	if r.MaximumSize != nil {
		out.MaximumSize = r.MaximumSize
	}
	if r.ProtectedSlotMin != nil {
		out.ProtectedSlotMin = r.ProtectedSlotMin
	}
	if r.ProtectedSlotMax != nil {
		out.ProtectedSlotMax = r.ProtectedSlotMax
	}
	if r.SeasonOpen != nil {
		out.SeasonOpen = *r.SeasonOpen
	}
	if r.SeasonClose != nil {
		out.SeasonClose = *r.SeasonClose
	}
	if r.SpecialNotes != nil {
		out.SpecialNotes = *r.SpecialNotes
	}
	return out
}
