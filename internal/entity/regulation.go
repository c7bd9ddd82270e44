package entity

import (
	"time"

	"github.com/google/uuid"
)

// FishingRegulation is one (water body, species, year) regulation row.
type FishingRegulation struct {
	ID                      uuid.UUID  `json:"id"`
	WaterBodyID             uuid.UUID  `json:"water_body_id"`
	SpeciesID               uuid.UUID  `json:"species_id"`
	DocumentID              *uuid.UUID `json:"document_id,omitempty"`
	RegulationYear          int        `json:"regulation_year"`
	RegulationType          string     `json:"regulation_type"`
	EffectiveDate           *time.Time `json:"effective_date,omitempty"`
	ExpirationDate          *time.Time `json:"expiration_date,omitempty"`
	DailyLimit              *int       `json:"daily_limit,omitempty"`
	PossessionLimit         *int       `json:"possession_limit,omitempty"`
	MinimumSize             *float64   `json:"minimum_size,omitempty"`
	MaximumSize             *float64   `json:"maximum_size,omitempty"`
	ProtectedSlotMin        *float64   `json:"protected_slot_min,omitempty"`
	ProtectedSlotMax        *float64   `json:"protected_slot_max,omitempty"`
	ProtectedSlotExceptions int        `json:"protected_slot_exceptions"`
	SeasonOpen              *string    `json:"season_open,omitempty"`
	SeasonClose             *string    `json:"season_close,omitempty"`
	YearRound               bool       `json:"year_round"`
	CatchAndRelease         bool       `json:"catch_and_release"`
	SpecialNotes            *string    `json:"special_notes,omitempty"`
	IsActive                bool       `json:"is_active"`
	NeedsReview             bool       `json:"needs_review"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}
