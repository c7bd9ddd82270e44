package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaterBody represents a regulated lake, river or stream.
type WaterBody struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	WaterBodyType  string    `json:"water_body_type"`
	StateCode      string    `json:"state_code"`
	County         *string   `json:"county,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FishSpecies represents a canonical species record.
type FishSpecies struct {
	ID             uuid.UUID `json:"id"`
	CommonName     string    `json:"common_name"`
	ScientificName *string   `json:"scientific_name,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
