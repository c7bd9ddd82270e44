package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegulationDocument represents a source document for data transfer between layers.
type RegulationDocument struct {
	ID               uuid.UUID  `json:"id"`
	Filename         string     `json:"filename"`
	DocumentType     string     `json:"document_type"`
	FileSize         int64      `json:"file_size"`
	ProcessingStatus string     `json:"processing_status"`
	StateCode        string     `json:"state_code"`
	RegulationYear   int        `json:"regulation_year"`
	ExtractionError  *string    `json:"extraction_error,omitempty"`
	StorageURL       *string    `json:"storage_url,omitempty"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
