package population

import "time"

// BatchResult reports one population run over a document's extracted records.
// Warnings flag records persisted with caveats; errors mark records (or the
// whole batch) that could not be persisted.
type BatchResult struct {
	IsSuccess                 bool          `json:"is_success"`
	TotalLakesProcessed       int           `json:"total_lakes_processed"`
	TotalRegulationsExtracted int           `json:"total_regulations_extracted"`
	WaterBodiesCreated        int           `json:"water_bodies_created"`
	WaterBodiesUpdated        int           `json:"water_bodies_updated"`
	RegulationsCreated        int           `json:"regulations_created"`
	RegulationsUpdated        int           `json:"regulations_updated"`
	FishSpeciesCreated        int           `json:"fish_species_created"`
	ProcessingWarnings        []string      `json:"processing_warnings"`
	ProcessingErrors          []string      `json:"processing_errors"`
	ProcessingTime            time.Duration `json:"processing_time"`
	ErrorMessage              string        `json:"error_message,omitempty"`
}

func (r *BatchResult) warn(msg string) {
	r.ProcessingWarnings = append(r.ProcessingWarnings, msg)
}

func (r *BatchResult) fail(msg string) {
	r.ProcessingErrors = append(r.ProcessingErrors, msg)
}
