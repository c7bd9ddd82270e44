package llm

import "context"

// RegulationFields is the normalized shape we want from the LLM for one
// water-body entry.
type RegulationFields struct {
	Species         string  `json:"species"`
	RegulationType  string  `json:"regulation_type"`
	DailyLimit      *int    `json:"daily_limit,omitempty"`
	PossessionLimit *int    `json:"possession_limit,omitempty"`
	MinimumSize     string  `json:"minimum_size,omitempty"`   // free text, e.g. "15 inches"
	MaximumSize     string  `json:"maximum_size,omitempty"`   // free text
	ProtectedSlot   string  `json:"protected_slot,omitempty"` // e.g. "28-36 inches (1 fish allowed)"
	Season          string  `json:"season,omitempty"`         // e.g. "May 15 - Feb 28" or "year-round"
	CatchAndRelease bool    `json:"catch_and_release,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	ModelConfidence float32 `json:"confidence,omitempty"` // optional (0..1)
}

type ExtractRequest struct {
	WaterBodyName  string
	County         string
	StateCode      string
	RegulationYear int
	EntryText      string
}

// FieldExtractor is the interface the extraction orchestrator depends on.
type FieldExtractor interface {
	ExtractRegulation(ctx context.Context, req ExtractRequest) (RegulationFields, []byte /*rawJSON*/, error)
}
