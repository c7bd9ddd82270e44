package llm

import "github.com/fisheries-data/regs-tracker/constants"

// BuildRegulationJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the completion service as a structured output
// constraint and also use it locally to validate the response.
func BuildRegulationJSONSchema() map[string]any {
	props := map[string]any{
		"species": map[string]any{"type": "string", "minLength": 1},
		"regulation_type": map[string]any{
			"type": "string",
			"enum": constants.RegulationTypes,
		},
		"daily_limit":       map[string]any{"type": "integer", "minimum": 0},
		"possession_limit":  map[string]any{"type": "integer", "minimum": 0},
		"minimum_size":      map[string]any{"type": "string"},
		"maximum_size":      map[string]any{"type": "string"},
		"protected_slot":    map[string]any{"type": "string"},
		"season":            map[string]any{"type": "string"},
		"catch_and_release": map[string]any{"type": "boolean"},
		"notes":             map[string]any{"type": "string"},
		"confidence":        map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"species", "regulation_type"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
