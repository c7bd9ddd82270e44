package llm

import (
	"fmt"
	"strings"

	"github.com/fisheries-data/regs-tracker/constants"
)

// BuildSystemPrompt composes the fixed system instruction: the output schema,
// species canonicalization hints and strict-but-practical formatting rules.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a fishing regulations parser. Return ONLY JSON that matches the provided JSON Schema.",
		"The input is the special-regulation text for one water body.",
		"Set 'species' to the single species the regulation primarily restricts, using its common name.",
		"Known species: " + strings.Join(constants.SpeciesNames(), ", ") + ".",
		"Set 'regulation_type' to exactly one of: " + strings.Join(constants.RegulationTypes, ", ") + ". " +
			"Use 'combined' when the entry mixes limits, sizes and seasons.",
		"Limits are whole fish counts. Never guess a number that is not in the text.",
		"Keep 'minimum_size', 'maximum_size' and 'protected_slot' as the original phrasing, e.g. '28-36 inches (1 fish allowed)'.",
		"Use 'season' for open/close dates as written, or 'year-round' when the text says so.",
		"Set 'catch_and_release' true only when all harvest of the species is prohibited.",
		"Put anything that fits no other field into 'notes', concise and verbatim where possible.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages one entry with its geographic context.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Water body: %s\n", req.WaterBodyName)
	if req.County != "" {
		fmt.Fprintf(&b, "County: %s\n", req.County)
	}
	if req.StateCode != "" {
		fmt.Fprintf(&b, "State: %s\n", req.StateCode)
	}
	if req.RegulationYear > 0 {
		fmt.Fprintf(&b, "Regulation year: %d\n", req.RegulationYear)
	}
	b.WriteString("\nRegulation text:\n")
	b.WriteString(strings.TrimSpace(req.EntryText))
	return b.String()
}
