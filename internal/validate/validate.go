// Package validate cleans and canonicalizes extracted regulation records.
// Errors block persistence of a record; warnings persist it flagged for
// review.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/internal/llm"
)

// CleanRegulation is a validated, normalized regulation candidate ready for
// the population service.
type CleanRegulation struct {
	SpeciesName             string // canonical common name
	SpeciesKnown            bool   // matched the synonym table or species list
	RegulationType          string
	DailyLimit              *int
	PossessionLimit         *int
	MinimumSize             *float64
	MaximumSize             *float64
	ProtectedSlotMin        *float64
	ProtectedSlotMax        *float64
	ProtectedSlotExceptions int
	SeasonOpen              *string
	SeasonClose             *string
	YearRound               bool
	CatchAndRelease         bool
	Notes                   string
}

var reSeasonSplit = regexp.MustCompile(`\s*(?:-|–|\bto\b|\bthrough\b)\s*`)

// ValidateRegulation normalizes one raw extracted record. The returned
// errors block persistence; warnings flag the record but let it through.
func ValidateRegulation(f llm.RegulationFields) (CleanRegulation, []string, []string) {
	var errs, warns []string
	var clean CleanRegulation

	species := strings.TrimSpace(f.Species)
	if species == "" {
		errs = append(errs, "species name is required")
	} else {
		clean.SpeciesName, clean.SpeciesKnown = constants.CanonicalSpecies(species)
		if !clean.SpeciesKnown {
			warns = append(warns, fmt.Sprintf("unrecognized species %q, using title-cased name", species))
		}
	}

	clean.RegulationType = f.RegulationType
	if clean.RegulationType == "" {
		clean.RegulationType = string(constants.RegTypeCombined)
	}

	clean.DailyLimit = f.DailyLimit
	clean.PossessionLimit = f.PossessionLimit
	if f.DailyLimit != nil && *f.DailyLimit < 0 {
		warns = append(warns, fmt.Sprintf("daily limit %d is negative", *f.DailyLimit))
	}
	if f.PossessionLimit != nil && *f.PossessionLimit < 0 {
		warns = append(warns, fmt.Sprintf("possession limit %d is negative", *f.PossessionLimit))
	}
	if f.DailyLimit != nil && f.PossessionLimit != nil &&
		*f.DailyLimit > 0 && *f.PossessionLimit > 0 &&
		*f.DailyLimit > *f.PossessionLimit {
		warns = append(warns, fmt.Sprintf(
			"daily limit %d exceeds possession limit %d", *f.DailyLimit, *f.PossessionLimit))
	}

	clean.MinimumSize = ParseSizeInches(NormalizeWhitespace(f.MinimumSize))
	clean.MaximumSize = ParseSizeInches(NormalizeWhitespace(f.MaximumSize))
	if clean.MinimumSize != nil && clean.MaximumSize != nil && *clean.MinimumSize > *clean.MaximumSize {
		warns = append(warns, fmt.Sprintf(
			"minimum size %.1f exceeds maximum size %.1f", *clean.MinimumSize, *clean.MaximumSize))
	}

	if slot := NormalizeWhitespace(f.ProtectedSlot); slot != "" {
		clean.ProtectedSlotMin, clean.ProtectedSlotMax, clean.ProtectedSlotExceptions = ParseProtectedSlot(slot)
		if clean.ProtectedSlotMin == nil {
			warns = append(warns, fmt.Sprintf("protected slot %q has no parseable range", slot))
		}
	}

	clean.SeasonOpen, clean.SeasonClose, clean.YearRound = parseSeason(f.Season)
	clean.CatchAndRelease = f.CatchAndRelease
	clean.Notes = NormalizeWhitespace(f.Notes)

	return clean, errs, warns
}

// parseSeason splits "May 15 - Feb 28" style text into open/close strings;
// "year-round" (and open-ended variants) sets the flag instead.
func parseSeason(season string) (open, close *string, yearRound bool) {
	s := NormalizeWhitespace(season)
	if s == "" {
		return nil, nil, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "year-round") || strings.Contains(lower, "year round") ||
		strings.Contains(lower, "all year") || strings.Contains(lower, "open continuously") {
		return nil, nil, true
	}

	parts := reSeasonSplit.Split(s, 2)
	if len(parts) == 2 {
		o := strings.TrimSpace(parts[0])
		c := strings.TrimSpace(parts[1])
		if o != "" && c != "" {
			return &o, &c, false
		}
	}
	// unsplittable season text is still worth keeping as the open date
	return &s, nil, false
}
