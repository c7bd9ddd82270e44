package validate

import (
	"strings"
	"testing"

	"github.com/fisheries-data/regs-tracker/internal/llm"
)

func intPtr(v int) *int { return &v }

func TestValidateRegulationCleanRecord(t *testing.T) {
	clean, errs, warns := ValidateRegulation(llm.RegulationFields{
		Species:         "walleye",
		RegulationType:  "combined",
		DailyLimit:      intPtr(6),
		PossessionLimit: intPtr(12),
		MinimumSize:     "15 inches",
		ProtectedSlot:   "20-24 inches (1 fish allowed)",
		Season:          "May 15 - Feb 28",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if clean.SpeciesName != "Walleye" || !clean.SpeciesKnown {
		t.Errorf("species = %q known=%v, want Walleye known", clean.SpeciesName, clean.SpeciesKnown)
	}
	if clean.MinimumSize == nil || *clean.MinimumSize != 15 {
		t.Errorf("minimum size = %v, want 15", clean.MinimumSize)
	}
	if clean.ProtectedSlotMin == nil || *clean.ProtectedSlotMin != 20 ||
		clean.ProtectedSlotMax == nil || *clean.ProtectedSlotMax != 24 {
		t.Errorf("slot = %v-%v, want 20-24", clean.ProtectedSlotMin, clean.ProtectedSlotMax)
	}
	if clean.ProtectedSlotExceptions != 1 {
		t.Errorf("slot exceptions = %d, want 1", clean.ProtectedSlotExceptions)
	}
	if clean.SeasonOpen == nil || *clean.SeasonOpen != "May 15" {
		t.Errorf("season open = %v, want May 15", clean.SeasonOpen)
	}
	if clean.SeasonClose == nil || *clean.SeasonClose != "Feb 28" {
		t.Errorf("season close = %v, want Feb 28", clean.SeasonClose)
	}
	if clean.YearRound {
		t.Error("year round should be false for a dated season")
	}
}

func TestValidateRegulationMissingSpecies(t *testing.T) {
	_, errs, _ := ValidateRegulation(llm.RegulationFields{DailyLimit: intPtr(5)})
	if len(errs) != 1 || !strings.Contains(errs[0], "species") {
		t.Fatalf("errs = %v, want one species error", errs)
	}
}

func TestValidateRegulationWarnings(t *testing.T) {
	tests := []struct {
		name   string
		fields llm.RegulationFields
		want   string
	}{
		{
			name:   "unknown species",
			fields: llm.RegulationFields{Species: "snakehead"},
			want:   "unrecognized species",
		},
		{
			name: "daily exceeds possession",
			fields: llm.RegulationFields{
				Species:         "Walleye",
				DailyLimit:      intPtr(10),
				PossessionLimit: intPtr(6),
			},
			want: "exceeds possession limit",
		},
		{
			name: "min size above max",
			fields: llm.RegulationFields{
				Species:     "Walleye",
				MinimumSize: "20 in",
				MaximumSize: "15 in",
			},
			want: "exceeds maximum size",
		},
		{
			name: "unparseable slot",
			fields: llm.RegulationFields{
				Species:       "Walleye",
				ProtectedSlot: "see local rules",
			},
			want: "no parseable range",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, warns := ValidateRegulation(tt.fields)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			found := false
			for _, w := range warns {
				if strings.Contains(w, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v missing %q", warns, tt.want)
			}
		})
	}
}

func TestValidateRegulationSpeciesSynonym(t *testing.T) {
	clean, _, warns := ValidateRegulation(llm.RegulationFields{Species: "northern"})
	if clean.SpeciesName != "Northern Pike" || !clean.SpeciesKnown {
		t.Fatalf("species = %q known=%v, want Northern Pike known", clean.SpeciesName, clean.SpeciesKnown)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
}

func TestValidateRegulationDefaultsType(t *testing.T) {
	clean, _, _ := ValidateRegulation(llm.RegulationFields{Species: "Walleye"})
	if clean.RegulationType != "combined" {
		t.Errorf("regulation type = %q, want combined", clean.RegulationType)
	}
}

func TestParseSeason(t *testing.T) {
	tests := []struct {
		in        string
		open      string
		close     string
		yearRound bool
	}{
		{"May 15 - Feb 28", "May 15", "Feb 28", false},
		{"May 15 through Feb 28", "May 15", "Feb 28", false},
		{"Open year-round", "", "", true},
		{"open continuously", "", "", true},
		{"", "", "", false},
		{"winter only", "winter only", "", false},
	}
	for _, tt := range tests {
		open, closed, yearRound := parseSeason(tt.in)
		if yearRound != tt.yearRound {
			t.Errorf("parseSeason(%q) yearRound = %v, want %v", tt.in, yearRound, tt.yearRound)
			continue
		}
		got := func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		}
		if got(open) != tt.open || got(closed) != tt.close {
			t.Errorf("parseSeason(%q) = (%q, %q), want (%q, %q)",
				tt.in, got(open), got(closed), tt.open, tt.close)
		}
	}
}

func TestParseSizeInches(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"15 inches", 15, true},
		{"26.5 in.", 26.5, true},
		{"no minimum", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got := ParseSizeInches(tt.in)
		if tt.ok {
			if got == nil || *got != tt.want {
				t.Errorf("ParseSizeInches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		} else if got != nil {
			t.Errorf("ParseSizeInches(%q) = %v, want nil", tt.in, *got)
		}
	}
}
