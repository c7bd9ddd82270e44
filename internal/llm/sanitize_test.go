package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"species":"Walleye"}`, `{"species":"Walleye"}`},
		{"json fence", "```json\n{\"species\":\"Walleye\"}\n```", `{"species":"Walleye"}`},
		{"bare fence", "```\n{\"species\":\"Walleye\"}\n```", `{"species":"Walleye"}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  ", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := string(StripCodeFence([]byte(tc.in)))
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSanitizeCoercesLimits(t *testing.T) {
	in := []byte(`{"species":"Walleye","regulation_type":"daily_limit","daily_limit":"4","possession_limit":null}`)
	out, dropped, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, ok := m["daily_limit"].(float64); !ok || got != 4 {
		t.Fatalf("daily_limit = %v, want 4", m["daily_limit"])
	}
	if _, ok := m["possession_limit"]; ok {
		t.Fatalf("possession_limit should be dropped, got %v", m["possession_limit"])
	}
	found := false
	for _, d := range dropped {
		if d == "possession_limit" {
			found = true
		}
	}
	if !found {
		t.Fatalf("dropped = %v, want possession_limit listed", dropped)
	}
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	in := []byte(`{"species":"Walleye","type":"size_limit","bag_limit":2,"special_notes":"spearing prohibited"}`)
	out, _, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["regulation_type"] != "size_limit" {
		t.Fatalf("regulation_type = %v", m["regulation_type"])
	}
	if m["daily_limit"] != float64(2) {
		t.Fatalf("daily_limit = %v", m["daily_limit"])
	}
	if m["notes"] != "spearing prohibited" {
		t.Fatalf("notes = %v", m["notes"])
	}
}

func TestSanitizeNormalizesRegulationType(t *testing.T) {
	in := []byte(`{"species":"Northern Pike","regulation_type":"Protected Slot"}`)
	out, _, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["regulation_type"] != "protected_slot" {
		t.Fatalf("regulation_type = %v", m["regulation_type"])
	}
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	in := []byte(`{"species":"Muskellunge","regulation_type":"size_limit","lake_depth":"deep"}`)
	out, dropped, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if strings.Contains(string(out), "lake_depth") {
		t.Fatalf("unknown key survived: %s", out)
	}
	found := false
	for _, d := range dropped {
		if strings.HasPrefix(d, "lake_depth") {
			found = true
		}
	}
	if !found {
		t.Fatalf("dropped = %v, want lake_depth listed", dropped)
	}
}

func TestSanitizedOutputValidates(t *testing.T) {
	schema := BuildRegulationJSONSchema()
	in := []byte(`{"species":"Walleye","regulation_type":"combined","daily_limit":"2","season":"","extra":"x","catch_and_release":"true"}`)

	if err := ValidateJSONAgainstSchema(schema, in); err == nil {
		t.Fatal("raw input should fail strict validation")
	}
	cleaned, _, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Fatalf("cleaned input should validate: %v", err)
	}

	var out RegulationFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.DailyLimit == nil || *out.DailyLimit != 2 {
		t.Fatalf("daily_limit = %v, want 2", out.DailyLimit)
	}
	if !out.CatchAndRelease {
		t.Fatal("catch_and_release should be coerced to true")
	}
}

func TestValidateRejectsMissingSpecies(t *testing.T) {
	schema := BuildRegulationJSONSchema()
	in := []byte(`{"regulation_type":"daily_limit","daily_limit":3}`)
	if err := ValidateJSONAgainstSchema(schema, in); err == nil {
		t.Fatal("expected validation error for missing species")
	}
}

func TestBuildUserPromptIncludesContext(t *testing.T) {
	p := BuildUserPrompt(ExtractRequest{
		WaterBodyName:  "Mille Lacs Lake",
		County:         "Mille Lacs",
		StateCode:      "MN",
		RegulationYear: 2024,
		EntryText:      "Walleye: all fish 21-23 inches must be released.",
	})
	for _, want := range []string{"Mille Lacs Lake", "Mille Lacs", "MN", "2024", "21-23 inches"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}
