package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fisheries-data/regs-tracker/constants"
)

var (
	countFields = []string{"daily_limit", "possession_limit"}
	textFields  = []string{"minimum_size", "maximum_size", "protected_slot", "season", "notes"}
)

// StripCodeFence removes a leading/trailing markdown code fence from a model
// response, e.g. ```json ... ```. Content without a fence is returned as-is.
func StripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		tag := strings.TrimSpace(s[:i])
		if tag == "" || strings.EqualFold(tag, "json") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return []byte(strings.TrimSpace(s))
}

// SanitizeOptionalFields removes or normalizes optional fields that don't meet
// the stricter schema, so the overall document can still validate. We only
// touch OPTIONALS; a missing or broken required field still fails validation.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	rename := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// common model synonyms for our field names
	rename("bag_limit", "daily_limit")
	rename("daily_bag_limit", "daily_limit")
	rename("type", "regulation_type")
	rename("slot_limit", "protected_slot")
	rename("special_notes", "notes")

	// limits: coerce numeric-looking values to integers, drop the rest
	for _, k := range countFields {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case nil:
				delete(m, k)
				dropped = append(dropped, k)
			case float64:
				if t < 0 || t != math.Trunc(t) {
					delete(m, k)
					dropped = append(dropped, k)
				}
			case string:
				s := strings.TrimSpace(t)
				if n, err := strconv.Atoi(s); err == nil && n >= 0 {
					m[k] = float64(n)
				} else {
					delete(m, k)
					dropped = append(dropped, k)
				}
			default:
				delete(m, k)
				dropped = append(dropped, k)
			}
		}
	}

	// free-text optionals: trim, drop null/empty
	for _, k := range textFields {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case nil:
				delete(m, k)
				dropped = append(dropped, k)
			case string:
				s := strings.TrimSpace(t)
				if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
					delete(m, k)
					dropped = append(dropped, k)
				} else {
					m[k] = s
				}
			default:
				delete(m, k)
				dropped = append(dropped, k)
			}
		}
	}

	// catch_and_release: tolerate "true"/"false" strings
	if v, ok := m["catch_and_release"]; ok {
		switch t := v.(type) {
		case bool:
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				m["catch_and_release"] = b
			} else {
				delete(m, "catch_and_release")
				dropped = append(dropped, "catch_and_release")
			}
		default:
			delete(m, "catch_and_release")
			dropped = append(dropped, "catch_and_release")
		}
	}

	// regulation_type: normalize casing and spacing to the enum form
	if v, ok := m["regulation_type"].(string); ok {
		rt := strings.ToLower(strings.TrimSpace(v))
		rt = strings.ReplaceAll(rt, " ", "_")
		rt = strings.ReplaceAll(rt, "-", "_")
		found := false
		for _, known := range constants.RegulationTypes {
			if rt == known {
				found = true
				break
			}
		}
		if found {
			m["regulation_type"] = rt
		}
		// unknown values are left as-is so strict validation reports them
	}

	// confidence: clamp to [0,1], drop junk
	if v, ok := m["confidence"]; ok {
		switch t := v.(type) {
		case float64:
			if t < 0 || t > 1 {
				m["confidence"] = math.Min(math.Max(t, 0), 1)
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				m["confidence"] = math.Min(math.Max(f, 0), 1)
			} else {
				delete(m, "confidence")
				dropped = append(dropped, "confidence")
			}
		default:
			delete(m, "confidence")
			dropped = append(dropped, "confidence")
		}
	}

	// remove unknown keys (schema is additionalProperties=false)
	allowed := map[string]struct{}{
		"species": {}, "regulation_type": {}, "daily_limit": {}, "possession_limit": {},
		"minimum_size": {}, "maximum_size": {}, "protected_slot": {}, "season": {},
		"catch_and_release": {}, "notes": {}, "confidence": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return b, dropped, nil
}
