package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimal   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reSlotRange = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)`)
	reSlotExc   = regexp.MustCompile(`\((\d+)\s*fish`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// NormalizeWhitespace collapses runs of whitespace and trims the ends.
func NormalizeWhitespace(s string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseSizeInches extracts the first decimal number from a size string,
// ignoring trailing unit words ("15 inches", "no minimum", "26.5 in.").
// Returns nil when the string has no number.
func ParseSizeInches(s string) *float64 {
	m := reDecimal.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseProtectedSlot extracts a protected slot range like
// "28-36 inches (1 fish allowed)": low and high bounds plus the number of
// fish exempt from the slot. Missing range yields nil bounds; missing
// exception clause yields zero exceptions.
func ParseProtectedSlot(s string) (min, max *float64, exceptions int) {
	if m := reSlotRange.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			min, max = &lo, &hi
		}
	}
	if m := reSlotExc.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			exceptions = n
		}
	}
	return min, max, exceptions
}
