package constants

import "strings"

// Species is a canonical common name for a fish species.
type Species string

const (
	Bluegill       Species = "Bluegill"
	BlackCrappie   Species = "Black Crappie"
	BrookTrout     Species = "Brook Trout"
	BrownTrout     Species = "Brown Trout"
	ChannelCatfish Species = "Channel Catfish"
	LakeSturgeon   Species = "Lake Sturgeon"
	LakeTrout      Species = "Lake Trout"
	LargemouthBass Species = "Largemouth Bass"
	Muskellunge    Species = "Muskellunge"
	NorthernPike   Species = "Northern Pike"
	RainbowTrout   Species = "Rainbow Trout"
	SmallmouthBass Species = "Smallmouth Bass"
	Walleye        Species = "Walleye"
	WhiteBass      Species = "White Bass"
	YellowPerch    Species = "Yellow Perch"
)

// synonyms maps colloquial or regional names to the canonical common name.
// Regulation text is inconsistent: the same fish shows up as "sunnies",
// "sunfish" or "bream" depending on the document's year and author.
var synonyms = map[string]Species{
	"sunfish":        Bluegill,
	"sunnies":        Bluegill,
	"bream":          Bluegill,
	"crappie":        BlackCrappie,
	"crappies":       BlackCrappie,
	"specks":         BrookTrout,
	"speckled trout": BrookTrout,
	"brookie":        BrookTrout,
	"laker":          LakeTrout,
	"lakers":         LakeTrout,
	"sturgeon":       LakeSturgeon,
	"muskie":         Muskellunge,
	"musky":          Muskellunge,
	"muskies":        Muskellunge,
	"northern":       NorthernPike,
	"northerns":      NorthernPike,
	"pike":           NorthernPike,
	"rainbow":        RainbowTrout,
	"steelhead":      RainbowTrout,
	"smallmouth":     SmallmouthBass,
	"smallie":        SmallmouthBass,
	"largemouth":     LargemouthBass,
	"walleyes":       Walleye,
	"walleyed pike":  Walleye,
	"perch":          YellowPerch,
	"catfish":        ChannelCatfish,
	"cats":           ChannelCatfish,
}

var allSpecies = []Species{
	Bluegill,
	BlackCrappie,
	BrookTrout,
	BrownTrout,
	ChannelCatfish,
	LakeSturgeon,
	LakeTrout,
	LargemouthBass,
	Muskellunge,
	NorthernPike,
	RainbowTrout,
	SmallmouthBass,
	Walleye,
	WhiteBass,
	YellowPerch,
}

// SpeciesNames returns the canonical common names as strings.
func SpeciesNames() []string {
	result := make([]string, len(allSpecies))
	for i, s := range allSpecies {
		result[i] = string(s)
	}
	return result
}

// CanonicalSpecies resolves a raw species mention to its canonical common
// name. The second return reports whether the input matched the synonym
// table or a known species; unmatched names are title-cased as-is so an
// unseen species still gets a stable record.
func CanonicalSpecies(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	if sp, ok := synonyms[normalized]; ok {
		return string(sp), true
	}
	for _, sp := range allSpecies {
		if normalized == strings.ToLower(string(sp)) {
			return string(sp), true
		}
	}

	return TitleCase(normalized), false
}

// TitleCase uppercases the first letter of each space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
