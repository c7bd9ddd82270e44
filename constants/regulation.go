package constants

// RegulationType tags the kind of restriction an extracted regulation
// describes. Stored as-is in fishing_regulations.regulation_type.
type RegulationType string

const (
	RegTypeDailyLimit      RegulationType = "daily_limit"
	RegTypeSizeLimit       RegulationType = "size_limit"
	RegTypeProtectedSlot   RegulationType = "protected_slot"
	RegTypeCatchAndRelease RegulationType = "catch_and_release"
	RegTypeCombined        RegulationType = "combined"
)

// RegulationTypes holds the allowed values for the regulation_type field.
var RegulationTypes = []string{
	string(RegTypeDailyLimit),
	string(RegTypeSizeLimit),
	string(RegTypeProtectedSlot),
	string(RegTypeCatchAndRelease),
	string(RegTypeCombined),
}

// WaterBodyTypes holds the allowed values for water_bodies.water_body_type.
// "lake" is the default when the source text gives no hint.
var WaterBodyTypes = []string{"lake", "river", "stream", "reservoir", "pond", "flowage"}

const DefaultWaterBodyType = "lake"
