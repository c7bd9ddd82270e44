// Code generated by ent, DO NOT EDIT.

package fishingregulation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fishingregulation type in the database.
	Label = "fishing_regulation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWaterBodyID holds the string denoting the water_body_id field in the database.
	FieldWaterBodyID = "water_body_id"
	// FieldSpeciesID holds the string denoting the species_id field in the database.
	FieldSpeciesID = "species_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldRegulationYear holds the string denoting the regulation_year field in the database.
	FieldRegulationYear = "regulation_year"
	// FieldRegulationType holds the string denoting the regulation_type field in the database.
	FieldRegulationType = "regulation_type"
	// FieldEffectiveDate holds the string denoting the effective_date field in the database.
	FieldEffectiveDate = "effective_date"
	// FieldExpirationDate holds the string denoting the expiration_date field in the database.
	FieldExpirationDate = "expiration_date"
	// FieldDailyLimit holds the string denoting the daily_limit field in the database.
	FieldDailyLimit = "daily_limit"
	// FieldPossessionLimit holds the string denoting the possession_limit field in the database.
	FieldPossessionLimit = "possession_limit"
	// FieldMinimumSize holds the string denoting the minimum_size field in the database.
	FieldMinimumSize = "minimum_size"
	// FieldMaximumSize holds the string denoting the maximum_size field in the database.
	FieldMaximumSize = "maximum_size"
	// FieldProtectedSlotMin holds the string denoting the protected_slot_min field in the database.
	FieldProtectedSlotMin = "protected_slot_min"
	// FieldProtectedSlotMax holds the string denoting the protected_slot_max field in the database.
	FieldProtectedSlotMax = "protected_slot_max"
	// FieldProtectedSlotExceptions holds the string denoting the protected_slot_exceptions field in the database.
	FieldProtectedSlotExceptions = "protected_slot_exceptions"
	// FieldSeasonOpen holds the string denoting the season_open field in the database.
	FieldSeasonOpen = "season_open"
	// FieldSeasonClose holds the string denoting the season_close field in the database.
	FieldSeasonClose = "season_close"
	// FieldYearRound holds the string denoting the year_round field in the database.
	FieldYearRound = "year_round"
	// FieldCatchAndRelease holds the string denoting the catch_and_release field in the database.
	FieldCatchAndRelease = "catch_and_release"
	// FieldSpecialNotes holds the string denoting the special_notes field in the database.
	FieldSpecialNotes = "special_notes"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWaterBody holds the string denoting the water_body edge name in mutations.
	EdgeWaterBody = "water_body"
	// EdgeSpecies holds the string denoting the species edge name in mutations.
	EdgeSpecies = "species"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the fishingregulation in the database.
	Table = "fishing_regulations"
	// WaterBodyTable is the table that holds the water_body relation/edge.
	WaterBodyTable = "fishing_regulations"
	// WaterBodyInverseTable is the table name for the WaterBody entity.
	// It exists in this package in order to avoid circular dependency with the "waterbody" package.
	WaterBodyInverseTable = "water_bodies"
	// WaterBodyColumn is the table column denoting the water_body relation/edge.
	WaterBodyColumn = "water_body_id"
	// SpeciesTable is the table that holds the species relation/edge.
	SpeciesTable = "fishing_regulations"
	// SpeciesInverseTable is the table name for the FishSpecies entity.
	// It exists in this package in order to avoid circular dependency with the "fishspecies" package.
	SpeciesInverseTable = "fish_species"
	// SpeciesColumn is the table column denoting the species relation/edge.
	SpeciesColumn = "species_id"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "fishing_regulations"
	// DocumentInverseTable is the table name for the RegulationDocument entity.
	// It exists in this package in order to avoid circular dependency with the "regulationdocument" package.
	DocumentInverseTable = "regulation_documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for fishingregulation fields.
var Columns = []string{
	FieldID,
	FieldWaterBodyID,
	FieldSpeciesID,
	FieldDocumentID,
	FieldRegulationYear,
	FieldRegulationType,
	FieldEffectiveDate,
	FieldExpirationDate,
	FieldDailyLimit,
	FieldPossessionLimit,
	FieldMinimumSize,
	FieldMaximumSize,
	FieldProtectedSlotMin,
	FieldProtectedSlotMax,
	FieldProtectedSlotExceptions,
	FieldSeasonOpen,
	FieldSeasonClose,
	FieldYearRound,
	FieldCatchAndRelease,
	FieldSpecialNotes,
	FieldIsActive,
	FieldNeedsReview,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RegulationYearValidator is a validator for the "regulation_year" field. It is called by the builders before save.
	RegulationYearValidator func(int) error
	// DefaultRegulationType holds the default value on creation for the "regulation_type" field.
	DefaultRegulationType string
	// RegulationTypeValidator is a validator for the "regulation_type" field. It is called by the builders before save.
	RegulationTypeValidator func(string) error
	// DefaultProtectedSlotExceptions holds the default value on creation for the "protected_slot_exceptions" field.
	DefaultProtectedSlotExceptions int
	// DefaultYearRound holds the default value on creation for the "year_round" field.
	DefaultYearRound bool
	// DefaultCatchAndRelease holds the default value on creation for the "catch_and_release" field.
	DefaultCatchAndRelease bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FishingRegulation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWaterBodyID orders the results by the water_body_id field.
func ByWaterBodyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterBodyID, opts...).ToFunc()
}

// BySpeciesID orders the results by the species_id field.
func BySpeciesID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeciesID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByRegulationYear orders the results by the regulation_year field.
func ByRegulationYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegulationYear, opts...).ToFunc()
}

// ByRegulationType orders the results by the regulation_type field.
func ByRegulationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegulationType, opts...).ToFunc()
}

// ByEffectiveDate orders the results by the effective_date field.
func ByEffectiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveDate, opts...).ToFunc()
}

// ByExpirationDate orders the results by the expiration_date field.
func ByExpirationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpirationDate, opts...).ToFunc()
}

// ByDailyLimit orders the results by the daily_limit field.
func ByDailyLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyLimit, opts...).ToFunc()
}

// ByPossessionLimit orders the results by the possession_limit field.
func ByPossessionLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPossessionLimit, opts...).ToFunc()
}

// ByMinimumSize orders the results by the minimum_size field.
func ByMinimumSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinimumSize, opts...).ToFunc()
}

// ByMaximumSize orders the results by the maximum_size field.
func ByMaximumSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaximumSize, opts...).ToFunc()
}

// ByProtectedSlotMin orders the results by the protected_slot_min field.
func ByProtectedSlotMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtectedSlotMin, opts...).ToFunc()
}

// ByProtectedSlotMax orders the results by the protected_slot_max field.
func ByProtectedSlotMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtectedSlotMax, opts...).ToFunc()
}

// ByProtectedSlotExceptions orders the results by the protected_slot_exceptions field.
func ByProtectedSlotExceptions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtectedSlotExceptions, opts...).ToFunc()
}

// BySeasonOpen orders the results by the season_open field.
func BySeasonOpen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeasonOpen, opts...).ToFunc()
}

// BySeasonClose orders the results by the season_close field.
func BySeasonClose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeasonClose, opts...).ToFunc()
}

// ByYearRound orders the results by the year_round field.
func ByYearRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearRound, opts...).ToFunc()
}

// ByCatchAndRelease orders the results by the catch_and_release field.
func ByCatchAndRelease(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatchAndRelease, opts...).ToFunc()
}

// BySpecialNotes orders the results by the special_notes field.
func BySpecialNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialNotes, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWaterBodyField orders the results by water_body field.
func ByWaterBodyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWaterBodyStep(), sql.OrderByField(field, opts...))
	}
}

// BySpeciesField orders the results by species field.
func BySpeciesField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpeciesStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newWaterBodyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WaterBodyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WaterBodyTable, WaterBodyColumn),
	)
}
func newSpeciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpeciesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpeciesTable, SpeciesColumn),
	)
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
