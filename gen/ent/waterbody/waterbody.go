// Code generated by ent, DO NOT EDIT.

package waterbody

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the waterbody type in the database.
	Label = "water_body"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldWaterBodyType holds the string denoting the water_body_type field in the database.
	FieldWaterBodyType = "water_body_type"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldCounty holds the string denoting the county field in the database.
	FieldCounty = "county"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRegulations holds the string denoting the regulations edge name in mutations.
	EdgeRegulations = "regulations"
	// Table holds the table name of the waterbody in the database.
	Table = "water_bodies"
	// RegulationsTable is the table that holds the regulations relation/edge.
	RegulationsTable = "fishing_regulations"
	// RegulationsInverseTable is the table name for the FishingRegulation entity.
	// It exists in this package in order to avoid circular dependency with the "fishingregulation" package.
	RegulationsInverseTable = "fishing_regulations"
	// RegulationsColumn is the table column denoting the regulations relation/edge.
	RegulationsColumn = "water_body_id"
)

// Columns holds all SQL columns for waterbody fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNormalizedName,
	FieldWaterBodyType,
	FieldStateCode,
	FieldCounty,
	FieldIsActive,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// DefaultWaterBodyType holds the default value on creation for the "water_body_type" field.
	DefaultWaterBodyType string
	// WaterBodyTypeValidator is a validator for the "water_body_type" field. It is called by the builders before save.
	WaterBodyTypeValidator func(string) error
	// StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	StateCodeValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WaterBody queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByWaterBodyType orders the results by the water_body_type field.
func ByWaterBodyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterBodyType, opts...).ToFunc()
}

// ByStateCode orders the results by the state_code field.
func ByStateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateCode, opts...).ToFunc()
}

// ByCounty orders the results by the county field.
func ByCounty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCounty, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRegulationsCount orders the results by regulations count.
func ByRegulationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRegulationsStep(), opts...)
	}
}

// ByRegulations orders the results by regulations terms.
func ByRegulations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRegulationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRegulationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RegulationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RegulationsTable, RegulationsColumn),
	)
}
