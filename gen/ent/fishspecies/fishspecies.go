// Code generated by ent, DO NOT EDIT.

package fishspecies

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fishspecies type in the database.
	Label = "fish_species"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommonName holds the string denoting the common_name field in the database.
	FieldCommonName = "common_name"
	// FieldScientificName holds the string denoting the scientific_name field in the database.
	FieldScientificName = "scientific_name"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRegulations holds the string denoting the regulations edge name in mutations.
	EdgeRegulations = "regulations"
	// Table holds the table name of the fishspecies in the database.
	Table = "fish_species"
	// RegulationsTable is the table that holds the regulations relation/edge.
	RegulationsTable = "fishing_regulations"
	// RegulationsInverseTable is the table name for the FishingRegulation entity.
	// It exists in this package in order to avoid circular dependency with the "fishingregulation" package.
	RegulationsInverseTable = "fishing_regulations"
	// RegulationsColumn is the table column denoting the regulations relation/edge.
	RegulationsColumn = "species_id"
)

// Columns holds all SQL columns for fishspecies fields.
var Columns = []string{
	FieldID,
	FieldCommonName,
	FieldScientificName,
	FieldIsActive,
	FieldCreatedAt,
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
	// CommonNameValidator is a validator for the "common_name" field. It is called by the builders before save.
	CommonNameValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FishSpecies queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommonName orders the results by the common_name field.
func ByCommonName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommonName, opts...).ToFunc()
}

// ByScientificName orders the results by the scientific_name field.
func ByScientificName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScientificName, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
