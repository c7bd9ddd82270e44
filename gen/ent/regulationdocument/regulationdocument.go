// Code generated by ent, DO NOT EDIT.

package regulationdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the regulationdocument type in the database.
	Label = "regulation_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldRegulationYear holds the string denoting the regulation_year field in the database.
	FieldRegulationYear = "regulation_year"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldStorageURL holds the string denoting the storage_url field in the database.
	FieldStorageURL = "storage_url"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRegulations holds the string denoting the regulations edge name in mutations.
	EdgeRegulations = "regulations"
	// Table holds the table name of the regulationdocument in the database.
	Table = "regulation_documents"
	// RegulationsTable is the table that holds the regulations relation/edge.
	RegulationsTable = "fishing_regulations"
	// RegulationsInverseTable is the table name for the FishingRegulation entity.
	// It exists in this package in order to avoid circular dependency with the "fishingregulation" package.
	RegulationsInverseTable = "fishing_regulations"
	// RegulationsColumn is the table column denoting the regulations relation/edge.
	RegulationsColumn = "document_id"
)

// Columns holds all SQL columns for regulationdocument fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldDocumentType,
	FieldFileSize,
	FieldProcessingStatus,
	FieldStateCode,
	FieldRegulationYear,
	FieldExtractionError,
	FieldStorageURL,
	FieldUploadedAt,
	FieldProcessedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int64) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	StateCodeValidator func(string) error
	// RegulationYearValidator is a validator for the "regulation_year" field. It is called by the builders before save.
	RegulationYearValidator func(int) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RegulationDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByStateCode orders the results by the state_code field.
func ByStateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateCode, opts...).ToFunc()
}

// ByRegulationYear orders the results by the regulation_year field.
func ByRegulationYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegulationYear, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByStorageURL orders the results by the storage_url field.
func ByStorageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageURL, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
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
