// Code generated by ent, DO NOT EDIT.

package regulationdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldDocumentType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldFileSize, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldProcessingStatus, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldStateCode, v))
}

// RegulationYear applies equality check predicate on the "regulation_year" field. It's identical to RegulationYearEQ.
func RegulationYear(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldRegulationYear, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldExtractionError, v))
}

// StorageURL applies equality check predicate on the "storage_url" field. It's identical to StorageURLEQ.
func StorageURL(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldStorageURL, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldDocumentType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldFileSize, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldStateCode, v))
}

// RegulationYearEQ applies the EQ predicate on the "regulation_year" field.
func RegulationYearEQ(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldRegulationYear, v))
}

// RegulationYearNEQ applies the NEQ predicate on the "regulation_year" field.
func RegulationYearNEQ(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldRegulationYear, v))
}

// RegulationYearIn applies the In predicate on the "regulation_year" field.
func RegulationYearIn(vs ...int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldRegulationYear, vs...))
}

// RegulationYearNotIn applies the NotIn predicate on the "regulation_year" field.
func RegulationYearNotIn(vs ...int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldRegulationYear, vs...))
}

// RegulationYearGT applies the GT predicate on the "regulation_year" field.
func RegulationYearGT(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldRegulationYear, v))
}

// RegulationYearGTE applies the GTE predicate on the "regulation_year" field.
func RegulationYearGTE(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldRegulationYear, v))
}

// RegulationYearLT applies the LT predicate on the "regulation_year" field.
func RegulationYearLT(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldRegulationYear, v))
}

// RegulationYearLTE applies the LTE predicate on the "regulation_year" field.
func RegulationYearLTE(v int) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldRegulationYear, v))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldExtractionError, v))
}

// StorageURLEQ applies the EQ predicate on the "storage_url" field.
func StorageURLEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldStorageURL, v))
}

// StorageURLNEQ applies the NEQ predicate on the "storage_url" field.
func StorageURLNEQ(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldStorageURL, v))
}

// StorageURLIn applies the In predicate on the "storage_url" field.
func StorageURLIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldStorageURL, vs...))
}

// StorageURLNotIn applies the NotIn predicate on the "storage_url" field.
func StorageURLNotIn(vs ...string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldStorageURL, vs...))
}

// StorageURLGT applies the GT predicate on the "storage_url" field.
func StorageURLGT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldStorageURL, v))
}

// StorageURLGTE applies the GTE predicate on the "storage_url" field.
func StorageURLGTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldStorageURL, v))
}

// StorageURLLT applies the LT predicate on the "storage_url" field.
func StorageURLLT(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldStorageURL, v))
}

// StorageURLLTE applies the LTE predicate on the "storage_url" field.
func StorageURLLTE(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldStorageURL, v))
}

// StorageURLContains applies the Contains predicate on the "storage_url" field.
func StorageURLContains(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContains(FieldStorageURL, v))
}

// StorageURLHasPrefix applies the HasPrefix predicate on the "storage_url" field.
func StorageURLHasPrefix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasPrefix(FieldStorageURL, v))
}

// StorageURLHasSuffix applies the HasSuffix predicate on the "storage_url" field.
func StorageURLHasSuffix(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldHasSuffix(FieldStorageURL, v))
}

// StorageURLIsNil applies the IsNil predicate on the "storage_url" field.
func StorageURLIsNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIsNull(FieldStorageURL))
}

// StorageURLNotNil applies the NotNil predicate on the "storage_url" field.
func StorageURLNotNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotNull(FieldStorageURL))
}

// StorageURLEqualFold applies the EqualFold predicate on the "storage_url" field.
func StorageURLEqualFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEqualFold(FieldStorageURL, v))
}

// StorageURLContainsFold applies the ContainsFold predicate on the "storage_url" field.
func StorageURLContainsFold(v string) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldContainsFold(FieldStorageURL, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotNull(FieldProcessedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRegulations applies the HasEdge predicate on the "regulations" edge.
func HasRegulations() predicate.RegulationDocument {
	return predicate.RegulationDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RegulationsTable, RegulationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegulationsWith applies the HasEdge predicate on the "regulations" edge with a given conditions (other predicates).
func HasRegulationsWith(preds ...predicate.FishingRegulation) predicate.RegulationDocument {
	return predicate.RegulationDocument(func(s *sql.Selector) {
		step := newRegulationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RegulationDocument) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RegulationDocument) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RegulationDocument) predicate.RegulationDocument {
	return predicate.RegulationDocument(sql.NotPredicates(p))
}
