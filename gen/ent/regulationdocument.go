// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/google/uuid"
)

// RegulationDocument is the model entity for the RegulationDocument schema.
type RegulationDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// RegulationYear holds the value of the "regulation_year" field.
	RegulationYear int `json:"regulation_year,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError *string `json:"extraction_error,omitempty"`
	// StorageURL holds the value of the "storage_url" field.
	StorageURL *string `json:"storage_url,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RegulationDocumentQuery when eager-loading is set.
	Edges        RegulationDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RegulationDocumentEdges holds the relations/edges for other nodes in the graph.
type RegulationDocumentEdges struct {
	// Regulations holds the value of the regulations edge.
	Regulations []*FishingRegulation `json:"regulations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RegulationsOrErr returns the Regulations value or an error if the edge
// was not loaded in eager-loading.
func (e RegulationDocumentEdges) RegulationsOrErr() ([]*FishingRegulation, error) {
	if e.loadedTypes[0] {
		return e.Regulations, nil
	}
	return nil, &NotLoadedError{edge: "regulations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RegulationDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case regulationdocument.FieldFileSize, regulationdocument.FieldRegulationYear:
			values[i] = new(sql.NullInt64)
		case regulationdocument.FieldFilename, regulationdocument.FieldDocumentType, regulationdocument.FieldProcessingStatus, regulationdocument.FieldStateCode, regulationdocument.FieldExtractionError, regulationdocument.FieldStorageURL:
			values[i] = new(sql.NullString)
		case regulationdocument.FieldUploadedAt, regulationdocument.FieldProcessedAt, regulationdocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case regulationdocument.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RegulationDocument fields.
func (_m *RegulationDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case regulationdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case regulationdocument.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case regulationdocument.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case regulationdocument.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case regulationdocument.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case regulationdocument.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case regulationdocument.FieldRegulationYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field regulation_year", values[i])
			} else if value.Valid {
				_m.RegulationYear = int(value.Int64)
			}
		case regulationdocument.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case regulationdocument.FieldStorageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_url", values[i])
			} else if value.Valid {
				_m.StorageURL = new(string)
				*_m.StorageURL = value.String
			}
		case regulationdocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case regulationdocument.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case regulationdocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RegulationDocument.
// This includes values selected through modifiers, order, etc.
func (_m *RegulationDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRegulations queries the "regulations" edge of the RegulationDocument entity.
func (_m *RegulationDocument) QueryRegulations() *FishingRegulationQuery {
	return NewRegulationDocumentClient(_m.config).QueryRegulations(_m)
}

// Update returns a builder for updating this RegulationDocument.
// Note that you need to call RegulationDocument.Unwrap() before calling this method if this RegulationDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RegulationDocument) Update() *RegulationDocumentUpdateOne {
	return NewRegulationDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RegulationDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RegulationDocument) Unwrap() *RegulationDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RegulationDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RegulationDocument) String() string {
	var builder strings.Builder
	builder.WriteString("RegulationDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	builder.WriteString("state_code=")
	builder.WriteString(_m.StateCode)
	builder.WriteString(", ")
	builder.WriteString("regulation_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegulationYear))
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StorageURL; v != nil {
		builder.WriteString("storage_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RegulationDocuments is a parsable slice of RegulationDocument.
type RegulationDocuments []*RegulationDocument
