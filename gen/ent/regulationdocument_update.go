// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/google/uuid"
)

// RegulationDocumentUpdate is the builder for updating RegulationDocument entities.
type RegulationDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *RegulationDocumentMutation
}

// Where appends a list predicates to the RegulationDocumentUpdate builder.
func (_u *RegulationDocumentUpdate) Where(ps ...predicate.RegulationDocument) *RegulationDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RegulationDocumentUpdate) SetFilename(v string) *RegulationDocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableFilename(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RegulationDocumentUpdate) SetDocumentType(v string) *RegulationDocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableDocumentType(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *RegulationDocumentUpdate) SetFileSize(v int64) *RegulationDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableFileSize(v *int64) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *RegulationDocumentUpdate) AddFileSize(v int64) *RegulationDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *RegulationDocumentUpdate) SetProcessingStatus(v string) *RegulationDocumentUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableProcessingStatus(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *RegulationDocumentUpdate) SetStateCode(v string) *RegulationDocumentUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableStateCode(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetRegulationYear sets the "regulation_year" field.
func (_u *RegulationDocumentUpdate) SetRegulationYear(v int) *RegulationDocumentUpdate {
	_u.mutation.ResetRegulationYear()
	_u.mutation.SetRegulationYear(v)
	return _u
}

// SetNillableRegulationYear sets the "regulation_year" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableRegulationYear(v *int) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetRegulationYear(*v)
	}
	return _u
}

// AddRegulationYear adds value to the "regulation_year" field.
func (_u *RegulationDocumentUpdate) AddRegulationYear(v int) *RegulationDocumentUpdate {
	_u.mutation.AddRegulationYear(v)
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *RegulationDocumentUpdate) SetExtractionError(v string) *RegulationDocumentUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableExtractionError(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *RegulationDocumentUpdate) ClearExtractionError() *RegulationDocumentUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetStorageURL sets the "storage_url" field.
func (_u *RegulationDocumentUpdate) SetStorageURL(v string) *RegulationDocumentUpdate {
	_u.mutation.SetStorageURL(v)
	return _u
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableStorageURL(v *string) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetStorageURL(*v)
	}
	return _u
}

// ClearStorageURL clears the value of the "storage_url" field.
func (_u *RegulationDocumentUpdate) ClearStorageURL() *RegulationDocumentUpdate {
	_u.mutation.ClearStorageURL()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *RegulationDocumentUpdate) SetUploadedAt(v time.Time) *RegulationDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableUploadedAt(v *time.Time) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RegulationDocumentUpdate) SetProcessedAt(v time.Time) *RegulationDocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RegulationDocumentUpdate) SetNillableProcessedAt(v *time.Time) *RegulationDocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RegulationDocumentUpdate) ClearProcessedAt() *RegulationDocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegulationDocumentUpdate) SetUpdatedAt(v time.Time) *RegulationDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *RegulationDocumentUpdate) AddRegulationIDs(ids ...uuid.UUID) *RegulationDocumentUpdate {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *RegulationDocumentUpdate) AddRegulations(v ...*FishingRegulation) *RegulationDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the RegulationDocumentMutation object of the builder.
func (_u *RegulationDocumentUpdate) Mutation() *RegulationDocumentMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *RegulationDocumentUpdate) ClearRegulations() *RegulationDocumentUpdate {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *RegulationDocumentUpdate) RemoveRegulationIDs(ids ...uuid.UUID) *RegulationDocumentUpdate {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *RegulationDocumentUpdate) RemoveRegulations(v ...*FishingRegulation) *RegulationDocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegulationDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegulationDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegulationDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegulationDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegulationDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := regulationdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegulationDocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := regulationdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := regulationdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := regulationdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := regulationdocument.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateCode(); ok {
		if err := regulationdocument.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegulationYear(); ok {
		if err := regulationdocument.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.regulation_year": %w`, err)}
		}
	}
	return nil
}

func (_u *RegulationDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(regulationdocument.Table, regulationdocument.Columns, sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(regulationdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(regulationdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(regulationdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(regulationdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(regulationdocument.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(regulationdocument.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegulationYear(); ok {
		_spec.SetField(regulationdocument.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegulationYear(); ok {
		_spec.AddField(regulationdocument.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(regulationdocument.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(regulationdocument.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURL(); ok {
		_spec.SetField(regulationdocument.FieldStorageURL, field.TypeString, value)
	}
	if _u.mutation.StorageURLCleared() {
		_spec.ClearField(regulationdocument.FieldStorageURL, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(regulationdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(regulationdocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(regulationdocument.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(regulationdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRegulationsIDs(); len(nodes) > 0 && !_u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RegulationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{regulationdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegulationDocumentUpdateOne is the builder for updating a single RegulationDocument entity.
type RegulationDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegulationDocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *RegulationDocumentUpdateOne) SetFilename(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableFilename(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RegulationDocumentUpdateOne) SetDocumentType(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableDocumentType(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *RegulationDocumentUpdateOne) SetFileSize(v int64) *RegulationDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableFileSize(v *int64) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *RegulationDocumentUpdateOne) AddFileSize(v int64) *RegulationDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *RegulationDocumentUpdateOne) SetProcessingStatus(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableProcessingStatus(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *RegulationDocumentUpdateOne) SetStateCode(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableStateCode(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetRegulationYear sets the "regulation_year" field.
func (_u *RegulationDocumentUpdateOne) SetRegulationYear(v int) *RegulationDocumentUpdateOne {
	_u.mutation.ResetRegulationYear()
	_u.mutation.SetRegulationYear(v)
	return _u
}

// SetNillableRegulationYear sets the "regulation_year" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableRegulationYear(v *int) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetRegulationYear(*v)
	}
	return _u
}

// AddRegulationYear adds value to the "regulation_year" field.
func (_u *RegulationDocumentUpdateOne) AddRegulationYear(v int) *RegulationDocumentUpdateOne {
	_u.mutation.AddRegulationYear(v)
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *RegulationDocumentUpdateOne) SetExtractionError(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableExtractionError(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *RegulationDocumentUpdateOne) ClearExtractionError() *RegulationDocumentUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetStorageURL sets the "storage_url" field.
func (_u *RegulationDocumentUpdateOne) SetStorageURL(v string) *RegulationDocumentUpdateOne {
	_u.mutation.SetStorageURL(v)
	return _u
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableStorageURL(v *string) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetStorageURL(*v)
	}
	return _u
}

// ClearStorageURL clears the value of the "storage_url" field.
func (_u *RegulationDocumentUpdateOne) ClearStorageURL() *RegulationDocumentUpdateOne {
	_u.mutation.ClearStorageURL()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *RegulationDocumentUpdateOne) SetUploadedAt(v time.Time) *RegulationDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RegulationDocumentUpdateOne) SetProcessedAt(v time.Time) *RegulationDocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RegulationDocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *RegulationDocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RegulationDocumentUpdateOne) ClearProcessedAt() *RegulationDocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegulationDocumentUpdateOne) SetUpdatedAt(v time.Time) *RegulationDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *RegulationDocumentUpdateOne) AddRegulationIDs(ids ...uuid.UUID) *RegulationDocumentUpdateOne {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *RegulationDocumentUpdateOne) AddRegulations(v ...*FishingRegulation) *RegulationDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the RegulationDocumentMutation object of the builder.
func (_u *RegulationDocumentUpdateOne) Mutation() *RegulationDocumentMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *RegulationDocumentUpdateOne) ClearRegulations() *RegulationDocumentUpdateOne {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *RegulationDocumentUpdateOne) RemoveRegulationIDs(ids ...uuid.UUID) *RegulationDocumentUpdateOne {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *RegulationDocumentUpdateOne) RemoveRegulations(v ...*FishingRegulation) *RegulationDocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Where appends a list predicates to the RegulationDocumentUpdate builder.
func (_u *RegulationDocumentUpdateOne) Where(ps ...predicate.RegulationDocument) *RegulationDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegulationDocumentUpdateOne) Select(field string, fields ...string) *RegulationDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegulationDocument entity.
func (_u *RegulationDocumentUpdateOne) Save(ctx context.Context) (*RegulationDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegulationDocumentUpdateOne) SaveX(ctx context.Context) *RegulationDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegulationDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegulationDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegulationDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := regulationdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegulationDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := regulationdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := regulationdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := regulationdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := regulationdocument.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateCode(); ok {
		if err := regulationdocument.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.state_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegulationYear(); ok {
		if err := regulationdocument.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.regulation_year": %w`, err)}
		}
	}
	return nil
}

func (_u *RegulationDocumentUpdateOne) sqlSave(ctx context.Context) (_node *RegulationDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(regulationdocument.Table, regulationdocument.Columns, sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegulationDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, regulationdocument.FieldID)
		for _, f := range fields {
			if !regulationdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != regulationdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(regulationdocument.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(regulationdocument.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(regulationdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(regulationdocument.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(regulationdocument.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(regulationdocument.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegulationYear(); ok {
		_spec.SetField(regulationdocument.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegulationYear(); ok {
		_spec.AddField(regulationdocument.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(regulationdocument.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(regulationdocument.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.StorageURL(); ok {
		_spec.SetField(regulationdocument.FieldStorageURL, field.TypeString, value)
	}
	if _u.mutation.StorageURLCleared() {
		_spec.ClearField(regulationdocument.FieldStorageURL, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(regulationdocument.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(regulationdocument.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(regulationdocument.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(regulationdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRegulationsIDs(); len(nodes) > 0 && !_u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RegulationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   regulationdocument.RegulationsTable,
			Columns: []string{regulationdocument.RegulationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RegulationDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{regulationdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
