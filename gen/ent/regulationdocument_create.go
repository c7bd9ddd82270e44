// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/google/uuid"
)

// RegulationDocumentCreate is the builder for creating a RegulationDocument entity.
type RegulationDocumentCreate struct {
	config
	mutation *RegulationDocumentMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *RegulationDocumentCreate) SetFilename(v string) *RegulationDocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *RegulationDocumentCreate) SetDocumentType(v string) *RegulationDocumentCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *RegulationDocumentCreate) SetFileSize(v int64) *RegulationDocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *RegulationDocumentCreate) SetProcessingStatus(v string) *RegulationDocumentCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableProcessingStatus(v *string) *RegulationDocumentCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *RegulationDocumentCreate) SetStateCode(v string) *RegulationDocumentCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetRegulationYear sets the "regulation_year" field.
func (_c *RegulationDocumentCreate) SetRegulationYear(v int) *RegulationDocumentCreate {
	_c.mutation.SetRegulationYear(v)
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *RegulationDocumentCreate) SetExtractionError(v string) *RegulationDocumentCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableExtractionError(v *string) *RegulationDocumentCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetStorageURL sets the "storage_url" field.
func (_c *RegulationDocumentCreate) SetStorageURL(v string) *RegulationDocumentCreate {
	_c.mutation.SetStorageURL(v)
	return _c
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableStorageURL(v *string) *RegulationDocumentCreate {
	if v != nil {
		_c.SetStorageURL(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *RegulationDocumentCreate) SetUploadedAt(v time.Time) *RegulationDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableUploadedAt(v *time.Time) *RegulationDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *RegulationDocumentCreate) SetProcessedAt(v time.Time) *RegulationDocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableProcessedAt(v *time.Time) *RegulationDocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RegulationDocumentCreate) SetUpdatedAt(v time.Time) *RegulationDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableUpdatedAt(v *time.Time) *RegulationDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RegulationDocumentCreate) SetID(v uuid.UUID) *RegulationDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RegulationDocumentCreate) SetNillableID(v *uuid.UUID) *RegulationDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_c *RegulationDocumentCreate) AddRegulationIDs(ids ...uuid.UUID) *RegulationDocumentCreate {
	_c.mutation.AddRegulationIDs(ids...)
	return _c
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_c *RegulationDocumentCreate) AddRegulations(v ...*FishingRegulation) *RegulationDocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRegulationIDs(ids...)
}

// Mutation returns the RegulationDocumentMutation object of the builder.
func (_c *RegulationDocumentCreate) Mutation() *RegulationDocumentMutation {
	return _c.mutation
}

// Save creates the RegulationDocument in the database.
func (_c *RegulationDocumentCreate) Save(ctx context.Context) (*RegulationDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegulationDocumentCreate) SaveX(ctx context.Context) *RegulationDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegulationDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegulationDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegulationDocumentCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := regulationdocument.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := regulationdocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := regulationdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := regulationdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegulationDocumentCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "RegulationDocument.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := regulationdocument.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "RegulationDocument.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := regulationdocument.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "RegulationDocument.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := regulationdocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "RegulationDocument.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := regulationdocument.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "RegulationDocument.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := regulationdocument.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegulationYear(); !ok {
		return &ValidationError{Name: "regulation_year", err: errors.New(`ent: missing required field "RegulationDocument.regulation_year"`)}
	}
	if v, ok := _c.mutation.RegulationYear(); ok {
		if err := regulationdocument.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "RegulationDocument.regulation_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "RegulationDocument.uploaded_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RegulationDocument.updated_at"`)}
	}
	return nil
}

func (_c *RegulationDocumentCreate) sqlSave(ctx context.Context) (*RegulationDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RegulationDocumentCreate) createSpec() (*RegulationDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &RegulationDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(regulationdocument.Table, sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(regulationdocument.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(regulationdocument.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(regulationdocument.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(regulationdocument.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(regulationdocument.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.RegulationYear(); ok {
		_spec.SetField(regulationdocument.FieldRegulationYear, field.TypeInt, value)
		_node.RegulationYear = value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(regulationdocument.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.StorageURL(); ok {
		_spec.SetField(regulationdocument.FieldStorageURL, field.TypeString, value)
		_node.StorageURL = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(regulationdocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(regulationdocument.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(regulationdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RegulationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RegulationDocumentCreateBulk is the builder for creating many RegulationDocument entities in bulk.
type RegulationDocumentCreateBulk struct {
	config
	err      error
	builders []*RegulationDocumentCreate
}

// Save creates the RegulationDocument entities in the database.
func (_c *RegulationDocumentCreateBulk) Save(ctx context.Context) ([]*RegulationDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegulationDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegulationDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RegulationDocumentCreateBulk) SaveX(ctx context.Context) []*RegulationDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegulationDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegulationDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
