// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
)

// RegulationDocumentDelete is the builder for deleting a RegulationDocument entity.
type RegulationDocumentDelete struct {
	config
	hooks    []Hook
	mutation *RegulationDocumentMutation
}

// Where appends a list predicates to the RegulationDocumentDelete builder.
func (_d *RegulationDocumentDelete) Where(ps ...predicate.RegulationDocument) *RegulationDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RegulationDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegulationDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RegulationDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(regulationdocument.Table, sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RegulationDocumentDeleteOne is the builder for deleting a single RegulationDocument entity.
type RegulationDocumentDeleteOne struct {
	_d *RegulationDocumentDelete
}

// Where appends a list predicates to the RegulationDocumentDelete builder.
func (_d *RegulationDocumentDeleteOne) Where(ps ...predicate.RegulationDocument) *RegulationDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RegulationDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{regulationdocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegulationDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
