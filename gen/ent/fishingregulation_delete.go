// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
)

// FishingRegulationDelete is the builder for deleting a FishingRegulation entity.
type FishingRegulationDelete struct {
	config
	hooks    []Hook
	mutation *FishingRegulationMutation
}

// Where appends a list predicates to the FishingRegulationDelete builder.
func (_d *FishingRegulationDelete) Where(ps ...predicate.FishingRegulation) *FishingRegulationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FishingRegulationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FishingRegulationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FishingRegulationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fishingregulation.Table, sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID))
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

// FishingRegulationDeleteOne is the builder for deleting a single FishingRegulation entity.
type FishingRegulationDeleteOne struct {
	_d *FishingRegulationDelete
}

// Where appends a list predicates to the FishingRegulationDelete builder.
func (_d *FishingRegulationDeleteOne) Where(ps ...predicate.FishingRegulation) *FishingRegulationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FishingRegulationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fishingregulation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FishingRegulationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
