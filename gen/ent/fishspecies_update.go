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
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// FishSpeciesUpdate is the builder for updating FishSpecies entities.
type FishSpeciesUpdate struct {
	config
	hooks    []Hook
	mutation *FishSpeciesMutation
}

// Where appends a list predicates to the FishSpeciesUpdate builder.
func (_u *FishSpeciesUpdate) Where(ps ...predicate.FishSpecies) *FishSpeciesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommonName sets the "common_name" field.
func (_u *FishSpeciesUpdate) SetCommonName(v string) *FishSpeciesUpdate {
	_u.mutation.SetCommonName(v)
	return _u
}

// SetNillableCommonName sets the "common_name" field if the given value is not nil.
func (_u *FishSpeciesUpdate) SetNillableCommonName(v *string) *FishSpeciesUpdate {
	if v != nil {
		_u.SetCommonName(*v)
	}
	return _u
}

// SetScientificName sets the "scientific_name" field.
func (_u *FishSpeciesUpdate) SetScientificName(v string) *FishSpeciesUpdate {
	_u.mutation.SetScientificName(v)
	return _u
}

// SetNillableScientificName sets the "scientific_name" field if the given value is not nil.
func (_u *FishSpeciesUpdate) SetNillableScientificName(v *string) *FishSpeciesUpdate {
	if v != nil {
		_u.SetScientificName(*v)
	}
	return _u
}

// ClearScientificName clears the value of the "scientific_name" field.
func (_u *FishSpeciesUpdate) ClearScientificName() *FishSpeciesUpdate {
	_u.mutation.ClearScientificName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FishSpeciesUpdate) SetIsActive(v bool) *FishSpeciesUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FishSpeciesUpdate) SetNillableIsActive(v *bool) *FishSpeciesUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FishSpeciesUpdate) SetCreatedAt(v time.Time) *FishSpeciesUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FishSpeciesUpdate) SetNillableCreatedAt(v *time.Time) *FishSpeciesUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *FishSpeciesUpdate) AddRegulationIDs(ids ...uuid.UUID) *FishSpeciesUpdate {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *FishSpeciesUpdate) AddRegulations(v ...*FishingRegulation) *FishSpeciesUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the FishSpeciesMutation object of the builder.
func (_u *FishSpeciesUpdate) Mutation() *FishSpeciesMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *FishSpeciesUpdate) ClearRegulations() *FishSpeciesUpdate {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *FishSpeciesUpdate) RemoveRegulationIDs(ids ...uuid.UUID) *FishSpeciesUpdate {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *FishSpeciesUpdate) RemoveRegulations(v ...*FishingRegulation) *FishSpeciesUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FishSpeciesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FishSpeciesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FishSpeciesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FishSpeciesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FishSpeciesUpdate) check() error {
	if v, ok := _u.mutation.CommonName(); ok {
		if err := fishspecies.CommonNameValidator(v); err != nil {
			return &ValidationError{Name: "common_name", err: fmt.Errorf(`ent: validator failed for field "FishSpecies.common_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FishSpeciesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fishspecies.Table, fishspecies.Columns, sqlgraph.NewFieldSpec(fishspecies.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommonName(); ok {
		_spec.SetField(fishspecies.FieldCommonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScientificName(); ok {
		_spec.SetField(fishspecies.FieldScientificName, field.TypeString, value)
	}
	if _u.mutation.ScientificNameCleared() {
		_spec.ClearField(fishspecies.FieldScientificName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fishspecies.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fishspecies.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
			err = &NotFoundError{fishspecies.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FishSpeciesUpdateOne is the builder for updating a single FishSpecies entity.
type FishSpeciesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FishSpeciesMutation
}

// SetCommonName sets the "common_name" field.
func (_u *FishSpeciesUpdateOne) SetCommonName(v string) *FishSpeciesUpdateOne {
	_u.mutation.SetCommonName(v)
	return _u
}

// SetNillableCommonName sets the "common_name" field if the given value is not nil.
func (_u *FishSpeciesUpdateOne) SetNillableCommonName(v *string) *FishSpeciesUpdateOne {
	if v != nil {
		_u.SetCommonName(*v)
	}
	return _u
}

// SetScientificName sets the "scientific_name" field.
func (_u *FishSpeciesUpdateOne) SetScientificName(v string) *FishSpeciesUpdateOne {
	_u.mutation.SetScientificName(v)
	return _u
}

// SetNillableScientificName sets the "scientific_name" field if the given value is not nil.
func (_u *FishSpeciesUpdateOne) SetNillableScientificName(v *string) *FishSpeciesUpdateOne {
	if v != nil {
		_u.SetScientificName(*v)
	}
	return _u
}

// ClearScientificName clears the value of the "scientific_name" field.
func (_u *FishSpeciesUpdateOne) ClearScientificName() *FishSpeciesUpdateOne {
	_u.mutation.ClearScientificName()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FishSpeciesUpdateOne) SetIsActive(v bool) *FishSpeciesUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FishSpeciesUpdateOne) SetNillableIsActive(v *bool) *FishSpeciesUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FishSpeciesUpdateOne) SetCreatedAt(v time.Time) *FishSpeciesUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FishSpeciesUpdateOne) SetNillableCreatedAt(v *time.Time) *FishSpeciesUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *FishSpeciesUpdateOne) AddRegulationIDs(ids ...uuid.UUID) *FishSpeciesUpdateOne {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *FishSpeciesUpdateOne) AddRegulations(v ...*FishingRegulation) *FishSpeciesUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the FishSpeciesMutation object of the builder.
func (_u *FishSpeciesUpdateOne) Mutation() *FishSpeciesMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *FishSpeciesUpdateOne) ClearRegulations() *FishSpeciesUpdateOne {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *FishSpeciesUpdateOne) RemoveRegulationIDs(ids ...uuid.UUID) *FishSpeciesUpdateOne {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *FishSpeciesUpdateOne) RemoveRegulations(v ...*FishingRegulation) *FishSpeciesUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Where appends a list predicates to the FishSpeciesUpdate builder.
func (_u *FishSpeciesUpdateOne) Where(ps ...predicate.FishSpecies) *FishSpeciesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FishSpeciesUpdateOne) Select(field string, fields ...string) *FishSpeciesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FishSpecies entity.
func (_u *FishSpeciesUpdateOne) Save(ctx context.Context) (*FishSpecies, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FishSpeciesUpdateOne) SaveX(ctx context.Context) *FishSpecies {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FishSpeciesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FishSpeciesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FishSpeciesUpdateOne) check() error {
	if v, ok := _u.mutation.CommonName(); ok {
		if err := fishspecies.CommonNameValidator(v); err != nil {
			return &ValidationError{Name: "common_name", err: fmt.Errorf(`ent: validator failed for field "FishSpecies.common_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FishSpeciesUpdateOne) sqlSave(ctx context.Context) (_node *FishSpecies, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fishspecies.Table, fishspecies.Columns, sqlgraph.NewFieldSpec(fishspecies.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FishSpecies.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fishspecies.FieldID)
		for _, f := range fields {
			if !fishspecies.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fishspecies.FieldID {
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
	if value, ok := _u.mutation.CommonName(); ok {
		_spec.SetField(fishspecies.FieldCommonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScientificName(); ok {
		_spec.SetField(fishspecies.FieldScientificName, field.TypeString, value)
	}
	if _u.mutation.ScientificNameCleared() {
		_spec.ClearField(fishspecies.FieldScientificName, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fishspecies.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fishspecies.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
			Table:   fishspecies.RegulationsTable,
			Columns: []string{fishspecies.RegulationsColumn},
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
	_node = &FishSpecies{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fishspecies.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
