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
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// WaterBodyUpdate is the builder for updating WaterBody entities.
type WaterBodyUpdate struct {
	config
	hooks    []Hook
	mutation *WaterBodyMutation
}

// Where appends a list predicates to the WaterBodyUpdate builder.
func (_u *WaterBodyUpdate) Where(ps ...predicate.WaterBody) *WaterBodyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WaterBodyUpdate) SetName(v string) *WaterBodyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableName(v *string) *WaterBodyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *WaterBodyUpdate) SetNormalizedName(v string) *WaterBodyUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableNormalizedName(v *string) *WaterBodyUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetWaterBodyType sets the "water_body_type" field.
func (_u *WaterBodyUpdate) SetWaterBodyType(v string) *WaterBodyUpdate {
	_u.mutation.SetWaterBodyType(v)
	return _u
}

// SetNillableWaterBodyType sets the "water_body_type" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableWaterBodyType(v *string) *WaterBodyUpdate {
	if v != nil {
		_u.SetWaterBodyType(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *WaterBodyUpdate) SetStateCode(v string) *WaterBodyUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableStateCode(v *string) *WaterBodyUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetCounty sets the "county" field.
func (_u *WaterBodyUpdate) SetCounty(v string) *WaterBodyUpdate {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableCounty(v *string) *WaterBodyUpdate {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *WaterBodyUpdate) ClearCounty() *WaterBodyUpdate {
	_u.mutation.ClearCounty()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WaterBodyUpdate) SetIsActive(v bool) *WaterBodyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableIsActive(v *bool) *WaterBodyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WaterBodyUpdate) SetCreatedAt(v time.Time) *WaterBodyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WaterBodyUpdate) SetNillableCreatedAt(v *time.Time) *WaterBodyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WaterBodyUpdate) SetUpdatedAt(v time.Time) *WaterBodyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *WaterBodyUpdate) AddRegulationIDs(ids ...uuid.UUID) *WaterBodyUpdate {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *WaterBodyUpdate) AddRegulations(v ...*FishingRegulation) *WaterBodyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the WaterBodyMutation object of the builder.
func (_u *WaterBodyUpdate) Mutation() *WaterBodyMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *WaterBodyUpdate) ClearRegulations() *WaterBodyUpdate {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *WaterBodyUpdate) RemoveRegulationIDs(ids ...uuid.UUID) *WaterBodyUpdate {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *WaterBodyUpdate) RemoveRegulations(v ...*FishingRegulation) *WaterBodyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WaterBodyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaterBodyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WaterBodyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaterBodyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WaterBodyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := waterbody.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaterBodyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := waterbody.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := waterbody.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaterBodyType(); ok {
		if err := waterbody.WaterBodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "water_body_type", err: fmt.Errorf(`ent: validator failed for field "WaterBody.water_body_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateCode(); ok {
		if err := waterbody.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "WaterBody.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *WaterBodyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waterbody.Table, waterbody.Columns, sqlgraph.NewFieldSpec(waterbody.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(waterbody.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(waterbody.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaterBodyType(); ok {
		_spec.SetField(waterbody.FieldWaterBodyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(waterbody.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(waterbody.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(waterbody.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(waterbody.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(waterbody.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(waterbody.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
			err = &NotFoundError{waterbody.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WaterBodyUpdateOne is the builder for updating a single WaterBody entity.
type WaterBodyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WaterBodyMutation
}

// SetName sets the "name" field.
func (_u *WaterBodyUpdateOne) SetName(v string) *WaterBodyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableName(v *string) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *WaterBodyUpdateOne) SetNormalizedName(v string) *WaterBodyUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableNormalizedName(v *string) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetWaterBodyType sets the "water_body_type" field.
func (_u *WaterBodyUpdateOne) SetWaterBodyType(v string) *WaterBodyUpdateOne {
	_u.mutation.SetWaterBodyType(v)
	return _u
}

// SetNillableWaterBodyType sets the "water_body_type" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableWaterBodyType(v *string) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetWaterBodyType(*v)
	}
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *WaterBodyUpdateOne) SetStateCode(v string) *WaterBodyUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableStateCode(v *string) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetCounty sets the "county" field.
func (_u *WaterBodyUpdateOne) SetCounty(v string) *WaterBodyUpdateOne {
	_u.mutation.SetCounty(v)
	return _u
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableCounty(v *string) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetCounty(*v)
	}
	return _u
}

// ClearCounty clears the value of the "county" field.
func (_u *WaterBodyUpdateOne) ClearCounty() *WaterBodyUpdateOne {
	_u.mutation.ClearCounty()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WaterBodyUpdateOne) SetIsActive(v bool) *WaterBodyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableIsActive(v *bool) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WaterBodyUpdateOne) SetCreatedAt(v time.Time) *WaterBodyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WaterBodyUpdateOne) SetNillableCreatedAt(v *time.Time) *WaterBodyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WaterBodyUpdateOne) SetUpdatedAt(v time.Time) *WaterBodyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_u *WaterBodyUpdateOne) AddRegulationIDs(ids ...uuid.UUID) *WaterBodyUpdateOne {
	_u.mutation.AddRegulationIDs(ids...)
	return _u
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_u *WaterBodyUpdateOne) AddRegulations(v ...*FishingRegulation) *WaterBodyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegulationIDs(ids...)
}

// Mutation returns the WaterBodyMutation object of the builder.
func (_u *WaterBodyUpdateOne) Mutation() *WaterBodyMutation {
	return _u.mutation
}

// ClearRegulations clears all "regulations" edges to the FishingRegulation entity.
func (_u *WaterBodyUpdateOne) ClearRegulations() *WaterBodyUpdateOne {
	_u.mutation.ClearRegulations()
	return _u
}

// RemoveRegulationIDs removes the "regulations" edge to FishingRegulation entities by IDs.
func (_u *WaterBodyUpdateOne) RemoveRegulationIDs(ids ...uuid.UUID) *WaterBodyUpdateOne {
	_u.mutation.RemoveRegulationIDs(ids...)
	return _u
}

// RemoveRegulations removes "regulations" edges to FishingRegulation entities.
func (_u *WaterBodyUpdateOne) RemoveRegulations(v ...*FishingRegulation) *WaterBodyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegulationIDs(ids...)
}

// Where appends a list predicates to the WaterBodyUpdate builder.
func (_u *WaterBodyUpdateOne) Where(ps ...predicate.WaterBody) *WaterBodyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WaterBodyUpdateOne) Select(field string, fields ...string) *WaterBodyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WaterBody entity.
func (_u *WaterBodyUpdateOne) Save(ctx context.Context) (*WaterBody, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaterBodyUpdateOne) SaveX(ctx context.Context) *WaterBody {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WaterBodyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaterBodyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WaterBodyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := waterbody.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaterBodyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := waterbody.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := waterbody.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaterBodyType(); ok {
		if err := waterbody.WaterBodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "water_body_type", err: fmt.Errorf(`ent: validator failed for field "WaterBody.water_body_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateCode(); ok {
		if err := waterbody.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "WaterBody.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *WaterBodyUpdateOne) sqlSave(ctx context.Context) (_node *WaterBody, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waterbody.Table, waterbody.Columns, sqlgraph.NewFieldSpec(waterbody.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WaterBody.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, waterbody.FieldID)
		for _, f := range fields {
			if !waterbody.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != waterbody.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(waterbody.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(waterbody.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaterBodyType(); ok {
		_spec.SetField(waterbody.FieldWaterBodyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(waterbody.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.County(); ok {
		_spec.SetField(waterbody.FieldCounty, field.TypeString, value)
	}
	if _u.mutation.CountyCleared() {
		_spec.ClearField(waterbody.FieldCounty, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(waterbody.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(waterbody.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(waterbody.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RegulationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
			Table:   waterbody.RegulationsTable,
			Columns: []string{waterbody.RegulationsColumn},
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
	_node = &WaterBody{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waterbody.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
