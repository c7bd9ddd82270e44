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
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// WaterBodyCreate is the builder for creating a WaterBody entity.
type WaterBodyCreate struct {
	config
	mutation *WaterBodyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WaterBodyCreate) SetName(v string) *WaterBodyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *WaterBodyCreate) SetNormalizedName(v string) *WaterBodyCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetWaterBodyType sets the "water_body_type" field.
func (_c *WaterBodyCreate) SetWaterBodyType(v string) *WaterBodyCreate {
	_c.mutation.SetWaterBodyType(v)
	return _c
}

// SetNillableWaterBodyType sets the "water_body_type" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableWaterBodyType(v *string) *WaterBodyCreate {
	if v != nil {
		_c.SetWaterBodyType(*v)
	}
	return _c
}

// SetStateCode sets the "state_code" field.
func (_c *WaterBodyCreate) SetStateCode(v string) *WaterBodyCreate {
	_c.mutation.SetStateCode(v)
	return _c
}

// SetCounty sets the "county" field.
func (_c *WaterBodyCreate) SetCounty(v string) *WaterBodyCreate {
	_c.mutation.SetCounty(v)
	return _c
}

// SetNillableCounty sets the "county" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableCounty(v *string) *WaterBodyCreate {
	if v != nil {
		_c.SetCounty(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WaterBodyCreate) SetIsActive(v bool) *WaterBodyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableIsActive(v *bool) *WaterBodyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WaterBodyCreate) SetCreatedAt(v time.Time) *WaterBodyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableCreatedAt(v *time.Time) *WaterBodyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WaterBodyCreate) SetUpdatedAt(v time.Time) *WaterBodyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableUpdatedAt(v *time.Time) *WaterBodyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WaterBodyCreate) SetID(v uuid.UUID) *WaterBodyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WaterBodyCreate) SetNillableID(v *uuid.UUID) *WaterBodyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_c *WaterBodyCreate) AddRegulationIDs(ids ...uuid.UUID) *WaterBodyCreate {
	_c.mutation.AddRegulationIDs(ids...)
	return _c
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_c *WaterBodyCreate) AddRegulations(v ...*FishingRegulation) *WaterBodyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRegulationIDs(ids...)
}

// Mutation returns the WaterBodyMutation object of the builder.
func (_c *WaterBodyCreate) Mutation() *WaterBodyMutation {
	return _c.mutation
}

// Save creates the WaterBody in the database.
func (_c *WaterBodyCreate) Save(ctx context.Context) (*WaterBody, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WaterBodyCreate) SaveX(ctx context.Context) *WaterBody {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaterBodyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaterBodyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WaterBodyCreate) defaults() {
	if _, ok := _c.mutation.WaterBodyType(); !ok {
		v := waterbody.DefaultWaterBodyType
		_c.mutation.SetWaterBodyType(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := waterbody.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := waterbody.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := waterbody.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := waterbody.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WaterBodyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WaterBody.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := waterbody.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "WaterBody.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := waterbody.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "WaterBody.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WaterBodyType(); !ok {
		return &ValidationError{Name: "water_body_type", err: errors.New(`ent: missing required field "WaterBody.water_body_type"`)}
	}
	if v, ok := _c.mutation.WaterBodyType(); ok {
		if err := waterbody.WaterBodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "water_body_type", err: fmt.Errorf(`ent: validator failed for field "WaterBody.water_body_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateCode(); !ok {
		return &ValidationError{Name: "state_code", err: errors.New(`ent: missing required field "WaterBody.state_code"`)}
	}
	if v, ok := _c.mutation.StateCode(); ok {
		if err := waterbody.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "WaterBody.state_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WaterBody.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WaterBody.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WaterBody.updated_at"`)}
	}
	return nil
}

func (_c *WaterBodyCreate) sqlSave(ctx context.Context) (*WaterBody, error) {
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

func (_c *WaterBodyCreate) createSpec() (*WaterBody, *sqlgraph.CreateSpec) {
	var (
		_node = &WaterBody{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(waterbody.Table, sqlgraph.NewFieldSpec(waterbody.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(waterbody.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(waterbody.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.WaterBodyType(); ok {
		_spec.SetField(waterbody.FieldWaterBodyType, field.TypeString, value)
		_node.WaterBodyType = value
	}
	if value, ok := _c.mutation.StateCode(); ok {
		_spec.SetField(waterbody.FieldStateCode, field.TypeString, value)
		_node.StateCode = value
	}
	if value, ok := _c.mutation.County(); ok {
		_spec.SetField(waterbody.FieldCounty, field.TypeString, value)
		_node.County = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(waterbody.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(waterbody.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(waterbody.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RegulationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WaterBodyCreateBulk is the builder for creating many WaterBody entities in bulk.
type WaterBodyCreateBulk struct {
	config
	err      error
	builders []*WaterBodyCreate
}

// Save creates the WaterBody entities in the database.
func (_c *WaterBodyCreateBulk) Save(ctx context.Context) ([]*WaterBody, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WaterBody, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WaterBodyMutation)
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
func (_c *WaterBodyCreateBulk) SaveX(ctx context.Context) []*WaterBody {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaterBodyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaterBodyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
