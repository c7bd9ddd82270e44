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
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/google/uuid"
)

// FishSpeciesCreate is the builder for creating a FishSpecies entity.
type FishSpeciesCreate struct {
	config
	mutation *FishSpeciesMutation
	hooks    []Hook
}

// SetCommonName sets the "common_name" field.
func (_c *FishSpeciesCreate) SetCommonName(v string) *FishSpeciesCreate {
	_c.mutation.SetCommonName(v)
	return _c
}

// SetScientificName sets the "scientific_name" field.
func (_c *FishSpeciesCreate) SetScientificName(v string) *FishSpeciesCreate {
	_c.mutation.SetScientificName(v)
	return _c
}

// SetNillableScientificName sets the "scientific_name" field if the given value is not nil.
func (_c *FishSpeciesCreate) SetNillableScientificName(v *string) *FishSpeciesCreate {
	if v != nil {
		_c.SetScientificName(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FishSpeciesCreate) SetIsActive(v bool) *FishSpeciesCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FishSpeciesCreate) SetNillableIsActive(v *bool) *FishSpeciesCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FishSpeciesCreate) SetCreatedAt(v time.Time) *FishSpeciesCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FishSpeciesCreate) SetNillableCreatedAt(v *time.Time) *FishSpeciesCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FishSpeciesCreate) SetID(v uuid.UUID) *FishSpeciesCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FishSpeciesCreate) SetNillableID(v *uuid.UUID) *FishSpeciesCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by IDs.
func (_c *FishSpeciesCreate) AddRegulationIDs(ids ...uuid.UUID) *FishSpeciesCreate {
	_c.mutation.AddRegulationIDs(ids...)
	return _c
}

// AddRegulations adds the "regulations" edges to the FishingRegulation entity.
func (_c *FishSpeciesCreate) AddRegulations(v ...*FishingRegulation) *FishSpeciesCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRegulationIDs(ids...)
}

// Mutation returns the FishSpeciesMutation object of the builder.
func (_c *FishSpeciesCreate) Mutation() *FishSpeciesMutation {
	return _c.mutation
}

// Save creates the FishSpecies in the database.
func (_c *FishSpeciesCreate) Save(ctx context.Context) (*FishSpecies, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FishSpeciesCreate) SaveX(ctx context.Context) *FishSpecies {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FishSpeciesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FishSpeciesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FishSpeciesCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := fishspecies.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fishspecies.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fishspecies.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FishSpeciesCreate) check() error {
	if _, ok := _c.mutation.CommonName(); !ok {
		return &ValidationError{Name: "common_name", err: errors.New(`ent: missing required field "FishSpecies.common_name"`)}
	}
	if v, ok := _c.mutation.CommonName(); ok {
		if err := fishspecies.CommonNameValidator(v); err != nil {
			return &ValidationError{Name: "common_name", err: fmt.Errorf(`ent: validator failed for field "FishSpecies.common_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FishSpecies.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FishSpecies.created_at"`)}
	}
	return nil
}

func (_c *FishSpeciesCreate) sqlSave(ctx context.Context) (*FishSpecies, error) {
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

func (_c *FishSpeciesCreate) createSpec() (*FishSpecies, *sqlgraph.CreateSpec) {
	var (
		_node = &FishSpecies{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fishspecies.Table, sqlgraph.NewFieldSpec(fishspecies.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CommonName(); ok {
		_spec.SetField(fishspecies.FieldCommonName, field.TypeString, value)
		_node.CommonName = value
	}
	if value, ok := _c.mutation.ScientificName(); ok {
		_spec.SetField(fishspecies.FieldScientificName, field.TypeString, value)
		_node.ScientificName = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(fishspecies.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fishspecies.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RegulationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FishSpeciesCreateBulk is the builder for creating many FishSpecies entities in bulk.
type FishSpeciesCreateBulk struct {
	config
	err      error
	builders []*FishSpeciesCreate
}

// Save creates the FishSpecies entities in the database.
func (_c *FishSpeciesCreateBulk) Save(ctx context.Context) ([]*FishSpecies, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FishSpecies, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FishSpeciesMutation)
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
func (_c *FishSpeciesCreateBulk) SaveX(ctx context.Context) []*FishSpecies {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FishSpeciesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FishSpeciesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
