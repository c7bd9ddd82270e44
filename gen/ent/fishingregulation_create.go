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
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// FishingRegulationCreate is the builder for creating a FishingRegulation entity.
type FishingRegulationCreate struct {
	config
	mutation *FishingRegulationMutation
	hooks    []Hook
}

// SetWaterBodyID sets the "water_body_id" field.
func (_c *FishingRegulationCreate) SetWaterBodyID(v uuid.UUID) *FishingRegulationCreate {
	_c.mutation.SetWaterBodyID(v)
	return _c
}

// SetSpeciesID sets the "species_id" field.
func (_c *FishingRegulationCreate) SetSpeciesID(v uuid.UUID) *FishingRegulationCreate {
	_c.mutation.SetSpeciesID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *FishingRegulationCreate) SetDocumentID(v uuid.UUID) *FishingRegulationCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableDocumentID(v *uuid.UUID) *FishingRegulationCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetRegulationYear sets the "regulation_year" field.
func (_c *FishingRegulationCreate) SetRegulationYear(v int) *FishingRegulationCreate {
	_c.mutation.SetRegulationYear(v)
	return _c
}

// SetRegulationType sets the "regulation_type" field.
func (_c *FishingRegulationCreate) SetRegulationType(v string) *FishingRegulationCreate {
	_c.mutation.SetRegulationType(v)
	return _c
}

// SetNillableRegulationType sets the "regulation_type" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableRegulationType(v *string) *FishingRegulationCreate {
	if v != nil {
		_c.SetRegulationType(*v)
	}
	return _c
}

// SetEffectiveDate sets the "effective_date" field.
func (_c *FishingRegulationCreate) SetEffectiveDate(v time.Time) *FishingRegulationCreate {
	_c.mutation.SetEffectiveDate(v)
	return _c
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableEffectiveDate(v *time.Time) *FishingRegulationCreate {
	if v != nil {
		_c.SetEffectiveDate(*v)
	}
	return _c
}

// SetExpirationDate sets the "expiration_date" field.
func (_c *FishingRegulationCreate) SetExpirationDate(v time.Time) *FishingRegulationCreate {
	_c.mutation.SetExpirationDate(v)
	return _c
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableExpirationDate(v *time.Time) *FishingRegulationCreate {
	if v != nil {
		_c.SetExpirationDate(*v)
	}
	return _c
}

// SetDailyLimit sets the "daily_limit" field.
func (_c *FishingRegulationCreate) SetDailyLimit(v int) *FishingRegulationCreate {
	_c.mutation.SetDailyLimit(v)
	return _c
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableDailyLimit(v *int) *FishingRegulationCreate {
	if v != nil {
		_c.SetDailyLimit(*v)
	}
	return _c
}

// SetPossessionLimit sets the "possession_limit" field.
func (_c *FishingRegulationCreate) SetPossessionLimit(v int) *FishingRegulationCreate {
	_c.mutation.SetPossessionLimit(v)
	return _c
}

// SetNillablePossessionLimit sets the "possession_limit" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillablePossessionLimit(v *int) *FishingRegulationCreate {
	if v != nil {
		_c.SetPossessionLimit(*v)
	}
	return _c
}

// SetMinimumSize sets the "minimum_size" field.
func (_c *FishingRegulationCreate) SetMinimumSize(v float64) *FishingRegulationCreate {
	_c.mutation.SetMinimumSize(v)
	return _c
}

// SetNillableMinimumSize sets the "minimum_size" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableMinimumSize(v *float64) *FishingRegulationCreate {
	if v != nil {
		_c.SetMinimumSize(*v)
	}
	return _c
}

// SetMaximumSize sets the "maximum_size" field.
func (_c *FishingRegulationCreate) SetMaximumSize(v float64) *FishingRegulationCreate {
	_c.mutation.SetMaximumSize(v)
	return _c
}

// SetNillableMaximumSize sets the "maximum_size" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableMaximumSize(v *float64) *FishingRegulationCreate {
	if v != nil {
		_c.SetMaximumSize(*v)
	}
	return _c
}

// SetProtectedSlotMin sets the "protected_slot_min" field.
func (_c *FishingRegulationCreate) SetProtectedSlotMin(v float64) *FishingRegulationCreate {
	_c.mutation.SetProtectedSlotMin(v)
	return _c
}

// SetNillableProtectedSlotMin sets the "protected_slot_min" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableProtectedSlotMin(v *float64) *FishingRegulationCreate {
	if v != nil {
		_c.SetProtectedSlotMin(*v)
	}
	return _c
}

// SetProtectedSlotMax sets the "protected_slot_max" field.
func (_c *FishingRegulationCreate) SetProtectedSlotMax(v float64) *FishingRegulationCreate {
	_c.mutation.SetProtectedSlotMax(v)
	return _c
}

// SetNillableProtectedSlotMax sets the "protected_slot_max" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableProtectedSlotMax(v *float64) *FishingRegulationCreate {
	if v != nil {
		_c.SetProtectedSlotMax(*v)
	}
	return _c
}

// SetProtectedSlotExceptions sets the "protected_slot_exceptions" field.
func (_c *FishingRegulationCreate) SetProtectedSlotExceptions(v int) *FishingRegulationCreate {
	_c.mutation.SetProtectedSlotExceptions(v)
	return _c
}

// SetNillableProtectedSlotExceptions sets the "protected_slot_exceptions" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableProtectedSlotExceptions(v *int) *FishingRegulationCreate {
	if v != nil {
		_c.SetProtectedSlotExceptions(*v)
	}
	return _c
}

// SetSeasonOpen sets the "season_open" field.
func (_c *FishingRegulationCreate) SetSeasonOpen(v string) *FishingRegulationCreate {
	_c.mutation.SetSeasonOpen(v)
	return _c
}

// SetNillableSeasonOpen sets the "season_open" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableSeasonOpen(v *string) *FishingRegulationCreate {
	if v != nil {
		_c.SetSeasonOpen(*v)
	}
	return _c
}

// SetSeasonClose sets the "season_close" field.
func (_c *FishingRegulationCreate) SetSeasonClose(v string) *FishingRegulationCreate {
	_c.mutation.SetSeasonClose(v)
	return _c
}

// SetNillableSeasonClose sets the "season_close" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableSeasonClose(v *string) *FishingRegulationCreate {
	if v != nil {
		_c.SetSeasonClose(*v)
	}
	return _c
}

// SetYearRound sets the "year_round" field.
func (_c *FishingRegulationCreate) SetYearRound(v bool) *FishingRegulationCreate {
	_c.mutation.SetYearRound(v)
	return _c
}

// SetNillableYearRound sets the "year_round" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableYearRound(v *bool) *FishingRegulationCreate {
	if v != nil {
		_c.SetYearRound(*v)
	}
	return _c
}

// SetCatchAndRelease sets the "catch_and_release" field.
func (_c *FishingRegulationCreate) SetCatchAndRelease(v bool) *FishingRegulationCreate {
	_c.mutation.SetCatchAndRelease(v)
	return _c
}

// SetNillableCatchAndRelease sets the "catch_and_release" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableCatchAndRelease(v *bool) *FishingRegulationCreate {
	if v != nil {
		_c.SetCatchAndRelease(*v)
	}
	return _c
}

// SetSpecialNotes sets the "special_notes" field.
func (_c *FishingRegulationCreate) SetSpecialNotes(v string) *FishingRegulationCreate {
	_c.mutation.SetSpecialNotes(v)
	return _c
}

// SetNillableSpecialNotes sets the "special_notes" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableSpecialNotes(v *string) *FishingRegulationCreate {
	if v != nil {
		_c.SetSpecialNotes(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FishingRegulationCreate) SetIsActive(v bool) *FishingRegulationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableIsActive(v *bool) *FishingRegulationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *FishingRegulationCreate) SetNeedsReview(v bool) *FishingRegulationCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableNeedsReview(v *bool) *FishingRegulationCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FishingRegulationCreate) SetCreatedAt(v time.Time) *FishingRegulationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableCreatedAt(v *time.Time) *FishingRegulationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FishingRegulationCreate) SetUpdatedAt(v time.Time) *FishingRegulationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableUpdatedAt(v *time.Time) *FishingRegulationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FishingRegulationCreate) SetID(v uuid.UUID) *FishingRegulationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FishingRegulationCreate) SetNillableID(v *uuid.UUID) *FishingRegulationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWaterBody sets the "water_body" edge to the WaterBody entity.
func (_c *FishingRegulationCreate) SetWaterBody(v *WaterBody) *FishingRegulationCreate {
	return _c.SetWaterBodyID(v.ID)
}

// SetSpecies sets the "species" edge to the FishSpecies entity.
func (_c *FishingRegulationCreate) SetSpecies(v *FishSpecies) *FishingRegulationCreate {
	return _c.SetSpeciesID(v.ID)
}

// SetDocument sets the "document" edge to the RegulationDocument entity.
func (_c *FishingRegulationCreate) SetDocument(v *RegulationDocument) *FishingRegulationCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the FishingRegulationMutation object of the builder.
func (_c *FishingRegulationCreate) Mutation() *FishingRegulationMutation {
	return _c.mutation
}

// Save creates the FishingRegulation in the database.
func (_c *FishingRegulationCreate) Save(ctx context.Context) (*FishingRegulation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FishingRegulationCreate) SaveX(ctx context.Context) *FishingRegulation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FishingRegulationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FishingRegulationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FishingRegulationCreate) defaults() {
	if _, ok := _c.mutation.RegulationType(); !ok {
		v := fishingregulation.DefaultRegulationType
		_c.mutation.SetRegulationType(v)
	}
	if _, ok := _c.mutation.ProtectedSlotExceptions(); !ok {
		v := fishingregulation.DefaultProtectedSlotExceptions
		_c.mutation.SetProtectedSlotExceptions(v)
	}
	if _, ok := _c.mutation.YearRound(); !ok {
		v := fishingregulation.DefaultYearRound
		_c.mutation.SetYearRound(v)
	}
	if _, ok := _c.mutation.CatchAndRelease(); !ok {
		v := fishingregulation.DefaultCatchAndRelease
		_c.mutation.SetCatchAndRelease(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := fishingregulation.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := fishingregulation.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fishingregulation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fishingregulation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fishingregulation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FishingRegulationCreate) check() error {
	if _, ok := _c.mutation.WaterBodyID(); !ok {
		return &ValidationError{Name: "water_body_id", err: errors.New(`ent: missing required field "FishingRegulation.water_body_id"`)}
	}
	if _, ok := _c.mutation.SpeciesID(); !ok {
		return &ValidationError{Name: "species_id", err: errors.New(`ent: missing required field "FishingRegulation.species_id"`)}
	}
	if _, ok := _c.mutation.RegulationYear(); !ok {
		return &ValidationError{Name: "regulation_year", err: errors.New(`ent: missing required field "FishingRegulation.regulation_year"`)}
	}
	if v, ok := _c.mutation.RegulationYear(); ok {
		if err := fishingregulation.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegulationType(); !ok {
		return &ValidationError{Name: "regulation_type", err: errors.New(`ent: missing required field "FishingRegulation.regulation_type"`)}
	}
	if v, ok := _c.mutation.RegulationType(); ok {
		if err := fishingregulation.RegulationTypeValidator(v); err != nil {
			return &ValidationError{Name: "regulation_type", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProtectedSlotExceptions(); !ok {
		return &ValidationError{Name: "protected_slot_exceptions", err: errors.New(`ent: missing required field "FishingRegulation.protected_slot_exceptions"`)}
	}
	if _, ok := _c.mutation.YearRound(); !ok {
		return &ValidationError{Name: "year_round", err: errors.New(`ent: missing required field "FishingRegulation.year_round"`)}
	}
	if _, ok := _c.mutation.CatchAndRelease(); !ok {
		return &ValidationError{Name: "catch_and_release", err: errors.New(`ent: missing required field "FishingRegulation.catch_and_release"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FishingRegulation.is_active"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "FishingRegulation.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FishingRegulation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FishingRegulation.updated_at"`)}
	}
	if len(_c.mutation.WaterBodyIDs()) == 0 {
		return &ValidationError{Name: "water_body", err: errors.New(`ent: missing required edge "FishingRegulation.water_body"`)}
	}
	if len(_c.mutation.SpeciesIDs()) == 0 {
		return &ValidationError{Name: "species", err: errors.New(`ent: missing required edge "FishingRegulation.species"`)}
	}
	return nil
}

func (_c *FishingRegulationCreate) sqlSave(ctx context.Context) (*FishingRegulation, error) {
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

func (_c *FishingRegulationCreate) createSpec() (*FishingRegulation, *sqlgraph.CreateSpec) {
	var (
		_node = &FishingRegulation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fishingregulation.Table, sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RegulationYear(); ok {
		_spec.SetField(fishingregulation.FieldRegulationYear, field.TypeInt, value)
		_node.RegulationYear = value
	}
	if value, ok := _c.mutation.RegulationType(); ok {
		_spec.SetField(fishingregulation.FieldRegulationType, field.TypeString, value)
		_node.RegulationType = value
	}
	if value, ok := _c.mutation.EffectiveDate(); ok {
		_spec.SetField(fishingregulation.FieldEffectiveDate, field.TypeTime, value)
		_node.EffectiveDate = &value
	}
	if value, ok := _c.mutation.ExpirationDate(); ok {
		_spec.SetField(fishingregulation.FieldExpirationDate, field.TypeTime, value)
		_node.ExpirationDate = &value
	}
	if value, ok := _c.mutation.DailyLimit(); ok {
		_spec.SetField(fishingregulation.FieldDailyLimit, field.TypeInt, value)
		_node.DailyLimit = &value
	}
	if value, ok := _c.mutation.PossessionLimit(); ok {
		_spec.SetField(fishingregulation.FieldPossessionLimit, field.TypeInt, value)
		_node.PossessionLimit = &value
	}
	if value, ok := _c.mutation.MinimumSize(); ok {
		_spec.SetField(fishingregulation.FieldMinimumSize, field.TypeFloat64, value)
		_node.MinimumSize = &value
	}
	if value, ok := _c.mutation.MaximumSize(); ok {
		_spec.SetField(fishingregulation.FieldMaximumSize, field.TypeFloat64, value)
		_node.MaximumSize = &value
	}
	if value, ok := _c.mutation.ProtectedSlotMin(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64, value)
		_node.ProtectedSlotMin = &value
	}
	if value, ok := _c.mutation.ProtectedSlotMax(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64, value)
		_node.ProtectedSlotMax = &value
	}
	if value, ok := _c.mutation.ProtectedSlotExceptions(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotExceptions, field.TypeInt, value)
		_node.ProtectedSlotExceptions = value
	}
	if value, ok := _c.mutation.SeasonOpen(); ok {
		_spec.SetField(fishingregulation.FieldSeasonOpen, field.TypeString, value)
		_node.SeasonOpen = &value
	}
	if value, ok := _c.mutation.SeasonClose(); ok {
		_spec.SetField(fishingregulation.FieldSeasonClose, field.TypeString, value)
		_node.SeasonClose = &value
	}
	if value, ok := _c.mutation.YearRound(); ok {
		_spec.SetField(fishingregulation.FieldYearRound, field.TypeBool, value)
		_node.YearRound = value
	}
	if value, ok := _c.mutation.CatchAndRelease(); ok {
		_spec.SetField(fishingregulation.FieldCatchAndRelease, field.TypeBool, value)
		_node.CatchAndRelease = value
	}
	if value, ok := _c.mutation.SpecialNotes(); ok {
		_spec.SetField(fishingregulation.FieldSpecialNotes, field.TypeString, value)
		_node.SpecialNotes = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(fishingregulation.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(fishingregulation.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fishingregulation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fishingregulation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WaterBodyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fishingregulation.WaterBodyTable,
			Columns: []string{fishingregulation.WaterBodyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waterbody.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WaterBodyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpeciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fishingregulation.SpeciesTable,
			Columns: []string{fishingregulation.SpeciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fishspecies.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpeciesID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fishingregulation.DocumentTable,
			Columns: []string{fishingregulation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FishingRegulationCreateBulk is the builder for creating many FishingRegulation entities in bulk.
type FishingRegulationCreateBulk struct {
	config
	err      error
	builders []*FishingRegulationCreate
}

// Save creates the FishingRegulation entities in the database.
func (_c *FishingRegulationCreateBulk) Save(ctx context.Context) ([]*FishingRegulation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FishingRegulation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FishingRegulationMutation)
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
func (_c *FishingRegulationCreateBulk) SaveX(ctx context.Context) []*FishingRegulation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FishingRegulationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FishingRegulationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
