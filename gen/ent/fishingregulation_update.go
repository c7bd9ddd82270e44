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
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// FishingRegulationUpdate is the builder for updating FishingRegulation entities.
type FishingRegulationUpdate struct {
	config
	hooks    []Hook
	mutation *FishingRegulationMutation
}

// Where appends a list predicates to the FishingRegulationUpdate builder.
func (_u *FishingRegulationUpdate) Where(ps ...predicate.FishingRegulation) *FishingRegulationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWaterBodyID sets the "water_body_id" field.
func (_u *FishingRegulationUpdate) SetWaterBodyID(v uuid.UUID) *FishingRegulationUpdate {
	_u.mutation.SetWaterBodyID(v)
	return _u
}

// SetNillableWaterBodyID sets the "water_body_id" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableWaterBodyID(v *uuid.UUID) *FishingRegulationUpdate {
	if v != nil {
		_u.SetWaterBodyID(*v)
	}
	return _u
}

// SetSpeciesID sets the "species_id" field.
func (_u *FishingRegulationUpdate) SetSpeciesID(v uuid.UUID) *FishingRegulationUpdate {
	_u.mutation.SetSpeciesID(v)
	return _u
}

// SetNillableSpeciesID sets the "species_id" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableSpeciesID(v *uuid.UUID) *FishingRegulationUpdate {
	if v != nil {
		_u.SetSpeciesID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FishingRegulationUpdate) SetDocumentID(v uuid.UUID) *FishingRegulationUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableDocumentID(v *uuid.UUID) *FishingRegulationUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *FishingRegulationUpdate) ClearDocumentID() *FishingRegulationUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetRegulationYear sets the "regulation_year" field.
func (_u *FishingRegulationUpdate) SetRegulationYear(v int) *FishingRegulationUpdate {
	_u.mutation.ResetRegulationYear()
	_u.mutation.SetRegulationYear(v)
	return _u
}

// SetNillableRegulationYear sets the "regulation_year" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableRegulationYear(v *int) *FishingRegulationUpdate {
	if v != nil {
		_u.SetRegulationYear(*v)
	}
	return _u
}

// AddRegulationYear adds value to the "regulation_year" field.
func (_u *FishingRegulationUpdate) AddRegulationYear(v int) *FishingRegulationUpdate {
	_u.mutation.AddRegulationYear(v)
	return _u
}

// SetRegulationType sets the "regulation_type" field.
func (_u *FishingRegulationUpdate) SetRegulationType(v string) *FishingRegulationUpdate {
	_u.mutation.SetRegulationType(v)
	return _u
}

// SetNillableRegulationType sets the "regulation_type" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableRegulationType(v *string) *FishingRegulationUpdate {
	if v != nil {
		_u.SetRegulationType(*v)
	}
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *FishingRegulationUpdate) SetEffectiveDate(v time.Time) *FishingRegulationUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableEffectiveDate(v *time.Time) *FishingRegulationUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *FishingRegulationUpdate) ClearEffectiveDate() *FishingRegulationUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *FishingRegulationUpdate) SetExpirationDate(v time.Time) *FishingRegulationUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableExpirationDate(v *time.Time) *FishingRegulationUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *FishingRegulationUpdate) ClearExpirationDate() *FishingRegulationUpdate {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetDailyLimit sets the "daily_limit" field.
func (_u *FishingRegulationUpdate) SetDailyLimit(v int) *FishingRegulationUpdate {
	_u.mutation.ResetDailyLimit()
	_u.mutation.SetDailyLimit(v)
	return _u
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableDailyLimit(v *int) *FishingRegulationUpdate {
	if v != nil {
		_u.SetDailyLimit(*v)
	}
	return _u
}

// AddDailyLimit adds value to the "daily_limit" field.
func (_u *FishingRegulationUpdate) AddDailyLimit(v int) *FishingRegulationUpdate {
	_u.mutation.AddDailyLimit(v)
	return _u
}

// ClearDailyLimit clears the value of the "daily_limit" field.
func (_u *FishingRegulationUpdate) ClearDailyLimit() *FishingRegulationUpdate {
	_u.mutation.ClearDailyLimit()
	return _u
}

// SetPossessionLimit sets the "possession_limit" field.
func (_u *FishingRegulationUpdate) SetPossessionLimit(v int) *FishingRegulationUpdate {
	_u.mutation.ResetPossessionLimit()
	_u.mutation.SetPossessionLimit(v)
	return _u
}

// SetNillablePossessionLimit sets the "possession_limit" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillablePossessionLimit(v *int) *FishingRegulationUpdate {
	if v != nil {
		_u.SetPossessionLimit(*v)
	}
	return _u
}

// AddPossessionLimit adds value to the "possession_limit" field.
func (_u *FishingRegulationUpdate) AddPossessionLimit(v int) *FishingRegulationUpdate {
	_u.mutation.AddPossessionLimit(v)
	return _u
}

// ClearPossessionLimit clears the value of the "possession_limit" field.
func (_u *FishingRegulationUpdate) ClearPossessionLimit() *FishingRegulationUpdate {
	_u.mutation.ClearPossessionLimit()
	return _u
}

// SetMinimumSize sets the "minimum_size" field.
func (_u *FishingRegulationUpdate) SetMinimumSize(v float64) *FishingRegulationUpdate {
	_u.mutation.ResetMinimumSize()
	_u.mutation.SetMinimumSize(v)
	return _u
}

// SetNillableMinimumSize sets the "minimum_size" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableMinimumSize(v *float64) *FishingRegulationUpdate {
	if v != nil {
		_u.SetMinimumSize(*v)
	}
	return _u
}

// AddMinimumSize adds value to the "minimum_size" field.
func (_u *FishingRegulationUpdate) AddMinimumSize(v float64) *FishingRegulationUpdate {
	_u.mutation.AddMinimumSize(v)
	return _u
}

// ClearMinimumSize clears the value of the "minimum_size" field.
func (_u *FishingRegulationUpdate) ClearMinimumSize() *FishingRegulationUpdate {
	_u.mutation.ClearMinimumSize()
	return _u
}

// SetMaximumSize sets the "maximum_size" field.
func (_u *FishingRegulationUpdate) SetMaximumSize(v float64) *FishingRegulationUpdate {
	_u.mutation.ResetMaximumSize()
	_u.mutation.SetMaximumSize(v)
	return _u
}

// SetNillableMaximumSize sets the "maximum_size" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableMaximumSize(v *float64) *FishingRegulationUpdate {
	if v != nil {
		_u.SetMaximumSize(*v)
	}
	return _u
}

// AddMaximumSize adds value to the "maximum_size" field.
func (_u *FishingRegulationUpdate) AddMaximumSize(v float64) *FishingRegulationUpdate {
	_u.mutation.AddMaximumSize(v)
	return _u
}

// ClearMaximumSize clears the value of the "maximum_size" field.
func (_u *FishingRegulationUpdate) ClearMaximumSize() *FishingRegulationUpdate {
	_u.mutation.ClearMaximumSize()
	return _u
}

// SetProtectedSlotMin sets the "protected_slot_min" field.
func (_u *FishingRegulationUpdate) SetProtectedSlotMin(v float64) *FishingRegulationUpdate {
	_u.mutation.ResetProtectedSlotMin()
	_u.mutation.SetProtectedSlotMin(v)
	return _u
}

// SetNillableProtectedSlotMin sets the "protected_slot_min" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableProtectedSlotMin(v *float64) *FishingRegulationUpdate {
	if v != nil {
		_u.SetProtectedSlotMin(*v)
	}
	return _u
}

// AddProtectedSlotMin adds value to the "protected_slot_min" field.
func (_u *FishingRegulationUpdate) AddProtectedSlotMin(v float64) *FishingRegulationUpdate {
	_u.mutation.AddProtectedSlotMin(v)
	return _u
}

// ClearProtectedSlotMin clears the value of the "protected_slot_min" field.
func (_u *FishingRegulationUpdate) ClearProtectedSlotMin() *FishingRegulationUpdate {
	_u.mutation.ClearProtectedSlotMin()
	return _u
}

// SetProtectedSlotMax sets the "protected_slot_max" field.
func (_u *FishingRegulationUpdate) SetProtectedSlotMax(v float64) *FishingRegulationUpdate {
	_u.mutation.ResetProtectedSlotMax()
	_u.mutation.SetProtectedSlotMax(v)
	return _u
}

// SetNillableProtectedSlotMax sets the "protected_slot_max" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableProtectedSlotMax(v *float64) *FishingRegulationUpdate {
	if v != nil {
		_u.SetProtectedSlotMax(*v)
	}
	return _u
}

// AddProtectedSlotMax adds value to the "protected_slot_max" field.
func (_u *FishingRegulationUpdate) AddProtectedSlotMax(v float64) *FishingRegulationUpdate {
	_u.mutation.AddProtectedSlotMax(v)
	return _u
}

// ClearProtectedSlotMax clears the value of the "protected_slot_max" field.
func (_u *FishingRegulationUpdate) ClearProtectedSlotMax() *FishingRegulationUpdate {
	_u.mutation.ClearProtectedSlotMax()
	return _u
}

// SetProtectedSlotExceptions sets the "protected_slot_exceptions" field.
func (_u *FishingRegulationUpdate) SetProtectedSlotExceptions(v int) *FishingRegulationUpdate {
	_u.mutation.ResetProtectedSlotExceptions()
	_u.mutation.SetProtectedSlotExceptions(v)
	return _u
}

// SetNillableProtectedSlotExceptions sets the "protected_slot_exceptions" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableProtectedSlotExceptions(v *int) *FishingRegulationUpdate {
	if v != nil {
		_u.SetProtectedSlotExceptions(*v)
	}
	return _u
}

// AddProtectedSlotExceptions adds value to the "protected_slot_exceptions" field.
func (_u *FishingRegulationUpdate) AddProtectedSlotExceptions(v int) *FishingRegulationUpdate {
	_u.mutation.AddProtectedSlotExceptions(v)
	return _u
}

// SetSeasonOpen sets the "season_open" field.
func (_u *FishingRegulationUpdate) SetSeasonOpen(v string) *FishingRegulationUpdate {
	_u.mutation.SetSeasonOpen(v)
	return _u
}

// SetNillableSeasonOpen sets the "season_open" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableSeasonOpen(v *string) *FishingRegulationUpdate {
	if v != nil {
		_u.SetSeasonOpen(*v)
	}
	return _u
}

// ClearSeasonOpen clears the value of the "season_open" field.
func (_u *FishingRegulationUpdate) ClearSeasonOpen() *FishingRegulationUpdate {
	_u.mutation.ClearSeasonOpen()
	return _u
}

// SetSeasonClose sets the "season_close" field.
func (_u *FishingRegulationUpdate) SetSeasonClose(v string) *FishingRegulationUpdate {
	_u.mutation.SetSeasonClose(v)
	return _u
}

// SetNillableSeasonClose sets the "season_close" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableSeasonClose(v *string) *FishingRegulationUpdate {
	if v != nil {
		_u.SetSeasonClose(*v)
	}
	return _u
}

// ClearSeasonClose clears the value of the "season_close" field.
func (_u *FishingRegulationUpdate) ClearSeasonClose() *FishingRegulationUpdate {
	_u.mutation.ClearSeasonClose()
	return _u
}

// SetYearRound sets the "year_round" field.
func (_u *FishingRegulationUpdate) SetYearRound(v bool) *FishingRegulationUpdate {
	_u.mutation.SetYearRound(v)
	return _u
}

// SetNillableYearRound sets the "year_round" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableYearRound(v *bool) *FishingRegulationUpdate {
	if v != nil {
		_u.SetYearRound(*v)
	}
	return _u
}

// SetCatchAndRelease sets the "catch_and_release" field.
func (_u *FishingRegulationUpdate) SetCatchAndRelease(v bool) *FishingRegulationUpdate {
	_u.mutation.SetCatchAndRelease(v)
	return _u
}

// SetNillableCatchAndRelease sets the "catch_and_release" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableCatchAndRelease(v *bool) *FishingRegulationUpdate {
	if v != nil {
		_u.SetCatchAndRelease(*v)
	}
	return _u
}

// SetSpecialNotes sets the "special_notes" field.
func (_u *FishingRegulationUpdate) SetSpecialNotes(v string) *FishingRegulationUpdate {
	_u.mutation.SetSpecialNotes(v)
	return _u
}

// SetNillableSpecialNotes sets the "special_notes" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableSpecialNotes(v *string) *FishingRegulationUpdate {
	if v != nil {
		_u.SetSpecialNotes(*v)
	}
	return _u
}

// ClearSpecialNotes clears the value of the "special_notes" field.
func (_u *FishingRegulationUpdate) ClearSpecialNotes() *FishingRegulationUpdate {
	_u.mutation.ClearSpecialNotes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FishingRegulationUpdate) SetIsActive(v bool) *FishingRegulationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableIsActive(v *bool) *FishingRegulationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *FishingRegulationUpdate) SetNeedsReview(v bool) *FishingRegulationUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableNeedsReview(v *bool) *FishingRegulationUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FishingRegulationUpdate) SetCreatedAt(v time.Time) *FishingRegulationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FishingRegulationUpdate) SetNillableCreatedAt(v *time.Time) *FishingRegulationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FishingRegulationUpdate) SetUpdatedAt(v time.Time) *FishingRegulationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWaterBody sets the "water_body" edge to the WaterBody entity.
func (_u *FishingRegulationUpdate) SetWaterBody(v *WaterBody) *FishingRegulationUpdate {
	return _u.SetWaterBodyID(v.ID)
}

// SetSpecies sets the "species" edge to the FishSpecies entity.
func (_u *FishingRegulationUpdate) SetSpecies(v *FishSpecies) *FishingRegulationUpdate {
	return _u.SetSpeciesID(v.ID)
}

// SetDocument sets the "document" edge to the RegulationDocument entity.
func (_u *FishingRegulationUpdate) SetDocument(v *RegulationDocument) *FishingRegulationUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FishingRegulationMutation object of the builder.
func (_u *FishingRegulationUpdate) Mutation() *FishingRegulationMutation {
	return _u.mutation
}

// ClearWaterBody clears the "water_body" edge to the WaterBody entity.
func (_u *FishingRegulationUpdate) ClearWaterBody() *FishingRegulationUpdate {
	_u.mutation.ClearWaterBody()
	return _u
}

// ClearSpecies clears the "species" edge to the FishSpecies entity.
func (_u *FishingRegulationUpdate) ClearSpecies() *FishingRegulationUpdate {
	_u.mutation.ClearSpecies()
	return _u
}

// ClearDocument clears the "document" edge to the RegulationDocument entity.
func (_u *FishingRegulationUpdate) ClearDocument() *FishingRegulationUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FishingRegulationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FishingRegulationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FishingRegulationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FishingRegulationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FishingRegulationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fishingregulation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FishingRegulationUpdate) check() error {
	if v, ok := _u.mutation.RegulationYear(); ok {
		if err := fishingregulation.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegulationType(); ok {
		if err := fishingregulation.RegulationTypeValidator(v); err != nil {
			return &ValidationError{Name: "regulation_type", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_type": %w`, err)}
		}
	}
	if _u.mutation.WaterBodyCleared() && len(_u.mutation.WaterBodyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FishingRegulation.water_body"`)
	}
	if _u.mutation.SpeciesCleared() && len(_u.mutation.SpeciesIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FishingRegulation.species"`)
	}
	return nil
}

func (_u *FishingRegulationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fishingregulation.Table, fishingregulation.Columns, sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RegulationYear(); ok {
		_spec.SetField(fishingregulation.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegulationYear(); ok {
		_spec.AddField(fishingregulation.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RegulationType(); ok {
		_spec.SetField(fishingregulation.FieldRegulationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(fishingregulation.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(fishingregulation.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(fishingregulation.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(fishingregulation.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyLimit(); ok {
		_spec.SetField(fishingregulation.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyLimit(); ok {
		_spec.AddField(fishingregulation.FieldDailyLimit, field.TypeInt, value)
	}
	if _u.mutation.DailyLimitCleared() {
		_spec.ClearField(fishingregulation.FieldDailyLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.PossessionLimit(); ok {
		_spec.SetField(fishingregulation.FieldPossessionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPossessionLimit(); ok {
		_spec.AddField(fishingregulation.FieldPossessionLimit, field.TypeInt, value)
	}
	if _u.mutation.PossessionLimitCleared() {
		_spec.ClearField(fishingregulation.FieldPossessionLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.MinimumSize(); ok {
		_spec.SetField(fishingregulation.FieldMinimumSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinimumSize(); ok {
		_spec.AddField(fishingregulation.FieldMinimumSize, field.TypeFloat64, value)
	}
	if _u.mutation.MinimumSizeCleared() {
		_spec.ClearField(fishingregulation.FieldMinimumSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaximumSize(); ok {
		_spec.SetField(fishingregulation.FieldMaximumSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaximumSize(); ok {
		_spec.AddField(fishingregulation.FieldMaximumSize, field.TypeFloat64, value)
	}
	if _u.mutation.MaximumSizeCleared() {
		_spec.ClearField(fishingregulation.FieldMaximumSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotMin(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotMin(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64, value)
	}
	if _u.mutation.ProtectedSlotMinCleared() {
		_spec.ClearField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotMax(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotMax(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64, value)
	}
	if _u.mutation.ProtectedSlotMaxCleared() {
		_spec.ClearField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotExceptions(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotExceptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotExceptions(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotExceptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeasonOpen(); ok {
		_spec.SetField(fishingregulation.FieldSeasonOpen, field.TypeString, value)
	}
	if _u.mutation.SeasonOpenCleared() {
		_spec.ClearField(fishingregulation.FieldSeasonOpen, field.TypeString)
	}
	if value, ok := _u.mutation.SeasonClose(); ok {
		_spec.SetField(fishingregulation.FieldSeasonClose, field.TypeString, value)
	}
	if _u.mutation.SeasonCloseCleared() {
		_spec.ClearField(fishingregulation.FieldSeasonClose, field.TypeString)
	}
	if value, ok := _u.mutation.YearRound(); ok {
		_spec.SetField(fishingregulation.FieldYearRound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CatchAndRelease(); ok {
		_spec.SetField(fishingregulation.FieldCatchAndRelease, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpecialNotes(); ok {
		_spec.SetField(fishingregulation.FieldSpecialNotes, field.TypeString, value)
	}
	if _u.mutation.SpecialNotesCleared() {
		_spec.ClearField(fishingregulation.FieldSpecialNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fishingregulation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(fishingregulation.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fishingregulation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fishingregulation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WaterBodyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaterBodyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpeciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fishingregulation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FishingRegulationUpdateOne is the builder for updating a single FishingRegulation entity.
type FishingRegulationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FishingRegulationMutation
}

// SetWaterBodyID sets the "water_body_id" field.
func (_u *FishingRegulationUpdateOne) SetWaterBodyID(v uuid.UUID) *FishingRegulationUpdateOne {
	_u.mutation.SetWaterBodyID(v)
	return _u
}

// SetNillableWaterBodyID sets the "water_body_id" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableWaterBodyID(v *uuid.UUID) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetWaterBodyID(*v)
	}
	return _u
}

// SetSpeciesID sets the "species_id" field.
func (_u *FishingRegulationUpdateOne) SetSpeciesID(v uuid.UUID) *FishingRegulationUpdateOne {
	_u.mutation.SetSpeciesID(v)
	return _u
}

// SetNillableSpeciesID sets the "species_id" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableSpeciesID(v *uuid.UUID) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetSpeciesID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FishingRegulationUpdateOne) SetDocumentID(v uuid.UUID) *FishingRegulationUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableDocumentID(v *uuid.UUID) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *FishingRegulationUpdateOne) ClearDocumentID() *FishingRegulationUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetRegulationYear sets the "regulation_year" field.
func (_u *FishingRegulationUpdateOne) SetRegulationYear(v int) *FishingRegulationUpdateOne {
	_u.mutation.ResetRegulationYear()
	_u.mutation.SetRegulationYear(v)
	return _u
}

// SetNillableRegulationYear sets the "regulation_year" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableRegulationYear(v *int) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetRegulationYear(*v)
	}
	return _u
}

// AddRegulationYear adds value to the "regulation_year" field.
func (_u *FishingRegulationUpdateOne) AddRegulationYear(v int) *FishingRegulationUpdateOne {
	_u.mutation.AddRegulationYear(v)
	return _u
}

// SetRegulationType sets the "regulation_type" field.
func (_u *FishingRegulationUpdateOne) SetRegulationType(v string) *FishingRegulationUpdateOne {
	_u.mutation.SetRegulationType(v)
	return _u
}

// SetNillableRegulationType sets the "regulation_type" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableRegulationType(v *string) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetRegulationType(*v)
	}
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *FishingRegulationUpdateOne) SetEffectiveDate(v time.Time) *FishingRegulationUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableEffectiveDate(v *time.Time) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *FishingRegulationUpdateOne) ClearEffectiveDate() *FishingRegulationUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *FishingRegulationUpdateOne) SetExpirationDate(v time.Time) *FishingRegulationUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableExpirationDate(v *time.Time) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *FishingRegulationUpdateOne) ClearExpirationDate() *FishingRegulationUpdateOne {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetDailyLimit sets the "daily_limit" field.
func (_u *FishingRegulationUpdateOne) SetDailyLimit(v int) *FishingRegulationUpdateOne {
	_u.mutation.ResetDailyLimit()
	_u.mutation.SetDailyLimit(v)
	return _u
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableDailyLimit(v *int) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetDailyLimit(*v)
	}
	return _u
}

// AddDailyLimit adds value to the "daily_limit" field.
func (_u *FishingRegulationUpdateOne) AddDailyLimit(v int) *FishingRegulationUpdateOne {
	_u.mutation.AddDailyLimit(v)
	return _u
}

// ClearDailyLimit clears the value of the "daily_limit" field.
func (_u *FishingRegulationUpdateOne) ClearDailyLimit() *FishingRegulationUpdateOne {
	_u.mutation.ClearDailyLimit()
	return _u
}

// SetPossessionLimit sets the "possession_limit" field.
func (_u *FishingRegulationUpdateOne) SetPossessionLimit(v int) *FishingRegulationUpdateOne {
	_u.mutation.ResetPossessionLimit()
	_u.mutation.SetPossessionLimit(v)
	return _u
}

// SetNillablePossessionLimit sets the "possession_limit" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillablePossessionLimit(v *int) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetPossessionLimit(*v)
	}
	return _u
}

// AddPossessionLimit adds value to the "possession_limit" field.
func (_u *FishingRegulationUpdateOne) AddPossessionLimit(v int) *FishingRegulationUpdateOne {
	_u.mutation.AddPossessionLimit(v)
	return _u
}

// ClearPossessionLimit clears the value of the "possession_limit" field.
func (_u *FishingRegulationUpdateOne) ClearPossessionLimit() *FishingRegulationUpdateOne {
	_u.mutation.ClearPossessionLimit()
	return _u
}

// SetMinimumSize sets the "minimum_size" field.
func (_u *FishingRegulationUpdateOne) SetMinimumSize(v float64) *FishingRegulationUpdateOne {
	_u.mutation.ResetMinimumSize()
	_u.mutation.SetMinimumSize(v)
	return _u
}

// SetNillableMinimumSize sets the "minimum_size" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableMinimumSize(v *float64) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetMinimumSize(*v)
	}
	return _u
}

// AddMinimumSize adds value to the "minimum_size" field.
func (_u *FishingRegulationUpdateOne) AddMinimumSize(v float64) *FishingRegulationUpdateOne {
	_u.mutation.AddMinimumSize(v)
	return _u
}

// ClearMinimumSize clears the value of the "minimum_size" field.
func (_u *FishingRegulationUpdateOne) ClearMinimumSize() *FishingRegulationUpdateOne {
	_u.mutation.ClearMinimumSize()
	return _u
}

// SetMaximumSize sets the "maximum_size" field.
func (_u *FishingRegulationUpdateOne) SetMaximumSize(v float64) *FishingRegulationUpdateOne {
	_u.mutation.ResetMaximumSize()
	_u.mutation.SetMaximumSize(v)
	return _u
}

// SetNillableMaximumSize sets the "maximum_size" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableMaximumSize(v *float64) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetMaximumSize(*v)
	}
	return _u
}

// AddMaximumSize adds value to the "maximum_size" field.
func (_u *FishingRegulationUpdateOne) AddMaximumSize(v float64) *FishingRegulationUpdateOne {
	_u.mutation.AddMaximumSize(v)
	return _u
}

// ClearMaximumSize clears the value of the "maximum_size" field.
func (_u *FishingRegulationUpdateOne) ClearMaximumSize() *FishingRegulationUpdateOne {
	_u.mutation.ClearMaximumSize()
	return _u
}

// SetProtectedSlotMin sets the "protected_slot_min" field.
func (_u *FishingRegulationUpdateOne) SetProtectedSlotMin(v float64) *FishingRegulationUpdateOne {
	_u.mutation.ResetProtectedSlotMin()
	_u.mutation.SetProtectedSlotMin(v)
	return _u
}

// SetNillableProtectedSlotMin sets the "protected_slot_min" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableProtectedSlotMin(v *float64) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetProtectedSlotMin(*v)
	}
	return _u
}

// AddProtectedSlotMin adds value to the "protected_slot_min" field.
func (_u *FishingRegulationUpdateOne) AddProtectedSlotMin(v float64) *FishingRegulationUpdateOne {
	_u.mutation.AddProtectedSlotMin(v)
	return _u
}

// ClearProtectedSlotMin clears the value of the "protected_slot_min" field.
func (_u *FishingRegulationUpdateOne) ClearProtectedSlotMin() *FishingRegulationUpdateOne {
	_u.mutation.ClearProtectedSlotMin()
	return _u
}

// SetProtectedSlotMax sets the "protected_slot_max" field.
func (_u *FishingRegulationUpdateOne) SetProtectedSlotMax(v float64) *FishingRegulationUpdateOne {
	_u.mutation.ResetProtectedSlotMax()
	_u.mutation.SetProtectedSlotMax(v)
	return _u
}

// SetNillableProtectedSlotMax sets the "protected_slot_max" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableProtectedSlotMax(v *float64) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetProtectedSlotMax(*v)
	}
	return _u
}

// AddProtectedSlotMax adds value to the "protected_slot_max" field.
func (_u *FishingRegulationUpdateOne) AddProtectedSlotMax(v float64) *FishingRegulationUpdateOne {
	_u.mutation.AddProtectedSlotMax(v)
	return _u
}

// ClearProtectedSlotMax clears the value of the "protected_slot_max" field.
func (_u *FishingRegulationUpdateOne) ClearProtectedSlotMax() *FishingRegulationUpdateOne {
	_u.mutation.ClearProtectedSlotMax()
	return _u
}

// SetProtectedSlotExceptions sets the "protected_slot_exceptions" field.
func (_u *FishingRegulationUpdateOne) SetProtectedSlotExceptions(v int) *FishingRegulationUpdateOne {
	_u.mutation.ResetProtectedSlotExceptions()
	_u.mutation.SetProtectedSlotExceptions(v)
	return _u
}

// SetNillableProtectedSlotExceptions sets the "protected_slot_exceptions" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableProtectedSlotExceptions(v *int) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetProtectedSlotExceptions(*v)
	}
	return _u
}

// AddProtectedSlotExceptions adds value to the "protected_slot_exceptions" field.
func (_u *FishingRegulationUpdateOne) AddProtectedSlotExceptions(v int) *FishingRegulationUpdateOne {
	_u.mutation.AddProtectedSlotExceptions(v)
	return _u
}

// SetSeasonOpen sets the "season_open" field.
func (_u *FishingRegulationUpdateOne) SetSeasonOpen(v string) *FishingRegulationUpdateOne {
	_u.mutation.SetSeasonOpen(v)
	return _u
}

// SetNillableSeasonOpen sets the "season_open" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableSeasonOpen(v *string) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetSeasonOpen(*v)
	}
	return _u
}

// ClearSeasonOpen clears the value of the "season_open" field.
func (_u *FishingRegulationUpdateOne) ClearSeasonOpen() *FishingRegulationUpdateOne {
	_u.mutation.ClearSeasonOpen()
	return _u
}

// SetSeasonClose sets the "season_close" field.
func (_u *FishingRegulationUpdateOne) SetSeasonClose(v string) *FishingRegulationUpdateOne {
	_u.mutation.SetSeasonClose(v)
	return _u
}

// SetNillableSeasonClose sets the "season_close" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableSeasonClose(v *string) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetSeasonClose(*v)
	}
	return _u
}

// ClearSeasonClose clears the value of the "season_close" field.
func (_u *FishingRegulationUpdateOne) ClearSeasonClose() *FishingRegulationUpdateOne {
	_u.mutation.ClearSeasonClose()
	return _u
}

// SetYearRound sets the "year_round" field.
func (_u *FishingRegulationUpdateOne) SetYearRound(v bool) *FishingRegulationUpdateOne {
	_u.mutation.SetYearRound(v)
	return _u
}

// SetNillableYearRound sets the "year_round" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableYearRound(v *bool) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetYearRound(*v)
	}
	return _u
}

// SetCatchAndRelease sets the "catch_and_release" field.
func (_u *FishingRegulationUpdateOne) SetCatchAndRelease(v bool) *FishingRegulationUpdateOne {
	_u.mutation.SetCatchAndRelease(v)
	return _u
}

// SetNillableCatchAndRelease sets the "catch_and_release" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableCatchAndRelease(v *bool) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetCatchAndRelease(*v)
	}
	return _u
}

// SetSpecialNotes sets the "special_notes" field.
func (_u *FishingRegulationUpdateOne) SetSpecialNotes(v string) *FishingRegulationUpdateOne {
	_u.mutation.SetSpecialNotes(v)
	return _u
}

// SetNillableSpecialNotes sets the "special_notes" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableSpecialNotes(v *string) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetSpecialNotes(*v)
	}
	return _u
}

// ClearSpecialNotes clears the value of the "special_notes" field.
func (_u *FishingRegulationUpdateOne) ClearSpecialNotes() *FishingRegulationUpdateOne {
	_u.mutation.ClearSpecialNotes()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FishingRegulationUpdateOne) SetIsActive(v bool) *FishingRegulationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableIsActive(v *bool) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *FishingRegulationUpdateOne) SetNeedsReview(v bool) *FishingRegulationUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableNeedsReview(v *bool) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FishingRegulationUpdateOne) SetCreatedAt(v time.Time) *FishingRegulationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FishingRegulationUpdateOne) SetNillableCreatedAt(v *time.Time) *FishingRegulationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FishingRegulationUpdateOne) SetUpdatedAt(v time.Time) *FishingRegulationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWaterBody sets the "water_body" edge to the WaterBody entity.
func (_u *FishingRegulationUpdateOne) SetWaterBody(v *WaterBody) *FishingRegulationUpdateOne {
	return _u.SetWaterBodyID(v.ID)
}

// SetSpecies sets the "species" edge to the FishSpecies entity.
func (_u *FishingRegulationUpdateOne) SetSpecies(v *FishSpecies) *FishingRegulationUpdateOne {
	return _u.SetSpeciesID(v.ID)
}

// SetDocument sets the "document" edge to the RegulationDocument entity.
func (_u *FishingRegulationUpdateOne) SetDocument(v *RegulationDocument) *FishingRegulationUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FishingRegulationMutation object of the builder.
func (_u *FishingRegulationUpdateOne) Mutation() *FishingRegulationMutation {
	return _u.mutation
}

// ClearWaterBody clears the "water_body" edge to the WaterBody entity.
func (_u *FishingRegulationUpdateOne) ClearWaterBody() *FishingRegulationUpdateOne {
	_u.mutation.ClearWaterBody()
	return _u
}

// ClearSpecies clears the "species" edge to the FishSpecies entity.
func (_u *FishingRegulationUpdateOne) ClearSpecies() *FishingRegulationUpdateOne {
	_u.mutation.ClearSpecies()
	return _u
}

// ClearDocument clears the "document" edge to the RegulationDocument entity.
func (_u *FishingRegulationUpdateOne) ClearDocument() *FishingRegulationUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the FishingRegulationUpdate builder.
func (_u *FishingRegulationUpdateOne) Where(ps ...predicate.FishingRegulation) *FishingRegulationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FishingRegulationUpdateOne) Select(field string, fields ...string) *FishingRegulationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FishingRegulation entity.
func (_u *FishingRegulationUpdateOne) Save(ctx context.Context) (*FishingRegulation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FishingRegulationUpdateOne) SaveX(ctx context.Context) *FishingRegulation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FishingRegulationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FishingRegulationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FishingRegulationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fishingregulation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FishingRegulationUpdateOne) check() error {
	if v, ok := _u.mutation.RegulationYear(); ok {
		if err := fishingregulation.RegulationYearValidator(v); err != nil {
			return &ValidationError{Name: "regulation_year", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegulationType(); ok {
		if err := fishingregulation.RegulationTypeValidator(v); err != nil {
			return &ValidationError{Name: "regulation_type", err: fmt.Errorf(`ent: validator failed for field "FishingRegulation.regulation_type": %w`, err)}
		}
	}
	if _u.mutation.WaterBodyCleared() && len(_u.mutation.WaterBodyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FishingRegulation.water_body"`)
	}
	if _u.mutation.SpeciesCleared() && len(_u.mutation.SpeciesIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FishingRegulation.species"`)
	}
	return nil
}

func (_u *FishingRegulationUpdateOne) sqlSave(ctx context.Context) (_node *FishingRegulation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fishingregulation.Table, fishingregulation.Columns, sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FishingRegulation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fishingregulation.FieldID)
		for _, f := range fields {
			if !fishingregulation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fishingregulation.FieldID {
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
	if value, ok := _u.mutation.RegulationYear(); ok {
		_spec.SetField(fishingregulation.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRegulationYear(); ok {
		_spec.AddField(fishingregulation.FieldRegulationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RegulationType(); ok {
		_spec.SetField(fishingregulation.FieldRegulationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(fishingregulation.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(fishingregulation.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(fishingregulation.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(fishingregulation.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DailyLimit(); ok {
		_spec.SetField(fishingregulation.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyLimit(); ok {
		_spec.AddField(fishingregulation.FieldDailyLimit, field.TypeInt, value)
	}
	if _u.mutation.DailyLimitCleared() {
		_spec.ClearField(fishingregulation.FieldDailyLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.PossessionLimit(); ok {
		_spec.SetField(fishingregulation.FieldPossessionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPossessionLimit(); ok {
		_spec.AddField(fishingregulation.FieldPossessionLimit, field.TypeInt, value)
	}
	if _u.mutation.PossessionLimitCleared() {
		_spec.ClearField(fishingregulation.FieldPossessionLimit, field.TypeInt)
	}
	if value, ok := _u.mutation.MinimumSize(); ok {
		_spec.SetField(fishingregulation.FieldMinimumSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinimumSize(); ok {
		_spec.AddField(fishingregulation.FieldMinimumSize, field.TypeFloat64, value)
	}
	if _u.mutation.MinimumSizeCleared() {
		_spec.ClearField(fishingregulation.FieldMinimumSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaximumSize(); ok {
		_spec.SetField(fishingregulation.FieldMaximumSize, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaximumSize(); ok {
		_spec.AddField(fishingregulation.FieldMaximumSize, field.TypeFloat64, value)
	}
	if _u.mutation.MaximumSizeCleared() {
		_spec.ClearField(fishingregulation.FieldMaximumSize, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotMin(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotMin(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64, value)
	}
	if _u.mutation.ProtectedSlotMinCleared() {
		_spec.ClearField(fishingregulation.FieldProtectedSlotMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotMax(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotMax(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64, value)
	}
	if _u.mutation.ProtectedSlotMaxCleared() {
		_spec.ClearField(fishingregulation.FieldProtectedSlotMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProtectedSlotExceptions(); ok {
		_spec.SetField(fishingregulation.FieldProtectedSlotExceptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProtectedSlotExceptions(); ok {
		_spec.AddField(fishingregulation.FieldProtectedSlotExceptions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeasonOpen(); ok {
		_spec.SetField(fishingregulation.FieldSeasonOpen, field.TypeString, value)
	}
	if _u.mutation.SeasonOpenCleared() {
		_spec.ClearField(fishingregulation.FieldSeasonOpen, field.TypeString)
	}
	if value, ok := _u.mutation.SeasonClose(); ok {
		_spec.SetField(fishingregulation.FieldSeasonClose, field.TypeString, value)
	}
	if _u.mutation.SeasonCloseCleared() {
		_spec.ClearField(fishingregulation.FieldSeasonClose, field.TypeString)
	}
	if value, ok := _u.mutation.YearRound(); ok {
		_spec.SetField(fishingregulation.FieldYearRound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CatchAndRelease(); ok {
		_spec.SetField(fishingregulation.FieldCatchAndRelease, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpecialNotes(); ok {
		_spec.SetField(fishingregulation.FieldSpecialNotes, field.TypeString, value)
	}
	if _u.mutation.SpecialNotesCleared() {
		_spec.ClearField(fishingregulation.FieldSpecialNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(fishingregulation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(fishingregulation.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fishingregulation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fishingregulation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WaterBodyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaterBodyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpeciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FishingRegulation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fishingregulation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
