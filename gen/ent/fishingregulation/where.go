// Code generated by ent, DO NOT EDIT.

package fishingregulation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldID, id))
}

// WaterBodyID applies equality check predicate on the "water_body_id" field. It's identical to WaterBodyIDEQ.
func WaterBodyID(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldWaterBodyID, v))
}

// SpeciesID applies equality check predicate on the "species_id" field. It's identical to SpeciesIDEQ.
func SpeciesID(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSpeciesID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldDocumentID, v))
}

// RegulationYear applies equality check predicate on the "regulation_year" field. It's identical to RegulationYearEQ.
func RegulationYear(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldRegulationYear, v))
}

// RegulationType applies equality check predicate on the "regulation_type" field. It's identical to RegulationTypeEQ.
func RegulationType(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldRegulationType, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldEffectiveDate, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldExpirationDate, v))
}

// DailyLimit applies equality check predicate on the "daily_limit" field. It's identical to DailyLimitEQ.
func DailyLimit(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldDailyLimit, v))
}

// PossessionLimit applies equality check predicate on the "possession_limit" field. It's identical to PossessionLimitEQ.
func PossessionLimit(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldPossessionLimit, v))
}

// MinimumSize applies equality check predicate on the "minimum_size" field. It's identical to MinimumSizeEQ.
func MinimumSize(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldMinimumSize, v))
}

// MaximumSize applies equality check predicate on the "maximum_size" field. It's identical to MaximumSizeEQ.
func MaximumSize(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldMaximumSize, v))
}

// ProtectedSlotMin applies equality check predicate on the "protected_slot_min" field. It's identical to ProtectedSlotMinEQ.
func ProtectedSlotMin(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotMin, v))
}

// ProtectedSlotMax applies equality check predicate on the "protected_slot_max" field. It's identical to ProtectedSlotMaxEQ.
func ProtectedSlotMax(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotMax, v))
}

// ProtectedSlotExceptions applies equality check predicate on the "protected_slot_exceptions" field. It's identical to ProtectedSlotExceptionsEQ.
func ProtectedSlotExceptions(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotExceptions, v))
}

// SeasonOpen applies equality check predicate on the "season_open" field. It's identical to SeasonOpenEQ.
func SeasonOpen(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSeasonOpen, v))
}

// SeasonClose applies equality check predicate on the "season_close" field. It's identical to SeasonCloseEQ.
func SeasonClose(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSeasonClose, v))
}

// YearRound applies equality check predicate on the "year_round" field. It's identical to YearRoundEQ.
func YearRound(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldYearRound, v))
}

// CatchAndRelease applies equality check predicate on the "catch_and_release" field. It's identical to CatchAndReleaseEQ.
func CatchAndRelease(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldCatchAndRelease, v))
}

// SpecialNotes applies equality check predicate on the "special_notes" field. It's identical to SpecialNotesEQ.
func SpecialNotes(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSpecialNotes, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldIsActive, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldUpdatedAt, v))
}

// WaterBodyIDEQ applies the EQ predicate on the "water_body_id" field.
func WaterBodyIDEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldWaterBodyID, v))
}

// WaterBodyIDNEQ applies the NEQ predicate on the "water_body_id" field.
func WaterBodyIDNEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldWaterBodyID, v))
}

// WaterBodyIDIn applies the In predicate on the "water_body_id" field.
func WaterBodyIDIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldWaterBodyID, vs...))
}

// WaterBodyIDNotIn applies the NotIn predicate on the "water_body_id" field.
func WaterBodyIDNotIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldWaterBodyID, vs...))
}

// SpeciesIDEQ applies the EQ predicate on the "species_id" field.
func SpeciesIDEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSpeciesID, v))
}

// SpeciesIDNEQ applies the NEQ predicate on the "species_id" field.
func SpeciesIDNEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldSpeciesID, v))
}

// SpeciesIDIn applies the In predicate on the "species_id" field.
func SpeciesIDIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldSpeciesID, vs...))
}

// SpeciesIDNotIn applies the NotIn predicate on the "species_id" field.
func SpeciesIDNotIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldSpeciesID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDIsNil applies the IsNil predicate on the "document_id" field.
func DocumentIDIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldDocumentID))
}

// DocumentIDNotNil applies the NotNil predicate on the "document_id" field.
func DocumentIDNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldDocumentID))
}

// RegulationYearEQ applies the EQ predicate on the "regulation_year" field.
func RegulationYearEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldRegulationYear, v))
}

// RegulationYearNEQ applies the NEQ predicate on the "regulation_year" field.
func RegulationYearNEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldRegulationYear, v))
}

// RegulationYearIn applies the In predicate on the "regulation_year" field.
func RegulationYearIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldRegulationYear, vs...))
}

// RegulationYearNotIn applies the NotIn predicate on the "regulation_year" field.
func RegulationYearNotIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldRegulationYear, vs...))
}

// RegulationYearGT applies the GT predicate on the "regulation_year" field.
func RegulationYearGT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldRegulationYear, v))
}

// RegulationYearGTE applies the GTE predicate on the "regulation_year" field.
func RegulationYearGTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldRegulationYear, v))
}

// RegulationYearLT applies the LT predicate on the "regulation_year" field.
func RegulationYearLT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldRegulationYear, v))
}

// RegulationYearLTE applies the LTE predicate on the "regulation_year" field.
func RegulationYearLTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldRegulationYear, v))
}

// RegulationTypeEQ applies the EQ predicate on the "regulation_type" field.
func RegulationTypeEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldRegulationType, v))
}

// RegulationTypeNEQ applies the NEQ predicate on the "regulation_type" field.
func RegulationTypeNEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldRegulationType, v))
}

// RegulationTypeIn applies the In predicate on the "regulation_type" field.
func RegulationTypeIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldRegulationType, vs...))
}

// RegulationTypeNotIn applies the NotIn predicate on the "regulation_type" field.
func RegulationTypeNotIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldRegulationType, vs...))
}

// RegulationTypeGT applies the GT predicate on the "regulation_type" field.
func RegulationTypeGT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldRegulationType, v))
}

// RegulationTypeGTE applies the GTE predicate on the "regulation_type" field.
func RegulationTypeGTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldRegulationType, v))
}

// RegulationTypeLT applies the LT predicate on the "regulation_type" field.
func RegulationTypeLT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldRegulationType, v))
}

// RegulationTypeLTE applies the LTE predicate on the "regulation_type" field.
func RegulationTypeLTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldRegulationType, v))
}

// RegulationTypeContains applies the Contains predicate on the "regulation_type" field.
func RegulationTypeContains(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContains(FieldRegulationType, v))
}

// RegulationTypeHasPrefix applies the HasPrefix predicate on the "regulation_type" field.
func RegulationTypeHasPrefix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasPrefix(FieldRegulationType, v))
}

// RegulationTypeHasSuffix applies the HasSuffix predicate on the "regulation_type" field.
func RegulationTypeHasSuffix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasSuffix(FieldRegulationType, v))
}

// RegulationTypeEqualFold applies the EqualFold predicate on the "regulation_type" field.
func RegulationTypeEqualFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEqualFold(FieldRegulationType, v))
}

// RegulationTypeContainsFold applies the ContainsFold predicate on the "regulation_type" field.
func RegulationTypeContainsFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContainsFold(FieldRegulationType, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldEffectiveDate))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldExpirationDate, v))
}

// ExpirationDateIsNil applies the IsNil predicate on the "expiration_date" field.
func ExpirationDateIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldExpirationDate))
}

// ExpirationDateNotNil applies the NotNil predicate on the "expiration_date" field.
func ExpirationDateNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldExpirationDate))
}

// DailyLimitEQ applies the EQ predicate on the "daily_limit" field.
func DailyLimitEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldDailyLimit, v))
}

// DailyLimitNEQ applies the NEQ predicate on the "daily_limit" field.
func DailyLimitNEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldDailyLimit, v))
}

// DailyLimitIn applies the In predicate on the "daily_limit" field.
func DailyLimitIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldDailyLimit, vs...))
}

// DailyLimitNotIn applies the NotIn predicate on the "daily_limit" field.
func DailyLimitNotIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldDailyLimit, vs...))
}

// DailyLimitGT applies the GT predicate on the "daily_limit" field.
func DailyLimitGT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldDailyLimit, v))
}

// DailyLimitGTE applies the GTE predicate on the "daily_limit" field.
func DailyLimitGTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldDailyLimit, v))
}

// DailyLimitLT applies the LT predicate on the "daily_limit" field.
func DailyLimitLT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldDailyLimit, v))
}

// DailyLimitLTE applies the LTE predicate on the "daily_limit" field.
func DailyLimitLTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldDailyLimit, v))
}

// DailyLimitIsNil applies the IsNil predicate on the "daily_limit" field.
func DailyLimitIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldDailyLimit))
}

// DailyLimitNotNil applies the NotNil predicate on the "daily_limit" field.
func DailyLimitNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldDailyLimit))
}

// PossessionLimitEQ applies the EQ predicate on the "possession_limit" field.
func PossessionLimitEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldPossessionLimit, v))
}

// PossessionLimitNEQ applies the NEQ predicate on the "possession_limit" field.
func PossessionLimitNEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldPossessionLimit, v))
}

// PossessionLimitIn applies the In predicate on the "possession_limit" field.
func PossessionLimitIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldPossessionLimit, vs...))
}

// PossessionLimitNotIn applies the NotIn predicate on the "possession_limit" field.
func PossessionLimitNotIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldPossessionLimit, vs...))
}

// PossessionLimitGT applies the GT predicate on the "possession_limit" field.
func PossessionLimitGT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldPossessionLimit, v))
}

// PossessionLimitGTE applies the GTE predicate on the "possession_limit" field.
func PossessionLimitGTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldPossessionLimit, v))
}

// PossessionLimitLT applies the LT predicate on the "possession_limit" field.
func PossessionLimitLT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldPossessionLimit, v))
}

// PossessionLimitLTE applies the LTE predicate on the "possession_limit" field.
func PossessionLimitLTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldPossessionLimit, v))
}

// PossessionLimitIsNil applies the IsNil predicate on the "possession_limit" field.
func PossessionLimitIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldPossessionLimit))
}

// PossessionLimitNotNil applies the NotNil predicate on the "possession_limit" field.
func PossessionLimitNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldPossessionLimit))
}

// MinimumSizeEQ applies the EQ predicate on the "minimum_size" field.
func MinimumSizeEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldMinimumSize, v))
}

// MinimumSizeNEQ applies the NEQ predicate on the "minimum_size" field.
func MinimumSizeNEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldMinimumSize, v))
}

// MinimumSizeIn applies the In predicate on the "minimum_size" field.
func MinimumSizeIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldMinimumSize, vs...))
}

// MinimumSizeNotIn applies the NotIn predicate on the "minimum_size" field.
func MinimumSizeNotIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldMinimumSize, vs...))
}

// MinimumSizeGT applies the GT predicate on the "minimum_size" field.
func MinimumSizeGT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldMinimumSize, v))
}

// MinimumSizeGTE applies the GTE predicate on the "minimum_size" field.
func MinimumSizeGTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldMinimumSize, v))
}

// MinimumSizeLT applies the LT predicate on the "minimum_size" field.
func MinimumSizeLT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldMinimumSize, v))
}

// MinimumSizeLTE applies the LTE predicate on the "minimum_size" field.
func MinimumSizeLTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldMinimumSize, v))
}

// MinimumSizeIsNil applies the IsNil predicate on the "minimum_size" field.
func MinimumSizeIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldMinimumSize))
}

// MinimumSizeNotNil applies the NotNil predicate on the "minimum_size" field.
func MinimumSizeNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldMinimumSize))
}

// MaximumSizeEQ applies the EQ predicate on the "maximum_size" field.
func MaximumSizeEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldMaximumSize, v))
}

// MaximumSizeNEQ applies the NEQ predicate on the "maximum_size" field.
func MaximumSizeNEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldMaximumSize, v))
}

// MaximumSizeIn applies the In predicate on the "maximum_size" field.
func MaximumSizeIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldMaximumSize, vs...))
}

// MaximumSizeNotIn applies the NotIn predicate on the "maximum_size" field.
func MaximumSizeNotIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldMaximumSize, vs...))
}

// MaximumSizeGT applies the GT predicate on the "maximum_size" field.
func MaximumSizeGT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldMaximumSize, v))
}

// MaximumSizeGTE applies the GTE predicate on the "maximum_size" field.
func MaximumSizeGTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldMaximumSize, v))
}

// MaximumSizeLT applies the LT predicate on the "maximum_size" field.
func MaximumSizeLT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldMaximumSize, v))
}

// MaximumSizeLTE applies the LTE predicate on the "maximum_size" field.
func MaximumSizeLTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldMaximumSize, v))
}

// MaximumSizeIsNil applies the IsNil predicate on the "maximum_size" field.
func MaximumSizeIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldMaximumSize))
}

// MaximumSizeNotNil applies the NotNil predicate on the "maximum_size" field.
func MaximumSizeNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldMaximumSize))
}

// ProtectedSlotMinEQ applies the EQ predicate on the "protected_slot_min" field.
func ProtectedSlotMinEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinNEQ applies the NEQ predicate on the "protected_slot_min" field.
func ProtectedSlotMinNEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinIn applies the In predicate on the "protected_slot_min" field.
func ProtectedSlotMinIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldProtectedSlotMin, vs...))
}

// ProtectedSlotMinNotIn applies the NotIn predicate on the "protected_slot_min" field.
func ProtectedSlotMinNotIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldProtectedSlotMin, vs...))
}

// ProtectedSlotMinGT applies the GT predicate on the "protected_slot_min" field.
func ProtectedSlotMinGT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinGTE applies the GTE predicate on the "protected_slot_min" field.
func ProtectedSlotMinGTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinLT applies the LT predicate on the "protected_slot_min" field.
func ProtectedSlotMinLT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinLTE applies the LTE predicate on the "protected_slot_min" field.
func ProtectedSlotMinLTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldProtectedSlotMin, v))
}

// ProtectedSlotMinIsNil applies the IsNil predicate on the "protected_slot_min" field.
func ProtectedSlotMinIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldProtectedSlotMin))
}

// ProtectedSlotMinNotNil applies the NotNil predicate on the "protected_slot_min" field.
func ProtectedSlotMinNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldProtectedSlotMin))
}

// ProtectedSlotMaxEQ applies the EQ predicate on the "protected_slot_max" field.
func ProtectedSlotMaxEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxNEQ applies the NEQ predicate on the "protected_slot_max" field.
func ProtectedSlotMaxNEQ(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxIn applies the In predicate on the "protected_slot_max" field.
func ProtectedSlotMaxIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldProtectedSlotMax, vs...))
}

// ProtectedSlotMaxNotIn applies the NotIn predicate on the "protected_slot_max" field.
func ProtectedSlotMaxNotIn(vs ...float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldProtectedSlotMax, vs...))
}

// ProtectedSlotMaxGT applies the GT predicate on the "protected_slot_max" field.
func ProtectedSlotMaxGT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxGTE applies the GTE predicate on the "protected_slot_max" field.
func ProtectedSlotMaxGTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxLT applies the LT predicate on the "protected_slot_max" field.
func ProtectedSlotMaxLT(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxLTE applies the LTE predicate on the "protected_slot_max" field.
func ProtectedSlotMaxLTE(v float64) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldProtectedSlotMax, v))
}

// ProtectedSlotMaxIsNil applies the IsNil predicate on the "protected_slot_max" field.
func ProtectedSlotMaxIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldProtectedSlotMax))
}

// ProtectedSlotMaxNotNil applies the NotNil predicate on the "protected_slot_max" field.
func ProtectedSlotMaxNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldProtectedSlotMax))
}

// ProtectedSlotExceptionsEQ applies the EQ predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldProtectedSlotExceptions, v))
}

// ProtectedSlotExceptionsNEQ applies the NEQ predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsNEQ(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldProtectedSlotExceptions, v))
}

// ProtectedSlotExceptionsIn applies the In predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldProtectedSlotExceptions, vs...))
}

// ProtectedSlotExceptionsNotIn applies the NotIn predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsNotIn(vs ...int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldProtectedSlotExceptions, vs...))
}

// ProtectedSlotExceptionsGT applies the GT predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsGT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldProtectedSlotExceptions, v))
}

// ProtectedSlotExceptionsGTE applies the GTE predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsGTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldProtectedSlotExceptions, v))
}

// ProtectedSlotExceptionsLT applies the LT predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsLT(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldProtectedSlotExceptions, v))
}

// ProtectedSlotExceptionsLTE applies the LTE predicate on the "protected_slot_exceptions" field.
func ProtectedSlotExceptionsLTE(v int) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldProtectedSlotExceptions, v))
}

// SeasonOpenEQ applies the EQ predicate on the "season_open" field.
func SeasonOpenEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSeasonOpen, v))
}

// SeasonOpenNEQ applies the NEQ predicate on the "season_open" field.
func SeasonOpenNEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldSeasonOpen, v))
}

// SeasonOpenIn applies the In predicate on the "season_open" field.
func SeasonOpenIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldSeasonOpen, vs...))
}

// SeasonOpenNotIn applies the NotIn predicate on the "season_open" field.
func SeasonOpenNotIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldSeasonOpen, vs...))
}

// SeasonOpenGT applies the GT predicate on the "season_open" field.
func SeasonOpenGT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldSeasonOpen, v))
}

// SeasonOpenGTE applies the GTE predicate on the "season_open" field.
func SeasonOpenGTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldSeasonOpen, v))
}

// SeasonOpenLT applies the LT predicate on the "season_open" field.
func SeasonOpenLT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldSeasonOpen, v))
}

// SeasonOpenLTE applies the LTE predicate on the "season_open" field.
func SeasonOpenLTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldSeasonOpen, v))
}

// SeasonOpenContains applies the Contains predicate on the "season_open" field.
func SeasonOpenContains(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContains(FieldSeasonOpen, v))
}

// SeasonOpenHasPrefix applies the HasPrefix predicate on the "season_open" field.
func SeasonOpenHasPrefix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasPrefix(FieldSeasonOpen, v))
}

// SeasonOpenHasSuffix applies the HasSuffix predicate on the "season_open" field.
func SeasonOpenHasSuffix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasSuffix(FieldSeasonOpen, v))
}

// SeasonOpenIsNil applies the IsNil predicate on the "season_open" field.
func SeasonOpenIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldSeasonOpen))
}

// SeasonOpenNotNil applies the NotNil predicate on the "season_open" field.
func SeasonOpenNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldSeasonOpen))
}

// SeasonOpenEqualFold applies the EqualFold predicate on the "season_open" field.
func SeasonOpenEqualFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEqualFold(FieldSeasonOpen, v))
}

// SeasonOpenContainsFold applies the ContainsFold predicate on the "season_open" field.
func SeasonOpenContainsFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContainsFold(FieldSeasonOpen, v))
}

// SeasonCloseEQ applies the EQ predicate on the "season_close" field.
func SeasonCloseEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSeasonClose, v))
}

// SeasonCloseNEQ applies the NEQ predicate on the "season_close" field.
func SeasonCloseNEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldSeasonClose, v))
}

// SeasonCloseIn applies the In predicate on the "season_close" field.
func SeasonCloseIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldSeasonClose, vs...))
}

// SeasonCloseNotIn applies the NotIn predicate on the "season_close" field.
func SeasonCloseNotIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldSeasonClose, vs...))
}

// SeasonCloseGT applies the GT predicate on the "season_close" field.
func SeasonCloseGT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldSeasonClose, v))
}

// SeasonCloseGTE applies the GTE predicate on the "season_close" field.
func SeasonCloseGTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldSeasonClose, v))
}

// SeasonCloseLT applies the LT predicate on the "season_close" field.
func SeasonCloseLT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldSeasonClose, v))
}

// SeasonCloseLTE applies the LTE predicate on the "season_close" field.
func SeasonCloseLTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldSeasonClose, v))
}

// SeasonCloseContains applies the Contains predicate on the "season_close" field.
func SeasonCloseContains(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContains(FieldSeasonClose, v))
}

// SeasonCloseHasPrefix applies the HasPrefix predicate on the "season_close" field.
func SeasonCloseHasPrefix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasPrefix(FieldSeasonClose, v))
}

// SeasonCloseHasSuffix applies the HasSuffix predicate on the "season_close" field.
func SeasonCloseHasSuffix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasSuffix(FieldSeasonClose, v))
}

// SeasonCloseIsNil applies the IsNil predicate on the "season_close" field.
func SeasonCloseIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldSeasonClose))
}

// SeasonCloseNotNil applies the NotNil predicate on the "season_close" field.
func SeasonCloseNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldSeasonClose))
}

// SeasonCloseEqualFold applies the EqualFold predicate on the "season_close" field.
func SeasonCloseEqualFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEqualFold(FieldSeasonClose, v))
}

// SeasonCloseContainsFold applies the ContainsFold predicate on the "season_close" field.
func SeasonCloseContainsFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContainsFold(FieldSeasonClose, v))
}

// YearRoundEQ applies the EQ predicate on the "year_round" field.
func YearRoundEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldYearRound, v))
}

// YearRoundNEQ applies the NEQ predicate on the "year_round" field.
func YearRoundNEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldYearRound, v))
}

// CatchAndReleaseEQ applies the EQ predicate on the "catch_and_release" field.
func CatchAndReleaseEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldCatchAndRelease, v))
}

// CatchAndReleaseNEQ applies the NEQ predicate on the "catch_and_release" field.
func CatchAndReleaseNEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldCatchAndRelease, v))
}

// SpecialNotesEQ applies the EQ predicate on the "special_notes" field.
func SpecialNotesEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldSpecialNotes, v))
}

// SpecialNotesNEQ applies the NEQ predicate on the "special_notes" field.
func SpecialNotesNEQ(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldSpecialNotes, v))
}

// SpecialNotesIn applies the In predicate on the "special_notes" field.
func SpecialNotesIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldSpecialNotes, vs...))
}

// SpecialNotesNotIn applies the NotIn predicate on the "special_notes" field.
func SpecialNotesNotIn(vs ...string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldSpecialNotes, vs...))
}

// SpecialNotesGT applies the GT predicate on the "special_notes" field.
func SpecialNotesGT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldSpecialNotes, v))
}

// SpecialNotesGTE applies the GTE predicate on the "special_notes" field.
func SpecialNotesGTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldSpecialNotes, v))
}

// SpecialNotesLT applies the LT predicate on the "special_notes" field.
func SpecialNotesLT(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldSpecialNotes, v))
}

// SpecialNotesLTE applies the LTE predicate on the "special_notes" field.
func SpecialNotesLTE(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldSpecialNotes, v))
}

// SpecialNotesContains applies the Contains predicate on the "special_notes" field.
func SpecialNotesContains(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContains(FieldSpecialNotes, v))
}

// SpecialNotesHasPrefix applies the HasPrefix predicate on the "special_notes" field.
func SpecialNotesHasPrefix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasPrefix(FieldSpecialNotes, v))
}

// SpecialNotesHasSuffix applies the HasSuffix predicate on the "special_notes" field.
func SpecialNotesHasSuffix(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldHasSuffix(FieldSpecialNotes, v))
}

// SpecialNotesIsNil applies the IsNil predicate on the "special_notes" field.
func SpecialNotesIsNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIsNull(FieldSpecialNotes))
}

// SpecialNotesNotNil applies the NotNil predicate on the "special_notes" field.
func SpecialNotesNotNil() predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotNull(FieldSpecialNotes))
}

// SpecialNotesEqualFold applies the EqualFold predicate on the "special_notes" field.
func SpecialNotesEqualFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEqualFold(FieldSpecialNotes, v))
}

// SpecialNotesContainsFold applies the ContainsFold predicate on the "special_notes" field.
func SpecialNotesContainsFold(v string) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldContainsFold(FieldSpecialNotes, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldIsActive, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWaterBody applies the HasEdge predicate on the "water_body" edge.
func HasWaterBody() predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WaterBodyTable, WaterBodyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWaterBodyWith applies the HasEdge predicate on the "water_body" edge with a given conditions (other predicates).
func HasWaterBodyWith(preds ...predicate.WaterBody) predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := newWaterBodyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpecies applies the HasEdge predicate on the "species" edge.
func HasSpecies() predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpeciesTable, SpeciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpeciesWith applies the HasEdge predicate on the "species" edge with a given conditions (other predicates).
func HasSpeciesWith(preds ...predicate.FishSpecies) predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := newSpeciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.RegulationDocument) predicate.FishingRegulation {
	return predicate.FishingRegulation(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FishingRegulation) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FishingRegulation) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FishingRegulation) predicate.FishingRegulation {
	return predicate.FishingRegulation(sql.NotPredicates(p))
}
