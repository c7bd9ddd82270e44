// Code generated by ent, DO NOT EDIT.

package waterbody

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldNormalizedName, v))
}

// WaterBodyType applies equality check predicate on the "water_body_type" field. It's identical to WaterBodyTypeEQ.
func WaterBodyType(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldWaterBodyType, v))
}

// StateCode applies equality check predicate on the "state_code" field. It's identical to StateCodeEQ.
func StateCode(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldStateCode, v))
}

// County applies equality check predicate on the "county" field. It's identical to CountyEQ.
func County(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldCounty, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContainsFold(FieldName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContainsFold(FieldNormalizedName, v))
}

// WaterBodyTypeEQ applies the EQ predicate on the "water_body_type" field.
func WaterBodyTypeEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldWaterBodyType, v))
}

// WaterBodyTypeNEQ applies the NEQ predicate on the "water_body_type" field.
func WaterBodyTypeNEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldWaterBodyType, v))
}

// WaterBodyTypeIn applies the In predicate on the "water_body_type" field.
func WaterBodyTypeIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldWaterBodyType, vs...))
}

// WaterBodyTypeNotIn applies the NotIn predicate on the "water_body_type" field.
func WaterBodyTypeNotIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldWaterBodyType, vs...))
}

// WaterBodyTypeGT applies the GT predicate on the "water_body_type" field.
func WaterBodyTypeGT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldWaterBodyType, v))
}

// WaterBodyTypeGTE applies the GTE predicate on the "water_body_type" field.
func WaterBodyTypeGTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldWaterBodyType, v))
}

// WaterBodyTypeLT applies the LT predicate on the "water_body_type" field.
func WaterBodyTypeLT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldWaterBodyType, v))
}

// WaterBodyTypeLTE applies the LTE predicate on the "water_body_type" field.
func WaterBodyTypeLTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldWaterBodyType, v))
}

// WaterBodyTypeContains applies the Contains predicate on the "water_body_type" field.
func WaterBodyTypeContains(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContains(FieldWaterBodyType, v))
}

// WaterBodyTypeHasPrefix applies the HasPrefix predicate on the "water_body_type" field.
func WaterBodyTypeHasPrefix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasPrefix(FieldWaterBodyType, v))
}

// WaterBodyTypeHasSuffix applies the HasSuffix predicate on the "water_body_type" field.
func WaterBodyTypeHasSuffix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasSuffix(FieldWaterBodyType, v))
}

// WaterBodyTypeEqualFold applies the EqualFold predicate on the "water_body_type" field.
func WaterBodyTypeEqualFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEqualFold(FieldWaterBodyType, v))
}

// WaterBodyTypeContainsFold applies the ContainsFold predicate on the "water_body_type" field.
func WaterBodyTypeContainsFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContainsFold(FieldWaterBodyType, v))
}

// StateCodeEQ applies the EQ predicate on the "state_code" field.
func StateCodeEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldStateCode, v))
}

// StateCodeNEQ applies the NEQ predicate on the "state_code" field.
func StateCodeNEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldStateCode, v))
}

// StateCodeIn applies the In predicate on the "state_code" field.
func StateCodeIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldStateCode, vs...))
}

// StateCodeNotIn applies the NotIn predicate on the "state_code" field.
func StateCodeNotIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldStateCode, vs...))
}

// StateCodeGT applies the GT predicate on the "state_code" field.
func StateCodeGT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldStateCode, v))
}

// StateCodeGTE applies the GTE predicate on the "state_code" field.
func StateCodeGTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldStateCode, v))
}

// StateCodeLT applies the LT predicate on the "state_code" field.
func StateCodeLT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldStateCode, v))
}

// StateCodeLTE applies the LTE predicate on the "state_code" field.
func StateCodeLTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldStateCode, v))
}

// StateCodeContains applies the Contains predicate on the "state_code" field.
func StateCodeContains(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContains(FieldStateCode, v))
}

// StateCodeHasPrefix applies the HasPrefix predicate on the "state_code" field.
func StateCodeHasPrefix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasPrefix(FieldStateCode, v))
}

// StateCodeHasSuffix applies the HasSuffix predicate on the "state_code" field.
func StateCodeHasSuffix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasSuffix(FieldStateCode, v))
}

// StateCodeEqualFold applies the EqualFold predicate on the "state_code" field.
func StateCodeEqualFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEqualFold(FieldStateCode, v))
}

// StateCodeContainsFold applies the ContainsFold predicate on the "state_code" field.
func StateCodeContainsFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContainsFold(FieldStateCode, v))
}

// CountyEQ applies the EQ predicate on the "county" field.
func CountyEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldCounty, v))
}

// CountyNEQ applies the NEQ predicate on the "county" field.
func CountyNEQ(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldCounty, v))
}

// CountyIn applies the In predicate on the "county" field.
func CountyIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldCounty, vs...))
}

// CountyNotIn applies the NotIn predicate on the "county" field.
func CountyNotIn(vs ...string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldCounty, vs...))
}

// CountyGT applies the GT predicate on the "county" field.
func CountyGT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldCounty, v))
}

// CountyGTE applies the GTE predicate on the "county" field.
func CountyGTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldCounty, v))
}

// CountyLT applies the LT predicate on the "county" field.
func CountyLT(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldCounty, v))
}

// CountyLTE applies the LTE predicate on the "county" field.
func CountyLTE(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldCounty, v))
}

// CountyContains applies the Contains predicate on the "county" field.
func CountyContains(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContains(FieldCounty, v))
}

// CountyHasPrefix applies the HasPrefix predicate on the "county" field.
func CountyHasPrefix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasPrefix(FieldCounty, v))
}

// CountyHasSuffix applies the HasSuffix predicate on the "county" field.
func CountyHasSuffix(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldHasSuffix(FieldCounty, v))
}

// CountyIsNil applies the IsNil predicate on the "county" field.
func CountyIsNil() predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIsNull(FieldCounty))
}

// CountyNotNil applies the NotNil predicate on the "county" field.
func CountyNotNil() predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotNull(FieldCounty))
}

// CountyEqualFold applies the EqualFold predicate on the "county" field.
func CountyEqualFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEqualFold(FieldCounty, v))
}

// CountyContainsFold applies the ContainsFold predicate on the "county" field.
func CountyContainsFold(v string) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldContainsFold(FieldCounty, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WaterBody {
	return predicate.WaterBody(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRegulations applies the HasEdge predicate on the "regulations" edge.
func HasRegulations() predicate.WaterBody {
	return predicate.WaterBody(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RegulationsTable, RegulationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegulationsWith applies the HasEdge predicate on the "regulations" edge with a given conditions (other predicates).
func HasRegulationsWith(preds ...predicate.FishingRegulation) predicate.WaterBody {
	return predicate.WaterBody(func(s *sql.Selector) {
		step := newRegulationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WaterBody) predicate.WaterBody {
	return predicate.WaterBody(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WaterBody) predicate.WaterBody {
	return predicate.WaterBody(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WaterBody) predicate.WaterBody {
	return predicate.WaterBody(sql.NotPredicates(p))
}
