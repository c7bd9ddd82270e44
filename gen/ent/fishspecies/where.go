// Code generated by ent, DO NOT EDIT.

package fishspecies

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLTE(FieldID, id))
}

// CommonName applies equality check predicate on the "common_name" field. It's identical to CommonNameEQ.
func CommonName(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldCommonName, v))
}

// ScientificName applies equality check predicate on the "scientific_name" field. It's identical to ScientificNameEQ.
func ScientificName(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldScientificName, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldCreatedAt, v))
}

// CommonNameEQ applies the EQ predicate on the "common_name" field.
func CommonNameEQ(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldCommonName, v))
}

// CommonNameNEQ applies the NEQ predicate on the "common_name" field.
func CommonNameNEQ(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNEQ(FieldCommonName, v))
}

// CommonNameIn applies the In predicate on the "common_name" field.
func CommonNameIn(vs ...string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldIn(FieldCommonName, vs...))
}

// CommonNameNotIn applies the NotIn predicate on the "common_name" field.
func CommonNameNotIn(vs ...string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNotIn(FieldCommonName, vs...))
}

// CommonNameGT applies the GT predicate on the "common_name" field.
func CommonNameGT(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGT(FieldCommonName, v))
}

// CommonNameGTE applies the GTE predicate on the "common_name" field.
func CommonNameGTE(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGTE(FieldCommonName, v))
}

// CommonNameLT applies the LT predicate on the "common_name" field.
func CommonNameLT(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLT(FieldCommonName, v))
}

// CommonNameLTE applies the LTE predicate on the "common_name" field.
func CommonNameLTE(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLTE(FieldCommonName, v))
}

// CommonNameContains applies the Contains predicate on the "common_name" field.
func CommonNameContains(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldContains(FieldCommonName, v))
}

// CommonNameHasPrefix applies the HasPrefix predicate on the "common_name" field.
func CommonNameHasPrefix(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldHasPrefix(FieldCommonName, v))
}

// CommonNameHasSuffix applies the HasSuffix predicate on the "common_name" field.
func CommonNameHasSuffix(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldHasSuffix(FieldCommonName, v))
}

// CommonNameEqualFold applies the EqualFold predicate on the "common_name" field.
func CommonNameEqualFold(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEqualFold(FieldCommonName, v))
}

// CommonNameContainsFold applies the ContainsFold predicate on the "common_name" field.
func CommonNameContainsFold(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldContainsFold(FieldCommonName, v))
}

// ScientificNameEQ applies the EQ predicate on the "scientific_name" field.
func ScientificNameEQ(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldScientificName, v))
}

// ScientificNameNEQ applies the NEQ predicate on the "scientific_name" field.
func ScientificNameNEQ(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNEQ(FieldScientificName, v))
}

// ScientificNameIn applies the In predicate on the "scientific_name" field.
func ScientificNameIn(vs ...string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldIn(FieldScientificName, vs...))
}

// ScientificNameNotIn applies the NotIn predicate on the "scientific_name" field.
func ScientificNameNotIn(vs ...string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNotIn(FieldScientificName, vs...))
}

// ScientificNameGT applies the GT predicate on the "scientific_name" field.
func ScientificNameGT(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGT(FieldScientificName, v))
}

// ScientificNameGTE applies the GTE predicate on the "scientific_name" field.
func ScientificNameGTE(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGTE(FieldScientificName, v))
}

// ScientificNameLT applies the LT predicate on the "scientific_name" field.
func ScientificNameLT(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLT(FieldScientificName, v))
}

// ScientificNameLTE applies the LTE predicate on the "scientific_name" field.
func ScientificNameLTE(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLTE(FieldScientificName, v))
}

// ScientificNameContains applies the Contains predicate on the "scientific_name" field.
func ScientificNameContains(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldContains(FieldScientificName, v))
}

// ScientificNameHasPrefix applies the HasPrefix predicate on the "scientific_name" field.
func ScientificNameHasPrefix(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldHasPrefix(FieldScientificName, v))
}

// ScientificNameHasSuffix applies the HasSuffix predicate on the "scientific_name" field.
func ScientificNameHasSuffix(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldHasSuffix(FieldScientificName, v))
}

// ScientificNameIsNil applies the IsNil predicate on the "scientific_name" field.
func ScientificNameIsNil() predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldIsNull(FieldScientificName))
}

// ScientificNameNotNil applies the NotNil predicate on the "scientific_name" field.
func ScientificNameNotNil() predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNotNull(FieldScientificName))
}

// ScientificNameEqualFold applies the EqualFold predicate on the "scientific_name" field.
func ScientificNameEqualFold(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEqualFold(FieldScientificName, v))
}

// ScientificNameContainsFold applies the ContainsFold predicate on the "scientific_name" field.
func ScientificNameContainsFold(v string) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldContainsFold(FieldScientificName, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FishSpecies {
	return predicate.FishSpecies(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRegulations applies the HasEdge predicate on the "regulations" edge.
func HasRegulations() predicate.FishSpecies {
	return predicate.FishSpecies(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RegulationsTable, RegulationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegulationsWith applies the HasEdge predicate on the "regulations" edge with a given conditions (other predicates).
func HasRegulationsWith(preds ...predicate.FishingRegulation) predicate.FishSpecies {
	return predicate.FishSpecies(func(s *sql.Selector) {
		step := newRegulationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FishSpecies) predicate.FishSpecies {
	return predicate.FishSpecies(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FishSpecies) predicate.FishSpecies {
	return predicate.FishSpecies(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FishSpecies) predicate.FishSpecies {
	return predicate.FishSpecies(sql.NotPredicates(p))
}
