package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/fisheries-data/regs-tracker/constants"
	"github.com/fisheries-data/regs-tracker/db/ent/schema/utils"
	"github.com/google/uuid"
)

type FishingRegulation struct{ ent.Schema }

func (FishingRegulation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fishing_regulations"},
	}
}

func (FishingRegulation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define the composite unique index
		field.UUID("water_body_id", uuid.UUID{}),
		field.UUID("species_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("regulation_year").Positive(),
		field.String("regulation_type").
			Default(string(constants.RegTypeCombined)).
			Validate(utils.EnumValidator(constants.RegulationTypes...)),
		field.Time("effective_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("expiration_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Int("daily_limit").Optional().Nillable(),
		field.Int("possession_limit").Optional().Nillable(),
		field.Float("minimum_size").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("maximum_size").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("protected_slot_min").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Float("protected_slot_max").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Int("protected_slot_exceptions").Default(0),
		field.String("season_open").Optional().Nillable(),
		field.String("season_close").Optional().Nillable(),
		field.Bool("year_round").Default(false),
		field.Bool("catch_and_release").Default(false),
		field.String("special_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_active").Default(true),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FishingRegulation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("water_body", WaterBody.Type).
			Ref("regulations").
			Field("water_body_id").
			Required().
			Unique(),
		edge.From("species", FishSpecies.Type).
			Ref("regulations").
			Field("species_id").
			Required().
			Unique(),
		edge.From("document", RegulationDocument.Type).
			Ref("regulations").
			Field("document_id").
			Unique(),
	}
}

func (FishingRegulation) Indexes() []ent.Index {
	return []ent.Index{
		// at most one regulation per (water body, species, year); re-ingestion
		// updates the row in place instead of inserting a duplicate
		index.Fields("water_body_id", "species_id", "regulation_year").Unique(),
		index.Fields("species_id", "regulation_year"),
		index.Fields("document_id"),
	}
}
