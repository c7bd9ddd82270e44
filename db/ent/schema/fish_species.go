package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type FishSpecies struct{ ent.Schema }

func (FishSpecies) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fish_species"},
	}
}

func (FishSpecies) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("common_name").NotEmpty().Unique(),
		field.String("scientific_name").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
	}
}

func (FishSpecies) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("regulations", FishingRegulation.Type),
	}
}
