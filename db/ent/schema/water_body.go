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

type WaterBody struct{ ent.Schema }

func (WaterBody) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "water_bodies"},
	}
}

func (WaterBody) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		// lowercased, whitespace-collapsed form used for resolve-or-create
		field.String("normalized_name").NotEmpty(),
		field.String("water_body_type").
			Default(constants.DefaultWaterBodyType).
			Validate(utils.EnumValidator(constants.WaterBodyTypes...)),
		field.String("state_code").NotEmpty().MinLen(2).MaxLen(2).
			SchemaType(map[string]string{dialect.Postgres: "char(2)"}),
		field.String("county").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (WaterBody) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("regulations", FishingRegulation.Type),
	}
}

func (WaterBody) Indexes() []ent.Index {
	return []ent.Index{
		// one water body per (normalized name, state); the resolve-then-create
		// sequence has a read/write race window, so the store enforces it
		index.Fields("normalized_name", "state_code").Unique(),
		index.Fields("state_code", "county"),
	}
}
