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

type RegulationDocument struct{ ent.Schema }

func (RegulationDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "regulation_documents"},
	}
}

func (RegulationDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.Int64("file_size").NonNegative(),
		field.String("processing_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("state_code").NotEmpty().MinLen(2).MaxLen(2).
			SchemaType(map[string]string{dialect.Postgres: "char(2)"}),
		field.Int("regulation_year").Positive(),
		field.String("extraction_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("storage_url").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (RegulationDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY regulations (provenance)
		edge.To("regulations", FishingRegulation.Type),
	}
}

func (RegulationDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_code", "regulation_year"),
		index.Fields("processing_status", "uploaded_at"),
	}
}
