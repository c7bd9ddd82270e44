// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FishSpeciesColumns holds the columns for the "fish_species" table.
	FishSpeciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "common_name", Type: field.TypeString, Unique: true},
		{Name: "scientific_name", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FishSpeciesTable holds the schema information for the "fish_species" table.
	FishSpeciesTable = &schema.Table{
		Name:       "fish_species",
		Columns:    FishSpeciesColumns,
		PrimaryKey: []*schema.Column{FishSpeciesColumns[0]},
	}
	// FishingRegulationsColumns holds the columns for the "fishing_regulations" table.
	FishingRegulationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "regulation_year", Type: field.TypeInt},
		{Name: "regulation_type", Type: field.TypeString, Default: "combined"},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiration_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "daily_limit", Type: field.TypeInt, Nullable: true},
		{Name: "possession_limit", Type: field.TypeInt, Nullable: true},
		{Name: "minimum_size", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "maximum_size", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "protected_slot_min", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "protected_slot_max", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "protected_slot_exceptions", Type: field.TypeInt, Default: 0},
		{Name: "season_open", Type: field.TypeString, Nullable: true},
		{Name: "season_close", Type: field.TypeString, Nullable: true},
		{Name: "year_round", Type: field.TypeBool, Default: false},
		{Name: "catch_and_release", Type: field.TypeBool, Default: false},
		{Name: "special_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "species_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "water_body_id", Type: field.TypeUUID},
	}
	// FishingRegulationsTable holds the schema information for the "fishing_regulations" table.
	FishingRegulationsTable = &schema.Table{
		Name:       "fishing_regulations",
		Columns:    FishingRegulationsColumns,
		PrimaryKey: []*schema.Column{FishingRegulationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fishing_regulations_fish_species_regulations",
				Columns:    []*schema.Column{FishingRegulationsColumns[21]},
				RefColumns: []*schema.Column{FishSpeciesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "fishing_regulations_regulation_documents_regulations",
				Columns:    []*schema.Column{FishingRegulationsColumns[22]},
				RefColumns: []*schema.Column{RegulationDocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "fishing_regulations_water_bodies_regulations",
				Columns:    []*schema.Column{FishingRegulationsColumns[23]},
				RefColumns: []*schema.Column{WaterBodiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fishingregulation_water_body_id_species_id_regulation_year",
				Unique:  true,
				Columns: []*schema.Column{FishingRegulationsColumns[23], FishingRegulationsColumns[21], FishingRegulationsColumns[1]},
			},
			{
				Name:    "fishingregulation_species_id_regulation_year",
				Unique:  false,
				Columns: []*schema.Column{FishingRegulationsColumns[21], FishingRegulationsColumns[1]},
			},
			{
				Name:    "fishingregulation_document_id",
				Unique:  false,
				Columns: []*schema.Column{FishingRegulationsColumns[22]},
			},
		},
	}
	// RegulationDocumentsColumns holds the columns for the "regulation_documents" table.
	RegulationDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "processing_status", Type: field.TypeString, Default: "pending"},
		{Name: "state_code", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "regulation_year", Type: field.TypeInt},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "storage_url", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RegulationDocumentsTable holds the schema information for the "regulation_documents" table.
	RegulationDocumentsTable = &schema.Table{
		Name:       "regulation_documents",
		Columns:    RegulationDocumentsColumns,
		PrimaryKey: []*schema.Column{RegulationDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "regulationdocument_state_code_regulation_year",
				Unique:  false,
				Columns: []*schema.Column{RegulationDocumentsColumns[5], RegulationDocumentsColumns[6]},
			},
			{
				Name:    "regulationdocument_processing_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{RegulationDocumentsColumns[4], RegulationDocumentsColumns[9]},
			},
		},
	}
	// WaterBodiesColumns holds the columns for the "water_bodies" table.
	WaterBodiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "water_body_type", Type: field.TypeString, Default: "lake"},
		{Name: "state_code", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "county", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WaterBodiesTable holds the schema information for the "water_bodies" table.
	WaterBodiesTable = &schema.Table{
		Name:       "water_bodies",
		Columns:    WaterBodiesColumns,
		PrimaryKey: []*schema.Column{WaterBodiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "waterbody_normalized_name_state_code",
				Unique:  true,
				Columns: []*schema.Column{WaterBodiesColumns[2], WaterBodiesColumns[4]},
			},
			{
				Name:    "waterbody_state_code_county",
				Unique:  false,
				Columns: []*schema.Column{WaterBodiesColumns[4], WaterBodiesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FishSpeciesTable,
		FishingRegulationsTable,
		RegulationDocumentsTable,
		WaterBodiesTable,
	}
)

func init() {
	FishSpeciesTable.Annotation = &entsql.Annotation{
		Table: "fish_species",
	}
	FishingRegulationsTable.ForeignKeys[0].RefTable = FishSpeciesTable
	FishingRegulationsTable.ForeignKeys[1].RefTable = RegulationDocumentsTable
	FishingRegulationsTable.ForeignKeys[2].RefTable = WaterBodiesTable
	FishingRegulationsTable.Annotation = &entsql.Annotation{
		Table: "fishing_regulations",
	}
	RegulationDocumentsTable.Annotation = &entsql.Annotation{
		Table: "regulation_documents",
	}
	WaterBodiesTable.Annotation = &entsql.Annotation{
		Table: "water_bodies",
	}
}
