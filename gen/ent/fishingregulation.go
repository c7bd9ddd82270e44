// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// FishingRegulation is the model entity for the FishingRegulation schema.
type FishingRegulation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WaterBodyID holds the value of the "water_body_id" field.
	WaterBodyID uuid.UUID `json:"water_body_id,omitempty"`
	// SpeciesID holds the value of the "species_id" field.
	SpeciesID uuid.UUID `json:"species_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	// RegulationYear holds the value of the "regulation_year" field.
	RegulationYear int `json:"regulation_year,omitempty"`
	// RegulationType holds the value of the "regulation_type" field.
	RegulationType string `json:"regulation_type,omitempty"`
	// EffectiveDate holds the value of the "effective_date" field.
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	// ExpirationDate holds the value of the "expiration_date" field.
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	// DailyLimit holds the value of the "daily_limit" field.
	DailyLimit *int `json:"daily_limit,omitempty"`
	// PossessionLimit holds the value of the "possession_limit" field.
	PossessionLimit *int `json:"possession_limit,omitempty"`
	// MinimumSize holds the value of the "minimum_size" field.
	MinimumSize *float64 `json:"minimum_size,omitempty"`
	// MaximumSize holds the value of the "maximum_size" field.
	MaximumSize *float64 `json:"maximum_size,omitempty"`
	// ProtectedSlotMin holds the value of the "protected_slot_min" field.
	ProtectedSlotMin *float64 `json:"protected_slot_min,omitempty"`
	// ProtectedSlotMax holds the value of the "protected_slot_max" field.
	ProtectedSlotMax *float64 `json:"protected_slot_max,omitempty"`
	// ProtectedSlotExceptions holds the value of the "protected_slot_exceptions" field.
	ProtectedSlotExceptions int `json:"protected_slot_exceptions,omitempty"`
	// SeasonOpen holds the value of the "season_open" field.
	SeasonOpen *string `json:"season_open,omitempty"`
	// SeasonClose holds the value of the "season_close" field.
	SeasonClose *string `json:"season_close,omitempty"`
	// YearRound holds the value of the "year_round" field.
	YearRound bool `json:"year_round,omitempty"`
	// CatchAndRelease holds the value of the "catch_and_release" field.
	CatchAndRelease bool `json:"catch_and_release,omitempty"`
	// SpecialNotes holds the value of the "special_notes" field.
	SpecialNotes *string `json:"special_notes,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FishingRegulationQuery when eager-loading is set.
	Edges        FishingRegulationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FishingRegulationEdges holds the relations/edges for other nodes in the graph.
type FishingRegulationEdges struct {
	// WaterBody holds the value of the water_body edge.
	WaterBody *WaterBody `json:"water_body,omitempty"`
	// Species holds the value of the species edge.
	Species *FishSpecies `json:"species,omitempty"`
	// Document holds the value of the document edge.
	Document *RegulationDocument `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// WaterBodyOrErr returns the WaterBody value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FishingRegulationEdges) WaterBodyOrErr() (*WaterBody, error) {
	if e.WaterBody != nil {
		return e.WaterBody, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: waterbody.Label}
	}
	return nil, &NotLoadedError{edge: "water_body"}
}

// SpeciesOrErr returns the Species value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FishingRegulationEdges) SpeciesOrErr() (*FishSpecies, error) {
	if e.Species != nil {
		return e.Species, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: fishspecies.Label}
	}
	return nil, &NotLoadedError{edge: "species"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FishingRegulationEdges) DocumentOrErr() (*RegulationDocument, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: regulationdocument.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FishingRegulation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fishingregulation.FieldDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case fishingregulation.FieldYearRound, fishingregulation.FieldCatchAndRelease, fishingregulation.FieldIsActive, fishingregulation.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case fishingregulation.FieldMinimumSize, fishingregulation.FieldMaximumSize, fishingregulation.FieldProtectedSlotMin, fishingregulation.FieldProtectedSlotMax:
			values[i] = new(sql.NullFloat64)
		case fishingregulation.FieldRegulationYear, fishingregulation.FieldDailyLimit, fishingregulation.FieldPossessionLimit, fishingregulation.FieldProtectedSlotExceptions:
			values[i] = new(sql.NullInt64)
		case fishingregulation.FieldRegulationType, fishingregulation.FieldSeasonOpen, fishingregulation.FieldSeasonClose, fishingregulation.FieldSpecialNotes:
			values[i] = new(sql.NullString)
		case fishingregulation.FieldEffectiveDate, fishingregulation.FieldExpirationDate, fishingregulation.FieldCreatedAt, fishingregulation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fishingregulation.FieldID, fishingregulation.FieldWaterBodyID, fishingregulation.FieldSpeciesID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FishingRegulation fields.
func (_m *FishingRegulation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fishingregulation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fishingregulation.FieldWaterBodyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field water_body_id", values[i])
			} else if value != nil {
				_m.WaterBodyID = *value
			}
		case fishingregulation.FieldSpeciesID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field species_id", values[i])
			} else if value != nil {
				_m.SpeciesID = *value
			}
		case fishingregulation.FieldDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = new(uuid.UUID)
				*_m.DocumentID = *value.S.(*uuid.UUID)
			}
		case fishingregulation.FieldRegulationYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field regulation_year", values[i])
			} else if value.Valid {
				_m.RegulationYear = int(value.Int64)
			}
		case fishingregulation.FieldRegulationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regulation_type", values[i])
			} else if value.Valid {
				_m.RegulationType = value.String
			}
		case fishingregulation.FieldEffectiveDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_date", values[i])
			} else if value.Valid {
				_m.EffectiveDate = new(time.Time)
				*_m.EffectiveDate = value.Time
			}
		case fishingregulation.FieldExpirationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiration_date", values[i])
			} else if value.Valid {
				_m.ExpirationDate = new(time.Time)
				*_m.ExpirationDate = value.Time
			}
		case fishingregulation.FieldDailyLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_limit", values[i])
			} else if value.Valid {
				_m.DailyLimit = new(int)
				*_m.DailyLimit = int(value.Int64)
			}
		case fishingregulation.FieldPossessionLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field possession_limit", values[i])
			} else if value.Valid {
				_m.PossessionLimit = new(int)
				*_m.PossessionLimit = int(value.Int64)
			}
		case fishingregulation.FieldMinimumSize:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field minimum_size", values[i])
			} else if value.Valid {
				_m.MinimumSize = new(float64)
				*_m.MinimumSize = value.Float64
			}
		case fishingregulation.FieldMaximumSize:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field maximum_size", values[i])
			} else if value.Valid {
				_m.MaximumSize = new(float64)
				*_m.MaximumSize = value.Float64
			}
		case fishingregulation.FieldProtectedSlotMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field protected_slot_min", values[i])
			} else if value.Valid {
				_m.ProtectedSlotMin = new(float64)
				*_m.ProtectedSlotMin = value.Float64
			}
		case fishingregulation.FieldProtectedSlotMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field protected_slot_max", values[i])
			} else if value.Valid {
				_m.ProtectedSlotMax = new(float64)
				*_m.ProtectedSlotMax = value.Float64
			}
		case fishingregulation.FieldProtectedSlotExceptions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field protected_slot_exceptions", values[i])
			} else if value.Valid {
				_m.ProtectedSlotExceptions = int(value.Int64)
			}
		case fishingregulation.FieldSeasonOpen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season_open", values[i])
			} else if value.Valid {
				_m.SeasonOpen = new(string)
				*_m.SeasonOpen = value.String
			}
		case fishingregulation.FieldSeasonClose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field season_close", values[i])
			} else if value.Valid {
				_m.SeasonClose = new(string)
				*_m.SeasonClose = value.String
			}
		case fishingregulation.FieldYearRound:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field year_round", values[i])
			} else if value.Valid {
				_m.YearRound = value.Bool
			}
		case fishingregulation.FieldCatchAndRelease:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field catch_and_release", values[i])
			} else if value.Valid {
				_m.CatchAndRelease = value.Bool
			}
		case fishingregulation.FieldSpecialNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field special_notes", values[i])
			} else if value.Valid {
				_m.SpecialNotes = new(string)
				*_m.SpecialNotes = value.String
			}
		case fishingregulation.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case fishingregulation.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case fishingregulation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fishingregulation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FishingRegulation.
// This includes values selected through modifiers, order, etc.
func (_m *FishingRegulation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWaterBody queries the "water_body" edge of the FishingRegulation entity.
func (_m *FishingRegulation) QueryWaterBody() *WaterBodyQuery {
	return NewFishingRegulationClient(_m.config).QueryWaterBody(_m)
}

// QuerySpecies queries the "species" edge of the FishingRegulation entity.
func (_m *FishingRegulation) QuerySpecies() *FishSpeciesQuery {
	return NewFishingRegulationClient(_m.config).QuerySpecies(_m)
}

// QueryDocument queries the "document" edge of the FishingRegulation entity.
func (_m *FishingRegulation) QueryDocument() *RegulationDocumentQuery {
	return NewFishingRegulationClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this FishingRegulation.
// Note that you need to call FishingRegulation.Unwrap() before calling this method if this FishingRegulation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FishingRegulation) Update() *FishingRegulationUpdateOne {
	return NewFishingRegulationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FishingRegulation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FishingRegulation) Unwrap() *FishingRegulation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FishingRegulation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FishingRegulation) String() string {
	var builder strings.Builder
	builder.WriteString("FishingRegulation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("water_body_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WaterBodyID))
	builder.WriteString(", ")
	builder.WriteString("species_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeciesID))
	builder.WriteString(", ")
	if v := _m.DocumentID; v != nil {
		builder.WriteString("document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("regulation_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegulationYear))
	builder.WriteString(", ")
	builder.WriteString("regulation_type=")
	builder.WriteString(_m.RegulationType)
	builder.WriteString(", ")
	if v := _m.EffectiveDate; v != nil {
		builder.WriteString("effective_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpirationDate; v != nil {
		builder.WriteString("expiration_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DailyLimit; v != nil {
		builder.WriteString("daily_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PossessionLimit; v != nil {
		builder.WriteString("possession_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MinimumSize; v != nil {
		builder.WriteString("minimum_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaximumSize; v != nil {
		builder.WriteString("maximum_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProtectedSlotMin; v != nil {
		builder.WriteString("protected_slot_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProtectedSlotMax; v != nil {
		builder.WriteString("protected_slot_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("protected_slot_exceptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProtectedSlotExceptions))
	builder.WriteString(", ")
	if v := _m.SeasonOpen; v != nil {
		builder.WriteString("season_open=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SeasonClose; v != nil {
		builder.WriteString("season_close=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("year_round=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearRound))
	builder.WriteString(", ")
	builder.WriteString("catch_and_release=")
	builder.WriteString(fmt.Sprintf("%v", _m.CatchAndRelease))
	builder.WriteString(", ")
	if v := _m.SpecialNotes; v != nil {
		builder.WriteString("special_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FishingRegulations is a parsable slice of FishingRegulation.
type FishingRegulations []*FishingRegulation
