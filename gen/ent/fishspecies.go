// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/google/uuid"
)

// FishSpecies is the model entity for the FishSpecies schema.
type FishSpecies struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CommonName holds the value of the "common_name" field.
	CommonName string `json:"common_name,omitempty"`
	// ScientificName holds the value of the "scientific_name" field.
	ScientificName *string `json:"scientific_name,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FishSpeciesQuery when eager-loading is set.
	Edges        FishSpeciesEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FishSpeciesEdges holds the relations/edges for other nodes in the graph.
type FishSpeciesEdges struct {
	// Regulations holds the value of the regulations edge.
	Regulations []*FishingRegulation `json:"regulations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RegulationsOrErr returns the Regulations value or an error if the edge
// was not loaded in eager-loading.
func (e FishSpeciesEdges) RegulationsOrErr() ([]*FishingRegulation, error) {
	if e.loadedTypes[0] {
		return e.Regulations, nil
	}
	return nil, &NotLoadedError{edge: "regulations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FishSpecies) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fishspecies.FieldIsActive:
			values[i] = new(sql.NullBool)
		case fishspecies.FieldCommonName, fishspecies.FieldScientificName:
			values[i] = new(sql.NullString)
		case fishspecies.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case fishspecies.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FishSpecies fields.
func (_m *FishSpecies) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fishspecies.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fishspecies.FieldCommonName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field common_name", values[i])
			} else if value.Valid {
				_m.CommonName = value.String
			}
		case fishspecies.FieldScientificName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scientific_name", values[i])
			} else if value.Valid {
				_m.ScientificName = new(string)
				*_m.ScientificName = value.String
			}
		case fishspecies.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case fishspecies.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FishSpecies.
// This includes values selected through modifiers, order, etc.
func (_m *FishSpecies) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRegulations queries the "regulations" edge of the FishSpecies entity.
func (_m *FishSpecies) QueryRegulations() *FishingRegulationQuery {
	return NewFishSpeciesClient(_m.config).QueryRegulations(_m)
}

// Update returns a builder for updating this FishSpecies.
// Note that you need to call FishSpecies.Unwrap() before calling this method if this FishSpecies
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FishSpecies) Update() *FishSpeciesUpdateOne {
	return NewFishSpeciesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FishSpecies entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FishSpecies) Unwrap() *FishSpecies {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FishSpecies is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FishSpecies) String() string {
	var builder strings.Builder
	builder.WriteString("FishSpecies(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("common_name=")
	builder.WriteString(_m.CommonName)
	builder.WriteString(", ")
	if v := _m.ScientificName; v != nil {
		builder.WriteString("scientific_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FishSpeciesSlice is a parsable slice of FishSpecies.
type FishSpeciesSlice []*FishSpecies
