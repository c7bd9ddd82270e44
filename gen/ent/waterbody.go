// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// WaterBody is the model entity for the WaterBody schema.
type WaterBody struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// WaterBodyType holds the value of the "water_body_type" field.
	WaterBodyType string `json:"water_body_type,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// County holds the value of the "county" field.
	County *string `json:"county,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WaterBodyQuery when eager-loading is set.
	Edges        WaterBodyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WaterBodyEdges holds the relations/edges for other nodes in the graph.
type WaterBodyEdges struct {
	// Regulations holds the value of the regulations edge.
	Regulations []*FishingRegulation `json:"regulations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RegulationsOrErr returns the Regulations value or an error if the edge
// was not loaded in eager-loading.
func (e WaterBodyEdges) RegulationsOrErr() ([]*FishingRegulation, error) {
	if e.loadedTypes[0] {
		return e.Regulations, nil
	}
	return nil, &NotLoadedError{edge: "regulations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WaterBody) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case waterbody.FieldIsActive:
			values[i] = new(sql.NullBool)
		case waterbody.FieldName, waterbody.FieldNormalizedName, waterbody.FieldWaterBodyType, waterbody.FieldStateCode, waterbody.FieldCounty:
			values[i] = new(sql.NullString)
		case waterbody.FieldCreatedAt, waterbody.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case waterbody.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WaterBody fields.
func (_m *WaterBody) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case waterbody.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case waterbody.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case waterbody.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case waterbody.FieldWaterBodyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field water_body_type", values[i])
			} else if value.Valid {
				_m.WaterBodyType = value.String
			}
		case waterbody.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case waterbody.FieldCounty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field county", values[i])
			} else if value.Valid {
				_m.County = new(string)
				*_m.County = value.String
			}
		case waterbody.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case waterbody.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case waterbody.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WaterBody.
// This includes values selected through modifiers, order, etc.
func (_m *WaterBody) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRegulations queries the "regulations" edge of the WaterBody entity.
func (_m *WaterBody) QueryRegulations() *FishingRegulationQuery {
	return NewWaterBodyClient(_m.config).QueryRegulations(_m)
}

// Update returns a builder for updating this WaterBody.
// Note that you need to call WaterBody.Unwrap() before calling this method if this WaterBody
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WaterBody) Update() *WaterBodyUpdateOne {
	return NewWaterBodyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WaterBody entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WaterBody) Unwrap() *WaterBody {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WaterBody is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WaterBody) String() string {
	var builder strings.Builder
	builder.WriteString("WaterBody(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("water_body_type=")
	builder.WriteString(_m.WaterBodyType)
	builder.WriteString(", ")
	builder.WriteString("state_code=")
	builder.WriteString(_m.StateCode)
	builder.WriteString(", ")
	if v := _m.County; v != nil {
		builder.WriteString("county=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WaterBodies is a parsable slice of WaterBody.
type WaterBodies []*WaterBody
