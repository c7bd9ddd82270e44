// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFishSpecies        = "FishSpecies"
	TypeFishingRegulation  = "FishingRegulation"
	TypeRegulationDocument = "RegulationDocument"
	TypeWaterBody          = "WaterBody"
)

// FishSpeciesMutation represents an operation that mutates the FishSpecies nodes in the graph.
type FishSpeciesMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	common_name        *string
	scientific_name    *string
	is_active          *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	regulations        map[uuid.UUID]struct{}
	removedregulations map[uuid.UUID]struct{}
	clearedregulations bool
	done               bool
	oldValue           func(context.Context) (*FishSpecies, error)
	predicates         []predicate.FishSpecies
}

var _ ent.Mutation = (*FishSpeciesMutation)(nil)

// fishspeciesOption allows management of the mutation configuration using functional options.
type fishspeciesOption func(*FishSpeciesMutation)

// newFishSpeciesMutation creates new mutation for the FishSpecies entity.
func newFishSpeciesMutation(c config, op Op, opts ...fishspeciesOption) *FishSpeciesMutation {
	m := &FishSpeciesMutation{
		config:        c,
		op:            op,
		typ:           TypeFishSpecies,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFishSpeciesID sets the ID field of the mutation.
func withFishSpeciesID(id uuid.UUID) fishspeciesOption {
	return func(m *FishSpeciesMutation) {
		var (
			err   error
			once  sync.Once
			value *FishSpecies
		)
		m.oldValue = func(ctx context.Context) (*FishSpecies, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FishSpecies.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFishSpecies sets the old FishSpecies of the mutation.
func withFishSpecies(node *FishSpecies) fishspeciesOption {
	return func(m *FishSpeciesMutation) {
		m.oldValue = func(context.Context) (*FishSpecies, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FishSpeciesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FishSpeciesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FishSpecies entities.
func (m *FishSpeciesMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FishSpeciesMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FishSpeciesMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FishSpecies.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommonName sets the "common_name" field.
func (m *FishSpeciesMutation) SetCommonName(s string) {
	m.common_name = &s
}

// CommonName returns the value of the "common_name" field in the mutation.
func (m *FishSpeciesMutation) CommonName() (r string, exists bool) {
	v := m.common_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCommonName returns the old "common_name" field's value of the FishSpecies entity.
// If the FishSpecies object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishSpeciesMutation) OldCommonName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommonName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommonName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommonName: %w", err)
	}
	return oldValue.CommonName, nil
}

// ResetCommonName resets all changes to the "common_name" field.
func (m *FishSpeciesMutation) ResetCommonName() {
	m.common_name = nil
}

// SetScientificName sets the "scientific_name" field.
func (m *FishSpeciesMutation) SetScientificName(s string) {
	m.scientific_name = &s
}

// ScientificName returns the value of the "scientific_name" field in the mutation.
func (m *FishSpeciesMutation) ScientificName() (r string, exists bool) {
	v := m.scientific_name
	if v == nil {
		return
	}
	return *v, true
}

// OldScientificName returns the old "scientific_name" field's value of the FishSpecies entity.
// If the FishSpecies object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishSpeciesMutation) OldScientificName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScientificName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScientificName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScientificName: %w", err)
	}
	return oldValue.ScientificName, nil
}

// ClearScientificName clears the value of the "scientific_name" field.
func (m *FishSpeciesMutation) ClearScientificName() {
	m.scientific_name = nil
	m.clearedFields[fishspecies.FieldScientificName] = struct{}{}
}

// ScientificNameCleared returns if the "scientific_name" field was cleared in this mutation.
func (m *FishSpeciesMutation) ScientificNameCleared() bool {
	_, ok := m.clearedFields[fishspecies.FieldScientificName]
	return ok
}

// ResetScientificName resets all changes to the "scientific_name" field.
func (m *FishSpeciesMutation) ResetScientificName() {
	m.scientific_name = nil
	delete(m.clearedFields, fishspecies.FieldScientificName)
}

// SetIsActive sets the "is_active" field.
func (m *FishSpeciesMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FishSpeciesMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FishSpecies entity.
// If the FishSpecies object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishSpeciesMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FishSpeciesMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FishSpeciesMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FishSpeciesMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FishSpecies entity.
// If the FishSpecies object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishSpeciesMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FishSpeciesMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by ids.
func (m *FishSpeciesMutation) AddRegulationIDs(ids ...uuid.UUID) {
	if m.regulations == nil {
		m.regulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.regulations[ids[i]] = struct{}{}
	}
}

// ClearRegulations clears the "regulations" edge to the FishingRegulation entity.
func (m *FishSpeciesMutation) ClearRegulations() {
	m.clearedregulations = true
}

// RegulationsCleared reports if the "regulations" edge to the FishingRegulation entity was cleared.
func (m *FishSpeciesMutation) RegulationsCleared() bool {
	return m.clearedregulations
}

// RemoveRegulationIDs removes the "regulations" edge to the FishingRegulation entity by IDs.
func (m *FishSpeciesMutation) RemoveRegulationIDs(ids ...uuid.UUID) {
	if m.removedregulations == nil {
		m.removedregulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.regulations, ids[i])
		m.removedregulations[ids[i]] = struct{}{}
	}
}

// RemovedRegulations returns the removed IDs of the "regulations" edge to the FishingRegulation entity.
func (m *FishSpeciesMutation) RemovedRegulationsIDs() (ids []uuid.UUID) {
	for id := range m.removedregulations {
		ids = append(ids, id)
	}
	return
}

// RegulationsIDs returns the "regulations" edge IDs in the mutation.
func (m *FishSpeciesMutation) RegulationsIDs() (ids []uuid.UUID) {
	for id := range m.regulations {
		ids = append(ids, id)
	}
	return
}

// ResetRegulations resets all changes to the "regulations" edge.
func (m *FishSpeciesMutation) ResetRegulations() {
	m.regulations = nil
	m.clearedregulations = false
	m.removedregulations = nil
}

// Where appends a list predicates to the FishSpeciesMutation builder.
func (m *FishSpeciesMutation) Where(ps ...predicate.FishSpecies) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FishSpeciesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FishSpeciesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FishSpecies, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FishSpeciesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FishSpeciesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FishSpecies).
func (m *FishSpeciesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FishSpeciesMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.common_name != nil {
		fields = append(fields, fishspecies.FieldCommonName)
	}
	if m.scientific_name != nil {
		fields = append(fields, fishspecies.FieldScientificName)
	}
	if m.is_active != nil {
		fields = append(fields, fishspecies.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, fishspecies.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FishSpeciesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fishspecies.FieldCommonName:
		return m.CommonName()
	case fishspecies.FieldScientificName:
		return m.ScientificName()
	case fishspecies.FieldIsActive:
		return m.IsActive()
	case fishspecies.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FishSpeciesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fishspecies.FieldCommonName:
		return m.OldCommonName(ctx)
	case fishspecies.FieldScientificName:
		return m.OldScientificName(ctx)
	case fishspecies.FieldIsActive:
		return m.OldIsActive(ctx)
	case fishspecies.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FishSpecies field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FishSpeciesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fishspecies.FieldCommonName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommonName(v)
		return nil
	case fishspecies.FieldScientificName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScientificName(v)
		return nil
	case fishspecies.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case fishspecies.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FishSpecies field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FishSpeciesMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FishSpeciesMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FishSpeciesMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FishSpecies numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FishSpeciesMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fishspecies.FieldScientificName) {
		fields = append(fields, fishspecies.FieldScientificName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FishSpeciesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FishSpeciesMutation) ClearField(name string) error {
	switch name {
	case fishspecies.FieldScientificName:
		m.ClearScientificName()
		return nil
	}
	return fmt.Errorf("unknown FishSpecies nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FishSpeciesMutation) ResetField(name string) error {
	switch name {
	case fishspecies.FieldCommonName:
		m.ResetCommonName()
		return nil
	case fishspecies.FieldScientificName:
		m.ResetScientificName()
		return nil
	case fishspecies.FieldIsActive:
		m.ResetIsActive()
		return nil
	case fishspecies.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FishSpecies field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FishSpeciesMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.regulations != nil {
		edges = append(edges, fishspecies.EdgeRegulations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FishSpeciesMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fishspecies.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.regulations))
		for id := range m.regulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FishSpeciesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedregulations != nil {
		edges = append(edges, fishspecies.EdgeRegulations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FishSpeciesMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fishspecies.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.removedregulations))
		for id := range m.removedregulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FishSpeciesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedregulations {
		edges = append(edges, fishspecies.EdgeRegulations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FishSpeciesMutation) EdgeCleared(name string) bool {
	switch name {
	case fishspecies.EdgeRegulations:
		return m.clearedregulations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FishSpeciesMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FishSpecies unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FishSpeciesMutation) ResetEdge(name string) error {
	switch name {
	case fishspecies.EdgeRegulations:
		m.ResetRegulations()
		return nil
	}
	return fmt.Errorf("unknown FishSpecies edge %s", name)
}

// FishingRegulationMutation represents an operation that mutates the FishingRegulation nodes in the graph.
type FishingRegulationMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	regulation_year              *int
	addregulation_year           *int
	regulation_type              *string
	effective_date               *time.Time
	expiration_date              *time.Time
	daily_limit                  *int
	adddaily_limit               *int
	possession_limit             *int
	addpossession_limit          *int
	minimum_size                 *float64
	addminimum_size              *float64
	maximum_size                 *float64
	addmaximum_size              *float64
	protected_slot_min           *float64
	addprotected_slot_min        *float64
	protected_slot_max           *float64
	addprotected_slot_max        *float64
	protected_slot_exceptions    *int
	addprotected_slot_exceptions *int
	season_open                  *string
	season_close                 *string
	year_round                   *bool
	catch_and_release            *bool
	special_notes                *string
	is_active                    *bool
	needs_review                 *bool
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	water_body                   *uuid.UUID
	clearedwater_body            bool
	species                      *uuid.UUID
	clearedspecies               bool
	document                     *uuid.UUID
	cleareddocument              bool
	done                         bool
	oldValue                     func(context.Context) (*FishingRegulation, error)
	predicates                   []predicate.FishingRegulation
}

var _ ent.Mutation = (*FishingRegulationMutation)(nil)

// fishingregulationOption allows management of the mutation configuration using functional options.
type fishingregulationOption func(*FishingRegulationMutation)

// newFishingRegulationMutation creates new mutation for the FishingRegulation entity.
func newFishingRegulationMutation(c config, op Op, opts ...fishingregulationOption) *FishingRegulationMutation {
	m := &FishingRegulationMutation{
		config:        c,
		op:            op,
		typ:           TypeFishingRegulation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFishingRegulationID sets the ID field of the mutation.
func withFishingRegulationID(id uuid.UUID) fishingregulationOption {
	return func(m *FishingRegulationMutation) {
		var (
			err   error
			once  sync.Once
			value *FishingRegulation
		)
		m.oldValue = func(ctx context.Context) (*FishingRegulation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FishingRegulation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFishingRegulation sets the old FishingRegulation of the mutation.
func withFishingRegulation(node *FishingRegulation) fishingregulationOption {
	return func(m *FishingRegulationMutation) {
		m.oldValue = func(context.Context) (*FishingRegulation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FishingRegulationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FishingRegulationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FishingRegulation entities.
func (m *FishingRegulationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FishingRegulationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FishingRegulationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FishingRegulation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWaterBodyID sets the "water_body_id" field.
func (m *FishingRegulationMutation) SetWaterBodyID(u uuid.UUID) {
	m.water_body = &u
}

// WaterBodyID returns the value of the "water_body_id" field in the mutation.
func (m *FishingRegulationMutation) WaterBodyID() (r uuid.UUID, exists bool) {
	v := m.water_body
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterBodyID returns the old "water_body_id" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldWaterBodyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterBodyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterBodyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterBodyID: %w", err)
	}
	return oldValue.WaterBodyID, nil
}

// ResetWaterBodyID resets all changes to the "water_body_id" field.
func (m *FishingRegulationMutation) ResetWaterBodyID() {
	m.water_body = nil
}

// SetSpeciesID sets the "species_id" field.
func (m *FishingRegulationMutation) SetSpeciesID(u uuid.UUID) {
	m.species = &u
}

// SpeciesID returns the value of the "species_id" field in the mutation.
func (m *FishingRegulationMutation) SpeciesID() (r uuid.UUID, exists bool) {
	v := m.species
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeciesID returns the old "species_id" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldSpeciesID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeciesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeciesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeciesID: %w", err)
	}
	return oldValue.SpeciesID, nil
}

// ResetSpeciesID resets all changes to the "species_id" field.
func (m *FishingRegulationMutation) ResetSpeciesID() {
	m.species = nil
}

// SetDocumentID sets the "document_id" field.
func (m *FishingRegulationMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *FishingRegulationMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *FishingRegulationMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[fishingregulation.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *FishingRegulationMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *FishingRegulationMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, fishingregulation.FieldDocumentID)
}

// SetRegulationYear sets the "regulation_year" field.
func (m *FishingRegulationMutation) SetRegulationYear(i int) {
	m.regulation_year = &i
	m.addregulation_year = nil
}

// RegulationYear returns the value of the "regulation_year" field in the mutation.
func (m *FishingRegulationMutation) RegulationYear() (r int, exists bool) {
	v := m.regulation_year
	if v == nil {
		return
	}
	return *v, true
}

// OldRegulationYear returns the old "regulation_year" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldRegulationYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegulationYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegulationYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegulationYear: %w", err)
	}
	return oldValue.RegulationYear, nil
}

// AddRegulationYear adds i to the "regulation_year" field.
func (m *FishingRegulationMutation) AddRegulationYear(i int) {
	if m.addregulation_year != nil {
		*m.addregulation_year += i
	} else {
		m.addregulation_year = &i
	}
}

// AddedRegulationYear returns the value that was added to the "regulation_year" field in this mutation.
func (m *FishingRegulationMutation) AddedRegulationYear() (r int, exists bool) {
	v := m.addregulation_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetRegulationYear resets all changes to the "regulation_year" field.
func (m *FishingRegulationMutation) ResetRegulationYear() {
	m.regulation_year = nil
	m.addregulation_year = nil
}

// SetRegulationType sets the "regulation_type" field.
func (m *FishingRegulationMutation) SetRegulationType(s string) {
	m.regulation_type = &s
}

// RegulationType returns the value of the "regulation_type" field in the mutation.
func (m *FishingRegulationMutation) RegulationType() (r string, exists bool) {
	v := m.regulation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRegulationType returns the old "regulation_type" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldRegulationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegulationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegulationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegulationType: %w", err)
	}
	return oldValue.RegulationType, nil
}

// ResetRegulationType resets all changes to the "regulation_type" field.
func (m *FishingRegulationMutation) ResetRegulationType() {
	m.regulation_type = nil
}

// SetEffectiveDate sets the "effective_date" field.
func (m *FishingRegulationMutation) SetEffectiveDate(t time.Time) {
	m.effective_date = &t
}

// EffectiveDate returns the value of the "effective_date" field in the mutation.
func (m *FishingRegulationMutation) EffectiveDate() (r time.Time, exists bool) {
	v := m.effective_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveDate returns the old "effective_date" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldEffectiveDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveDate: %w", err)
	}
	return oldValue.EffectiveDate, nil
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (m *FishingRegulationMutation) ClearEffectiveDate() {
	m.effective_date = nil
	m.clearedFields[fishingregulation.FieldEffectiveDate] = struct{}{}
}

// EffectiveDateCleared returns if the "effective_date" field was cleared in this mutation.
func (m *FishingRegulationMutation) EffectiveDateCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldEffectiveDate]
	return ok
}

// ResetEffectiveDate resets all changes to the "effective_date" field.
func (m *FishingRegulationMutation) ResetEffectiveDate() {
	m.effective_date = nil
	delete(m.clearedFields, fishingregulation.FieldEffectiveDate)
}

// SetExpirationDate sets the "expiration_date" field.
func (m *FishingRegulationMutation) SetExpirationDate(t time.Time) {
	m.expiration_date = &t
}

// ExpirationDate returns the value of the "expiration_date" field in the mutation.
func (m *FishingRegulationMutation) ExpirationDate() (r time.Time, exists bool) {
	v := m.expiration_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpirationDate returns the old "expiration_date" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldExpirationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpirationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpirationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpirationDate: %w", err)
	}
	return oldValue.ExpirationDate, nil
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (m *FishingRegulationMutation) ClearExpirationDate() {
	m.expiration_date = nil
	m.clearedFields[fishingregulation.FieldExpirationDate] = struct{}{}
}

// ExpirationDateCleared returns if the "expiration_date" field was cleared in this mutation.
func (m *FishingRegulationMutation) ExpirationDateCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldExpirationDate]
	return ok
}

// ResetExpirationDate resets all changes to the "expiration_date" field.
func (m *FishingRegulationMutation) ResetExpirationDate() {
	m.expiration_date = nil
	delete(m.clearedFields, fishingregulation.FieldExpirationDate)
}

// SetDailyLimit sets the "daily_limit" field.
func (m *FishingRegulationMutation) SetDailyLimit(i int) {
	m.daily_limit = &i
	m.adddaily_limit = nil
}

// DailyLimit returns the value of the "daily_limit" field in the mutation.
func (m *FishingRegulationMutation) DailyLimit() (r int, exists bool) {
	v := m.daily_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyLimit returns the old "daily_limit" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldDailyLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyLimit: %w", err)
	}
	return oldValue.DailyLimit, nil
}

// AddDailyLimit adds i to the "daily_limit" field.
func (m *FishingRegulationMutation) AddDailyLimit(i int) {
	if m.adddaily_limit != nil {
		*m.adddaily_limit += i
	} else {
		m.adddaily_limit = &i
	}
}

// AddedDailyLimit returns the value that was added to the "daily_limit" field in this mutation.
func (m *FishingRegulationMutation) AddedDailyLimit() (r int, exists bool) {
	v := m.adddaily_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearDailyLimit clears the value of the "daily_limit" field.
func (m *FishingRegulationMutation) ClearDailyLimit() {
	m.daily_limit = nil
	m.adddaily_limit = nil
	m.clearedFields[fishingregulation.FieldDailyLimit] = struct{}{}
}

// DailyLimitCleared returns if the "daily_limit" field was cleared in this mutation.
func (m *FishingRegulationMutation) DailyLimitCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldDailyLimit]
	return ok
}

// ResetDailyLimit resets all changes to the "daily_limit" field.
func (m *FishingRegulationMutation) ResetDailyLimit() {
	m.daily_limit = nil
	m.adddaily_limit = nil
	delete(m.clearedFields, fishingregulation.FieldDailyLimit)
}

// SetPossessionLimit sets the "possession_limit" field.
func (m *FishingRegulationMutation) SetPossessionLimit(i int) {
	m.possession_limit = &i
	m.addpossession_limit = nil
}

// PossessionLimit returns the value of the "possession_limit" field in the mutation.
func (m *FishingRegulationMutation) PossessionLimit() (r int, exists bool) {
	v := m.possession_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldPossessionLimit returns the old "possession_limit" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldPossessionLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPossessionLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPossessionLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPossessionLimit: %w", err)
	}
	return oldValue.PossessionLimit, nil
}

// AddPossessionLimit adds i to the "possession_limit" field.
func (m *FishingRegulationMutation) AddPossessionLimit(i int) {
	if m.addpossession_limit != nil {
		*m.addpossession_limit += i
	} else {
		m.addpossession_limit = &i
	}
}

// AddedPossessionLimit returns the value that was added to the "possession_limit" field in this mutation.
func (m *FishingRegulationMutation) AddedPossessionLimit() (r int, exists bool) {
	v := m.addpossession_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearPossessionLimit clears the value of the "possession_limit" field.
func (m *FishingRegulationMutation) ClearPossessionLimit() {
	m.possession_limit = nil
	m.addpossession_limit = nil
	m.clearedFields[fishingregulation.FieldPossessionLimit] = struct{}{}
}

// PossessionLimitCleared returns if the "possession_limit" field was cleared in this mutation.
func (m *FishingRegulationMutation) PossessionLimitCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldPossessionLimit]
	return ok
}

// ResetPossessionLimit resets all changes to the "possession_limit" field.
func (m *FishingRegulationMutation) ResetPossessionLimit() {
	m.possession_limit = nil
	m.addpossession_limit = nil
	delete(m.clearedFields, fishingregulation.FieldPossessionLimit)
}

// SetMinimumSize sets the "minimum_size" field.
func (m *FishingRegulationMutation) SetMinimumSize(f float64) {
	m.minimum_size = &f
	m.addminimum_size = nil
}

// MinimumSize returns the value of the "minimum_size" field in the mutation.
func (m *FishingRegulationMutation) MinimumSize() (r float64, exists bool) {
	v := m.minimum_size
	if v == nil {
		return
	}
	return *v, true
}

// OldMinimumSize returns the old "minimum_size" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldMinimumSize(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinimumSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinimumSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinimumSize: %w", err)
	}
	return oldValue.MinimumSize, nil
}

// AddMinimumSize adds f to the "minimum_size" field.
func (m *FishingRegulationMutation) AddMinimumSize(f float64) {
	if m.addminimum_size != nil {
		*m.addminimum_size += f
	} else {
		m.addminimum_size = &f
	}
}

// AddedMinimumSize returns the value that was added to the "minimum_size" field in this mutation.
func (m *FishingRegulationMutation) AddedMinimumSize() (r float64, exists bool) {
	v := m.addminimum_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinimumSize clears the value of the "minimum_size" field.
func (m *FishingRegulationMutation) ClearMinimumSize() {
	m.minimum_size = nil
	m.addminimum_size = nil
	m.clearedFields[fishingregulation.FieldMinimumSize] = struct{}{}
}

// MinimumSizeCleared returns if the "minimum_size" field was cleared in this mutation.
func (m *FishingRegulationMutation) MinimumSizeCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldMinimumSize]
	return ok
}

// ResetMinimumSize resets all changes to the "minimum_size" field.
func (m *FishingRegulationMutation) ResetMinimumSize() {
	m.minimum_size = nil
	m.addminimum_size = nil
	delete(m.clearedFields, fishingregulation.FieldMinimumSize)
}

// SetMaximumSize sets the "maximum_size" field.
func (m *FishingRegulationMutation) SetMaximumSize(f float64) {
	m.maximum_size = &f
	m.addmaximum_size = nil
}

// MaximumSize returns the value of the "maximum_size" field in the mutation.
func (m *FishingRegulationMutation) MaximumSize() (r float64, exists bool) {
	v := m.maximum_size
	if v == nil {
		return
	}
	return *v, true
}

// OldMaximumSize returns the old "maximum_size" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldMaximumSize(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaximumSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaximumSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaximumSize: %w", err)
	}
	return oldValue.MaximumSize, nil
}

// AddMaximumSize adds f to the "maximum_size" field.
func (m *FishingRegulationMutation) AddMaximumSize(f float64) {
	if m.addmaximum_size != nil {
		*m.addmaximum_size += f
	} else {
		m.addmaximum_size = &f
	}
}

// AddedMaximumSize returns the value that was added to the "maximum_size" field in this mutation.
func (m *FishingRegulationMutation) AddedMaximumSize() (r float64, exists bool) {
	v := m.addmaximum_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaximumSize clears the value of the "maximum_size" field.
func (m *FishingRegulationMutation) ClearMaximumSize() {
	m.maximum_size = nil
	m.addmaximum_size = nil
	m.clearedFields[fishingregulation.FieldMaximumSize] = struct{}{}
}

// MaximumSizeCleared returns if the "maximum_size" field was cleared in this mutation.
func (m *FishingRegulationMutation) MaximumSizeCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldMaximumSize]
	return ok
}

// ResetMaximumSize resets all changes to the "maximum_size" field.
func (m *FishingRegulationMutation) ResetMaximumSize() {
	m.maximum_size = nil
	m.addmaximum_size = nil
	delete(m.clearedFields, fishingregulation.FieldMaximumSize)
}

// SetProtectedSlotMin sets the "protected_slot_min" field.
func (m *FishingRegulationMutation) SetProtectedSlotMin(f float64) {
	m.protected_slot_min = &f
	m.addprotected_slot_min = nil
}

// ProtectedSlotMin returns the value of the "protected_slot_min" field in the mutation.
func (m *FishingRegulationMutation) ProtectedSlotMin() (r float64, exists bool) {
	v := m.protected_slot_min
	if v == nil {
		return
	}
	return *v, true
}

// OldProtectedSlotMin returns the old "protected_slot_min" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldProtectedSlotMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtectedSlotMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtectedSlotMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtectedSlotMin: %w", err)
	}
	return oldValue.ProtectedSlotMin, nil
}

// AddProtectedSlotMin adds f to the "protected_slot_min" field.
func (m *FishingRegulationMutation) AddProtectedSlotMin(f float64) {
	if m.addprotected_slot_min != nil {
		*m.addprotected_slot_min += f
	} else {
		m.addprotected_slot_min = &f
	}
}

// AddedProtectedSlotMin returns the value that was added to the "protected_slot_min" field in this mutation.
func (m *FishingRegulationMutation) AddedProtectedSlotMin() (r float64, exists bool) {
	v := m.addprotected_slot_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearProtectedSlotMin clears the value of the "protected_slot_min" field.
func (m *FishingRegulationMutation) ClearProtectedSlotMin() {
	m.protected_slot_min = nil
	m.addprotected_slot_min = nil
	m.clearedFields[fishingregulation.FieldProtectedSlotMin] = struct{}{}
}

// ProtectedSlotMinCleared returns if the "protected_slot_min" field was cleared in this mutation.
func (m *FishingRegulationMutation) ProtectedSlotMinCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldProtectedSlotMin]
	return ok
}

// ResetProtectedSlotMin resets all changes to the "protected_slot_min" field.
func (m *FishingRegulationMutation) ResetProtectedSlotMin() {
	m.protected_slot_min = nil
	m.addprotected_slot_min = nil
	delete(m.clearedFields, fishingregulation.FieldProtectedSlotMin)
}

// SetProtectedSlotMax sets the "protected_slot_max" field.
func (m *FishingRegulationMutation) SetProtectedSlotMax(f float64) {
	m.protected_slot_max = &f
	m.addprotected_slot_max = nil
}

// ProtectedSlotMax returns the value of the "protected_slot_max" field in the mutation.
func (m *FishingRegulationMutation) ProtectedSlotMax() (r float64, exists bool) {
	v := m.protected_slot_max
	if v == nil {
		return
	}
	return *v, true
}

// OldProtectedSlotMax returns the old "protected_slot_max" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldProtectedSlotMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtectedSlotMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtectedSlotMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtectedSlotMax: %w", err)
	}
	return oldValue.ProtectedSlotMax, nil
}

// AddProtectedSlotMax adds f to the "protected_slot_max" field.
func (m *FishingRegulationMutation) AddProtectedSlotMax(f float64) {
	if m.addprotected_slot_max != nil {
		*m.addprotected_slot_max += f
	} else {
		m.addprotected_slot_max = &f
	}
}

// AddedProtectedSlotMax returns the value that was added to the "protected_slot_max" field in this mutation.
func (m *FishingRegulationMutation) AddedProtectedSlotMax() (r float64, exists bool) {
	v := m.addprotected_slot_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearProtectedSlotMax clears the value of the "protected_slot_max" field.
func (m *FishingRegulationMutation) ClearProtectedSlotMax() {
	m.protected_slot_max = nil
	m.addprotected_slot_max = nil
	m.clearedFields[fishingregulation.FieldProtectedSlotMax] = struct{}{}
}

// ProtectedSlotMaxCleared returns if the "protected_slot_max" field was cleared in this mutation.
func (m *FishingRegulationMutation) ProtectedSlotMaxCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldProtectedSlotMax]
	return ok
}

// ResetProtectedSlotMax resets all changes to the "protected_slot_max" field.
func (m *FishingRegulationMutation) ResetProtectedSlotMax() {
	m.protected_slot_max = nil
	m.addprotected_slot_max = nil
	delete(m.clearedFields, fishingregulation.FieldProtectedSlotMax)
}

// SetProtectedSlotExceptions sets the "protected_slot_exceptions" field.
func (m *FishingRegulationMutation) SetProtectedSlotExceptions(i int) {
	m.protected_slot_exceptions = &i
	m.addprotected_slot_exceptions = nil
}

// ProtectedSlotExceptions returns the value of the "protected_slot_exceptions" field in the mutation.
func (m *FishingRegulationMutation) ProtectedSlotExceptions() (r int, exists bool) {
	v := m.protected_slot_exceptions
	if v == nil {
		return
	}
	return *v, true
}

// OldProtectedSlotExceptions returns the old "protected_slot_exceptions" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldProtectedSlotExceptions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtectedSlotExceptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtectedSlotExceptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtectedSlotExceptions: %w", err)
	}
	return oldValue.ProtectedSlotExceptions, nil
}

// AddProtectedSlotExceptions adds i to the "protected_slot_exceptions" field.
func (m *FishingRegulationMutation) AddProtectedSlotExceptions(i int) {
	if m.addprotected_slot_exceptions != nil {
		*m.addprotected_slot_exceptions += i
	} else {
		m.addprotected_slot_exceptions = &i
	}
}

// AddedProtectedSlotExceptions returns the value that was added to the "protected_slot_exceptions" field in this mutation.
func (m *FishingRegulationMutation) AddedProtectedSlotExceptions() (r int, exists bool) {
	v := m.addprotected_slot_exceptions
	if v == nil {
		return
	}
	return *v, true
}

// ResetProtectedSlotExceptions resets all changes to the "protected_slot_exceptions" field.
func (m *FishingRegulationMutation) ResetProtectedSlotExceptions() {
	m.protected_slot_exceptions = nil
	m.addprotected_slot_exceptions = nil
}

// SetSeasonOpen sets the "season_open" field.
func (m *FishingRegulationMutation) SetSeasonOpen(s string) {
	m.season_open = &s
}

// SeasonOpen returns the value of the "season_open" field in the mutation.
func (m *FishingRegulationMutation) SeasonOpen() (r string, exists bool) {
	v := m.season_open
	if v == nil {
		return
	}
	return *v, true
}

// OldSeasonOpen returns the old "season_open" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldSeasonOpen(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeasonOpen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeasonOpen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeasonOpen: %w", err)
	}
	return oldValue.SeasonOpen, nil
}

// ClearSeasonOpen clears the value of the "season_open" field.
func (m *FishingRegulationMutation) ClearSeasonOpen() {
	m.season_open = nil
	m.clearedFields[fishingregulation.FieldSeasonOpen] = struct{}{}
}

// SeasonOpenCleared returns if the "season_open" field was cleared in this mutation.
func (m *FishingRegulationMutation) SeasonOpenCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldSeasonOpen]
	return ok
}

// ResetSeasonOpen resets all changes to the "season_open" field.
func (m *FishingRegulationMutation) ResetSeasonOpen() {
	m.season_open = nil
	delete(m.clearedFields, fishingregulation.FieldSeasonOpen)
}

// SetSeasonClose sets the "season_close" field.
func (m *FishingRegulationMutation) SetSeasonClose(s string) {
	m.season_close = &s
}

// SeasonClose returns the value of the "season_close" field in the mutation.
func (m *FishingRegulationMutation) SeasonClose() (r string, exists bool) {
	v := m.season_close
	if v == nil {
		return
	}
	return *v, true
}

// OldSeasonClose returns the old "season_close" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldSeasonClose(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeasonClose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeasonClose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeasonClose: %w", err)
	}
	return oldValue.SeasonClose, nil
}

// ClearSeasonClose clears the value of the "season_close" field.
func (m *FishingRegulationMutation) ClearSeasonClose() {
	m.season_close = nil
	m.clearedFields[fishingregulation.FieldSeasonClose] = struct{}{}
}

// SeasonCloseCleared returns if the "season_close" field was cleared in this mutation.
func (m *FishingRegulationMutation) SeasonCloseCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldSeasonClose]
	return ok
}

// ResetSeasonClose resets all changes to the "season_close" field.
func (m *FishingRegulationMutation) ResetSeasonClose() {
	m.season_close = nil
	delete(m.clearedFields, fishingregulation.FieldSeasonClose)
}

// SetYearRound sets the "year_round" field.
func (m *FishingRegulationMutation) SetYearRound(b bool) {
	m.year_round = &b
}

// YearRound returns the value of the "year_round" field in the mutation.
func (m *FishingRegulationMutation) YearRound() (r bool, exists bool) {
	v := m.year_round
	if v == nil {
		return
	}
	return *v, true
}

// OldYearRound returns the old "year_round" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldYearRound(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearRound: %w", err)
	}
	return oldValue.YearRound, nil
}

// ResetYearRound resets all changes to the "year_round" field.
func (m *FishingRegulationMutation) ResetYearRound() {
	m.year_round = nil
}

// SetCatchAndRelease sets the "catch_and_release" field.
func (m *FishingRegulationMutation) SetCatchAndRelease(b bool) {
	m.catch_and_release = &b
}

// CatchAndRelease returns the value of the "catch_and_release" field in the mutation.
func (m *FishingRegulationMutation) CatchAndRelease() (r bool, exists bool) {
	v := m.catch_and_release
	if v == nil {
		return
	}
	return *v, true
}

// OldCatchAndRelease returns the old "catch_and_release" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldCatchAndRelease(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatchAndRelease is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatchAndRelease requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatchAndRelease: %w", err)
	}
	return oldValue.CatchAndRelease, nil
}

// ResetCatchAndRelease resets all changes to the "catch_and_release" field.
func (m *FishingRegulationMutation) ResetCatchAndRelease() {
	m.catch_and_release = nil
}

// SetSpecialNotes sets the "special_notes" field.
func (m *FishingRegulationMutation) SetSpecialNotes(s string) {
	m.special_notes = &s
}

// SpecialNotes returns the value of the "special_notes" field in the mutation.
func (m *FishingRegulationMutation) SpecialNotes() (r string, exists bool) {
	v := m.special_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialNotes returns the old "special_notes" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldSpecialNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialNotes: %w", err)
	}
	return oldValue.SpecialNotes, nil
}

// ClearSpecialNotes clears the value of the "special_notes" field.
func (m *FishingRegulationMutation) ClearSpecialNotes() {
	m.special_notes = nil
	m.clearedFields[fishingregulation.FieldSpecialNotes] = struct{}{}
}

// SpecialNotesCleared returns if the "special_notes" field was cleared in this mutation.
func (m *FishingRegulationMutation) SpecialNotesCleared() bool {
	_, ok := m.clearedFields[fishingregulation.FieldSpecialNotes]
	return ok
}

// ResetSpecialNotes resets all changes to the "special_notes" field.
func (m *FishingRegulationMutation) ResetSpecialNotes() {
	m.special_notes = nil
	delete(m.clearedFields, fishingregulation.FieldSpecialNotes)
}

// SetIsActive sets the "is_active" field.
func (m *FishingRegulationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FishingRegulationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FishingRegulationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *FishingRegulationMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *FishingRegulationMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *FishingRegulationMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FishingRegulationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FishingRegulationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FishingRegulationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FishingRegulationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FishingRegulationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FishingRegulation entity.
// If the FishingRegulation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FishingRegulationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FishingRegulationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWaterBody clears the "water_body" edge to the WaterBody entity.
func (m *FishingRegulationMutation) ClearWaterBody() {
	m.clearedwater_body = true
	m.clearedFields[fishingregulation.FieldWaterBodyID] = struct{}{}
}

// WaterBodyCleared reports if the "water_body" edge to the WaterBody entity was cleared.
func (m *FishingRegulationMutation) WaterBodyCleared() bool {
	return m.clearedwater_body
}

// WaterBodyIDs returns the "water_body" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WaterBodyID instead. It exists only for internal usage by the builders.
func (m *FishingRegulationMutation) WaterBodyIDs() (ids []uuid.UUID) {
	if id := m.water_body; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWaterBody resets all changes to the "water_body" edge.
func (m *FishingRegulationMutation) ResetWaterBody() {
	m.water_body = nil
	m.clearedwater_body = false
}

// ClearSpecies clears the "species" edge to the FishSpecies entity.
func (m *FishingRegulationMutation) ClearSpecies() {
	m.clearedspecies = true
	m.clearedFields[fishingregulation.FieldSpeciesID] = struct{}{}
}

// SpeciesCleared reports if the "species" edge to the FishSpecies entity was cleared.
func (m *FishingRegulationMutation) SpeciesCleared() bool {
	return m.clearedspecies
}

// SpeciesIDs returns the "species" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpeciesID instead. It exists only for internal usage by the builders.
func (m *FishingRegulationMutation) SpeciesIDs() (ids []uuid.UUID) {
	if id := m.species; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpecies resets all changes to the "species" edge.
func (m *FishingRegulationMutation) ResetSpecies() {
	m.species = nil
	m.clearedspecies = false
}

// ClearDocument clears the "document" edge to the RegulationDocument entity.
func (m *FishingRegulationMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[fishingregulation.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the RegulationDocument entity was cleared.
func (m *FishingRegulationMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *FishingRegulationMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *FishingRegulationMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the FishingRegulationMutation builder.
func (m *FishingRegulationMutation) Where(ps ...predicate.FishingRegulation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FishingRegulationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FishingRegulationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FishingRegulation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FishingRegulationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FishingRegulationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FishingRegulation).
func (m *FishingRegulationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FishingRegulationMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.water_body != nil {
		fields = append(fields, fishingregulation.FieldWaterBodyID)
	}
	if m.species != nil {
		fields = append(fields, fishingregulation.FieldSpeciesID)
	}
	if m.document != nil {
		fields = append(fields, fishingregulation.FieldDocumentID)
	}
	if m.regulation_year != nil {
		fields = append(fields, fishingregulation.FieldRegulationYear)
	}
	if m.regulation_type != nil {
		fields = append(fields, fishingregulation.FieldRegulationType)
	}
	if m.effective_date != nil {
		fields = append(fields, fishingregulation.FieldEffectiveDate)
	}
	if m.expiration_date != nil {
		fields = append(fields, fishingregulation.FieldExpirationDate)
	}
	if m.daily_limit != nil {
		fields = append(fields, fishingregulation.FieldDailyLimit)
	}
	if m.possession_limit != nil {
		fields = append(fields, fishingregulation.FieldPossessionLimit)
	}
	if m.minimum_size != nil {
		fields = append(fields, fishingregulation.FieldMinimumSize)
	}
	if m.maximum_size != nil {
		fields = append(fields, fishingregulation.FieldMaximumSize)
	}
	if m.protected_slot_min != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotMin)
	}
	if m.protected_slot_max != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotMax)
	}
	if m.protected_slot_exceptions != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotExceptions)
	}
	if m.season_open != nil {
		fields = append(fields, fishingregulation.FieldSeasonOpen)
	}
	if m.season_close != nil {
		fields = append(fields, fishingregulation.FieldSeasonClose)
	}
	if m.year_round != nil {
		fields = append(fields, fishingregulation.FieldYearRound)
	}
	if m.catch_and_release != nil {
		fields = append(fields, fishingregulation.FieldCatchAndRelease)
	}
	if m.special_notes != nil {
		fields = append(fields, fishingregulation.FieldSpecialNotes)
	}
	if m.is_active != nil {
		fields = append(fields, fishingregulation.FieldIsActive)
	}
	if m.needs_review != nil {
		fields = append(fields, fishingregulation.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, fishingregulation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fishingregulation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FishingRegulationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fishingregulation.FieldWaterBodyID:
		return m.WaterBodyID()
	case fishingregulation.FieldSpeciesID:
		return m.SpeciesID()
	case fishingregulation.FieldDocumentID:
		return m.DocumentID()
	case fishingregulation.FieldRegulationYear:
		return m.RegulationYear()
	case fishingregulation.FieldRegulationType:
		return m.RegulationType()
	case fishingregulation.FieldEffectiveDate:
		return m.EffectiveDate()
	case fishingregulation.FieldExpirationDate:
		return m.ExpirationDate()
	case fishingregulation.FieldDailyLimit:
		return m.DailyLimit()
	case fishingregulation.FieldPossessionLimit:
		return m.PossessionLimit()
	case fishingregulation.FieldMinimumSize:
		return m.MinimumSize()
	case fishingregulation.FieldMaximumSize:
		return m.MaximumSize()
	case fishingregulation.FieldProtectedSlotMin:
		return m.ProtectedSlotMin()
	case fishingregulation.FieldProtectedSlotMax:
		return m.ProtectedSlotMax()
	case fishingregulation.FieldProtectedSlotExceptions:
		return m.ProtectedSlotExceptions()
	case fishingregulation.FieldSeasonOpen:
		return m.SeasonOpen()
	case fishingregulation.FieldSeasonClose:
		return m.SeasonClose()
	case fishingregulation.FieldYearRound:
		return m.YearRound()
	case fishingregulation.FieldCatchAndRelease:
		return m.CatchAndRelease()
	case fishingregulation.FieldSpecialNotes:
		return m.SpecialNotes()
	case fishingregulation.FieldIsActive:
		return m.IsActive()
	case fishingregulation.FieldNeedsReview:
		return m.NeedsReview()
	case fishingregulation.FieldCreatedAt:
		return m.CreatedAt()
	case fishingregulation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FishingRegulationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fishingregulation.FieldWaterBodyID:
		return m.OldWaterBodyID(ctx)
	case fishingregulation.FieldSpeciesID:
		return m.OldSpeciesID(ctx)
	case fishingregulation.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case fishingregulation.FieldRegulationYear:
		return m.OldRegulationYear(ctx)
	case fishingregulation.FieldRegulationType:
		return m.OldRegulationType(ctx)
	case fishingregulation.FieldEffectiveDate:
		return m.OldEffectiveDate(ctx)
	case fishingregulation.FieldExpirationDate:
		return m.OldExpirationDate(ctx)
	case fishingregulation.FieldDailyLimit:
		return m.OldDailyLimit(ctx)
	case fishingregulation.FieldPossessionLimit:
		return m.OldPossessionLimit(ctx)
	case fishingregulation.FieldMinimumSize:
		return m.OldMinimumSize(ctx)
	case fishingregulation.FieldMaximumSize:
		return m.OldMaximumSize(ctx)
	case fishingregulation.FieldProtectedSlotMin:
		return m.OldProtectedSlotMin(ctx)
	case fishingregulation.FieldProtectedSlotMax:
		return m.OldProtectedSlotMax(ctx)
	case fishingregulation.FieldProtectedSlotExceptions:
		return m.OldProtectedSlotExceptions(ctx)
	case fishingregulation.FieldSeasonOpen:
		return m.OldSeasonOpen(ctx)
	case fishingregulation.FieldSeasonClose:
		return m.OldSeasonClose(ctx)
	case fishingregulation.FieldYearRound:
		return m.OldYearRound(ctx)
	case fishingregulation.FieldCatchAndRelease:
		return m.OldCatchAndRelease(ctx)
	case fishingregulation.FieldSpecialNotes:
		return m.OldSpecialNotes(ctx)
	case fishingregulation.FieldIsActive:
		return m.OldIsActive(ctx)
	case fishingregulation.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case fishingregulation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fishingregulation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FishingRegulation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FishingRegulationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fishingregulation.FieldWaterBodyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterBodyID(v)
		return nil
	case fishingregulation.FieldSpeciesID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeciesID(v)
		return nil
	case fishingregulation.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case fishingregulation.FieldRegulationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegulationYear(v)
		return nil
	case fishingregulation.FieldRegulationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegulationType(v)
		return nil
	case fishingregulation.FieldEffectiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveDate(v)
		return nil
	case fishingregulation.FieldExpirationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpirationDate(v)
		return nil
	case fishingregulation.FieldDailyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyLimit(v)
		return nil
	case fishingregulation.FieldPossessionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPossessionLimit(v)
		return nil
	case fishingregulation.FieldMinimumSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinimumSize(v)
		return nil
	case fishingregulation.FieldMaximumSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaximumSize(v)
		return nil
	case fishingregulation.FieldProtectedSlotMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtectedSlotMin(v)
		return nil
	case fishingregulation.FieldProtectedSlotMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtectedSlotMax(v)
		return nil
	case fishingregulation.FieldProtectedSlotExceptions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtectedSlotExceptions(v)
		return nil
	case fishingregulation.FieldSeasonOpen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeasonOpen(v)
		return nil
	case fishingregulation.FieldSeasonClose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeasonClose(v)
		return nil
	case fishingregulation.FieldYearRound:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearRound(v)
		return nil
	case fishingregulation.FieldCatchAndRelease:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatchAndRelease(v)
		return nil
	case fishingregulation.FieldSpecialNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialNotes(v)
		return nil
	case fishingregulation.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case fishingregulation.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case fishingregulation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fishingregulation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FishingRegulationMutation) AddedFields() []string {
	var fields []string
	if m.addregulation_year != nil {
		fields = append(fields, fishingregulation.FieldRegulationYear)
	}
	if m.adddaily_limit != nil {
		fields = append(fields, fishingregulation.FieldDailyLimit)
	}
	if m.addpossession_limit != nil {
		fields = append(fields, fishingregulation.FieldPossessionLimit)
	}
	if m.addminimum_size != nil {
		fields = append(fields, fishingregulation.FieldMinimumSize)
	}
	if m.addmaximum_size != nil {
		fields = append(fields, fishingregulation.FieldMaximumSize)
	}
	if m.addprotected_slot_min != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotMin)
	}
	if m.addprotected_slot_max != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotMax)
	}
	if m.addprotected_slot_exceptions != nil {
		fields = append(fields, fishingregulation.FieldProtectedSlotExceptions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FishingRegulationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fishingregulation.FieldRegulationYear:
		return m.AddedRegulationYear()
	case fishingregulation.FieldDailyLimit:
		return m.AddedDailyLimit()
	case fishingregulation.FieldPossessionLimit:
		return m.AddedPossessionLimit()
	case fishingregulation.FieldMinimumSize:
		return m.AddedMinimumSize()
	case fishingregulation.FieldMaximumSize:
		return m.AddedMaximumSize()
	case fishingregulation.FieldProtectedSlotMin:
		return m.AddedProtectedSlotMin()
	case fishingregulation.FieldProtectedSlotMax:
		return m.AddedProtectedSlotMax()
	case fishingregulation.FieldProtectedSlotExceptions:
		return m.AddedProtectedSlotExceptions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FishingRegulationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fishingregulation.FieldRegulationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRegulationYear(v)
		return nil
	case fishingregulation.FieldDailyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyLimit(v)
		return nil
	case fishingregulation.FieldPossessionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPossessionLimit(v)
		return nil
	case fishingregulation.FieldMinimumSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinimumSize(v)
		return nil
	case fishingregulation.FieldMaximumSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaximumSize(v)
		return nil
	case fishingregulation.FieldProtectedSlotMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtectedSlotMin(v)
		return nil
	case fishingregulation.FieldProtectedSlotMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtectedSlotMax(v)
		return nil
	case fishingregulation.FieldProtectedSlotExceptions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProtectedSlotExceptions(v)
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FishingRegulationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fishingregulation.FieldDocumentID) {
		fields = append(fields, fishingregulation.FieldDocumentID)
	}
	if m.FieldCleared(fishingregulation.FieldEffectiveDate) {
		fields = append(fields, fishingregulation.FieldEffectiveDate)
	}
	if m.FieldCleared(fishingregulation.FieldExpirationDate) {
		fields = append(fields, fishingregulation.FieldExpirationDate)
	}
	if m.FieldCleared(fishingregulation.FieldDailyLimit) {
		fields = append(fields, fishingregulation.FieldDailyLimit)
	}
	if m.FieldCleared(fishingregulation.FieldPossessionLimit) {
		fields = append(fields, fishingregulation.FieldPossessionLimit)
	}
	if m.FieldCleared(fishingregulation.FieldMinimumSize) {
		fields = append(fields, fishingregulation.FieldMinimumSize)
	}
	if m.FieldCleared(fishingregulation.FieldMaximumSize) {
		fields = append(fields, fishingregulation.FieldMaximumSize)
	}
	if m.FieldCleared(fishingregulation.FieldProtectedSlotMin) {
		fields = append(fields, fishingregulation.FieldProtectedSlotMin)
	}
	if m.FieldCleared(fishingregulation.FieldProtectedSlotMax) {
		fields = append(fields, fishingregulation.FieldProtectedSlotMax)
	}
	if m.FieldCleared(fishingregulation.FieldSeasonOpen) {
		fields = append(fields, fishingregulation.FieldSeasonOpen)
	}
	if m.FieldCleared(fishingregulation.FieldSeasonClose) {
		fields = append(fields, fishingregulation.FieldSeasonClose)
	}
	if m.FieldCleared(fishingregulation.FieldSpecialNotes) {
		fields = append(fields, fishingregulation.FieldSpecialNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FishingRegulationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FishingRegulationMutation) ClearField(name string) error {
	switch name {
	case fishingregulation.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case fishingregulation.FieldEffectiveDate:
		m.ClearEffectiveDate()
		return nil
	case fishingregulation.FieldExpirationDate:
		m.ClearExpirationDate()
		return nil
	case fishingregulation.FieldDailyLimit:
		m.ClearDailyLimit()
		return nil
	case fishingregulation.FieldPossessionLimit:
		m.ClearPossessionLimit()
		return nil
	case fishingregulation.FieldMinimumSize:
		m.ClearMinimumSize()
		return nil
	case fishingregulation.FieldMaximumSize:
		m.ClearMaximumSize()
		return nil
	case fishingregulation.FieldProtectedSlotMin:
		m.ClearProtectedSlotMin()
		return nil
	case fishingregulation.FieldProtectedSlotMax:
		m.ClearProtectedSlotMax()
		return nil
	case fishingregulation.FieldSeasonOpen:
		m.ClearSeasonOpen()
		return nil
	case fishingregulation.FieldSeasonClose:
		m.ClearSeasonClose()
		return nil
	case fishingregulation.FieldSpecialNotes:
		m.ClearSpecialNotes()
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FishingRegulationMutation) ResetField(name string) error {
	switch name {
	case fishingregulation.FieldWaterBodyID:
		m.ResetWaterBodyID()
		return nil
	case fishingregulation.FieldSpeciesID:
		m.ResetSpeciesID()
		return nil
	case fishingregulation.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case fishingregulation.FieldRegulationYear:
		m.ResetRegulationYear()
		return nil
	case fishingregulation.FieldRegulationType:
		m.ResetRegulationType()
		return nil
	case fishingregulation.FieldEffectiveDate:
		m.ResetEffectiveDate()
		return nil
	case fishingregulation.FieldExpirationDate:
		m.ResetExpirationDate()
		return nil
	case fishingregulation.FieldDailyLimit:
		m.ResetDailyLimit()
		return nil
	case fishingregulation.FieldPossessionLimit:
		m.ResetPossessionLimit()
		return nil
	case fishingregulation.FieldMinimumSize:
		m.ResetMinimumSize()
		return nil
	case fishingregulation.FieldMaximumSize:
		m.ResetMaximumSize()
		return nil
	case fishingregulation.FieldProtectedSlotMin:
		m.ResetProtectedSlotMin()
		return nil
	case fishingregulation.FieldProtectedSlotMax:
		m.ResetProtectedSlotMax()
		return nil
	case fishingregulation.FieldProtectedSlotExceptions:
		m.ResetProtectedSlotExceptions()
		return nil
	case fishingregulation.FieldSeasonOpen:
		m.ResetSeasonOpen()
		return nil
	case fishingregulation.FieldSeasonClose:
		m.ResetSeasonClose()
		return nil
	case fishingregulation.FieldYearRound:
		m.ResetYearRound()
		return nil
	case fishingregulation.FieldCatchAndRelease:
		m.ResetCatchAndRelease()
		return nil
	case fishingregulation.FieldSpecialNotes:
		m.ResetSpecialNotes()
		return nil
	case fishingregulation.FieldIsActive:
		m.ResetIsActive()
		return nil
	case fishingregulation.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case fishingregulation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fishingregulation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FishingRegulationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.water_body != nil {
		edges = append(edges, fishingregulation.EdgeWaterBody)
	}
	if m.species != nil {
		edges = append(edges, fishingregulation.EdgeSpecies)
	}
	if m.document != nil {
		edges = append(edges, fishingregulation.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FishingRegulationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fishingregulation.EdgeWaterBody:
		if id := m.water_body; id != nil {
			return []ent.Value{*id}
		}
	case fishingregulation.EdgeSpecies:
		if id := m.species; id != nil {
			return []ent.Value{*id}
		}
	case fishingregulation.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FishingRegulationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FishingRegulationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FishingRegulationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedwater_body {
		edges = append(edges, fishingregulation.EdgeWaterBody)
	}
	if m.clearedspecies {
		edges = append(edges, fishingregulation.EdgeSpecies)
	}
	if m.cleareddocument {
		edges = append(edges, fishingregulation.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FishingRegulationMutation) EdgeCleared(name string) bool {
	switch name {
	case fishingregulation.EdgeWaterBody:
		return m.clearedwater_body
	case fishingregulation.EdgeSpecies:
		return m.clearedspecies
	case fishingregulation.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FishingRegulationMutation) ClearEdge(name string) error {
	switch name {
	case fishingregulation.EdgeWaterBody:
		m.ClearWaterBody()
		return nil
	case fishingregulation.EdgeSpecies:
		m.ClearSpecies()
		return nil
	case fishingregulation.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FishingRegulationMutation) ResetEdge(name string) error {
	switch name {
	case fishingregulation.EdgeWaterBody:
		m.ResetWaterBody()
		return nil
	case fishingregulation.EdgeSpecies:
		m.ResetSpecies()
		return nil
	case fishingregulation.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown FishingRegulation edge %s", name)
}

// RegulationDocumentMutation represents an operation that mutates the RegulationDocument nodes in the graph.
type RegulationDocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	document_type      *string
	file_size          *int64
	addfile_size       *int64
	processing_status  *string
	state_code         *string
	regulation_year    *int
	addregulation_year *int
	extraction_error   *string
	storage_url        *string
	uploaded_at        *time.Time
	processed_at       *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	regulations        map[uuid.UUID]struct{}
	removedregulations map[uuid.UUID]struct{}
	clearedregulations bool
	done               bool
	oldValue           func(context.Context) (*RegulationDocument, error)
	predicates         []predicate.RegulationDocument
}

var _ ent.Mutation = (*RegulationDocumentMutation)(nil)

// regulationdocumentOption allows management of the mutation configuration using functional options.
type regulationdocumentOption func(*RegulationDocumentMutation)

// newRegulationDocumentMutation creates new mutation for the RegulationDocument entity.
func newRegulationDocumentMutation(c config, op Op, opts ...regulationdocumentOption) *RegulationDocumentMutation {
	m := &RegulationDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeRegulationDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegulationDocumentID sets the ID field of the mutation.
func withRegulationDocumentID(id uuid.UUID) regulationdocumentOption {
	return func(m *RegulationDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *RegulationDocument
		)
		m.oldValue = func(ctx context.Context) (*RegulationDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegulationDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegulationDocument sets the old RegulationDocument of the mutation.
func withRegulationDocument(node *RegulationDocument) regulationdocumentOption {
	return func(m *RegulationDocumentMutation) {
		m.oldValue = func(context.Context) (*RegulationDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegulationDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegulationDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RegulationDocument entities.
func (m *RegulationDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegulationDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegulationDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegulationDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *RegulationDocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *RegulationDocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *RegulationDocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *RegulationDocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *RegulationDocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *RegulationDocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *RegulationDocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *RegulationDocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *RegulationDocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *RegulationDocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *RegulationDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *RegulationDocumentMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *RegulationDocumentMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *RegulationDocumentMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetStateCode sets the "state_code" field.
func (m *RegulationDocumentMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *RegulationDocumentMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *RegulationDocumentMutation) ResetStateCode() {
	m.state_code = nil
}

// SetRegulationYear sets the "regulation_year" field.
func (m *RegulationDocumentMutation) SetRegulationYear(i int) {
	m.regulation_year = &i
	m.addregulation_year = nil
}

// RegulationYear returns the value of the "regulation_year" field in the mutation.
func (m *RegulationDocumentMutation) RegulationYear() (r int, exists bool) {
	v := m.regulation_year
	if v == nil {
		return
	}
	return *v, true
}

// OldRegulationYear returns the old "regulation_year" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldRegulationYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegulationYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegulationYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegulationYear: %w", err)
	}
	return oldValue.RegulationYear, nil
}

// AddRegulationYear adds i to the "regulation_year" field.
func (m *RegulationDocumentMutation) AddRegulationYear(i int) {
	if m.addregulation_year != nil {
		*m.addregulation_year += i
	} else {
		m.addregulation_year = &i
	}
}

// AddedRegulationYear returns the value that was added to the "regulation_year" field in this mutation.
func (m *RegulationDocumentMutation) AddedRegulationYear() (r int, exists bool) {
	v := m.addregulation_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetRegulationYear resets all changes to the "regulation_year" field.
func (m *RegulationDocumentMutation) ResetRegulationYear() {
	m.regulation_year = nil
	m.addregulation_year = nil
}

// SetExtractionError sets the "extraction_error" field.
func (m *RegulationDocumentMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *RegulationDocumentMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *RegulationDocumentMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[regulationdocument.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *RegulationDocumentMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[regulationdocument.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *RegulationDocumentMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, regulationdocument.FieldExtractionError)
}

// SetStorageURL sets the "storage_url" field.
func (m *RegulationDocumentMutation) SetStorageURL(s string) {
	m.storage_url = &s
}

// StorageURL returns the value of the "storage_url" field in the mutation.
func (m *RegulationDocumentMutation) StorageURL() (r string, exists bool) {
	v := m.storage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURL returns the old "storage_url" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldStorageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURL: %w", err)
	}
	return oldValue.StorageURL, nil
}

// ClearStorageURL clears the value of the "storage_url" field.
func (m *RegulationDocumentMutation) ClearStorageURL() {
	m.storage_url = nil
	m.clearedFields[regulationdocument.FieldStorageURL] = struct{}{}
}

// StorageURLCleared returns if the "storage_url" field was cleared in this mutation.
func (m *RegulationDocumentMutation) StorageURLCleared() bool {
	_, ok := m.clearedFields[regulationdocument.FieldStorageURL]
	return ok
}

// ResetStorageURL resets all changes to the "storage_url" field.
func (m *RegulationDocumentMutation) ResetStorageURL() {
	m.storage_url = nil
	delete(m.clearedFields, regulationdocument.FieldStorageURL)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *RegulationDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *RegulationDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *RegulationDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *RegulationDocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *RegulationDocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *RegulationDocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[regulationdocument.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *RegulationDocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[regulationdocument.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *RegulationDocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, regulationdocument.FieldProcessedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RegulationDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RegulationDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RegulationDocument entity.
// If the RegulationDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegulationDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RegulationDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by ids.
func (m *RegulationDocumentMutation) AddRegulationIDs(ids ...uuid.UUID) {
	if m.regulations == nil {
		m.regulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.regulations[ids[i]] = struct{}{}
	}
}

// ClearRegulations clears the "regulations" edge to the FishingRegulation entity.
func (m *RegulationDocumentMutation) ClearRegulations() {
	m.clearedregulations = true
}

// RegulationsCleared reports if the "regulations" edge to the FishingRegulation entity was cleared.
func (m *RegulationDocumentMutation) RegulationsCleared() bool {
	return m.clearedregulations
}

// RemoveRegulationIDs removes the "regulations" edge to the FishingRegulation entity by IDs.
func (m *RegulationDocumentMutation) RemoveRegulationIDs(ids ...uuid.UUID) {
	if m.removedregulations == nil {
		m.removedregulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.regulations, ids[i])
		m.removedregulations[ids[i]] = struct{}{}
	}
}

// RemovedRegulations returns the removed IDs of the "regulations" edge to the FishingRegulation entity.
func (m *RegulationDocumentMutation) RemovedRegulationsIDs() (ids []uuid.UUID) {
	for id := range m.removedregulations {
		ids = append(ids, id)
	}
	return
}

// RegulationsIDs returns the "regulations" edge IDs in the mutation.
func (m *RegulationDocumentMutation) RegulationsIDs() (ids []uuid.UUID) {
	for id := range m.regulations {
		ids = append(ids, id)
	}
	return
}

// ResetRegulations resets all changes to the "regulations" edge.
func (m *RegulationDocumentMutation) ResetRegulations() {
	m.regulations = nil
	m.clearedregulations = false
	m.removedregulations = nil
}

// Where appends a list predicates to the RegulationDocumentMutation builder.
func (m *RegulationDocumentMutation) Where(ps ...predicate.RegulationDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegulationDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegulationDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegulationDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegulationDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegulationDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegulationDocument).
func (m *RegulationDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegulationDocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.filename != nil {
		fields = append(fields, regulationdocument.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, regulationdocument.FieldDocumentType)
	}
	if m.file_size != nil {
		fields = append(fields, regulationdocument.FieldFileSize)
	}
	if m.processing_status != nil {
		fields = append(fields, regulationdocument.FieldProcessingStatus)
	}
	if m.state_code != nil {
		fields = append(fields, regulationdocument.FieldStateCode)
	}
	if m.regulation_year != nil {
		fields = append(fields, regulationdocument.FieldRegulationYear)
	}
	if m.extraction_error != nil {
		fields = append(fields, regulationdocument.FieldExtractionError)
	}
	if m.storage_url != nil {
		fields = append(fields, regulationdocument.FieldStorageURL)
	}
	if m.uploaded_at != nil {
		fields = append(fields, regulationdocument.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, regulationdocument.FieldProcessedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, regulationdocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegulationDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case regulationdocument.FieldFilename:
		return m.Filename()
	case regulationdocument.FieldDocumentType:
		return m.DocumentType()
	case regulationdocument.FieldFileSize:
		return m.FileSize()
	case regulationdocument.FieldProcessingStatus:
		return m.ProcessingStatus()
	case regulationdocument.FieldStateCode:
		return m.StateCode()
	case regulationdocument.FieldRegulationYear:
		return m.RegulationYear()
	case regulationdocument.FieldExtractionError:
		return m.ExtractionError()
	case regulationdocument.FieldStorageURL:
		return m.StorageURL()
	case regulationdocument.FieldUploadedAt:
		return m.UploadedAt()
	case regulationdocument.FieldProcessedAt:
		return m.ProcessedAt()
	case regulationdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegulationDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case regulationdocument.FieldFilename:
		return m.OldFilename(ctx)
	case regulationdocument.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case regulationdocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case regulationdocument.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case regulationdocument.FieldStateCode:
		return m.OldStateCode(ctx)
	case regulationdocument.FieldRegulationYear:
		return m.OldRegulationYear(ctx)
	case regulationdocument.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case regulationdocument.FieldStorageURL:
		return m.OldStorageURL(ctx)
	case regulationdocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case regulationdocument.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case regulationdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegulationDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegulationDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case regulationdocument.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case regulationdocument.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case regulationdocument.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case regulationdocument.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case regulationdocument.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case regulationdocument.FieldRegulationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegulationYear(v)
		return nil
	case regulationdocument.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case regulationdocument.FieldStorageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURL(v)
		return nil
	case regulationdocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case regulationdocument.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case regulationdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegulationDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegulationDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, regulationdocument.FieldFileSize)
	}
	if m.addregulation_year != nil {
		fields = append(fields, regulationdocument.FieldRegulationYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegulationDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case regulationdocument.FieldFileSize:
		return m.AddedFileSize()
	case regulationdocument.FieldRegulationYear:
		return m.AddedRegulationYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegulationDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case regulationdocument.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case regulationdocument.FieldRegulationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRegulationYear(v)
		return nil
	}
	return fmt.Errorf("unknown RegulationDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegulationDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(regulationdocument.FieldExtractionError) {
		fields = append(fields, regulationdocument.FieldExtractionError)
	}
	if m.FieldCleared(regulationdocument.FieldStorageURL) {
		fields = append(fields, regulationdocument.FieldStorageURL)
	}
	if m.FieldCleared(regulationdocument.FieldProcessedAt) {
		fields = append(fields, regulationdocument.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegulationDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegulationDocumentMutation) ClearField(name string) error {
	switch name {
	case regulationdocument.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case regulationdocument.FieldStorageURL:
		m.ClearStorageURL()
		return nil
	case regulationdocument.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown RegulationDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegulationDocumentMutation) ResetField(name string) error {
	switch name {
	case regulationdocument.FieldFilename:
		m.ResetFilename()
		return nil
	case regulationdocument.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case regulationdocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case regulationdocument.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case regulationdocument.FieldStateCode:
		m.ResetStateCode()
		return nil
	case regulationdocument.FieldRegulationYear:
		m.ResetRegulationYear()
		return nil
	case regulationdocument.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case regulationdocument.FieldStorageURL:
		m.ResetStorageURL()
		return nil
	case regulationdocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case regulationdocument.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case regulationdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RegulationDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegulationDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.regulations != nil {
		edges = append(edges, regulationdocument.EdgeRegulations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegulationDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case regulationdocument.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.regulations))
		for id := range m.regulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegulationDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedregulations != nil {
		edges = append(edges, regulationdocument.EdgeRegulations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegulationDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case regulationdocument.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.removedregulations))
		for id := range m.removedregulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegulationDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedregulations {
		edges = append(edges, regulationdocument.EdgeRegulations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegulationDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case regulationdocument.EdgeRegulations:
		return m.clearedregulations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegulationDocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RegulationDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegulationDocumentMutation) ResetEdge(name string) error {
	switch name {
	case regulationdocument.EdgeRegulations:
		m.ResetRegulations()
		return nil
	}
	return fmt.Errorf("unknown RegulationDocument edge %s", name)
}

// WaterBodyMutation represents an operation that mutates the WaterBody nodes in the graph.
type WaterBodyMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	normalized_name    *string
	water_body_type    *string
	state_code         *string
	county             *string
	is_active          *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	regulations        map[uuid.UUID]struct{}
	removedregulations map[uuid.UUID]struct{}
	clearedregulations bool
	done               bool
	oldValue           func(context.Context) (*WaterBody, error)
	predicates         []predicate.WaterBody
}

var _ ent.Mutation = (*WaterBodyMutation)(nil)

// waterbodyOption allows management of the mutation configuration using functional options.
type waterbodyOption func(*WaterBodyMutation)

// newWaterBodyMutation creates new mutation for the WaterBody entity.
func newWaterBodyMutation(c config, op Op, opts ...waterbodyOption) *WaterBodyMutation {
	m := &WaterBodyMutation{
		config:        c,
		op:            op,
		typ:           TypeWaterBody,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWaterBodyID sets the ID field of the mutation.
func withWaterBodyID(id uuid.UUID) waterbodyOption {
	return func(m *WaterBodyMutation) {
		var (
			err   error
			once  sync.Once
			value *WaterBody
		)
		m.oldValue = func(ctx context.Context) (*WaterBody, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WaterBody.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWaterBody sets the old WaterBody of the mutation.
func withWaterBody(node *WaterBody) waterbodyOption {
	return func(m *WaterBodyMutation) {
		m.oldValue = func(context.Context) (*WaterBody, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WaterBodyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WaterBodyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WaterBody entities.
func (m *WaterBodyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WaterBodyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WaterBodyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WaterBody.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WaterBodyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WaterBodyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WaterBodyMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *WaterBodyMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *WaterBodyMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *WaterBodyMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetWaterBodyType sets the "water_body_type" field.
func (m *WaterBodyMutation) SetWaterBodyType(s string) {
	m.water_body_type = &s
}

// WaterBodyType returns the value of the "water_body_type" field in the mutation.
func (m *WaterBodyMutation) WaterBodyType() (r string, exists bool) {
	v := m.water_body_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterBodyType returns the old "water_body_type" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldWaterBodyType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterBodyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterBodyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterBodyType: %w", err)
	}
	return oldValue.WaterBodyType, nil
}

// ResetWaterBodyType resets all changes to the "water_body_type" field.
func (m *WaterBodyMutation) ResetWaterBodyType() {
	m.water_body_type = nil
}

// SetStateCode sets the "state_code" field.
func (m *WaterBodyMutation) SetStateCode(s string) {
	m.state_code = &s
}

// StateCode returns the value of the "state_code" field in the mutation.
func (m *WaterBodyMutation) StateCode() (r string, exists bool) {
	v := m.state_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStateCode returns the old "state_code" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldStateCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateCode: %w", err)
	}
	return oldValue.StateCode, nil
}

// ResetStateCode resets all changes to the "state_code" field.
func (m *WaterBodyMutation) ResetStateCode() {
	m.state_code = nil
}

// SetCounty sets the "county" field.
func (m *WaterBodyMutation) SetCounty(s string) {
	m.county = &s
}

// County returns the value of the "county" field in the mutation.
func (m *WaterBodyMutation) County() (r string, exists bool) {
	v := m.county
	if v == nil {
		return
	}
	return *v, true
}

// OldCounty returns the old "county" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldCounty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCounty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCounty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCounty: %w", err)
	}
	return oldValue.County, nil
}

// ClearCounty clears the value of the "county" field.
func (m *WaterBodyMutation) ClearCounty() {
	m.county = nil
	m.clearedFields[waterbody.FieldCounty] = struct{}{}
}

// CountyCleared returns if the "county" field was cleared in this mutation.
func (m *WaterBodyMutation) CountyCleared() bool {
	_, ok := m.clearedFields[waterbody.FieldCounty]
	return ok
}

// ResetCounty resets all changes to the "county" field.
func (m *WaterBodyMutation) ResetCounty() {
	m.county = nil
	delete(m.clearedFields, waterbody.FieldCounty)
}

// SetIsActive sets the "is_active" field.
func (m *WaterBodyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WaterBodyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WaterBodyMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WaterBodyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WaterBodyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WaterBodyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WaterBodyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WaterBodyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WaterBody entity.
// If the WaterBody object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaterBodyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WaterBodyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRegulationIDs adds the "regulations" edge to the FishingRegulation entity by ids.
func (m *WaterBodyMutation) AddRegulationIDs(ids ...uuid.UUID) {
	if m.regulations == nil {
		m.regulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.regulations[ids[i]] = struct{}{}
	}
}

// ClearRegulations clears the "regulations" edge to the FishingRegulation entity.
func (m *WaterBodyMutation) ClearRegulations() {
	m.clearedregulations = true
}

// RegulationsCleared reports if the "regulations" edge to the FishingRegulation entity was cleared.
func (m *WaterBodyMutation) RegulationsCleared() bool {
	return m.clearedregulations
}

// RemoveRegulationIDs removes the "regulations" edge to the FishingRegulation entity by IDs.
func (m *WaterBodyMutation) RemoveRegulationIDs(ids ...uuid.UUID) {
	if m.removedregulations == nil {
		m.removedregulations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.regulations, ids[i])
		m.removedregulations[ids[i]] = struct{}{}
	}
}

// RemovedRegulations returns the removed IDs of the "regulations" edge to the FishingRegulation entity.
func (m *WaterBodyMutation) RemovedRegulationsIDs() (ids []uuid.UUID) {
	for id := range m.removedregulations {
		ids = append(ids, id)
	}
	return
}

// RegulationsIDs returns the "regulations" edge IDs in the mutation.
func (m *WaterBodyMutation) RegulationsIDs() (ids []uuid.UUID) {
	for id := range m.regulations {
		ids = append(ids, id)
	}
	return
}

// ResetRegulations resets all changes to the "regulations" edge.
func (m *WaterBodyMutation) ResetRegulations() {
	m.regulations = nil
	m.clearedregulations = false
	m.removedregulations = nil
}

// Where appends a list predicates to the WaterBodyMutation builder.
func (m *WaterBodyMutation) Where(ps ...predicate.WaterBody) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WaterBodyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WaterBodyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WaterBody, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WaterBodyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WaterBodyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WaterBody).
func (m *WaterBodyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WaterBodyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, waterbody.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, waterbody.FieldNormalizedName)
	}
	if m.water_body_type != nil {
		fields = append(fields, waterbody.FieldWaterBodyType)
	}
	if m.state_code != nil {
		fields = append(fields, waterbody.FieldStateCode)
	}
	if m.county != nil {
		fields = append(fields, waterbody.FieldCounty)
	}
	if m.is_active != nil {
		fields = append(fields, waterbody.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, waterbody.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, waterbody.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WaterBodyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case waterbody.FieldName:
		return m.Name()
	case waterbody.FieldNormalizedName:
		return m.NormalizedName()
	case waterbody.FieldWaterBodyType:
		return m.WaterBodyType()
	case waterbody.FieldStateCode:
		return m.StateCode()
	case waterbody.FieldCounty:
		return m.County()
	case waterbody.FieldIsActive:
		return m.IsActive()
	case waterbody.FieldCreatedAt:
		return m.CreatedAt()
	case waterbody.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WaterBodyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case waterbody.FieldName:
		return m.OldName(ctx)
	case waterbody.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case waterbody.FieldWaterBodyType:
		return m.OldWaterBodyType(ctx)
	case waterbody.FieldStateCode:
		return m.OldStateCode(ctx)
	case waterbody.FieldCounty:
		return m.OldCounty(ctx)
	case waterbody.FieldIsActive:
		return m.OldIsActive(ctx)
	case waterbody.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case waterbody.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WaterBody field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaterBodyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case waterbody.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case waterbody.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case waterbody.FieldWaterBodyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterBodyType(v)
		return nil
	case waterbody.FieldStateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateCode(v)
		return nil
	case waterbody.FieldCounty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCounty(v)
		return nil
	case waterbody.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case waterbody.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case waterbody.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WaterBody field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WaterBodyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WaterBodyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaterBodyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WaterBody numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WaterBodyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(waterbody.FieldCounty) {
		fields = append(fields, waterbody.FieldCounty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WaterBodyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WaterBodyMutation) ClearField(name string) error {
	switch name {
	case waterbody.FieldCounty:
		m.ClearCounty()
		return nil
	}
	return fmt.Errorf("unknown WaterBody nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WaterBodyMutation) ResetField(name string) error {
	switch name {
	case waterbody.FieldName:
		m.ResetName()
		return nil
	case waterbody.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case waterbody.FieldWaterBodyType:
		m.ResetWaterBodyType()
		return nil
	case waterbody.FieldStateCode:
		m.ResetStateCode()
		return nil
	case waterbody.FieldCounty:
		m.ResetCounty()
		return nil
	case waterbody.FieldIsActive:
		m.ResetIsActive()
		return nil
	case waterbody.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case waterbody.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WaterBody field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WaterBodyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.regulations != nil {
		edges = append(edges, waterbody.EdgeRegulations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WaterBodyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case waterbody.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.regulations))
		for id := range m.regulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WaterBodyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedregulations != nil {
		edges = append(edges, waterbody.EdgeRegulations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WaterBodyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case waterbody.EdgeRegulations:
		ids := make([]ent.Value, 0, len(m.removedregulations))
		for id := range m.removedregulations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WaterBodyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedregulations {
		edges = append(edges, waterbody.EdgeRegulations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WaterBodyMutation) EdgeCleared(name string) bool {
	switch name {
	case waterbody.EdgeRegulations:
		return m.clearedregulations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WaterBodyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WaterBody unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WaterBodyMutation) ResetEdge(name string) error {
	switch name {
	case waterbody.EdgeRegulations:
		m.ResetRegulations()
		return nil
	}
	return fmt.Errorf("unknown WaterBody edge %s", name)
}
