// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fisheries-data/regs-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FishSpecies is the client for interacting with the FishSpecies builders.
	FishSpecies *FishSpeciesClient
	// FishingRegulation is the client for interacting with the FishingRegulation builders.
	FishingRegulation *FishingRegulationClient
	// RegulationDocument is the client for interacting with the RegulationDocument builders.
	RegulationDocument *RegulationDocumentClient
	// WaterBody is the client for interacting with the WaterBody builders.
	WaterBody *WaterBodyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FishSpecies = NewFishSpeciesClient(c.config)
	c.FishingRegulation = NewFishingRegulationClient(c.config)
	c.RegulationDocument = NewRegulationDocumentClient(c.config)
	c.WaterBody = NewWaterBodyClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		FishSpecies:        NewFishSpeciesClient(cfg),
		FishingRegulation:  NewFishingRegulationClient(cfg),
		RegulationDocument: NewRegulationDocumentClient(cfg),
		WaterBody:          NewWaterBodyClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		FishSpecies:        NewFishSpeciesClient(cfg),
		FishingRegulation:  NewFishingRegulationClient(cfg),
		RegulationDocument: NewRegulationDocumentClient(cfg),
		WaterBody:          NewWaterBodyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FishSpecies.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.FishSpecies.Use(hooks...)
	c.FishingRegulation.Use(hooks...)
	c.RegulationDocument.Use(hooks...)
	c.WaterBody.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FishSpecies.Intercept(interceptors...)
	c.FishingRegulation.Intercept(interceptors...)
	c.RegulationDocument.Intercept(interceptors...)
	c.WaterBody.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FishSpeciesMutation:
		return c.FishSpecies.mutate(ctx, m)
	case *FishingRegulationMutation:
		return c.FishingRegulation.mutate(ctx, m)
	case *RegulationDocumentMutation:
		return c.RegulationDocument.mutate(ctx, m)
	case *WaterBodyMutation:
		return c.WaterBody.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FishSpeciesClient is a client for the FishSpecies schema.
type FishSpeciesClient struct {
	config
}

// NewFishSpeciesClient returns a client for the FishSpecies from the given config.
func NewFishSpeciesClient(c config) *FishSpeciesClient {
	return &FishSpeciesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fishspecies.Hooks(f(g(h())))`.
func (c *FishSpeciesClient) Use(hooks ...Hook) {
	c.hooks.FishSpecies = append(c.hooks.FishSpecies, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fishspecies.Intercept(f(g(h())))`.
func (c *FishSpeciesClient) Intercept(interceptors ...Interceptor) {
	c.inters.FishSpecies = append(c.inters.FishSpecies, interceptors...)
}

// Create returns a builder for creating a FishSpecies entity.
func (c *FishSpeciesClient) Create() *FishSpeciesCreate {
	mutation := newFishSpeciesMutation(c.config, OpCreate)
	return &FishSpeciesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FishSpecies entities.
func (c *FishSpeciesClient) CreateBulk(builders ...*FishSpeciesCreate) *FishSpeciesCreateBulk {
	return &FishSpeciesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FishSpeciesClient) MapCreateBulk(slice any, setFunc func(*FishSpeciesCreate, int)) *FishSpeciesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FishSpeciesCreateBulk{err: fmt.Errorf("calling to FishSpeciesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FishSpeciesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FishSpeciesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FishSpecies.
func (c *FishSpeciesClient) Update() *FishSpeciesUpdate {
	mutation := newFishSpeciesMutation(c.config, OpUpdate)
	return &FishSpeciesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FishSpeciesClient) UpdateOne(_m *FishSpecies) *FishSpeciesUpdateOne {
	mutation := newFishSpeciesMutation(c.config, OpUpdateOne, withFishSpecies(_m))
	return &FishSpeciesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FishSpeciesClient) UpdateOneID(id uuid.UUID) *FishSpeciesUpdateOne {
	mutation := newFishSpeciesMutation(c.config, OpUpdateOne, withFishSpeciesID(id))
	return &FishSpeciesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FishSpecies.
func (c *FishSpeciesClient) Delete() *FishSpeciesDelete {
	mutation := newFishSpeciesMutation(c.config, OpDelete)
	return &FishSpeciesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FishSpeciesClient) DeleteOne(_m *FishSpecies) *FishSpeciesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FishSpeciesClient) DeleteOneID(id uuid.UUID) *FishSpeciesDeleteOne {
	builder := c.Delete().Where(fishspecies.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FishSpeciesDeleteOne{builder}
}

// Query returns a query builder for FishSpecies.
func (c *FishSpeciesClient) Query() *FishSpeciesQuery {
	return &FishSpeciesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFishSpecies},
		inters: c.Interceptors(),
	}
}

// Get returns a FishSpecies entity by its id.
func (c *FishSpeciesClient) Get(ctx context.Context, id uuid.UUID) (*FishSpecies, error) {
	return c.Query().Where(fishspecies.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FishSpeciesClient) GetX(ctx context.Context, id uuid.UUID) *FishSpecies {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRegulations queries the regulations edge of a FishSpecies.
func (c *FishSpeciesClient) QueryRegulations(_m *FishSpecies) *FishingRegulationQuery {
	query := (&FishingRegulationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fishspecies.Table, fishspecies.FieldID, id),
			sqlgraph.To(fishingregulation.Table, fishingregulation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fishspecies.RegulationsTable, fishspecies.RegulationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FishSpeciesClient) Hooks() []Hook {
	return c.hooks.FishSpecies
}

// Interceptors returns the client interceptors.
func (c *FishSpeciesClient) Interceptors() []Interceptor {
	return c.inters.FishSpecies
}

func (c *FishSpeciesClient) mutate(ctx context.Context, m *FishSpeciesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FishSpeciesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FishSpeciesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FishSpeciesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FishSpeciesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FishSpecies mutation op: %q", m.Op())
	}
}

// FishingRegulationClient is a client for the FishingRegulation schema.
type FishingRegulationClient struct {
	config
}

// NewFishingRegulationClient returns a client for the FishingRegulation from the given config.
func NewFishingRegulationClient(c config) *FishingRegulationClient {
	return &FishingRegulationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fishingregulation.Hooks(f(g(h())))`.
func (c *FishingRegulationClient) Use(hooks ...Hook) {
	c.hooks.FishingRegulation = append(c.hooks.FishingRegulation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fishingregulation.Intercept(f(g(h())))`.
func (c *FishingRegulationClient) Intercept(interceptors ...Interceptor) {
	c.inters.FishingRegulation = append(c.inters.FishingRegulation, interceptors...)
}

// Create returns a builder for creating a FishingRegulation entity.
func (c *FishingRegulationClient) Create() *FishingRegulationCreate {
	mutation := newFishingRegulationMutation(c.config, OpCreate)
	return &FishingRegulationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FishingRegulation entities.
func (c *FishingRegulationClient) CreateBulk(builders ...*FishingRegulationCreate) *FishingRegulationCreateBulk {
	return &FishingRegulationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FishingRegulationClient) MapCreateBulk(slice any, setFunc func(*FishingRegulationCreate, int)) *FishingRegulationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FishingRegulationCreateBulk{err: fmt.Errorf("calling to FishingRegulationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FishingRegulationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FishingRegulationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FishingRegulation.
func (c *FishingRegulationClient) Update() *FishingRegulationUpdate {
	mutation := newFishingRegulationMutation(c.config, OpUpdate)
	return &FishingRegulationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FishingRegulationClient) UpdateOne(_m *FishingRegulation) *FishingRegulationUpdateOne {
	mutation := newFishingRegulationMutation(c.config, OpUpdateOne, withFishingRegulation(_m))
	return &FishingRegulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FishingRegulationClient) UpdateOneID(id uuid.UUID) *FishingRegulationUpdateOne {
	mutation := newFishingRegulationMutation(c.config, OpUpdateOne, withFishingRegulationID(id))
	return &FishingRegulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FishingRegulation.
func (c *FishingRegulationClient) Delete() *FishingRegulationDelete {
	mutation := newFishingRegulationMutation(c.config, OpDelete)
	return &FishingRegulationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FishingRegulationClient) DeleteOne(_m *FishingRegulation) *FishingRegulationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FishingRegulationClient) DeleteOneID(id uuid.UUID) *FishingRegulationDeleteOne {
	builder := c.Delete().Where(fishingregulation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FishingRegulationDeleteOne{builder}
}

// Query returns a query builder for FishingRegulation.
func (c *FishingRegulationClient) Query() *FishingRegulationQuery {
	return &FishingRegulationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFishingRegulation},
		inters: c.Interceptors(),
	}
}

// Get returns a FishingRegulation entity by its id.
func (c *FishingRegulationClient) Get(ctx context.Context, id uuid.UUID) (*FishingRegulation, error) {
	return c.Query().Where(fishingregulation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FishingRegulationClient) GetX(ctx context.Context, id uuid.UUID) *FishingRegulation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWaterBody queries the water_body edge of a FishingRegulation.
func (c *FishingRegulationClient) QueryWaterBody(_m *FishingRegulation) *WaterBodyQuery {
	query := (&WaterBodyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, id),
			sqlgraph.To(waterbody.Table, waterbody.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.WaterBodyTable, fishingregulation.WaterBodyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpecies queries the species edge of a FishingRegulation.
func (c *FishingRegulationClient) QuerySpecies(_m *FishingRegulation) *FishSpeciesQuery {
	query := (&FishSpeciesClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, id),
			sqlgraph.To(fishspecies.Table, fishspecies.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.SpeciesTable, fishingregulation.SpeciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a FishingRegulation.
func (c *FishingRegulationClient) QueryDocument(_m *FishingRegulation) *RegulationDocumentQuery {
	query := (&RegulationDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, id),
			sqlgraph.To(regulationdocument.Table, regulationdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.DocumentTable, fishingregulation.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FishingRegulationClient) Hooks() []Hook {
	return c.hooks.FishingRegulation
}

// Interceptors returns the client interceptors.
func (c *FishingRegulationClient) Interceptors() []Interceptor {
	return c.inters.FishingRegulation
}

func (c *FishingRegulationClient) mutate(ctx context.Context, m *FishingRegulationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FishingRegulationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FishingRegulationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FishingRegulationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FishingRegulationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FishingRegulation mutation op: %q", m.Op())
	}
}

// RegulationDocumentClient is a client for the RegulationDocument schema.
type RegulationDocumentClient struct {
	config
}

// NewRegulationDocumentClient returns a client for the RegulationDocument from the given config.
func NewRegulationDocumentClient(c config) *RegulationDocumentClient {
	return &RegulationDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `regulationdocument.Hooks(f(g(h())))`.
func (c *RegulationDocumentClient) Use(hooks ...Hook) {
	c.hooks.RegulationDocument = append(c.hooks.RegulationDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `regulationdocument.Intercept(f(g(h())))`.
func (c *RegulationDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegulationDocument = append(c.inters.RegulationDocument, interceptors...)
}

// Create returns a builder for creating a RegulationDocument entity.
func (c *RegulationDocumentClient) Create() *RegulationDocumentCreate {
	mutation := newRegulationDocumentMutation(c.config, OpCreate)
	return &RegulationDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegulationDocument entities.
func (c *RegulationDocumentClient) CreateBulk(builders ...*RegulationDocumentCreate) *RegulationDocumentCreateBulk {
	return &RegulationDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegulationDocumentClient) MapCreateBulk(slice any, setFunc func(*RegulationDocumentCreate, int)) *RegulationDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegulationDocumentCreateBulk{err: fmt.Errorf("calling to RegulationDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegulationDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegulationDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegulationDocument.
func (c *RegulationDocumentClient) Update() *RegulationDocumentUpdate {
	mutation := newRegulationDocumentMutation(c.config, OpUpdate)
	return &RegulationDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegulationDocumentClient) UpdateOne(_m *RegulationDocument) *RegulationDocumentUpdateOne {
	mutation := newRegulationDocumentMutation(c.config, OpUpdateOne, withRegulationDocument(_m))
	return &RegulationDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegulationDocumentClient) UpdateOneID(id uuid.UUID) *RegulationDocumentUpdateOne {
	mutation := newRegulationDocumentMutation(c.config, OpUpdateOne, withRegulationDocumentID(id))
	return &RegulationDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegulationDocument.
func (c *RegulationDocumentClient) Delete() *RegulationDocumentDelete {
	mutation := newRegulationDocumentMutation(c.config, OpDelete)
	return &RegulationDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegulationDocumentClient) DeleteOne(_m *RegulationDocument) *RegulationDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegulationDocumentClient) DeleteOneID(id uuid.UUID) *RegulationDocumentDeleteOne {
	builder := c.Delete().Where(regulationdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegulationDocumentDeleteOne{builder}
}

// Query returns a query builder for RegulationDocument.
func (c *RegulationDocumentClient) Query() *RegulationDocumentQuery {
	return &RegulationDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegulationDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a RegulationDocument entity by its id.
func (c *RegulationDocumentClient) Get(ctx context.Context, id uuid.UUID) (*RegulationDocument, error) {
	return c.Query().Where(regulationdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegulationDocumentClient) GetX(ctx context.Context, id uuid.UUID) *RegulationDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRegulations queries the regulations edge of a RegulationDocument.
func (c *RegulationDocumentClient) QueryRegulations(_m *RegulationDocument) *FishingRegulationQuery {
	query := (&FishingRegulationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(regulationdocument.Table, regulationdocument.FieldID, id),
			sqlgraph.To(fishingregulation.Table, fishingregulation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, regulationdocument.RegulationsTable, regulationdocument.RegulationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RegulationDocumentClient) Hooks() []Hook {
	return c.hooks.RegulationDocument
}

// Interceptors returns the client interceptors.
func (c *RegulationDocumentClient) Interceptors() []Interceptor {
	return c.inters.RegulationDocument
}

func (c *RegulationDocumentClient) mutate(ctx context.Context, m *RegulationDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegulationDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegulationDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegulationDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegulationDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegulationDocument mutation op: %q", m.Op())
	}
}

// WaterBodyClient is a client for the WaterBody schema.
type WaterBodyClient struct {
	config
}

// NewWaterBodyClient returns a client for the WaterBody from the given config.
func NewWaterBodyClient(c config) *WaterBodyClient {
	return &WaterBodyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `waterbody.Hooks(f(g(h())))`.
func (c *WaterBodyClient) Use(hooks ...Hook) {
	c.hooks.WaterBody = append(c.hooks.WaterBody, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `waterbody.Intercept(f(g(h())))`.
func (c *WaterBodyClient) Intercept(interceptors ...Interceptor) {
	c.inters.WaterBody = append(c.inters.WaterBody, interceptors...)
}

// Create returns a builder for creating a WaterBody entity.
func (c *WaterBodyClient) Create() *WaterBodyCreate {
	mutation := newWaterBodyMutation(c.config, OpCreate)
	return &WaterBodyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WaterBody entities.
func (c *WaterBodyClient) CreateBulk(builders ...*WaterBodyCreate) *WaterBodyCreateBulk {
	return &WaterBodyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WaterBodyClient) MapCreateBulk(slice any, setFunc func(*WaterBodyCreate, int)) *WaterBodyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WaterBodyCreateBulk{err: fmt.Errorf("calling to WaterBodyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WaterBodyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WaterBodyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WaterBody.
func (c *WaterBodyClient) Update() *WaterBodyUpdate {
	mutation := newWaterBodyMutation(c.config, OpUpdate)
	return &WaterBodyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WaterBodyClient) UpdateOne(_m *WaterBody) *WaterBodyUpdateOne {
	mutation := newWaterBodyMutation(c.config, OpUpdateOne, withWaterBody(_m))
	return &WaterBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WaterBodyClient) UpdateOneID(id uuid.UUID) *WaterBodyUpdateOne {
	mutation := newWaterBodyMutation(c.config, OpUpdateOne, withWaterBodyID(id))
	return &WaterBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WaterBody.
func (c *WaterBodyClient) Delete() *WaterBodyDelete {
	mutation := newWaterBodyMutation(c.config, OpDelete)
	return &WaterBodyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WaterBodyClient) DeleteOne(_m *WaterBody) *WaterBodyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WaterBodyClient) DeleteOneID(id uuid.UUID) *WaterBodyDeleteOne {
	builder := c.Delete().Where(waterbody.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WaterBodyDeleteOne{builder}
}

// Query returns a query builder for WaterBody.
func (c *WaterBodyClient) Query() *WaterBodyQuery {
	return &WaterBodyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWaterBody},
		inters: c.Interceptors(),
	}
}

// Get returns a WaterBody entity by its id.
func (c *WaterBodyClient) Get(ctx context.Context, id uuid.UUID) (*WaterBody, error) {
	return c.Query().Where(waterbody.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WaterBodyClient) GetX(ctx context.Context, id uuid.UUID) *WaterBody {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRegulations queries the regulations edge of a WaterBody.
func (c *WaterBodyClient) QueryRegulations(_m *WaterBody) *FishingRegulationQuery {
	query := (&FishingRegulationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waterbody.Table, waterbody.FieldID, id),
			sqlgraph.To(fishingregulation.Table, fishingregulation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, waterbody.RegulationsTable, waterbody.RegulationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WaterBodyClient) Hooks() []Hook {
	return c.hooks.WaterBody
}

// Interceptors returns the client interceptors.
func (c *WaterBodyClient) Interceptors() []Interceptor {
	return c.inters.WaterBody
}

func (c *WaterBodyClient) mutate(ctx context.Context, m *WaterBodyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WaterBodyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WaterBodyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WaterBodyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WaterBodyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WaterBody mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FishSpecies, FishingRegulation, RegulationDocument, WaterBody []ent.Hook
	}
	inters struct {
		FishSpecies, FishingRegulation, RegulationDocument, WaterBody []ent.Interceptor
	}
)
