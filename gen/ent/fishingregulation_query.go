// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishspecies"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/fisheries-data/regs-tracker/gen/ent/waterbody"
	"github.com/google/uuid"
)

// FishingRegulationQuery is the builder for querying FishingRegulation entities.
type FishingRegulationQuery struct {
	config
	ctx           *QueryContext
	order         []fishingregulation.OrderOption
	inters        []Interceptor
	predicates    []predicate.FishingRegulation
	withWaterBody *WaterBodyQuery
	withSpecies   *FishSpeciesQuery
	withDocument  *RegulationDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FishingRegulationQuery builder.
func (_q *FishingRegulationQuery) Where(ps ...predicate.FishingRegulation) *FishingRegulationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FishingRegulationQuery) Limit(limit int) *FishingRegulationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FishingRegulationQuery) Offset(offset int) *FishingRegulationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FishingRegulationQuery) Unique(unique bool) *FishingRegulationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FishingRegulationQuery) Order(o ...fishingregulation.OrderOption) *FishingRegulationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWaterBody chains the current query on the "water_body" edge.
func (_q *FishingRegulationQuery) QueryWaterBody() *WaterBodyQuery {
	query := (&WaterBodyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, selector),
			sqlgraph.To(waterbody.Table, waterbody.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.WaterBodyTable, fishingregulation.WaterBodyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySpecies chains the current query on the "species" edge.
func (_q *FishingRegulationQuery) QuerySpecies() *FishSpeciesQuery {
	query := (&FishSpeciesClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, selector),
			sqlgraph.To(fishspecies.Table, fishspecies.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.SpeciesTable, fishingregulation.SpeciesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocument chains the current query on the "document" edge.
func (_q *FishingRegulationQuery) QueryDocument() *RegulationDocumentQuery {
	query := (&RegulationDocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fishingregulation.Table, fishingregulation.FieldID, selector),
			sqlgraph.To(regulationdocument.Table, regulationdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fishingregulation.DocumentTable, fishingregulation.DocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FishingRegulation entity from the query.
// Returns a *NotFoundError when no FishingRegulation was found.
func (_q *FishingRegulationQuery) First(ctx context.Context) (*FishingRegulation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fishingregulation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FishingRegulationQuery) FirstX(ctx context.Context) *FishingRegulation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FishingRegulation ID from the query.
// Returns a *NotFoundError when no FishingRegulation ID was found.
func (_q *FishingRegulationQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fishingregulation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FishingRegulationQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FishingRegulation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FishingRegulation entity is found.
// Returns a *NotFoundError when no FishingRegulation entities are found.
func (_q *FishingRegulationQuery) Only(ctx context.Context) (*FishingRegulation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fishingregulation.Label}
	default:
		return nil, &NotSingularError{fishingregulation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FishingRegulationQuery) OnlyX(ctx context.Context) *FishingRegulation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FishingRegulation ID in the query.
// Returns a *NotSingularError when more than one FishingRegulation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FishingRegulationQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fishingregulation.Label}
	default:
		err = &NotSingularError{fishingregulation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FishingRegulationQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FishingRegulations.
func (_q *FishingRegulationQuery) All(ctx context.Context) ([]*FishingRegulation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FishingRegulation, *FishingRegulationQuery]()
	return withInterceptors[[]*FishingRegulation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FishingRegulationQuery) AllX(ctx context.Context) []*FishingRegulation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FishingRegulation IDs.
func (_q *FishingRegulationQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(fishingregulation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FishingRegulationQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FishingRegulationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FishingRegulationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FishingRegulationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FishingRegulationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *FishingRegulationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FishingRegulationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FishingRegulationQuery) Clone() *FishingRegulationQuery {
	if _q == nil {
		return nil
	}
	return &FishingRegulationQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]fishingregulation.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.FishingRegulation{}, _q.predicates...),
		withWaterBody: _q.withWaterBody.Clone(),
		withSpecies:   _q.withSpecies.Clone(),
		withDocument:  _q.withDocument.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWaterBody tells the query-builder to eager-load the nodes that are connected to
// the "water_body" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FishingRegulationQuery) WithWaterBody(opts ...func(*WaterBodyQuery)) *FishingRegulationQuery {
	query := (&WaterBodyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWaterBody = query
	return _q
}

// WithSpecies tells the query-builder to eager-load the nodes that are connected to
// the "species" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FishingRegulationQuery) WithSpecies(opts ...func(*FishSpeciesQuery)) *FishingRegulationQuery {
	query := (&FishSpeciesClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSpecies = query
	return _q
}

// WithDocument tells the query-builder to eager-load the nodes that are connected to
// the "document" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FishingRegulationQuery) WithDocument(opts ...func(*RegulationDocumentQuery)) *FishingRegulationQuery {
	query := (&RegulationDocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocument = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WaterBodyID uuid.UUID `json:"water_body_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FishingRegulation.Query().
//		GroupBy(fishingregulation.FieldWaterBodyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FishingRegulationQuery) GroupBy(field string, fields ...string) *FishingRegulationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FishingRegulationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = fishingregulation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WaterBodyID uuid.UUID `json:"water_body_id,omitempty"`
//	}
//
//	client.FishingRegulation.Query().
//		Select(fishingregulation.FieldWaterBodyID).
//		Scan(ctx, &v)
func (_q *FishingRegulationQuery) Select(fields ...string) *FishingRegulationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FishingRegulationSelect{FishingRegulationQuery: _q}
	sbuild.label = fishingregulation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FishingRegulationSelect configured with the given aggregations.
func (_q *FishingRegulationQuery) Aggregate(fns ...AggregateFunc) *FishingRegulationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FishingRegulationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !fishingregulation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *FishingRegulationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FishingRegulation, error) {
	var (
		nodes       = []*FishingRegulation{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withWaterBody != nil,
			_q.withSpecies != nil,
			_q.withDocument != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FishingRegulation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FishingRegulation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWaterBody; query != nil {
		if err := _q.loadWaterBody(ctx, query, nodes, nil,
			func(n *FishingRegulation, e *WaterBody) { n.Edges.WaterBody = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSpecies; query != nil {
		if err := _q.loadSpecies(ctx, query, nodes, nil,
			func(n *FishingRegulation, e *FishSpecies) { n.Edges.Species = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocument; query != nil {
		if err := _q.loadDocument(ctx, query, nodes, nil,
			func(n *FishingRegulation, e *RegulationDocument) { n.Edges.Document = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FishingRegulationQuery) loadWaterBody(ctx context.Context, query *WaterBodyQuery, nodes []*FishingRegulation, init func(*FishingRegulation), assign func(*FishingRegulation, *WaterBody)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FishingRegulation)
	for i := range nodes {
		fk := nodes[i].WaterBodyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(waterbody.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "water_body_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FishingRegulationQuery) loadSpecies(ctx context.Context, query *FishSpeciesQuery, nodes []*FishingRegulation, init func(*FishingRegulation), assign func(*FishingRegulation, *FishSpecies)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FishingRegulation)
	for i := range nodes {
		fk := nodes[i].SpeciesID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(fishspecies.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "species_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FishingRegulationQuery) loadDocument(ctx context.Context, query *RegulationDocumentQuery, nodes []*FishingRegulation, init func(*FishingRegulation), assign func(*FishingRegulation, *RegulationDocument)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FishingRegulation)
	for i := range nodes {
		if nodes[i].DocumentID == nil {
			continue
		}
		fk := *nodes[i].DocumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(regulationdocument.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "document_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FishingRegulationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FishingRegulationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fishingregulation.Table, fishingregulation.Columns, sqlgraph.NewFieldSpec(fishingregulation.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fishingregulation.FieldID)
		for i := range fields {
			if fields[i] != fishingregulation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withWaterBody != nil {
			_spec.Node.AddColumnOnce(fishingregulation.FieldWaterBodyID)
		}
		if _q.withSpecies != nil {
			_spec.Node.AddColumnOnce(fishingregulation.FieldSpeciesID)
		}
		if _q.withDocument != nil {
			_spec.Node.AddColumnOnce(fishingregulation.FieldDocumentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *FishingRegulationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(fishingregulation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = fishingregulation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FishingRegulationGroupBy is the group-by builder for FishingRegulation entities.
type FishingRegulationGroupBy struct {
	selector
	build *FishingRegulationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FishingRegulationGroupBy) Aggregate(fns ...AggregateFunc) *FishingRegulationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FishingRegulationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FishingRegulationQuery, *FishingRegulationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FishingRegulationGroupBy) sqlScan(ctx context.Context, root *FishingRegulationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FishingRegulationSelect is the builder for selecting fields of FishingRegulation entities.
type FishingRegulationSelect struct {
	*FishingRegulationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FishingRegulationSelect) Aggregate(fns ...AggregateFunc) *FishingRegulationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FishingRegulationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FishingRegulationQuery, *FishingRegulationSelect](ctx, _s.FishingRegulationQuery, _s, _s.inters, v)
}

func (_s *FishingRegulationSelect) sqlScan(ctx context.Context, root *FishingRegulationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
