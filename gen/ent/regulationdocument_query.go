// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fisheries-data/regs-tracker/gen/ent/fishingregulation"
	"github.com/fisheries-data/regs-tracker/gen/ent/predicate"
	"github.com/fisheries-data/regs-tracker/gen/ent/regulationdocument"
	"github.com/google/uuid"
)

// RegulationDocumentQuery is the builder for querying RegulationDocument entities.
type RegulationDocumentQuery struct {
	config
	ctx             *QueryContext
	order           []regulationdocument.OrderOption
	inters          []Interceptor
	predicates      []predicate.RegulationDocument
	withRegulations *FishingRegulationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RegulationDocumentQuery builder.
func (_q *RegulationDocumentQuery) Where(ps ...predicate.RegulationDocument) *RegulationDocumentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RegulationDocumentQuery) Limit(limit int) *RegulationDocumentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RegulationDocumentQuery) Offset(offset int) *RegulationDocumentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RegulationDocumentQuery) Unique(unique bool) *RegulationDocumentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RegulationDocumentQuery) Order(o ...regulationdocument.OrderOption) *RegulationDocumentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRegulations chains the current query on the "regulations" edge.
func (_q *RegulationDocumentQuery) QueryRegulations() *FishingRegulationQuery {
	query := (&FishingRegulationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(regulationdocument.Table, regulationdocument.FieldID, selector),
			sqlgraph.To(fishingregulation.Table, fishingregulation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, regulationdocument.RegulationsTable, regulationdocument.RegulationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RegulationDocument entity from the query.
// Returns a *NotFoundError when no RegulationDocument was found.
func (_q *RegulationDocumentQuery) First(ctx context.Context) (*RegulationDocument, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{regulationdocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RegulationDocumentQuery) FirstX(ctx context.Context) *RegulationDocument {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RegulationDocument ID from the query.
// Returns a *NotFoundError when no RegulationDocument ID was found.
func (_q *RegulationDocumentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{regulationdocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RegulationDocumentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RegulationDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RegulationDocument entity is found.
// Returns a *NotFoundError when no RegulationDocument entities are found.
func (_q *RegulationDocumentQuery) Only(ctx context.Context) (*RegulationDocument, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{regulationdocument.Label}
	default:
		return nil, &NotSingularError{regulationdocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RegulationDocumentQuery) OnlyX(ctx context.Context) *RegulationDocument {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RegulationDocument ID in the query.
// Returns a *NotSingularError when more than one RegulationDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RegulationDocumentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{regulationdocument.Label}
	default:
		err = &NotSingularError{regulationdocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RegulationDocumentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RegulationDocuments.
func (_q *RegulationDocumentQuery) All(ctx context.Context) ([]*RegulationDocument, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RegulationDocument, *RegulationDocumentQuery]()
	return withInterceptors[[]*RegulationDocument](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RegulationDocumentQuery) AllX(ctx context.Context) []*RegulationDocument {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RegulationDocument IDs.
func (_q *RegulationDocumentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(regulationdocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RegulationDocumentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RegulationDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RegulationDocumentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RegulationDocumentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RegulationDocumentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RegulationDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RegulationDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RegulationDocumentQuery) Clone() *RegulationDocumentQuery {
	if _q == nil {
		return nil
	}
	return &RegulationDocumentQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]regulationdocument.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.RegulationDocument{}, _q.predicates...),
		withRegulations: _q.withRegulations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRegulations tells the query-builder to eager-load the nodes that are connected to
// the "regulations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RegulationDocumentQuery) WithRegulations(opts ...func(*FishingRegulationQuery)) *RegulationDocumentQuery {
	query := (&FishingRegulationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRegulations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RegulationDocument.Query().
//		GroupBy(regulationdocument.FieldFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RegulationDocumentQuery) GroupBy(field string, fields ...string) *RegulationDocumentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RegulationDocumentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = regulationdocument.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Filename string `json:"filename,omitempty"`
//	}
//
//	client.RegulationDocument.Query().
//		Select(regulationdocument.FieldFilename).
//		Scan(ctx, &v)
func (_q *RegulationDocumentQuery) Select(fields ...string) *RegulationDocumentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RegulationDocumentSelect{RegulationDocumentQuery: _q}
	sbuild.label = regulationdocument.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RegulationDocumentSelect configured with the given aggregations.
func (_q *RegulationDocumentQuery) Aggregate(fns ...AggregateFunc) *RegulationDocumentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RegulationDocumentQuery) prepareQuery(ctx context.Context) error {
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
		if !regulationdocument.ValidColumn(f) {
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

func (_q *RegulationDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RegulationDocument, error) {
	var (
		nodes       = []*RegulationDocument{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withRegulations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RegulationDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RegulationDocument{config: _q.config}
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
	if query := _q.withRegulations; query != nil {
		if err := _q.loadRegulations(ctx, query, nodes,
			func(n *RegulationDocument) { n.Edges.Regulations = []*FishingRegulation{} },
			func(n *RegulationDocument, e *FishingRegulation) {
				n.Edges.Regulations = append(n.Edges.Regulations, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RegulationDocumentQuery) loadRegulations(ctx context.Context, query *FishingRegulationQuery, nodes []*RegulationDocument, init func(*RegulationDocument), assign func(*RegulationDocument, *FishingRegulation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*RegulationDocument)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(fishingregulation.FieldDocumentID)
	}
	query.Where(predicate.FishingRegulation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(regulationdocument.RegulationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "document_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RegulationDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RegulationDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(regulationdocument.Table, regulationdocument.Columns, sqlgraph.NewFieldSpec(regulationdocument.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, regulationdocument.FieldID)
		for i := range fields {
			if fields[i] != regulationdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *RegulationDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(regulationdocument.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = regulationdocument.Columns
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

// RegulationDocumentGroupBy is the group-by builder for RegulationDocument entities.
type RegulationDocumentGroupBy struct {
	selector
	build *RegulationDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RegulationDocumentGroupBy) Aggregate(fns ...AggregateFunc) *RegulationDocumentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RegulationDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RegulationDocumentQuery, *RegulationDocumentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RegulationDocumentGroupBy) sqlScan(ctx context.Context, root *RegulationDocumentQuery, v any) error {
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

// RegulationDocumentSelect is the builder for selecting fields of RegulationDocument entities.
type RegulationDocumentSelect struct {
	*RegulationDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RegulationDocumentSelect) Aggregate(fns ...AggregateFunc) *RegulationDocumentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RegulationDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RegulationDocumentQuery, *RegulationDocumentSelect](ctx, _s.RegulationDocumentQuery, _s, _s.inters, v)
}

func (_s *RegulationDocumentSelect) sqlScan(ctx context.Context, root *RegulationDocumentQuery, v any) error {
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
